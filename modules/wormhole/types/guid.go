package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// signedMessagePrefix is the Ethereum signed message envelope for a 32-byte
// payload. Wrapping the GUID hash in it prevents oracle signatures from being
// replayed in unrelated signing contexts.
const signedMessagePrefix = "\x19Ethereum Signed Message:\n32"

var (
	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	uint128Type, _ = abi.NewType("uint128", "", nil)
	uint80Type, _  = abi.NewType("uint80", "", nil)
	uint48Type, _  = abi.NewType("uint48", "", nil)

	guidArgs = abi.Arguments{
		{Name: "sourceDomain", Type: bytes32Type},
		{Name: "targetDomain", Type: bytes32Type},
		{Name: "receiver", Type: bytes32Type},
		{Name: "operator", Type: bytes32Type},
		{Name: "amount", Type: uint128Type},
		{Name: "nonce", Type: uint80Type},
		{Name: "timestamp", Type: uint48Type},
	}
)

// WormholeGUID identifies one cross-domain transfer. Receiver and operator
// are addresses embedded in bytes32 words; amount, nonce and timestamp carry
// the uint128/uint80/uint48 widths of the wire format.
// This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
type WormholeGUID struct {
	SourceDomain common.Hash
	TargetDomain common.Hash
	Receiver     common.Hash
	Operator     common.Hash
	Amount       sdkmath.Int
	Nonce        sdkmath.Int
	Timestamp    uint64
}

// DomainToBytes32 encodes a domain tag string left-aligned into a bytes32 word.
func DomainToBytes32(domain string) common.Hash {
	var h common.Hash
	copy(h[:], domain)
	return h
}

// AddressToBytes32 embeds an address right-aligned into a bytes32 word.
func AddressToBytes32(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

// Bytes32ToAddress extracts the address from the low 20 bytes of a bytes32 word.
func Bytes32ToAddress(h common.Hash) common.Address {
	return common.BytesToAddress(h.Bytes())
}

// OperatorAddress returns the operator field as an address.
func (g WormholeGUID) OperatorAddress() common.Address {
	return Bytes32ToAddress(g.Operator)
}

// ReceiverAddress returns the receiver field as an address.
func (g WormholeGUID) ReceiverAddress() common.Address {
	return Bytes32ToAddress(g.Receiver)
}

// ValidateBasic checks that every field fits its wire width.
func (g WormholeGUID) ValidateBasic() error {
	if g.Amount.IsNil() || g.Amount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidGUID, "amount must be non-negative")
	}
	if g.Amount.BigInt().BitLen() > 128 {
		return errorsmod.Wrap(ErrInvalidGUID, "amount exceeds uint128")
	}
	if g.Nonce.IsNil() || g.Nonce.IsNegative() {
		return errorsmod.Wrap(ErrInvalidGUID, "nonce must be non-negative")
	}
	if g.Nonce.BigInt().BitLen() > 80 {
		return errorsmod.Wrap(ErrInvalidGUID, "nonce exceeds uint80")
	}
	if g.Timestamp >= 1<<48 {
		return errorsmod.Wrap(ErrInvalidGUID, "timestamp exceeds uint48")
	}
	return nil
}

// ABIEncode returns the canonical ABI encoding of the GUID, seven 32-byte words.
func (g WormholeGUID) ABIEncode() ([]byte, error) {
	encoded, err := guidArgs.Pack(
		[32]byte(g.SourceDomain),
		[32]byte(g.TargetDomain),
		[32]byte(g.Receiver),
		[32]byte(g.Operator),
		g.Amount.BigInt(),
		g.Nonce.BigInt(),
		new(big.Int).SetUint64(g.Timestamp),
	)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidGUID, "failed to ABI encode GUID: %v", err)
	}
	return encoded, nil
}

// Hash returns the canonical digest of the GUID, keccak256 over its ABI encoding.
func (g WormholeGUID) Hash() (common.Hash, error) {
	encoded, err := g.ABIEncode()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

// SignHash returns the message oracles sign: the GUID hash wrapped in the
// Ethereum signed message envelope and hashed again.
func (g WormholeGUID) SignHash() (common.Hash, error) {
	guidHash, err := g.Hash()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash([]byte(signedMessagePrefix), guidHash.Bytes()), nil
}
