package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the exact width of one oracle signature record:
// 32-byte r, 32-byte s, 1-byte recovery id.
const SignatureLength = 65

// Signature is one decoded oracle signature record. V carries the Ethereum
// convention recovery id, 27 or 28.
type Signature struct {
	R [32]byte
	S [32]byte
	V byte
}

// SignatureCount returns the number of signature records in the bundle. The
// bundle length must be an exact multiple of SignatureLength; any remainder
// is a malformed bundle, not trailing garbage to ignore.
func SignatureCount(bundle []byte) (int, error) {
	if len(bundle)%SignatureLength != 0 {
		return 0, errorsmod.Wrapf(ErrMalformedSignatureBundle, "bundle length %d is not a multiple of %d", len(bundle), SignatureLength)
	}
	return len(bundle) / SignatureLength, nil
}

// SplitSignature extracts the signature record at the given index from the
// bundle. It is a pure function of (bundle, index).
func SplitSignature(bundle []byte, index int) (Signature, error) {
	count, err := SignatureCount(bundle)
	if err != nil {
		return Signature{}, err
	}
	if index < 0 || index >= count {
		return Signature{}, errorsmod.Wrapf(ErrMalformedSignatureBundle, "signature index %d out of range, bundle holds %d", index, count)
	}

	var sig Signature
	offset := index * SignatureLength
	copy(sig.R[:], bundle[offset:offset+32])
	copy(sig.S[:], bundle[offset+32:offset+64])
	sig.V = bundle[offset+64]

	if sig.V != 27 && sig.V != 28 {
		return Signature{}, errorsmod.Wrapf(ErrInvalidRecoveryID, "signature %d has recovery id %d, want 27 or 28", index, sig.V)
	}
	return sig, nil
}

// Recover derives the signer address from the signature over digest. On
// cryptographically invalid input it returns the zero address, the minimum
// element of the address ordering, matching the ecrecover precompile contract.
func (sig Signature) Recover(digest common.Hash) common.Address {
	raw := make([]byte, SignatureLength)
	copy(raw[:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = sig.V - 27

	pubKey, err := crypto.Ecrecover(digest.Bytes(), raw)
	if err != nil {
		return common.Address{}
	}
	return common.BytesToAddress(crypto.Keccak256(pubKey[1:])[12:])
}
