package keeper

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/makerdao/dss-wormhole/modules/wormhole/types"
)

// IsValid reports whether the bundle carries at least threshold signatures
// over signHash from distinct authorized oracle signers. It is side-effect
// free and public so auditors can check a bundle without triggering a mint.
//
// The bundle must be sorted in strictly ascending order of the recovered
// signer address. A single linear pass then suffices to reject duplicates:
// a repeated signer compares equal to its predecessor and aborts with
// ErrBadSignatureOrder. A failed recovery yields the zero address, which
// never exceeds the previous signer, so bundles padded with garbage
// signatures abort the same way instead of inflating the count.
//
// Insufficient valid signatures after a full pass is a normal negative
// result, returned as (false, nil) rather than an error.
func (k Keeper) IsValid(ctx sdk.Context, signHash common.Hash, signatures []byte, threshold uint64) (bool, error) {
	count, err := types.SignatureCount(signatures)
	if err != nil {
		return false, err
	}
	if uint64(count) < threshold {
		return false, errorsmod.Wrapf(types.ErrInsufficientSignatureCount, "bundle holds %d signatures, threshold is %d", count, threshold)
	}

	var (
		numValid   uint64
		lastSigner common.Address
	)

	for i := 0; i < count; i++ {
		sig, err := types.SplitSignature(signatures, i)
		if err != nil {
			return false, err
		}

		recovered := sig.Recover(signHash)
		if bytes.Compare(recovered.Bytes(), lastSigner.Bytes()) <= 0 {
			return false, errorsmod.Wrapf(types.ErrBadSignatureOrder, "signature %d: recovered signer %s does not strictly follow %s", i, recovered.Hex(), lastSigner.Hex())
		}
		lastSigner = recovered

		if k.IsSigner(ctx, recovered) {
			numValid++
			if numValid >= threshold {
				return true, nil
			}
		}
	}

	return false, nil
}
