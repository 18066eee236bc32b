package keeper

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/makerdao/dss-wormhole/modules/wormhole/types"
)

// IsSigner reports whether addr is an authorized oracle signer.
func (k Keeper) IsSigner(ctx sdk.Context, addr common.Address) bool {
	return ctx.KVStore(k.storeKey).Has(types.SignerKey(addr))
}

// AddSigners authorizes every address in the list as an oracle signer.
// Idempotent; restricted to administrators. The emitted event records the
// supplied list, not the resulting set.
func (k Keeper) AddSigners(ctx sdk.Context, caller common.Address, signers []common.Address) error {
	if !k.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotAuthorized, "caller %s", caller)
	}

	for _, signer := range signers {
		k.setSigner(ctx, signer)
	}

	k.Logger(ctx).Info("added oracle signers", "caller", caller.Hex(), "count", len(signers))
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSignersAdded,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.Hex()),
			sdk.NewAttribute(types.AttributeKeySigners, joinAddresses(signers)),
		),
	)

	return nil
}

// RemoveSigners revokes every address in the list as an oracle signer.
// Idempotent; restricted to administrators.
func (k Keeper) RemoveSigners(ctx sdk.Context, caller common.Address, signers []common.Address) error {
	if !k.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotAuthorized, "caller %s", caller)
	}

	store := ctx.KVStore(k.storeKey)
	for _, signer := range signers {
		store.Delete(types.SignerKey(signer))
	}

	k.Logger(ctx).Info("removed oracle signers", "caller", caller.Hex(), "count", len(signers))
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSignersRemoved,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.Hex()),
			sdk.NewAttribute(types.AttributeKeySigners, joinAddresses(signers)),
		),
	)

	return nil
}

// GetSigners returns every authorized oracle signer, in ascending address order.
func (k Keeper) GetSigners(ctx sdk.Context) []common.Address {
	return k.collectAddresses(ctx, types.SignerKeyPrefix)
}

// GetThreshold returns the current quorum threshold. It is read at
// verification time, never cached.
func (k Keeper) GetThreshold(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(types.ThresholdKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// File sets a named module parameter. Only "threshold" is recognized;
// restricted to administrators.
func (k Keeper) File(ctx sdk.Context, caller common.Address, what string, value uint64) error {
	if !k.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotAuthorized, "caller %s", caller)
	}
	if what != types.ParamThreshold {
		return errorsmod.Wrapf(types.ErrUnrecognizedParameter, "%q", what)
	}

	k.setThreshold(ctx, value)

	k.Logger(ctx).Info("filed parameter", "caller", caller.Hex(), "what", what, "value", value)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFile,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.Hex()),
			sdk.NewAttribute(types.AttributeKeyWhat, what),
			sdk.NewAttribute(types.AttributeKeyValue, strconv.FormatUint(value, 10)),
		),
	)

	return nil
}

func (k Keeper) setSigner(ctx sdk.Context, addr common.Address) {
	ctx.KVStore(k.storeKey).Set(types.SignerKey(addr), []byte{1})
}

func (k Keeper) setThreshold(ctx sdk.Context, value uint64) {
	ctx.KVStore(k.storeKey).Set(types.ThresholdKey, sdk.Uint64ToBigEndian(value))
}

func joinAddresses(addrs []common.Address) string {
	hexes := make([]string, len(addrs))
	for i, addr := range addrs {
		hexes[i] = addr.Hex()
	}
	return strings.Join(hexes, ",")
}
