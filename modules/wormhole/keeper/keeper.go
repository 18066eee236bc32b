package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/makerdao/dss-wormhole/modules/wormhole/types"
)

// Keeper gates mint requests on a quorum of oracle attestations. All
// authorization state (administrator roster, signer set, threshold) lives in
// its store and is mutated only through the administrative entry points.
type Keeper struct {
	storeKey   storetypes.StoreKey
	settlement types.SettlementKeeper
}

// NewKeeper creates a new wormhole oracle auth Keeper instance.
func NewKeeper(storeKey storetypes.StoreKey, settlement types.SettlementKeeper) *Keeper {
	if settlement == nil {
		panic("settlement keeper cannot be nil")
	}

	return &Keeper{
		storeKey:   storeKey,
		settlement: settlement,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// IsAdmin reports whether addr holds administrator status.
func (k Keeper) IsAdmin(ctx sdk.Context, addr common.Address) bool {
	return ctx.KVStore(k.storeKey).Has(types.AdminKey(addr))
}

// Rely grants administrator status to addr. Restricted to administrators.
func (k Keeper) Rely(ctx sdk.Context, caller, addr common.Address) error {
	if !k.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotAuthorized, "caller %s", caller)
	}

	k.setAdmin(ctx, addr)

	k.Logger(ctx).Info("granted administrator status", "caller", caller.Hex(), "admin", addr.Hex())
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRely,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.Hex()),
			sdk.NewAttribute(types.AttributeKeyAdmin, addr.Hex()),
		),
	)

	return nil
}

// Deny revokes administrator status from addr. Restricted to administrators.
func (k Keeper) Deny(ctx sdk.Context, caller, addr common.Address) error {
	if !k.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotAuthorized, "caller %s", caller)
	}

	ctx.KVStore(k.storeKey).Delete(types.AdminKey(addr))

	k.Logger(ctx).Info("revoked administrator status", "caller", caller.Hex(), "admin", addr.Hex())
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeny,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.Hex()),
			sdk.NewAttribute(types.AttributeKeyAdmin, addr.Hex()),
		),
	)

	return nil
}

// GetAdmins returns every administrator, in ascending address order.
func (k Keeper) GetAdmins(ctx sdk.Context) []common.Address {
	return k.collectAddresses(ctx, types.AdminKeyPrefix)
}

func (k Keeper) setAdmin(ctx sdk.Context, addr common.Address) {
	ctx.KVStore(k.storeKey).Set(types.AdminKey(addr), []byte{1})
}

func (k Keeper) collectAddresses(ctx sdk.Context, prefix []byte) []common.Address {
	var addrs []common.Address

	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), prefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		addrs = append(addrs, common.BytesToAddress(iterator.Key()[len(prefix):]))
	}

	return addrs
}
