package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/makerdao/dss-wormhole/modules/wormhole/types"
)

// InitGenesis initializes the wormhole module state. The genesis admin grant
// is the one-time bootstrap of the administrator roster; every later grant
// goes through Rely.
func (k Keeper) InitGenesis(ctx sdk.Context, genesisState types.GenesisState) {
	if err := genesisState.Validate(); err != nil {
		panic(err)
	}

	for _, admin := range genesisState.Admins {
		k.setAdmin(ctx, common.HexToAddress(admin))
	}
	for _, signer := range genesisState.Signers {
		k.setSigner(ctx, common.HexToAddress(signer))
	}
	k.setThreshold(ctx, genesisState.Threshold)
}

// ExportGenesis exports the wormhole module's full authorization state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	admins := k.GetAdmins(ctx)
	signers := k.GetSigners(ctx)

	adminHexes := make([]string, len(admins))
	for i, addr := range admins {
		adminHexes[i] = addr.Hex()
	}
	signerHexes := make([]string, len(signers))
	for i, addr := range signers {
		signerHexes[i] = addr.Hex()
	}

	return types.NewGenesisState(adminHexes, signerHexes, k.GetThreshold(ctx))
}
