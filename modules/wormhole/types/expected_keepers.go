package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SettlementKeeper defines the expected settlement join keeper. It moves the
// attested value once a quorum of oracles has approved the transfer, and it
// owns replay protection for previously settled GUIDs.
type SettlementKeeper interface {
	RequestMint(
		ctx sdk.Context,
		guid WormholeGUID,
		maxFeePercentage sdkmath.Int,
		operatorFee sdkmath.Int,
	) (postFeeAmount sdkmath.Int, totalFee sdkmath.Int, err error)
}
