package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/makerdao/dss-wormhole/modules/wormhole/types"
)

// RequestTransfer authenticates a cross-domain transfer attestation and
// forwards the mint request to the settlement join. The caller must be the
// operator designated in the GUID, and the signature bundle must reach the
// current quorum threshold over the GUID's sign hash. Settlement failures
// propagate unchanged; the request is single-shot and resubmission is the
// caller's concern.
func (k Keeper) RequestTransfer(
	ctx sdk.Context,
	caller common.Address,
	guid types.WormholeGUID,
	signatures []byte,
	maxFeePercentage sdkmath.Int,
	operatorFee sdkmath.Int,
) (postFeeAmount, totalFee sdkmath.Int, err error) {
	if err := guid.ValidateBasic(); err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	if guid.OperatorAddress() != caller {
		return sdkmath.Int{}, sdkmath.Int{}, errorsmod.Wrapf(types.ErrCallerNotOperator, "caller %s, operator %s", caller.Hex(), guid.OperatorAddress().Hex())
	}

	signHash, err := guid.SignHash()
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	threshold := k.GetThreshold(ctx)
	valid, err := k.IsValid(ctx, signHash, signatures, threshold)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	if !valid {
		return sdkmath.Int{}, sdkmath.Int{}, errorsmod.Wrapf(types.ErrQuorumNotReached, "bundle holds %d signatures, threshold is %d", len(signatures)/types.SignatureLength, threshold)
	}

	postFeeAmount, totalFee, err = k.settlement.RequestMint(ctx, guid, maxFeePercentage, operatorFee)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	k.Logger(ctx).Info("authorized mint request",
		"operator", guid.OperatorAddress().Hex(),
		"source_domain", guid.SourceDomain.Hex(),
		"target_domain", guid.TargetDomain.Hex(),
		"amount", guid.Amount.String(),
	)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestTransfer,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.Hex()),
			sdk.NewAttribute(types.AttributeKeySourceDomain, guid.SourceDomain.Hex()),
			sdk.NewAttribute(types.AttributeKeyTargetDomain, guid.TargetDomain.Hex()),
			sdk.NewAttribute(types.AttributeKeyReceiver, guid.ReceiverAddress().Hex()),
			sdk.NewAttribute(types.AttributeKeyOperator, guid.OperatorAddress().Hex()),
			sdk.NewAttribute(types.AttributeKeyAmount, guid.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyNonce, guid.Nonce.String()),
			sdk.NewAttribute(types.AttributeKeyMaxFeePercentage, maxFeePercentage.String()),
			sdk.NewAttribute(types.AttributeKeyOperatorFee, operatorFee.String()),
		),
	)

	return postFeeAmount, totalFee, nil
}
