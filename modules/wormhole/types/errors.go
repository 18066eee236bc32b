package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Wormhole oracle auth sentinel errors
var (
	ErrNotAuthorized              = errorsmod.Register(ModuleName, 2, "caller is not an administrator")
	ErrCallerNotOperator          = errorsmod.Register(ModuleName, 3, "caller is not the designated operator")
	ErrMalformedSignatureBundle   = errorsmod.Register(ModuleName, 4, "malformed signature bundle")
	ErrInvalidRecoveryID          = errorsmod.Register(ModuleName, 5, "invalid signature recovery id")
	ErrBadSignatureOrder          = errorsmod.Register(ModuleName, 6, "signatures not in strict ascending signer order")
	ErrInsufficientSignatureCount = errorsmod.Register(ModuleName, 7, "insufficient signature count")
	ErrQuorumNotReached           = errorsmod.Register(ModuleName, 8, "oracle quorum not reached")
	ErrUnrecognizedParameter      = errorsmod.Register(ModuleName, 9, "unrecognized parameter")
	ErrInvalidGUID                = errorsmod.Register(ModuleName, 10, "invalid wormhole GUID")
	ErrInvalidGenesis             = errorsmod.Register(ModuleName, 11, "invalid genesis state")
)
