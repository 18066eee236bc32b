package types

// Wormhole oracle auth events
const (
	EventTypeRely            = "rely"
	EventTypeDeny            = "deny"
	EventTypeFile            = "file"
	EventTypeSignersAdded    = "signers_added"
	EventTypeSignersRemoved  = "signers_removed"
	EventTypeRequestTransfer = "request_transfer"

	AttributeKeyCaller           = "caller"
	AttributeKeyAdmin            = "admin"
	AttributeKeyWhat             = "what"
	AttributeKeyValue            = "value"
	AttributeKeySigners          = "signers"
	AttributeKeySourceDomain     = "source_domain"
	AttributeKeyTargetDomain     = "target_domain"
	AttributeKeyReceiver         = "receiver"
	AttributeKeyOperator         = "operator"
	AttributeKeyAmount           = "amount"
	AttributeKeyNonce            = "nonce"
	AttributeKeyMaxFeePercentage = "max_fee_percentage"
	AttributeKeyOperatorFee      = "operator_fee"
)
