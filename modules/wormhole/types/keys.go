package types

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	// ModuleName defines the wormhole oracle auth module name
	ModuleName = "wormhole"

	// StoreKey is the store key string for the wormhole module
	StoreKey = ModuleName

	// RouterKey is the message route for the wormhole module
	RouterKey = ModuleName

	// ParamThreshold is the sole parameter name recognized by File
	ParamThreshold = "threshold"
)

var (
	// AdminKeyPrefix defines the key prefix for the administrator roster
	AdminKeyPrefix = []byte{0x01}
	// SignerKeyPrefix defines the key prefix for the authorized oracle signer set
	SignerKeyPrefix = []byte{0x02}
	// ThresholdKey defines the key under which the quorum threshold is stored
	ThresholdKey = []byte{0x03}
)

// AdminKey returns the store key recording administrator status for addr.
func AdminKey(addr common.Address) []byte {
	return append(AdminKeyPrefix, addr.Bytes()...)
}

// SignerKey returns the store key recording oracle signer status for addr.
func SignerKey(addr common.Address) []byte {
	return append(SignerKeyPrefix, addr.Bytes()...)
}
