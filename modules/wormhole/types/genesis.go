package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ethereum/go-ethereum/common"
)

// GenesisState holds the full authorization state of the wormhole module:
// the administrator roster, the oracle signer set and the quorum threshold.
type GenesisState struct {
	Admins    []string `json:"admins"`
	Signers   []string `json:"signers"`
	Threshold uint64   `json:"threshold"`
}

// NewGenesisState creates a new wormhole GenesisState instance.
func NewGenesisState(admins, signers []string, threshold uint64) *GenesisState {
	return &GenesisState{
		Admins:    admins,
		Signers:   signers,
		Threshold: threshold,
	}
}

// DefaultGenesisState returns an empty authorization state with no quorum
// requirement; a deployment grants its initial administrator here.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Admins:    []string{},
		Signers:   []string{},
		Threshold: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := validateAddressList(gs.Admins, "admin"); err != nil {
		return err
	}
	return validateAddressList(gs.Signers, "signer")
}

func validateAddressList(addrs []string, kind string) error {
	seen := make(map[common.Address]bool)
	for _, a := range addrs {
		if !common.IsHexAddress(a) {
			return errorsmod.Wrapf(ErrInvalidGenesis, "invalid %s address %q", kind, a)
		}
		addr := common.HexToAddress(a)
		if seen[addr] {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate %s address %s", kind, addr)
		}
		seen[addr] = true
	}
	return nil
}
