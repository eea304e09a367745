package faucet

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lotus-labs/faucet-bot/internal/config"
	"github.com/lotus-labs/faucet-bot/internal/interactions"
)

const (
	recipientOption = 0
	networkOption   = 1
)

// Request is a validated faucet command.
type Request struct {
	Recipient   common.Address
	// Address is the recipient exactly as the requester typed it.
	Address     string
	Network     string
	RequesterID string
}

// ValidateRequest extracts the recipient, network and requester from a faucet command.
// The checks run in that order and the first failure is returned.
// Option values are compared as sent, surrounding whitespace included.
func ValidateRequest(ix *interactions.Interaction) (Request, error) {
	address := stringOption(ix, recipientOption)
	network := stringOption(ix, networkOption)
	requesterID := ix.RequesterID()

	if !isAddress(address) {
		return Request{}, ErrInvalidAddress
	}
	if network != config.FaucetNetwork {
		return Request{}, ErrUnsupportedNetwork
	}
	if requesterID == "" {
		return Request{}, ErrMissingIdentity
	}

	return Request{
		Recipient:   common.HexToAddress(address),
		Address:     address,
		Network:     network,
		RequesterID: requesterID,
	}, nil
}

func stringOption(ix *interactions.Interaction, idx int) string {
	opt, ok := ix.Option(idx)
	if !ok {
		return ""
	}
	value, ok := opt.StringValue()
	if !ok {
		return ""
	}
	return value
}

// isAddress accepts 40 hex characters with an optional 0x prefix.
// Mixed case input must carry a valid EIP-55 checksum.
func isAddress(s string) bool {
	if strings.HasPrefix(s, "0X") || !common.IsHexAddress(s) {
		return false
	}
	digits := strings.TrimPrefix(s, "0x")
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return true
	}
	return common.HexToAddress(s).Hex()[2:] == digits
}
