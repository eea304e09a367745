package faucet

import "errors"

const (
	// ErrInvalidAddress is returned when the recipient is not a valid account address.
	ErrInvalidAddress = UserError("🍂 I couldn't verify that address.")
	// ErrUnsupportedNetwork is returned for any network other than the faucet network.
	ErrUnsupportedNetwork = UserError("🍂 Only the Görli testnet is supported.")
	// ErrMissingIdentity is returned when the invoking member cannot be identified.
	ErrMissingIdentity = UserError("🍂 I couldn't tell who asked for tokens.")

	// ErrMissingSignerKey is returned when no faucet private key is configured.
	ErrMissingSignerKey = constError("faucet private key not configured")
	// ErrMissingRPCURL is returned when the faucet network has no RPC endpoint configured.
	ErrMissingRPCURL = constError("rpc url not configured")
)

// UserError is a request problem whose message is shown to the requester verbatim.
type UserError string

func (e UserError) Error() string {
	return string(e)
}

// AsUserError returns the user facing error wrapped in err, if any.
func AsUserError(err error) (UserError, bool) {
	var userErr UserError
	if errors.As(err, &userErr) {
		return userErr, true
	}
	return "", false
}

type constError string

func (e constError) Error() string {
	return string(e)
}
