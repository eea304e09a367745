package interactions

import "errors"

const (
	// ErrPublicKeyNotConfigured is returned when no application public key was configured.
	ErrPublicKeyNotConfigured = constError("public key not configured")
	// ErrInvalidSignature is returned when the signature headers do not verify the body.
	ErrInvalidSignature = constError("invalid request signature")
	// ErrStaleTimestamp is returned when the signed timestamp is outside the accepted window.
	ErrStaleTimestamp = constError("request timestamp outside accepted window")
	// ErrMalformedInteraction is returned when a verified body is not an interaction.
	ErrMalformedInteraction = constError("malformed interaction payload")
)

// IsAuthError reports whether err means the request could not be authenticated.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrPublicKeyNotConfigured) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrStaleTimestamp) ||
		errors.Is(err, ErrMalformedInteraction)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
