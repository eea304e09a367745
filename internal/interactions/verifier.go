package interactions

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SignatureHeader carries the hex encoded ed25519 signature of timestamp+body.
	SignatureHeader = "X-Signature-Ed25519"
	// TimestampHeader carries the timestamp that was signed together with the body.
	TimestampHeader = "X-Signature-Timestamp"
)

// Verifier authenticates interaction webhooks signed by Discord.
type Verifier struct {
	publicKey ed25519.PublicKey
	maxAge    time.Duration
}

// NewVerifier creates a Verifier for the hex encoded application public key.
// An empty key is accepted so that the process can start, every request is then rejected.
func NewVerifier(publicKeyHex string, maxAge time.Duration) (*Verifier, error) {
	v := &Verifier{maxAge: maxAge}
	publicKeyHex = strings.TrimSpace(publicKeyHex)
	if publicKeyHex == "" {
		return v, nil
	}
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	v.publicKey = ed25519.PublicKey(key)
	return v, nil
}

// Verify checks the signature of the raw body and only then decodes it.
func (v *Verifier) Verify(body []byte, signatureHex, timestamp string, now time.Time) (*Interaction, error) {
	if len(v.publicKey) == 0 {
		return nil, ErrPublicKeyNotConfigured
	}
	if signatureHex == "" || timestamp == "" {
		return nil, fmt.Errorf("missing signature headers: %w", ErrInvalidSignature)
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return nil, fmt.Errorf("undecodable signature: %w", ErrInvalidSignature)
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	if !ed25519.Verify(v.publicKey, msg, sig) {
		return nil, ErrInvalidSignature
	}

	if err := v.checkTimestamp(timestamp, now); err != nil {
		return nil, err
	}

	var interaction Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInteraction, err)
	}
	if interaction.Type == 0 {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedInteraction)
	}
	return &interaction, nil
}

func (v *Verifier) checkTimestamp(timestamp string, now time.Time) error {
	if v.maxAge <= 0 {
		return nil
	}
	secs, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a unix timestamp", ErrStaleTimestamp, timestamp)
	}
	age := now.Sub(time.Unix(secs, 0))
	if age > v.maxAge || age < -v.maxAge {
		return fmt.Errorf("%w: signed %s ago", ErrStaleTimestamp, age)
	}
	return nil
}
