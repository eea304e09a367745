package webhook

import (
	"fmt"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/lotus-labs/faucet-bot/internal/interactions"
)

const (
	// InteractionKey is the Fiber context key for the verified interaction.
	InteractionKey = "verified_interaction"
)

// InteractionVerifier authenticates a raw interaction body.
type InteractionVerifier interface {
	Verify(body []byte, signatureHex, timestamp string, now time.Time) (*interactions.Interaction, error)
}

// SignatureMiddleware verifies the ed25519 signature of the raw request body
// and stores the decoded interaction in the request context.
// Nothing after this middleware runs for requests that fail verification.
func SignatureMiddleware(verifier InteractionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		interaction, err := verifier.Verify(
			c.Body(),
			c.Get(interactions.SignatureHeader),
			c.Get(interactions.TimestampHeader),
			time.Now(),
		)
		if err != nil {
			if !interactions.IsAuthError(err) {
				return fmt.Errorf("failed to verify interaction: %w", err)
			}
			return richerrors.Error{
				ExternalMsg: unauthorizedMsg,
				Err:         err,
				Code:        fiber.StatusUnauthorized,
			}
		}
		c.Locals(InteractionKey, interaction)
		return c.Next()
	}
}

// GetInteraction returns the verified interaction from the context.
func GetInteraction(c *fiber.Ctx) (*interactions.Interaction, error) {
	localValue := c.Locals(InteractionKey)
	if localValue == nil {
		return nil, fmt.Errorf("no value found for interaction key in context: %s", InteractionKey)
	}
	interaction, ok := localValue.(*interactions.Interaction)
	if !ok {
		return nil, fmt.Errorf("unexpected type for interaction key in context: %T", localValue)
	}
	return interaction, nil
}
