package webhook

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/lotus-labs/faucet-bot/internal/faucet"
	"github.com/lotus-labs/faucet-bot/internal/interactions"
	"github.com/rs/zerolog"
)

const faucetCommand = "faucet"

const (
	ErrUnknownType    = constError("unknown interaction type")
	ErrUnknownCommand = constError("unknown command")
)

type FaucetDispatcher interface {
	Dispense(ctx context.Context, req faucet.Request) ([]faucet.TransferOutcome, error)
}

type FollowUpSender interface {
	EditOriginal(ctx context.Context, token string, msg interactions.FollowUp) error
}

// InteractionController answers Discord interactions.
type InteractionController struct {
	dispatcher     FaucetDispatcher
	followUps      FollowUpSender
	composer       *Composer
	deferResponses bool
}

// NewInteractionController creates a new InteractionController.
// With deferResponses set, faucet commands are acknowledged right away and the
// result is delivered by editing the original response.
func NewInteractionController(dispatcher FaucetDispatcher, followUps FollowUpSender, composer *Composer, deferResponses bool) *InteractionController {
	return &InteractionController{
		dispatcher:     dispatcher,
		followUps:      followUps,
		composer:       composer,
		deferResponses: deferResponses,
	}
}

type interactionHandler func(c *fiber.Ctx, interaction *interactions.Interaction) error

// HandleInteraction routes a verified interaction to its handler.
func (ic *InteractionController) HandleInteraction(c *fiber.Ctx) error {
	interaction, err := GetInteraction(c)
	if err != nil {
		return fmt.Errorf("failed to get interaction: %w", err)
	}

	handler, err := ic.route(interaction)
	if err != nil {
		msg := unknownTypeMsg
		if errors.Is(err, ErrUnknownCommand) {
			msg = unknownCommandMsg
		}
		return richerrors.Error{
			ExternalMsg: msg,
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	return handler(c, interaction)
}

func (ic *InteractionController) route(interaction *interactions.Interaction) (interactionHandler, error) {
	switch interaction.Type {
	case interactions.InteractionTypePing:
		return ic.handlePing, nil
	case interactions.InteractionTypeApplicationCommand:
		if interaction.CommandName() == faucetCommand {
			return ic.handleFaucet, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, interaction.CommandName())
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, interaction.Type)
	}
}

func (ic *InteractionController) handlePing(c *fiber.Ctx, _ *interactions.Interaction) error {
	zerolog.Ctx(c.UserContext()).Debug().Msg("Handling ping")
	return c.JSON(pongResponse())
}

func (ic *InteractionController) handleFaucet(c *fiber.Ctx, interaction *interactions.Interaction) error {
	req, err := faucet.ValidateRequest(interaction)
	if err != nil {
		return faucetError(err)
	}

	if ic.deferResponses {
		ctx := context.WithoutCancel(c.UserContext())
		go ic.dispenseAndFollowUp(ctx, interaction.Token, req)
		return c.JSON(deferredResponse())
	}

	start := time.Now()
	outcomes, err := ic.dispatcher.Dispense(c.UserContext(), req)
	if err != nil {
		return faucetError(err)
	}
	zerolog.Ctx(c.UserContext()).Info().
		Str("requester", req.RequesterID).
		Dur("duration", time.Since(start)).
		Msg("Faucet request fulfilled")
	return c.JSON(messageResponse(ic.composer.FaucetMessage(req, outcomes)))
}

// dispenseAndFollowUp completes a deferred faucet command. The HTTP response
// has already been sent, so the outcome can only be reported by editing it.
// It runs on its own goroutine and must not let a panic escape.
func (ic *InteractionController) dispenseAndFollowUp(ctx context.Context, token string, req faucet.Request) {
	logger := zerolog.Ctx(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).
				Str("requester", req.RequesterID).Msg("Recovered from panic in deferred faucet request")
		}
	}()

	content := ic.deferredContent(ctx, req)
	if err := ic.followUps.EditOriginal(ctx, token, interactions.FollowUp{Content: content}); err != nil {
		logger.Error().Err(err).Str("requester", req.RequesterID).Msg("Failed to send follow-up")
	}
}

// deferredContent dispenses and renders the follow-up text. A dispatcher panic
// is reported to the requester like any other failure.
func (ic *InteractionController) deferredContent(ctx context.Context, req faucet.Request) (content string) {
	logger := zerolog.Ctx(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).
				Str("requester", req.RequesterID).Msg("Recovered from panic while dispensing")
			content = dispatchFailedMsg
		}
	}()

	outcomes, err := ic.dispatcher.Dispense(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("requester", req.RequesterID).Msg("Deferred faucet request failed")
		return failureContent(err)
	}
	return ic.composer.FaucetMessage(req, outcomes)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
