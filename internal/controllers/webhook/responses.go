package webhook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"
	"github.com/lotus-labs/faucet-bot/internal/config"
	"github.com/lotus-labs/faucet-bot/internal/faucet"
	"github.com/lotus-labs/faucet-bot/internal/interactions"
	"github.com/rs/zerolog"
)

const (
	defaultTokenSymbol = "💰"
	defaultExplorerURL = "https://goerli.etherscan.io"

	unauthorizedMsg   = "Bad request signature"
	unknownTypeMsg    = "Unknown Type"
	unknownCommandMsg = "Unknown Command"
	dispatchFailedMsg = "🍂 Something went wrong while sending your tokens. Please try again later."
	internalErrorMsg  = "Internal error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is safe to show to the caller.
	Error string `json:"error"`
}

// Composer renders the messages sent back to Discord.
type Composer struct {
	paymentSymbol    string
	collateralSymbol string
	explorerURL      string
}

// NewComposer creates a Composer from the token symbols and block explorer in settings.
func NewComposer(settings *config.Settings) *Composer {
	c := &Composer{
		paymentSymbol:    settings.PaymentTokenSymbol,
		collateralSymbol: settings.CollateralTokenSymbol,
		explorerURL:      strings.TrimRight(settings.ExplorerURL, "/"),
	}
	if c.paymentSymbol == "" {
		c.paymentSymbol = defaultTokenSymbol
	}
	if c.collateralSymbol == "" {
		c.collateralSymbol = defaultTokenSymbol
	}
	if c.explorerURL == "" {
		c.explorerURL = defaultExplorerURL
	}
	return c
}

// FaucetMessage is the reply to a fulfilled faucet command.
func (c *Composer) FaucetMessage(req faucet.Request, outcomes []faucet.TransferOutcome) string {
	var paymentTx, collateralTx common.Hash
	for _, outcome := range outcomes {
		switch outcome.Role {
		case faucet.TokenRolePayment:
			paymentTx = outcome.TxHash
		case faucet.TokenRoleCollateral:
			collateralTx = outcome.TxHash
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🌳 GM, <@%s>. We've dripped some tokens into your wallet at %s on the %s network. Bright growing.\n\n",
		req.RequesterID, displayAddress(req), req.Network)
	fmt.Fprintf(&sb, "Payment Token (%s): %s\n", c.paymentSymbol, c.txLink(paymentTx))
	fmt.Fprintf(&sb, "Collateral Token (%s): %s", c.collateralSymbol, c.txLink(collateralTx))
	return sb.String()
}

func displayAddress(req faucet.Request) string {
	if req.Address != "" {
		return req.Address
	}
	return req.Recipient.Hex()
}

// txLink is wrapped in angle brackets so Discord does not embed a preview.
func (c *Composer) txLink(hash common.Hash) string {
	return "<" + c.explorerURL + "/tx/" + hash.Hex() + ">"
}

func pongResponse() interactions.Response {
	return interactions.Response{Type: interactions.ResponsePong}
}

func messageResponse(content string) interactions.Response {
	return interactions.Response{
		Type: interactions.ResponseChannelMessageWithSource,
		Data: &interactions.MessageData{Content: content},
	}
}

// deferredResponse acknowledges an interaction whose content arrives later through a follow-up.
// No other response may be written for the request after it.
func deferredResponse() interactions.Response {
	return interactions.Response{Type: interactions.ResponseDeferredChannelMessageWithSource}
}

// faucetError maps validation failures to 400 with their message and
// everything else to a generic 500.
func faucetError(err error) error {
	if userErr, ok := faucet.AsUserError(err); ok {
		return richerrors.Error{
			ExternalMsg: userErr.Error(),
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	return richerrors.Error{
		ExternalMsg: dispatchFailedMsg,
		Err:         err,
		Code:        fiber.StatusInternalServerError,
	}
}

// failureContent is the follow-up text for a failed deferred request.
func failureContent(err error) string {
	if userErr, ok := faucet.AsUserError(err); ok {
		return userErr.Error()
	}
	return dispatchFailedMsg
}

// ErrorHandler writes the response for every error returned by a handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := internalErrorMsg

	var fiberErr *fiber.Error
	if richErr, ok := richerrors.AsRichError(err); ok {
		if richErr.Code != 0 {
			code = richErr.Code
		}
		if richErr.ExternalMsg != "" {
			message = richErr.ExternalMsg
		}
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	logger := zerolog.Ctx(c.UserContext())
	event := logger.Warn()
	if code >= fiber.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("httpStatusCode", code).Str("path", c.Path()).Msg("Request failed")

	return c.Status(code).JSON(ErrorResponse{Error: message})
}
