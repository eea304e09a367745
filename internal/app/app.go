package app

import (
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/lotus-labs/faucet-bot/internal/clients/chain"
	"github.com/lotus-labs/faucet-bot/internal/clients/discord"
	"github.com/lotus-labs/faucet-bot/internal/config"
	"github.com/lotus-labs/faucet-bot/internal/controllers/webhook"
	"github.com/lotus-labs/faucet-bot/internal/faucet"
	"github.com/lotus-labs/faucet-bot/internal/interactions"
	"github.com/rs/zerolog"
)

// CreateServers builds the faucet dependencies from settings and returns the web app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	verifier, err := interactions.NewVerifier(settings.PublicKey, settings.SignatureMaxAge)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction verifier: %w", err)
	}

	dispatcher, err := faucet.NewDispatcher(settings, chain.NewSignerFactory(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create faucet dispatcher: %w", err)
	}

	discordClient, err := discord.New(settings.DiscordAPIURL, settings.ApplicationID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord client: %w", err)
	}

	controller := webhook.NewInteractionController(dispatcher, discordClient, webhook.NewComposer(settings), settings.DeferFaucetResponses)
	return CreateFiberApp(logger, verifier, controller), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, verifier webhook.InteractionVerifier, controller *webhook.InteractionController) *fiber.App {
	logger.Info().Msg("Starting Faucet Bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          webhook.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Faucet Bot!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	logger.Info().Msg("Registering routes...")
	signed := webhook.SignatureMiddleware(verifier)
	app.Post("/api/interactions", signed, controller.HandleInteraction)
	// Legacy path the bot was first registered under.
	app.Post("/api/lotus", signed, controller.HandleInteraction)

	return app
}
