package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// FaucetNetwork is the only network the faucet dispenses on.
const FaucetNetwork = "goerli"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// PublicKey is the hex encoded ed25519 key of the Discord application.
	PublicKey string `env:"PUBLIC_KEY"`
	// SignatureMaxAge bounds how old a signed timestamp may be. Zero disables the check.
	SignatureMaxAge      time.Duration `env:"SIGNATURE_MAX_AGE"`
	ApplicationID        string        `env:"APPLICATION_ID"`
	DiscordAPIURL        string        `env:"DISCORD_API_URL"`
	DeferFaucetResponses bool          `env:"DEFER_FAUCET_RESPONSES"`

	FaucetPrivateKey       string         `env:"FAUCET_PRIVATE_KEY"`
	GoerliRPCURL           string         `env:"GOERLI_RPC_URL"`
	ExplorerURL            string         `env:"EXPLORER_URL"`
	PaymentTokenAddress    common.Address `env:"MOCK_PAYMENT_TOKEN_ADDRESS"`
	CollateralTokenAddress common.Address `env:"MOCK_BIDDING_TOKEN_ADDRESS"`
	PaymentTokenSymbol     string         `env:"PAYMENT_TOKEN_SYMBOL"`
	CollateralTokenSymbol  string         `env:"COLLATERAL_TOKEN_SYMBOL"`
}

// RPCURLs maps each supported network to its JSON-RPC endpoint.
func (s *Settings) RPCURLs() map[string]string {
	return map[string]string{
		FaucetNetwork: s.GoerliRPCURL,
	}
}
