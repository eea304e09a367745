package faucet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/lotus-labs/faucet-bot/internal/config"
	"github.com/rs/zerolog"
)

// TokenRole names which of the two faucet tokens a transfer moved.
type TokenRole string

const (
	TokenRolePayment    TokenRole = "payment"
	TokenRoleCollateral TokenRole = "collateral"
)

const (
	dripUnits          = 1_000_000
	paymentDecimals    = 6
	collateralDecimals = 18
)

var (
	// PaymentAmount is 1,000,000 payment tokens in base units.
	PaymentAmount = tokenUnits(dripUnits, paymentDecimals)
	// CollateralAmount is 1,000,000 collateral tokens in base units.
	CollateralAmount = tokenUnits(dripUnits, collateralDecimals)
)

// TokenSigner submits ERC-20 transfers from the faucet account.
type TokenSigner interface {
	Transfer(ctx context.Context, token common.Address, to common.Address, amount *big.Int) (common.Hash, error)
	Close()
}

// SignerFactory binds the faucet key to an RPC endpoint.
type SignerFactory interface {
	NewSigner(ctx context.Context, rpcURL string, key *ecdsa.PrivateKey) (TokenSigner, error)
}

// TransferOutcome is a submitted token transfer.
type TransferOutcome struct {
	Role   TokenRole
	Token  common.Address
	Amount *big.Int
	TxHash common.Hash
}

// Dispatcher sends the payment and collateral tokens for validated requests.
type Dispatcher struct {
	rpcURLs         map[string]string
	key             *ecdsa.PrivateKey
	paymentToken    common.Address
	collateralToken common.Address
	signers         SignerFactory
}

// NewDispatcher creates a Dispatcher. A missing private key is reported per request,
// a malformed one fails here.
func NewDispatcher(settings *config.Settings, signers SignerFactory) (*Dispatcher, error) {
	d := &Dispatcher{
		rpcURLs:         settings.RPCURLs(),
		paymentToken:    settings.PaymentTokenAddress,
		collateralToken: settings.CollateralTokenAddress,
		signers:         signers,
	}
	if keyHex := strings.TrimPrefix(strings.TrimSpace(settings.FaucetPrivateKey), "0x"); keyHex != "" {
		key, err := crypto.HexToECDSA(keyHex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse faucet private key: %w", err)
		}
		d.key = key
	}
	return d, nil
}

// Dispense sends the payment transfer and then the collateral transfer to the recipient.
// Transfers are not retried and a sent payment transfer is not undone when the
// collateral transfer fails. Cancelling ctx does not abort a transfer.
func (d *Dispatcher) Dispense(ctx context.Context, req Request) ([]TransferOutcome, error) {
	rpcURL, ok := d.rpcURLs[req.Network]
	if !ok {
		return nil, ErrUnsupportedNetwork
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("network %s: %w", req.Network, ErrMissingRPCURL)
	}
	if d.key == nil {
		return nil, ErrMissingSignerKey
	}

	ctx = context.WithoutCancel(ctx)
	logger := zerolog.Ctx(ctx).With().
		Str("recipient", req.Recipient.Hex()).
		Str("network", req.Network).
		Str("requester", req.RequesterID).
		Logger()

	signer, err := d.signers.NewSigner(ctx, rpcURL, d.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}
	defer signer.Close()

	transfers := []TransferOutcome{
		{Role: TokenRolePayment, Token: d.paymentToken, Amount: new(big.Int).Set(PaymentAmount)},
		{Role: TokenRoleCollateral, Token: d.collateralToken, Amount: new(big.Int).Set(CollateralAmount)},
	}
	for i := range transfers {
		t := &transfers[i]
		hash, err := signer.Transfer(ctx, t.Token, req.Recipient, t.Amount)
		if err != nil {
			transfersTotal.WithLabelValues(string(t.Role), statusFailed).Inc()
			logger.Error().Err(err).Str("role", string(t.Role)).Int("sent", i).Msg("Token transfer failed")
			return nil, fmt.Errorf("failed to transfer %s token: %w", t.Role, err)
		}
		transfersTotal.WithLabelValues(string(t.Role), statusSent).Inc()
		logger.Info().Str("role", string(t.Role)).Str("tx", hash.Hex()).Msg("Token transfer sent")
		t.TxHash = hash
	}
	return transfers, nil
}

func tokenUnits(whole, decimals int64) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(decimals), nil)
	return new(big.Int).Mul(big.NewInt(whole), scale)
}
