package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/lotus-labs/faucet-bot/internal/faucet"
	"github.com/patrickmn/go-cache"
)

// DialFunc opens a JSON-RPC connection to rawURL.
type DialFunc func(ctx context.Context, rawURL string) (*rpc.Client, error)

// SignerFactory dials RPC endpoints and binds the faucet key to them.
type SignerFactory struct {
	dial     DialFunc
	chainIDs *cache.Cache
}

// NewSignerFactory creates a SignerFactory. A nil dial uses rpc.DialContext.
func NewSignerFactory(dial DialFunc) *SignerFactory {
	if dial == nil {
		dial = rpc.DialContext
	}
	return &SignerFactory{
		dial:     dial,
		chainIDs: cache.New(cache.NoExpiration, 0),
	}
}

// NewSigner connects to rpcURL and returns a signer for key on that chain.
func (f *SignerFactory) NewSigner(ctx context.Context, rpcURL string, key *ecdsa.PrivateKey) (faucet.TokenSigner, error) {
	rpcClient, err := f.dial(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc: %w", err)
	}
	client := ethclient.NewClient(rpcClient)

	chainID, err := f.chainID(ctx, rpcURL, client)
	if err != nil {
		client.Close()
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	return &Signer{client: client, opts: opts}, nil
}

// chainID is resolved once per endpoint.
func (f *SignerFactory) chainID(ctx context.Context, rpcURL string, client *ethclient.Client) (*big.Int, error) {
	if cached, found := f.chainIDs.Get(rpcURL); found {
		return new(big.Int).Set(cached.(*big.Int)), nil
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	f.chainIDs.Set(rpcURL, new(big.Int).Set(chainID), cache.NoExpiration)
	return chainID, nil
}

// Signer sends ERC-20 transfers signed by the faucet key.
type Signer struct {
	client *ethclient.Client
	opts   *bind.TransactOpts
}

// Transfer calls transfer(to, amount) on the token contract and returns the transaction hash.
// It does not wait for the transaction to be mined.
func (s *Signer) Transfer(ctx context.Context, token common.Address, to common.Address, amount *big.Int) (common.Hash, error) {
	contract := bind.NewBoundContract(token, erc20ABI, s.client, s.client, s.client)
	opts := *s.opts
	opts.Context = ctx
	tx, err := contract.Transact(&opts, transferMethod, to, amount)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to call transfer on %s: %w", token.Hex(), err)
	}
	return tx.Hash(), nil
}

// Close releases the RPC connection.
func (s *Signer) Close() {
	s.client.Close()
}
