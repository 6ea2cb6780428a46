package infra

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"

	"exodus/internal/config"
)

// NodeRPC is the slice of the Bitcoin Core wallet RPC this application
// consumes. Constructed once at startup and injected so tests can substitute
// a fake.
type NodeRPC interface {
	GenerateAddress() (string, error)
	AddressBalance(address string) (btcutil.Amount, error)
	WalletBalance() (btcutil.Amount, error)
	Send(address string, amount btcutil.Amount) (string, error)
}

type bitcoinNode struct {
	rpc    *rpcclient.Client
	params *chaincfg.Params
}

func NewBitcoinNode(cfg config.BitcoinConfig) (NodeRPC, error) {
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         cfg.RPCHost,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPassword,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("bitcoin rpc client: %w", err)
	}

	return &bitcoinNode{
		rpc:    client,
		params: networkParams(cfg.Network),
	}, nil
}

func networkParams(network string) *chaincfg.Params {
	switch network {
	case "mainnet":
		return &chaincfg.MainNetParams
	case "regtest":
		return &chaincfg.RegressionNetParams
	default:
		return &chaincfg.TestNet3Params
	}
}

func (b *bitcoinNode) GenerateAddress() (string, error) {
	addr, err := b.rpc.GetNewAddress("")
	if err != nil {
		return "", fmt.Errorf("getnewaddress: %w", err)
	}
	if addr == nil || addr.EncodeAddress() == "" {
		return "", errors.New("node returned no address")
	}
	return addr.EncodeAddress(), nil
}

// AddressBalance sums every unspent output the node currently attributes to
// the address, from zero confirmations up. The node walks its whole unspent
// set on each call, so cost scales with that set, not with the address.
func (b *bitcoinNode) AddressBalance(address string) (btcutil.Amount, error) {
	addr, err := btcutil.DecodeAddress(address, b.params)
	if err != nil {
		return 0, fmt.Errorf("decode address %q: %w", address, err)
	}

	unspent, err := b.rpc.ListUnspentMinMaxAddresses(0, 9999999, []btcutil.Address{addr})
	if err != nil {
		return 0, fmt.Errorf("listunspent: %w", err)
	}

	var total float64
	for _, u := range unspent {
		total += u.Amount
	}
	return btcutil.NewAmount(total)
}

func (b *bitcoinNode) WalletBalance() (btcutil.Amount, error) {
	balance, err := b.rpc.GetBalance("*")
	if err != nil {
		return 0, fmt.Errorf("getbalance: %w", err)
	}
	return balance, nil
}

func (b *bitcoinNode) Send(address string, amount btcutil.Amount) (string, error) {
	addr, err := btcutil.DecodeAddress(address, b.params)
	if err != nil {
		return "", fmt.Errorf("decode address %q: %w", address, err)
	}

	hash, err := b.rpc.SendToAddress(addr, amount)
	if err != nil {
		return "", fmt.Errorf("sendtoaddress: %w", err)
	}
	return hash.String(), nil
}
