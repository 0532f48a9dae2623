// Package x402 checks x402 payment requirements against the USDC address
// directory.
//
// x402 servers advertise the token they accept by network name and
// contract address.  A client that only pays in USDC can use
// VerifyRequirements to refuse requirements naming any other asset.
package x402

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/coinbase/x402/go/pkg/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/selesy/usdc/pkg/api"
	"github.com/selesy/usdc/pkg/chain"
)

// SchemeExact is the only x402 scheme whose asset is an ERC-20 contract
// address.
const SchemeExact = "exact"

// ErrUnknownNetwork is returned for x402 network names with no known
// chain.
var ErrUnknownNetwork = errors.New("unknown x402 network")

// ErrInvalidAsset is returned when the requirements' asset is not an EVM
// address.
var ErrInvalidAsset = errors.New("asset is not a valid address")

// ErrAssetMismatch is returned when the requirements' asset is not the
// USDC contract for the requirements' network.
var ErrAssetMismatch = errors.New("asset is not USDC")

var networks = map[string]chain.Named{
	"ethereum":       chain.Mainnet,
	"sepolia":        chain.Sepolia,
	"base":           chain.Base,
	"base-sepolia":   chain.BaseSepolia,
	"avalanche":      chain.Avalanche,
	"avalanche-fuji": chain.AvalancheFuji,
	"polygon":        chain.Polygon,
	"polygon-amoy":   chain.PolygonAmoy,
	"arbitrum":       chain.Arbitrum,
	"optimism":       chain.Optimism,
}

// Network returns the chain for an x402 network name.
func Network(name string) (chain.Named, error) {
	c, ok := networks[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}

	return c, nil
}

// Asset returns the USDC address the resolver knows for the x402 network.
func Asset(r api.Resolver, network string) (common.Address, error) {
	c, err := Network(network)
	if err != nil {
		return common.Address{}, err
	}

	return r.Resolve(c)
}

// VerifyRequirements returns nil if req uses the "exact" scheme and its
// asset is the USDC contract on its network.  Address comparison ignores
// case.
func VerifyRequirements(r api.Resolver, req types.PaymentRequirements) error {
	if req.Scheme != SchemeExact {
		return fmt.Errorf("unknown payment scheme : %w, %s", http.ErrNotSupported, req.Scheme)
	}

	if !common.IsHexAddress(req.Asset) {
		return fmt.Errorf("%w: %s", ErrInvalidAsset, req.Asset)
	}

	exp, err := Asset(r, req.Network)
	if err != nil {
		return err
	}

	if act := common.HexToAddress(req.Asset); act != exp {
		return fmt.Errorf("%w: %s on %s, want %s", ErrAssetMismatch, act.Hex(), req.Network, exp.Hex())
	}

	return nil
}
