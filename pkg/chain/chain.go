// Package chain enumerates the blockchain networks known to this module.
//
// Each Named value is the network's EIP-155 chain ID.  Knowing a chain
// does not imply a USDC address is available for it.
package chain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownChain is returned by Parse when the input names no known
// chain.
var ErrUnknownChain = errors.New("unknown chain")

// Named identifies a blockchain network by its chain ID.
type Named uint64

const (
	Mainnet                  Named = 1
	Optimism                 Named = 10
	BinanceSmartChain        Named = 56
	BinanceSmartChainTestnet Named = 97
	Gnosis                   Named = 100
	Polygon                  Named = 137
	Sonic                    Named = 146
	Fantom                   Named = 250
	Fraxtal                  Named = 252
	ZkSync                   Named = 324
	Moonbeam                 Named = 1284
	Mantle                   Named = 5000
	Base                     Named = 8453
	Holesky                  Named = 17000
	Mode                     Named = 34443
	Arbitrum                 Named = 42161
	Celo                     Named = 42220
	AvalancheFuji            Named = 43113
	Avalanche                Named = 43114
	Linea                    Named = 59144
	PolygonAmoy              Named = 80002
	Blast                    Named = 81457
	BaseSepolia              Named = 84532
	ArbitrumSepolia          Named = 421614
	Scroll                   Named = 534352
	Sepolia                  Named = 11155111
	OptimismSepolia          Named = 11155420
)

var names = map[Named]string{
	Mainnet:                  "mainnet",
	Optimism:                 "optimism",
	BinanceSmartChain:        "bsc",
	BinanceSmartChainTestnet: "bsc-testnet",
	Gnosis:                   "gnosis",
	Polygon:                  "polygon",
	Sonic:                    "sonic",
	Fantom:                   "fantom",
	Fraxtal:                  "fraxtal",
	ZkSync:                   "zksync",
	Moonbeam:                 "moonbeam",
	Mantle:                   "mantle",
	Base:                     "base",
	Holesky:                  "holesky",
	Mode:                     "mode",
	Arbitrum:                 "arbitrum",
	Celo:                     "celo",
	AvalancheFuji:            "avalanche-fuji",
	Avalanche:                "avalanche",
	Linea:                    "linea",
	PolygonAmoy:              "polygon-amoy",
	Blast:                    "blast",
	BaseSepolia:              "base-sepolia",
	ArbitrumSepolia:          "arbitrum-sepolia",
	Scroll:                   "scroll",
	Sepolia:                  "sepolia",
	OptimismSepolia:          "optimism-sepolia",
}

// aliases are alternative spellings accepted by Parse.
var aliases = map[string]Named{
	"ethereum":            Mainnet,
	"binance-smart-chain": BinanceSmartChain,
	"zksync-era":          ZkSync,
	"matic":               Polygon,
}

// ID returns the EIP-155 chain ID.
func (n Named) ID() uint64 {
	return uint64(n)
}

// String returns the chain's kebab-case name, or "chain(<id>)" for values
// outside the known set.
func (n Named) String() string {
	if name, ok := names[n]; ok {
		return name
	}

	return fmt.Sprintf("chain(%d)", uint64(n))
}

// Known reports whether n is one of the enumerated chains.
func (n Named) Known() bool {
	_, ok := names[n]

	return ok
}

// Parse converts a chain name (case-insensitive, as returned by String or
// one of a few common aliases) or a decimal chain ID into a Named value.
// Only known chains are accepted.
func Parse(s string) (Named, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		if n := Named(id); n.Known() {
			return n, nil
		}

		return 0, fmt.Errorf("%w: %s", ErrUnknownChain, s)
	}

	for n, name := range names {
		if name == key {
			return n, nil
		}
	}

	if n, ok := aliases[key]; ok {
		return n, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownChain, s)
}

// All returns every known chain ordered by chain ID.
func All() []Named {
	all := make([]Named, 0, len(names))
	for n := range names {
		all = append(all, n)
	}

	slices.Sort(all)

	return all
}
