package api

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/selesy/usdc/pkg/chain"
)

// A Resolver is implemented by types that can provide the USDC contract
// address for a chain.
type Resolver interface {
	// Resolve returns the address of the USDC contract deployed on c.
	// Calling Resolve repeatedly with the same chain must return the same
	// result.
	Resolve(c chain.Named) (common.Address, error)
}
