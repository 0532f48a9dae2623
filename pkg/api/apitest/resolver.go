package apitest

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selesy/usdc"
	"github.com/selesy/usdc/pkg/api"
	"github.com/selesy/usdc/pkg/chain"
)

const (
	PolygonUSDCHex   = "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"
	MainnetUSDCHex   = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	AvalancheUSDCHex = "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e"

	// OddLengthAddressHex has 39 hex digits after the prefix.
	OddLengthAddressHex = "0x3c499c542cEF5E3811e1192ce70d8cC03d5c335"
)

// TestResolver checks that resolver returns the well-known USDC addresses
// and reports Gnosis as unsupported.
func TestResolver(t *testing.T, resolver api.Resolver) {
	t.Helper()

	for c, expHex := range map[chain.Named]string{
		chain.Polygon:   PolygonUSDCHex,
		chain.Mainnet:   MainnetUSDCHex,
		chain.Avalanche: AvalancheUSDCHex,
	} {
		act, err := resolver.Resolve(c)
		require.NoError(t, err, c.String())
		assert.Equal(t, common.HexToAddress(expHex), act, c.String())
	}

	RequireUnsupported(t, resolver, chain.Gnosis)
}

// RequireUnsupported asserts that resolver fails for c with an
// usdc.UnsupportedChainError carrying c.
func RequireUnsupported(t *testing.T, resolver api.Resolver, c chain.Named) {
	t.Helper()

	addr, err := resolver.Resolve(c)
	require.ErrorIs(t, err, usdc.ErrUnsupportedChain)
	assert.Equal(t, common.Address{}, addr)

	var unsupported *usdc.UnsupportedChainError

	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, c, unsupported.Chain)
}
