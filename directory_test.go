package usdc_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/selesy/usdc"
	"github.com/selesy/usdc/pkg/api/apitest"
	"github.com/selesy/usdc/pkg/chain"
)

func TestDirectory(t *testing.T) {
	t.Parallel()

	dir, err := usdc.New()
	require.NoError(t, err)

	apitest.TestResolver(t, dir)
}

func TestDirectoryResolve(t *testing.T) {
	t.Parallel()

	dir, err := usdc.New()
	require.NoError(t, err)

	t.Run("passes - every supported chain", func(t *testing.T) {
		t.Parallel()

		supported := dir.Supported()
		require.Len(t, supported, 18)

		for _, c := range supported {
			addr, err := dir.Resolve(c)
			require.NoError(t, err, c.String())
			assert.Len(t, addr.Bytes(), common.AddressLength, c.String())
			assert.NotEqual(t, common.Address{}, addr, c.String())
		}
	})

	t.Run("fails - every unsupported chain", func(t *testing.T) {
		t.Parallel()

		for _, c := range chain.All() {
			if dir.IsSupported(c) {
				continue
			}

			apitest.RequireUnsupported(t, dir, c)
		}

		apitest.RequireUnsupported(t, dir, chain.Named(31337))
	})

	t.Run("passes - deterministic", func(t *testing.T) {
		t.Parallel()

		for _, c := range chain.All() {
			addr1, err1 := dir.Resolve(c)
			addr2, err2 := dir.Resolve(c)

			assert.Equal(t, addr1, addr2, c.String())
			assert.Equal(t, err1, err2, c.String())
		}
	})

	t.Run("passes - testnets are distinct from mainnets", func(t *testing.T) {
		t.Parallel()

		for mainnet, testnet := range map[chain.Named]chain.Named{
			chain.Mainnet:  chain.Sepolia,
			chain.Base:     chain.BaseSepolia,
			chain.Arbitrum: chain.ArbitrumSepolia,
		} {
			mainAddr, err := dir.Resolve(mainnet)
			require.NoError(t, err)

			testAddr, err := dir.Resolve(testnet)
			require.NoError(t, err)

			assert.NotEqual(t, mainAddr, testAddr, mainnet.String())
		}

		apitest.RequireUnsupported(t, dir, chain.OptimismSepolia)
	})

	t.Run("passes - concurrent lookups", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup

		for range 16 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for _, c := range chain.All() {
					_, _ = dir.Resolve(c)
				}
			}()
		}

		wg.Wait()
	})
}

func TestDirectoryAddressConstants(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		usdc.ArbitrumUSDC, usdc.ArbitrumSepoliaUSDC, usdc.AvalancheUSDC,
		usdc.BaseUSDC, usdc.BaseSepoliaUSDC, usdc.BSCUSDC, usdc.EthereumUSDC,
		usdc.EthereumSepoliaUSDC, usdc.FantomUSDC, usdc.FraxtalUSDC,
		usdc.LineaUSDC, usdc.MantleUSDC, usdc.ModeUSDC, usdc.OptimismUSDC,
		usdc.PolygonUSDC, usdc.ScrollUSDC, usdc.SonicUSDC, usdc.ZkSyncUSDC,
	} {
		require.True(t, strings.HasPrefix(s, "0x"), s)
		assert.Len(t, strings.TrimPrefix(s, "0x"), 2*common.AddressLength, s)
		assert.True(t, common.IsHexAddress(s), s)

		if s != strings.ToLower(s) {
			assert.Equal(t, s, common.HexToAddress(s).Hex(), "bad EIP-55 checksum")
		}
	}
}

func TestDirectoryMalformedEntry(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		address string
		exp     error
	}{
		"fails - odd length":     {address: apitest.OddLengthAddressHex, exp: hexutil.ErrOddLength},
		"fails - missing prefix": {address: strings.TrimPrefix(usdc.PolygonUSDC, "0x"), exp: hexutil.ErrMissingPrefix},
		"fails - invalid digit":  {address: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c335z", exp: hexutil.ErrSyntax},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir, err := usdc.New(usdc.WithAddress(chain.Gnosis, tc.address))
			require.NoError(t, err)

			addr, err := dir.Resolve(chain.Gnosis)
			require.ErrorIs(t, err, usdc.ErrAddressParse)
			require.ErrorIs(t, err, tc.exp)
			assert.Equal(t, common.Address{}, addr)

			var parseErr *usdc.AddressParseError

			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.address, parseErr.Address)
		})
	}

	t.Run("fails - wrong length", func(t *testing.T) {
		t.Parallel()

		dir, err := usdc.New(usdc.WithAddress(chain.Gnosis, "0x3c499c542cEF5E3811e1192ce70d8cC03d5c33"))
		require.NoError(t, err)

		_, err = dir.Resolve(chain.Gnosis)
		require.ErrorIs(t, err, usdc.ErrAddressParse)
		assert.ErrorContains(t, err, "want 40")
	})
}

func TestWithAddress(t *testing.T) {
	t.Parallel()

	const fork = "0x0000000000000000000000000000000000000001"

	dir, err := usdc.New(usdc.WithAddress(chain.Mainnet, fork), usdc.WithAddress(chain.Gnosis, fork))
	require.NoError(t, err)

	addr, err := dir.Resolve(chain.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(fork), addr)

	assert.True(t, dir.IsSupported(chain.Gnosis))
	assert.Len(t, dir.Supported(), 19)

	addr, err = usdc.Resolve(chain.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(usdc.EthereumUSDC), addr)
	assert.Len(t, usdc.Supported(), 18)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("passes - logs lookups at debug level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		dir, err := usdc.New(usdc.WithLogger(log))
		require.NoError(t, err)

		_, err = dir.Resolve(chain.Polygon)
		require.NoError(t, err)

		_, err = dir.Resolve(chain.Gnosis)
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "chain=polygon")
		assert.Contains(t, out, "chain=gnosis")
		assert.NotContains(t, out, "level=INFO")
	})

	t.Run("fails - nil logger", func(t *testing.T) {
		t.Parallel()

		_, err := usdc.New(usdc.WithLogger(nil))
		require.ErrorIs(t, err, usdc.ErrNilLogger)
	})
}

func TestSupported(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	for _, c := range usdc.Supported() {
		addr, err := usdc.Resolve(c)
		require.NoError(t, err)

		fmt.Fprintf(buf, "%-16s %8d %s\n", c, c.ID(), hexutil.Encode(addr.Bytes()))
	}

	golden.Assert(t, buf.String(), "supported.golden")
}
