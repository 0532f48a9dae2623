package usdc

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/selesy/usdc/internal/observability"
	"github.com/selesy/usdc/pkg/api"
	"github.com/selesy/usdc/pkg/chain"
)

var _ api.Resolver = (*Directory)(nil)

var defaultDirectory = newDirectory(&config{
	log: observability.Discard(),
})

// Directory maps chains to their USDC contract address.  A Directory is
// immutable once created and safe for concurrent use.
type Directory struct {
	table map[chain.Named]string
	log   *slog.Logger
}

// New returns a Directory holding the compiled-in address table, altered
// by the provided options.
func New(opts ...Option) (*Directory, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newDirectory(cfg), nil
}

func newDirectory(cfg *config) *Directory {
	table := maps.Clone(addresses)
	maps.Copy(table, cfg.overrides)

	return &Directory{
		table: table,
		log:   cfg.log,
	}
}

// Resolve implements api.Resolver.
//
// An UnsupportedChainError is returned if the Directory has no entry for
// c.  An AddressParseError is returned if the entry is not a 0x-prefixed
// string of exactly 40 hex digits.  The entry is decoded on every call.
func (d *Directory) Resolve(c chain.Named) (common.Address, error) {
	s, ok := d.table[c]
	if !ok {
		d.log.Debug("USDC address not available", slog.String("chain", c.String()))

		return common.Address{}, &UnsupportedChainError{Chain: c}
	}

	var addr common.Address

	if err := addr.UnmarshalText([]byte(s)); err != nil {
		d.log.Debug("USDC address malformed", slog.String("chain", c.String()), slog.String("address", s))

		return common.Address{}, &AddressParseError{Address: s, Err: err}
	}

	d.log.Debug("USDC address resolved", slog.String("chain", c.String()), slog.String("address", addr.Hex()))

	return addr, nil
}

// Supported returns the chains with an entry in the Directory, ordered by
// chain ID.
func (d *Directory) Supported() []chain.Named {
	return slices.Sorted(maps.Keys(d.table))
}

// IsSupported reports whether the Directory has an entry for c.  It says
// nothing about whether that entry is well-formed.
func (d *Directory) IsSupported(c chain.Named) bool {
	_, ok := d.table[c]

	return ok
}

// Resolve returns the compiled-in USDC address for c.  See
// Directory.Resolve.
func Resolve(c chain.Named) (common.Address, error) {
	return defaultDirectory.Resolve(c)
}

// Supported returns the chains with a compiled-in USDC address, ordered by
// chain ID.
func Supported() []chain.Named {
	return defaultDirectory.Supported()
}
