package usdc

import (
	"errors"
	"log/slog"

	"github.com/selesy/usdc/internal/observability"
	"github.com/selesy/usdc/pkg/chain"
)

type config struct {
	log       *slog.Logger
	overrides map[chain.Named]string
}

// Option represents a means of altering the default configuration of a
// Directory.
type Option func(*config) error

func newConfig(opts ...Option) (*config, error) {
	var errs error

	cfg := &config{
		log:       observability.Discard(),
		overrides: map[chain.Named]string{},
	}

	for _, opt := range opts {
		errs = errors.Join(errs, opt(cfg))
	}

	if errs != nil {
		return nil, errs
	}

	return cfg, nil
}

// WithLogger is an Option that allows the user to provide an slog.Logger that
// can be used to observe lookups made through the Directory.
//
// If not provided, a No-Op logger is used.  The Directory only logs at the
// DEBUG level, one record per lookup.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) error {
		if log == nil {
			return ErrNilLogger
		}

		c.log = log

		return nil
	}
}

// WithAddress is an Option that adds an entry to the Directory's table or
// replaces the compiled-in address for the chain.  This is useful for
// private deployments and forks.
//
// The address is not validated here.  Like every other entry, it is
// decoded on each call to Resolve and a malformed value is reported as an
// AddressParseError.
func WithAddress(c chain.Named, address string) Option {
	return func(cfg *config) error {
		cfg.overrides[c] = address

		return nil
	}
}
