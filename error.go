package usdc

import (
	"errors"
	"fmt"

	"github.com/selesy/usdc/pkg/chain"
)

// ErrUnsupportedChain matches (via errors.Is) every UnsupportedChainError.
var ErrUnsupportedChain = errors.New("USDC address not available")

// ErrAddressParse matches (via errors.Is) every AddressParseError.
var ErrAddressParse = errors.New("failed to parse address")

// ErrNilLogger is returned by New when WithLogger is given a nil logger.
var ErrNilLogger = errors.New("logger must not be nil")

// UnsupportedChainError is returned when no USDC address is known for the
// requested chain.
type UnsupportedChainError struct {
	Chain chain.Named
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("USDC address not available for chain: %s", e.Chain)
}

func (e *UnsupportedChainError) Is(target error) bool {
	return target == ErrUnsupportedChain
}

// AddressParseError is returned when a table entry is not a valid 0x
// prefixed, 40 hex digit address.  Err holds the decoder's error, which is
// usually one of the go-ethereum hexutil errors.
//
// Seeing this error for a compiled-in entry indicates a bug in this
// package.
type AddressParseError struct {
	Address string
	Err     error
}

func (e *AddressParseError) Error() string {
	return fmt.Sprintf("failed to parse address string '%s': %v", e.Address, e.Err)
}

func (e *AddressParseError) Unwrap() error {
	return e.Err
}

func (e *AddressParseError) Is(target error) bool {
	return target == ErrAddressParse
}
