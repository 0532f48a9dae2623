// Package usdc provides the contract address of the USDC (USD Coin)
// stablecoin on a number of EVM blockchain networks.
//
// Addresses are compiled into the package and looked up by chain.Named
// identifier.  Lookups never touch the network.
//
//	addr, err := usdc.Resolve(chain.Base)
//
// Code that needs a USDC address should depend on the api.Resolver
// interface, which *Directory implements, rather than on this package.
//
// Errors
//
//   - UnsupportedChainError is returned for chains without a known address.
//   - AddressParseError is returned if a table entry is not a valid address.
//     For the compiled-in table this would be a bug in the package.
//
// Defaults
//
//   - If the WithLogger Option is not specified, a No-Op logger is used.
package usdc
