// Command usdc prints the USDC contract address for one or more chains.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/selesy/usdc"
	"github.com/selesy/usdc/pkg/chain"
)

func main() {
	lvl := new(slog.LevelVar)

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: lvl,
	}))

	if err := newRootCmd(os.Stdout, log, lvl).Execute(); err != nil {
		log.Error("usdc failed", tint.Err(err))
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, log *slog.Logger, lvl *slog.LevelVar) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "usdc",
		Short: "Look up USDC contract addresses",
		Long: `usdc prints the address of the USDC contract deployed on a chain.

Chains may be given by name (mainnet, base-sepolia, bsc, ...) or by
decimal chain ID.  Addresses are printed with their EIP-55 checksum.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				lvl.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "log each lookup to stderr")
	root.SetOut(out)

	root.AddCommand(
		newResolveCmd(log),
		newListCmd(log),
	)

	return root
}

func newResolveCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CHAIN...",
		Short: "Print the USDC address for each chain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := usdc.New(usdc.WithLogger(log))
			if err != nil {
				return err
			}

			for _, arg := range args {
				c, err := chain.Parse(arg)
				if err != nil {
					return err
				}

				addr, err := dir.Resolve(c)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c, addr.Hex())
			}

			return nil
		},
	}
}

func newListCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every chain with a known USDC address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := usdc.New(usdc.WithLogger(log))
			if err != nil {
				return err
			}

			for _, c := range dir.Supported() {
				addr, err := dir.Resolve(c)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %8d %s\n", c, c.ID(), addr.Hex())
			}

			return nil
		},
	}
}
