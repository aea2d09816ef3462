package main

import (
	"context"
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/Amr-9/VanityHunter/internal/ui"
)

const (
	version    = "0.4"
	outputFile = "wallet.txt"
)

// options holds the command line flags.
type options struct {
	prefix        string
	network       string
	addressType   string
	caseSensitive bool
	workers       int
	highPriority  bool
	output        string
	outputSet     bool
	format        string
	noSave        bool
	json          bool
	logLevel      string
	metricsAddr   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vanityhunter",
		Short: "Generate a keypair whose Base58 address starts with a chosen prefix",
		Long: `VanityHunter brute-forces random keypairs until the encoded address
starts with the requested prefix. Supported networks: Solana, Tron and
Bitcoin (legacy and nested SegWit). Run without --prefix in a terminal for
interactive mode.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.outputSet = cmd.Flags().Changed("output")
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.prefix, "prefix", "p", "", "symbols wanted after the network's fixed lead")
	flags.StringVarP(&opts.network, "network", "n", "solana", "solana, tron or bitcoin")
	flags.StringVar(&opts.addressType, "address-type", "legacy", "bitcoin address type: legacy or nested-segwit")
	flags.BoolVar(&opts.caseSensitive, "case-sensitive", false, "match the prefix case-sensitively")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "number of search goroutines (0 = one per CPU core)")
	flags.StringVarP(&opts.output, "output", "o", outputFile, "wallet file to write the found key to (json default: <prefix>-vanity-wallet.json)")
	flags.StringVar(&opts.format, "format", "text", "wallet file format: text or json")
	flags.BoolVar(&opts.highPriority, "high-priority", false, "raise the process scheduling priority")
	flags.BoolVar(&opts.noSave, "no-save", false, "do not write a wallet file")
	flags.BoolVar(&opts.json, "json", false, "emit newline-delimited JSON events instead of console output")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "trace, debug, info, warn, error, critical or off")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	memguard.Purge()

	if err != nil {
		ui.PrintError(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
