package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/Amr-9/VanityHunter/internal/ui"
	"github.com/Amr-9/VanityHunter/internal/wallet"
	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

const updateRate = 33 * time.Millisecond

// run drives one search, or a sequence of them in interactive mode.
func run(ctx context.Context, opts *options) error {
	if err := setupLogging(os.Stderr, opts.logLevel); err != nil {
		return err
	}

	target, err := targetFromFlags(opts)
	if err != nil {
		return err
	}

	if _, err := wallet.ParseFormat(opts.format); err != nil {
		return err
	}

	if opts.highPriority {
		if err := raisePriority(); err != nil {
			ui.PrintWarning(os.Stderr, fmt.Sprintf("Could not raise "+
				"process priority: %v", err))
		}
	}

	interactive := opts.prefix == "" && !opts.json &&
		isatty.IsTerminal(os.Stdin.Fd())
	if opts.prefix == "" && !interactive {
		return fmt.Errorf("%w: --prefix is required when not running "+
			"in a terminal", generator.ErrInvalidInput)
	}

	var searchOpts []search.Option

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		searchOpts = append(searchOpts, search.WithMetrics(search.NewMetrics(reg)))

		srv := newMetricsServer(opts.metricsAddr, reg)
		g.Go(func() error {
			return serveMetrics(ctx, srv)
		})
	}

	g.Go(func() error {
		defer cancel()

		if !interactive {
			return runSearch(ctx, opts, target, searchOpts)
		}

		ui.ClearScreen(os.Stdout)
		ui.PrintWelcomeBanner(os.Stdout, version)

		for {
			next, err := ui.PromptTarget(target)
			if err != nil {
				return err
			}
			target = next

			// Failures are shown and the user may retry with another
			// pattern.
			if err := runSearch(ctx, opts, target, searchOpts); err != nil {
				ui.PrintError(os.Stdout, err)
			}

			if ctx.Err() != nil || !ui.AskToContinue() {
				return nil
			}
			fmt.Println()
		}
	})

	return g.Wait()
}

// targetFromFlags builds the search target from the command line.
func targetFromFlags(opts *options) (ui.Target, error) {
	network, err := generator.ParseNetwork(opts.network)
	if err != nil {
		return ui.Target{}, err
	}

	addrType, err := generator.ParseAddressType(opts.addressType)
	if err != nil {
		return ui.Target{}, err
	}

	return ui.Target{
		Network:       network,
		AddressType:   addrType,
		Pattern:       opts.prefix,
		CaseSensitive: opts.caseSensitive,
	}, nil
}

// runSearch runs one search to its terminal event and reports it.
func runSearch(ctx context.Context, opts *options, target ui.Target,
	searchOpts []search.Option) error {

	if err := ui.ValidatePattern(target.Pattern, target.CaseSensitive); err != nil {
		return fmt.Errorf("%w: %v", generator.ErrInvalidInput, err)
	}

	sampler, err := search.NewSampler(target.Network, target.AddressType)
	if err != nil {
		return err
	}

	sessionOpts := append(
		[]search.Option{search.WithCaseSensitive(target.CaseSensitive)},
		searchOpts...,
	)

	prefix := target.Prefix()
	s, err := search.StartPool(ctx, sampler, prefix, opts.workers,
		sessionOpts...)
	if err != nil {
		return err
	}

	var (
		out     io.Writer = os.Stdout
		emitter *ui.JSONEmitter
	)
	if opts.json {
		emitter = ui.NewJSONEmitter(out)
	} else {
		if target.LongPattern() {
			ui.PrintWarning(out, "Long prefixes may take a very long "+
				"time to generate.")
		}
		ui.PrintSearchInfo(out, target.Network, prefix,
			target.CaseSensitive, s.Difficulty(), s.Workers())
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	startTime := time.Now()
	lastDraw := time.Time{}
	frame := 0

	for {
		select {
		case p, ok := <-s.Progress():
			if !ok {
				return report(out, emitter, s.Outcome(), opts,
					time.Since(startTime))
			}

			if emitter != nil {
				if err := emitter.Progress(p); err != nil {
					s.Cancel()
				}
				continue
			}

			if time.Since(lastDraw) >= updateRate {
				ui.PrintProgress(out, p, s.Difficulty(), frame)
				lastDraw = time.Now()
				frame++
			}

		case <-sigChan:
			s.Cancel()
		}
	}
}

// report presents the terminal event and persists a found key.
func report(out io.Writer, emitter *ui.JSONEmitter, outcome search.Outcome,
	opts *options, elapsed time.Duration) error {

	if outcome.Result != nil {
		defer outcome.Result.Destroy()
	}

	if emitter != nil {
		if err := emitter.Outcome(outcome); err != nil {
			return err
		}
	}

	switch outcome.Status {
	case search.StatusFound:
		saved := ""
		if !opts.noSave {
			path, err := saveWallet(opts, outcome.Result, elapsed)
			if err != nil {
				return err
			}
			saved = path
		}

		if emitter == nil {
			ui.ClearLine(out)
			ui.PrintSuccess(out, outcome.Result, elapsed, saved)
		}
		return nil

	case search.StatusCancelled:
		if emitter == nil {
			ui.ClearLine(out)
			ui.PrintCancelled(out, outcome.Attempts, elapsed)
		}
		return nil

	default:
		if emitter == nil {
			ui.ClearLine(out)
		}
		return outcome.Err
	}
}

// saveWallet writes the result in the selected format and returns the path
// written.
func saveWallet(opts *options, result *search.Result,
	elapsed time.Duration) (string, error) {

	format, err := wallet.ParseFormat(opts.format)
	if err != nil {
		return "", err
	}

	path := opts.output
	if !opts.outputSet {
		path = wallet.DefaultPath(format, result.Prefix)
	}

	if err := wallet.Save(path, format, result, elapsed); err != nil {
		return "", err
	}
	return path, nil
}
