// Command matchbench times one bulk match of N query keys against a
// reference of M keys. The query is sampled without replacement from the
// reference universe, so every key must be found.
//
//	$ go run ./cmd/matchbench 1000000 1000000
//	$ go run ./cmd/matchbench --sorted --repeat 5 --format yaml 100000 1000000
//	$ go run ./cmd/matchbench --workers -1 --cpuprofile cpu.out 1000000 10000000
//	$ go run ./cmd/matchbench --quiet --log-level error 1000000 1000000
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/argmatch/internal/bench"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg        = bench.DefaultConfig()
		configFile string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:          "matchbench [flags] N M",
		Short:        "Time a bulk match of N query keys against M reference keys",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := bench.ApplyFile(cmd.Flags(), configFile, &cfg); err != nil {
					return err
				}
			}

			var err error
			if cfg.Query, err = parseSize("N", args[0]); err != nil {
				return err
			}
			if cfg.Reference, err = parseSize("M", args[1]); err != nil {
				return err
			}

			log, err := newLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}

			report, err := bench.Run(cmd.Context(), cfg, log)
			if report != nil && !cfg.Quiet {
				if werr := report.Write(cmd.OutOrStdout(), cfg.Format); werr != nil {
					return werr
				}
			}
			return err
		},
	}

	cfg.Flags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "YAML file with flag values (explicit flags take precedence)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

func parseSize(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, n)
	}
	return n, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
