package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/config"
	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/logger"
	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/metrics"
)

func main() {
	// Values from a local .env file complement the environment; running
	// without one is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(cfg, log, metrics.New())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func newRootCmd(cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) *cobra.Command {
	var (
		outputPath string
		buffer     int
	)

	cmd := &cobra.Command{
		Use:   "payment-engine transactions.csv [transactions2.csv ...]",
		Short: "Replay transaction histories into final account balances",
		Long: `payment-engine reads histories of deposits, withdrawals, disputes,
resolves and chargebacks, replays each input file through its own ledger and
prints the final account table as CSV on stdout.

Gzipped inputs (*.gz) are decompressed transparently. Every input file is an
independent ledger; their tables are concatenated in argument order under a
single header.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The env path is validated in config.Load; the flag needs its
			// own guard before the value sizes a channel.
			if buffer < 1 {
				return fmt.Errorf("--buffer must be at least 1, got %d", buffer)
			}

			out := io.Writer(os.Stdout)
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			return run(cmd.Context(), runOptions{
				Sources: args,
				Output:  out,
				Buffer:  buffer,
				Logger:  log,
				Metrics: m,
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the account table to this file instead of stdout")
	cmd.Flags().IntVar(&buffer, "buffer", cfg.EngineBuffer, "inbound channel capacity per source")

	return cmd
}
