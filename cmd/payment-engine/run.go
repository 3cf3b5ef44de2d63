package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	csvadapter "github.com/sergiupopescu199/payment-engine/internal/adapter/csv"
	"github.com/sergiupopescu199/payment-engine/internal/domain"
	"github.com/sergiupopescu199/payment-engine/internal/engine"
	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/metrics"
	"github.com/sergiupopescu199/payment-engine/internal/ledger"
)

type runOptions struct {
	Sources []string
	Output  io.Writer
	Buffer  int
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

// run replays every source through its own ledger. Sources are processed
// concurrently with no shared state; their snapshots are rendered as one
// table in argument order once all of them settle.
func run(ctx context.Context, opts runOptions) error {
	g, ctx := errgroup.WithContext(ctx)

	snapshots := make([][]domain.Account, len(opts.Sources))
	for i, source := range opts.Sources {
		i, source := i, source // per-iteration copies: go.mod targets go 1.21, which shares loop variables across iterations
		g.Go(func() error {
			snapshot, err := processSource(ctx, source, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			snapshots[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w := csvadapter.NewWriter(opts.Output)
	for _, snapshot := range snapshots {
		if err := w.WriteSnapshot(snapshot); err != nil {
			return err
		}
	}

	return w.Flush()
}

// processSource runs the producer and engine pair for one input file. The
// producer parses rows into the inbound channel; the engine owns the ledger
// and emits the snapshot once the channel closes.
func processSource(ctx context.Context, path string, opts runOptions) ([]domain.Account, error) {
	start := time.Now()

	log := opts.Logger.With().
		Str("run_id", ulid.Make().String()).
		Str("source", path).
		Logger()

	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	inbound := make(chan domain.Transaction, opts.Buffer)
	eng := engine.New(ledger.New(), log, opts.Metrics)
	outbound := eng.Run(ctx, inbound)

	if err := produce(ctx, csvadapter.NewReader(in), inbound, opts.Metrics); err != nil {
		return nil, err
	}

	snapshot, ok := <-outbound
	if !ok {
		return nil, ctx.Err()
	}

	log.Info().
		Int("accounts", len(snapshot)).
		Dur("elapsed", time.Since(start)).
		Msg("source processed")

	if opts.Metrics != nil {
		opts.Metrics.RunsCompleted.Inc()
		opts.Metrics.RunDuration.Observe(time.Since(start).Seconds())
		opts.Metrics.AccountsEmitted.Add(float64(len(snapshot)))
	}

	return snapshot, nil
}

// produce feeds parsed transactions into the inbound channel and always
// closes it, so the engine sees end-of-stream whether the input was
// exhausted, malformed or cancelled.
func produce(ctx context.Context, r *csvadapter.Reader, inbound chan<- domain.Transaction, m *metrics.Metrics) error {
	defer close(inbound)

	for {
		tx, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if m != nil {
				m.ParseFailures.Inc()
			}
			return err
		}
		if m != nil {
			m.RecordsParsed.Inc()
		}

		select {
		case inbound <- tx:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// openInput opens path for reading, transparently decompressing gzipped
// files.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &gzipFile{Reader: zr, file: f}, nil
	}

	return f, nil
}
