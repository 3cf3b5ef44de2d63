// Package engine drains transaction streams into a ledger and emits the
// final account snapshot.
package engine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergiupopescu199/payment-engine/internal/domain"
	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/metrics"
)

// Ledger is the state an engine drives. Exactly one engine owns a ledger;
// implementations do not need to be safe for concurrent use.
type Ledger interface {
	Apply(tx domain.Transaction) domain.Outcome
	Snapshot() []domain.Account
}

// Engine consumes transactions from an inbound channel, applies them to its
// ledger in arrival order and emits one snapshot when the stream closes.
type Engine struct {
	ledger  Ledger
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// New creates a new Engine. metrics may be nil.
func New(ledger Ledger, logger zerolog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		ledger:  ledger,
		logger:  logger,
		metrics: m,
	}
}

// Run drains in until it is closed, then delivers exactly one snapshot on
// the returned channel and closes it. Closing the inbound channel is the
// graceful end-of-stream signal, not an error. Arrival order is preserved: a
// chargeback ahead of its dispute must be ignored, never reordered.
// Cancelling ctx abandons the run and closes the returned channel without a
// snapshot.
func (e *Engine) Run(ctx context.Context, in <-chan domain.Transaction) <-chan []domain.Account {
	out := make(chan []domain.Account, 1)

	go func() {
		defer close(out)

		var applied, ignored int
		for {
			select {
			case <-ctx.Done():
				e.logger.Warn().
					Err(ctx.Err()).
					Int("applied", applied).
					Int("ignored", ignored).
					Msg("engine cancelled before end of stream")
				return
			case tx, ok := <-in:
				if !ok {
					e.logger.Info().
						Int("applied", applied).
						Int("ignored", ignored).
						Msg("inbound stream drained")
					out <- e.ledger.Snapshot()
					return
				}

				if e.apply(tx) {
					applied++
				} else {
					ignored++
				}
			}
		}
	}()

	return out
}

func (e *Engine) apply(tx domain.Transaction) bool {
	out := e.ledger.Apply(tx)
	if out.Applied {
		if e.metrics != nil {
			e.metrics.TransactionsApplied.WithLabelValues(string(tx.Kind)).Inc()
		}
		return true
	}

	if e.metrics != nil {
		e.metrics.TransactionsIgnored.WithLabelValues(string(out.Reason)).Inc()
	}
	e.logger.Warn().
		Str("kind", string(tx.Kind)).
		Uint16("client", uint16(tx.ClientID)).
		Uint32("tx", uint32(tx.TxID)).
		Str("reason", string(out.Reason)).
		Msg("transaction ignored")

	return false
}
