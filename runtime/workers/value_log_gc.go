package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"warehouse-portal/metrics"

	"github.com/dgraph-io/badger/v4"
)

// ValueLogGCWorker periodically reclaims value log space left behind by
// overwritten rows, receipts flipped to Read and contacts moved between groups.
type ValueLogGCWorker struct {
	log          *slog.Logger
	db           *badger.DB
	interval     time.Duration
	discardRatio float64
}

func NewValueLogGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration, discardRatio float64) *ValueLogGCWorker {
	return &ValueLogGCWorker{log: log, db: db, interval: interval, discardRatio: discardRatio}
}

func (w *ValueLogGCWorker) Name() string {
	return "ValueLogGC"
}

func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	if w.db.Opts().InMemory {
		w.log.Debug("In-memory database, value log GC disabled")
		return nil
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.collect(ctx); err != nil {
				return err
			}
		}
	}
}

// collect rewrites value log files until badger finds nothing worth
// rewriting.
func (w *ValueLogGCWorker) collect(ctx context.Context) error {
	rewritten := 0
	for ctx.Err() == nil {
		err := w.db.RunValueLogGC(w.discardRatio)
		switch {
		case err == nil:
			rewritten++
			metrics.ValueLogGCRunsTotal.WithLabelValues("rewritten").Inc()
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
			metrics.ValueLogGCRunsTotal.WithLabelValues("nothing").Inc()
			w.log.Debug("Value log GC pass done", "rewritten_files", rewritten)
			return nil
		default:
			metrics.ValueLogGCRunsTotal.WithLabelValues("failed").Inc()
			return err
		}
	}
	return nil
}
