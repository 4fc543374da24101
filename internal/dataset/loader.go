// internal/dataset/loader.go
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/retail-insights/internal/config"
	"golang.org/x/sync/errgroup"
)

// Loader reads the five dataset files and publishes them to the store.
// Load runs exactly one cycle per process start; there is no retry and
// a failed mandatory phase requires a restart.
type Loader struct {
	store  *Store
	config *config.Config
	logger *logrus.Logger
}

// NewLoader creates a new dataset loader.
func NewLoader(store *Store, cfg *config.Config, logger *logrus.Logger) *Loader {
	return &Loader{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// Load runs the configured strategy. The single-phase strategy reads
// the full files once, all-or-nothing. The two-phase strategy first
// reads the truncated preview files for a fast first publish, tolerating
// their failure, then unconditionally reads the full files.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()

	if l.config.Data.Strategy == config.LoadStrategySingle {
		if err := l.store.SetStatus(StatusLoadingFull); err != nil {
			return err
		}
		snap, err := l.readPhase(ctx, false)
		if err != nil {
			l.store.Fail(err)
			return err
		}
		if err := l.store.Publish(snap, StatusFullyLoaded); err != nil {
			return err
		}
		l.logLoaded(snap, start)
		return nil
	}

	// Phase 1: preview files. Failure here is logged, not surfaced.
	if err := l.store.SetStatus(StatusLoadingInitial); err != nil {
		return err
	}
	if preview, err := l.readPhase(ctx, true); err != nil {
		l.logger.WithError(err).Warn("Preview dataset load failed, waiting for full load")
	} else if err := l.store.Publish(preview, StatusInitialLoaded); err != nil {
		return err
	}

	// Phase 2: full files, mandatory. An error leaves any published
	// preview data in place.
	if err := l.store.SetStatus(StatusLoadingFull); err != nil {
		return err
	}
	snap, err := l.readPhase(ctx, false)
	if err != nil {
		l.store.Fail(err)
		return err
	}
	if err := l.store.Publish(snap, StatusFullyLoaded); err != nil {
		return err
	}
	l.logLoaded(snap, start)
	return nil
}

// readPhase reads all five collections of one phase concurrently and
// gates on every one of them: if any file fails, the phase fails with
// the first error.
func (l *Loader) readPhase(ctx context.Context, preview bool) (*Snapshot, error) {
	snap := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readCollection(ctx, l.path("products", preview), &snap.Products) })
	g.Go(func() error { return readCollection(ctx, l.path("orders", preview), &snap.Orders) })
	g.Go(func() error { return readCollection(ctx, l.path("order_items", preview), &snap.OrderItems) })
	g.Go(func() error { return readCollection(ctx, l.path("order_returns", preview), &snap.Returns) })
	g.Go(func() error { return readCollection(ctx, l.path("customers", preview), &snap.Customers) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (l *Loader) path(collection string, preview bool) string {
	return l.config.DatasetPath(collection, preview)
}

func (l *Loader) logLoaded(snap *Snapshot, start time.Time) {
	l.logger.WithFields(logrus.Fields{
		"products":    len(snap.Products),
		"orders":      len(snap.Orders),
		"order_items": len(snap.OrderItems),
		"returns":     len(snap.Returns),
		"customers":   len(snap.Customers),
		"elapsed":     time.Since(start).String(),
	}).Info("Datasets loaded")
}

// readCollection reads one JSON array file into dest. Malformed JSON is
// reported on the same path as a missing file.
func readCollection[T any](ctx context.Context, path string, dest *[]T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return nil
}
