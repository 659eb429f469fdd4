// Package service wires the panel store, the ingestion pipeline, and the
// distribution aggregator into the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/okian/panelboard/internal/adapters/mq/queue"
	"github.com/okian/panelboard/internal/adapters/mq/worker"
	"github.com/okian/panelboard/internal/adapters/repository"
	"github.com/okian/panelboard/internal/domain/dedupe"
	"github.com/okian/panelboard/internal/domain/distribution"
	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
	"github.com/okian/panelboard/pkg/logger"
	"github.com/okian/panelboard/pkg/metrics"
)

const stopTimeout = 10 * time.Second

// IngestResult reports what happened to a submitted record.
type IngestResult int

const (
	// IngestAccepted means the record was queued for storage.
	IngestAccepted IngestResult = iota
	// IngestDuplicate means a record with the same ID was already submitted.
	IngestDuplicate
)

func (r IngestResult) String() string {
	switch r {
	case IngestAccepted:
		return "accepted"
	case IngestDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Service implements the API dependencies for the panel dashboard.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	deduper dedupe.Deduper
	queue   *queue.InMemoryQueue
	pool    *worker.Pool

	workerCount int
	queueSize   int
	dedupeSize  int
	seed        []model.PanelRecord

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   10_000,
		dedupeSize:  50_000,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithCapacity(len(s.seed)))
	}
	return s
}

// Start loads seed records and starts the ingestion workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting panel service...")

	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	if err := s.loadSeed(ctx); err != nil {
		return err
	}

	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.queue, s.store,
		worker.WithLogger(s.logger.Named("worker")),
		worker.WithErrorHandler(s.releaseFailed),
	)
	s.pool.Start(context.WithoutCancel(ctx))

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "panel service started",
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Int("seeded", len(s.seed)),
	)
	return nil
}

func (s *Service) loadSeed(ctx context.Context) error {
	for i, rec := range s.seed {
		if _, err := s.store.Put(ctx, rec); err != nil {
			return fmt.Errorf("seed record %d: %w", i, err)
		}
		s.deduper.SeenAndRecord(ctx, strings.TrimSpace(rec.ID))
	}
	metrics.UpdatePanelsStored(s.store.Count(ctx))
	return nil
}

// releaseFailed lets a record that could not be stored be submitted again.
func (s *Service) releaseFailed(ctx context.Context, rec model.PanelRecord, err error) { //nolint:gocritic // hugeParam: matches worker.ErrorHandler
	s.deduper.Unrecord(ctx, strings.TrimSpace(rec.ID))
	s.logger.Warn(ctx, "panel record released after store failure",
		logger.String("id", rec.ID),
		logger.Error(err),
	)
}

// Stop drains the ingestion queue and stops the workers.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping panel service...")
	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "ingestion workers did not drain", logger.Error(err))
	}
	s.started = false
	s.logger.Info(ctx, "panel service stopped")
}

// Ingest deduplicates rec by ID and queues it for storage.
func (s *Service) Ingest(ctx context.Context, rec model.PanelRecord) (IngestResult, error) { //nolint:gocritic // hugeParam: records travel by value into the queue
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		metrics.RecordIngestError()
		return 0, fmt.Errorf("%w: empty id", repository.ErrInvalidRecord)
	}
	rec.ID = id

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return 0, ErrStopped
	}

	if s.deduper.SeenAndRecord(ctx, id) {
		metrics.RecordPanelDuplicate()
		s.logger.Debug(ctx, "duplicate panel record", logger.String("id", id))
		return IngestDuplicate, nil
	}
	if !s.queue.Enqueue(ctx, rec.Clone()) {
		s.deduper.Unrecord(ctx, id)
		return 0, ErrBackpressure
	}
	return IngestAccepted, nil
}

// Search returns stored records matching q in insertion order.
func (s *Service) Search(ctx context.Context, q repository.Query) ([]model.PanelRecord, error) {
	start := time.Now()
	defer func() {
		metrics.RecordSearchLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()
	return s.store.List(ctx, q)
}

// Panel returns one stored record by ID.
func (s *Service) Panel(ctx context.Context, id string) (model.PanelRecord, error) {
	return s.store.Get(ctx, id)
}

// Distribution builds the table for dim over the records matching q.
func (s *Service) Distribution(ctx context.Context, dim distribution.Dimension, q repository.Query) (types.Distribution, error) {
	records, err := s.Search(ctx, q)
	if err != nil {
		return types.Distribution{}, err
	}
	return s.build(ctx, dim, records)
}

// Overview builds every table over the same matching records.
func (s *Service) Overview(ctx context.Context, q repository.Query) (types.Overview, error) {
	records, err := s.Search(ctx, q)
	if err != nil {
		return types.Overview{}, err
	}

	dims := distribution.Dimensions()
	out := types.Overview{
		Total:         len(records),
		Distributions: make([]types.Distribution, 0, len(dims)),
	}
	for _, dim := range dims {
		d, err := s.build(ctx, dim, records)
		if err != nil {
			return types.Overview{}, err
		}
		out.Distributions = append(out.Distributions, d)
	}
	return out, nil
}

func (s *Service) build(ctx context.Context, dim distribution.Dimension, records []model.PanelRecord) (types.Distribution, error) {
	start := time.Now()
	d, err := distribution.Build(dim, records)
	if err != nil {
		return types.Distribution{}, err
	}
	elapsed := time.Since(start)
	metrics.RecordAggregation(string(dim), float64(elapsed.Microseconds())/1000, len(d.Entries), d.Valid)
	if s.logger != nil {
		s.logger.Debug(ctx, "distribution built",
			logger.String("dimension", string(dim)),
			logger.Int("total", d.Total),
			logger.Int("valid", d.Valid),
			logger.Duration("elapsed", elapsed),
		)
	}
	return d, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	total := s.store.Count(ctx)
	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
		"totalPanels": total,
	}
	metrics.UpdatePanelsStored(total)

	if s.started {
		stats["queueLength"] = s.queue.Len(ctx)
		stats["stored"] = s.pool.Stored()
		stats["failed"] = s.pool.Failed()
		stats["dedupeEntries"] = s.deduper.Size()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}
	return stats
}
