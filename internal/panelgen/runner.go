package panelgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/panelfile"
	"github.com/okian/panelboard/pkg/logger"
)

const (
	backpressureDelay = 100 * time.Millisecond
	maxSubmitAttempts = 20
	settlePolls       = 50
	settleInterval    = 100 * time.Millisecond
)

// Config holds configuration for one seeding run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Count      int           // Number of panels to generate
	BatchSize  int           // Panels per POST /panels
	Workers    int           // Concurrent submitters
	Seed       int64         // Generator seed
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Optional .json/.yaml copy of the generated panels
}

// Stats summarises a run.
type Stats struct {
	Generated int
	Accepted  int64
	Duplicate int64
	Failed    int64
	Visible   int // panels the service reported in /overview afterwards
	Duration  time.Duration
}

// Run generates panels, submits them, and waits until the service reports them.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	start := time.Now()
	log := logger.Named("panelgen")
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	if err := client.Health(ctx); err != nil {
		return nil, err
	}

	recs := NewGenerator(cfg.Seed).Generate(cfg.Count)
	stats := &Stats{Generated: len(recs)}
	log.Info(ctx, "generated panels", logger.Int("count", len(recs)), logger.Any("seed", cfg.Seed))

	if cfg.OutputFile != "" {
		if err := panelfile.Write(cfg.OutputFile, recs); err != nil {
			log.Warn(ctx, "failed to save panels", logger.Error(err))
		} else {
			log.Info(ctx, "panels saved", logger.String("file", cfg.OutputFile))
		}
	}

	submit(ctx, client, cfg, recs, stats, log)

	ov, err := settle(ctx, client, int(stats.Accepted))
	if err != nil {
		return stats, err
	}
	stats.Visible = ov
	stats.Duration = time.Since(start)

	log.Info(ctx, "seeding finished",
		logger.Int("generated", stats.Generated),
		logger.Any("accepted", stats.Accepted),
		logger.Any("duplicate", stats.Duplicate),
		logger.Any("failed", stats.Failed),
		logger.Int("visible", stats.Visible),
		logger.Duration("duration", stats.Duration),
	)
	return stats, nil
}

func submit(ctx context.Context, client *Client, cfg Config, recs []model.PanelRecord, stats *Stats, log logger.Logger) {
	batchSize := max(cfg.BatchSize, 1)
	workers := max(cfg.Workers, 1)

	batches := make(chan []model.PanelRecord, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batches {
				res, err := submitWithRetry(ctx, client, batch)
				if err != nil {
					atomic.AddInt64(&stats.Failed, int64(len(batch)))
					log.Warn(ctx, "batch failed", logger.Int("size", len(batch)), logger.Error(err))
					continue
				}
				atomic.AddInt64(&stats.Accepted, int64(res.Accepted))
				atomic.AddInt64(&stats.Duplicate, int64(res.Duplicate))
			}
		}()
	}

	go func() {
		defer close(batches)
		for lo := 0; lo < len(recs); lo += batchSize {
			hi := min(lo+batchSize, len(recs))
			select {
			case <-ctx.Done():
				return
			case batches <- recs[lo:hi]:
			}
		}
	}()
	wg.Wait()
}

// submitWithRetry resubmits a batch refused for backpressure. Records the
// service took before refusing come back as duplicates on the next attempt.
func submitWithRetry(ctx context.Context, client *Client, batch []model.PanelRecord) (BatchResult, error) {
	for attempt := 0; attempt < maxSubmitAttempts; attempt++ {
		res, err := client.Submit(ctx, batch)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrBackpressure) {
			return BatchResult{}, err
		}
		select {
		case <-ctx.Done():
			return BatchResult{}, ctx.Err()
		case <-time.After(backpressureDelay):
		}
	}
	return BatchResult{}, fmt.Errorf("gave up after %d attempts: %w", maxSubmitAttempts, ErrBackpressure)
}

// settle polls /overview until at least want panels are visible.
func settle(ctx context.Context, client *Client, want int) (int, error) {
	var seen int
	for i := 0; i < settlePolls; i++ {
		ov, err := client.Overview(ctx, nil)
		if err != nil {
			return seen, err
		}
		seen = ov.Total
		if seen >= want {
			return seen, nil
		}
		select {
		case <-ctx.Done():
			return seen, ctx.Err()
		case <-time.After(settleInterval):
		}
	}
	return seen, nil
}
