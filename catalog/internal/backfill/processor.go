// Package backfill runs enrichment tasks over the stored catalog entries.
package backfill

import (
	"context"
	"errors"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/limiter"
	"moviecatalog/pkg/logging"
	"time"

	"go.uber.org/zap"
)

// ErrSkipped is returned by a task's Fill when the entry cannot be enriched,
// for example because the provider does not know it.
var ErrSkipped = errors.New("skipped")

// LockProvider defines a distributed lock provider.
type LockProvider interface {
	Acquire(ctx context.Context, key string) (bool, func() error, error)
}

type entryRepository interface {
	List(ctx context.Context) ([]model.Entry, error)
	Put(ctx context.Context, e *model.Entry) error
}

// Task defines one enrichment pass.
type Task struct {
	Name string
	// Needs reports whether an entry is a candidate.
	Needs func(e *model.Entry) bool
	// Fill enriches e in place.
	Fill func(ctx context.Context, e *model.Entry) error
}

// Report summarizes a task run.
type Report struct {
	Task       string `json:"task"`
	Candidates int    `json:"candidates"`
	Processed  int    `json:"processed"`
	Updated    int    `json:"updated"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	Remaining  int    `json:"remaining"`
}

// Processor defines an enrichment processor.
type Processor struct {
	entries      entryRepository
	limiter      *limiter.Limiter
	lockProvider LockProvider
	logger       *zap.Logger
}

// New creates a new processor. Items are paced by l; lockProvider may be nil
// when a single instance runs the periodic loop.
func New(entries entryRepository, l *limiter.Limiter, lockProvider LockProvider, logger *zap.Logger) *Processor {
	logger = logger.With(
		zap.String(logging.FieldComponent, "backfill"),
	)
	return &Processor{entries: entries, limiter: l, lockProvider: lockProvider, logger: logger}
}

// Run applies task to at most limit candidates (all when limit <= 0). It stops
// between items when ctx is done: writes already made are kept and the
// partial report is returned with ctx's error.
func (p *Processor) Run(ctx context.Context, task Task, limit int) (*Report, error) {
	entries, err := p.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	var candidates []model.Entry
	for i := range entries {
		if task.Needs(&entries[i]) {
			candidates = append(candidates, entries[i])
		}
	}
	report := &Report{Task: task.Name, Candidates: len(candidates)}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	logger := p.logger.With(zap.String("task", task.Name))
	logger.Info("Starting backfill", zap.Int("candidates", report.Candidates), zap.Int("batch", len(candidates)))
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			report.Remaining = report.Candidates - report.Processed
			logger.Info("Backfill interrupted", zap.Int("processed", report.Processed), zap.Error(err))
			return report, err
		}
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				report.Remaining = report.Candidates - report.Processed
				return report, err
			}
		}
		e := &candidates[i]
		report.Processed++
		err := task.Fill(ctx, e)
		switch {
		case errors.Is(err, ErrSkipped):
			report.Skipped++
			continue
		case err != nil:
			if ctx.Err() != nil {
				report.Processed--
				report.Remaining = report.Candidates - report.Processed
				return report, ctx.Err()
			}
			report.Failed++
			logger.Warn("Failed to enrich entry", zap.Int64(logging.FieldMovieID, e.ID), zap.Error(err))
			continue
		}
		if err := p.entries.Put(ctx, e); err != nil {
			report.Failed++
			logger.Warn("Failed to store enriched entry", zap.Int64(logging.FieldMovieID, e.ID), zap.Error(err))
			continue
		}
		report.Updated++
	}
	report.Remaining = report.Candidates - report.Processed
	logger.Info("Backfill completed",
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// Start runs tasks every interval until ctx is done. With a lock provider
// only the instance holding the lock runs a round.
func (p *Processor) Start(ctx context.Context, interval time.Duration, tasks ...Task) error {
	p.logger.Info("Starting the backfill processor", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
		release := func() error { return nil }
		if p.lockProvider != nil {
			acquired, rel, err := p.lockProvider.Acquire(ctx, "locks/service/catalog/backfill")
			if err != nil {
				p.logger.Error("Unable to acquire lock", zap.Error(err))
				continue
			}
			if !acquired {
				continue
			}
			release = rel
		}
		for _, task := range tasks {
			if _, err := p.Run(ctx, task, 0); err != nil {
				p.logger.Error("Backfill error", zap.String("task", task.Name), zap.Error(err))
			}
		}
		if err := release(); err != nil {
			p.logger.Error("Failed to release the lock", zap.Error(err))
		}
	}
}
