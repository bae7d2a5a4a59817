package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/internal/infrastructure/buffer"
	"github.com/semexe/backend/repository"
	"github.com/semexe/backend/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// FlusherConfig controls how frequently the buffer is drained.
type FlusherConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// FeedbackFlusher drains locally buffered feedback into the primary store
// once it is reachable again.
type FeedbackFlusher struct {
	store    *buffer.Store
	monitor  ConnectionHealth
	feedback repository.FeedbackRepository
	logger   *zap.Logger
	cron     *cron.Cron
	cfg      FlusherConfig
}

func NewFeedbackFlusher(
	store *buffer.Store,
	monitor ConnectionHealth,
	feedback repository.FeedbackRepository,
	logger *zap.Logger,
	cfg FlusherConfig,
) *FeedbackFlusher {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &FeedbackFlusher{
		store:    store,
		monitor:  monitor,
		feedback: feedback,
		logger:   logger,
		cfg:      cfg,
		cron:     cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = f.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := f.Drain(ctx); err != nil {
			f.logger.Error("feedback buffer drain failed", zap.Error(err))
		}
	})

	return f
}

// Start launches the cron scheduler.
func (f *FeedbackFlusher) Start() {
	if f == nil || f.cron == nil {
		return
	}
	f.cron.Start()
	f.logger.Info("feedback flusher started")
}

// Stop gracefully stops the scheduler.
func (f *FeedbackFlusher) Stop(ctx context.Context) {
	if f == nil || f.cron == nil {
		return
	}
	stopCtx := f.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	f.logger.Info("feedback flusher stopped")
}

// Drain pushes buffered feedback to the store, oldest first. Items that keep
// failing are dropped after MaxRetries attempts.
func (f *FeedbackFlusher) Drain(ctx context.Context) error {
	if f == nil || f.store == nil {
		return nil
	}
	if f.monitor != nil && !f.monitor.IsOnline() {
		f.logger.Debug("skipping feedback drain (offline)")
		return nil
	}

	items, err := f.store.GetBatch(f.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		fb := item.Feedback
		if err := f.feedback.Create(ctx, &fb); err != nil {
			f.logger.Error("failed to flush buffered feedback",
				zap.String("item_id", item.ID),
				zap.Error(err))

			item.Attempts++
			if item.Attempts >= f.cfg.MaxRetries {
				f.logger.Warn("dropping buffered feedback (max retries reached)", zap.String("item_id", item.ID))
				_ = f.store.Remove(item)
				continue
			}

			if err := f.store.Requeue(item); err != nil {
				f.logger.Error("failed to requeue buffered feedback", zap.Error(err))
			}
			continue
		}

		if err := f.store.Remove(item); err != nil {
			f.logger.Warn("failed to purge flushed feedback", zap.Error(err))
		}
	}
	return nil
}

// BufferFeedback persists a submission locally for a later flush.
func (f *FeedbackFlusher) BufferFeedback(ctx context.Context, fb *domain.Feedback) error {
	if f == nil || f.store == nil {
		return fmt.Errorf("feedback buffer not configured")
	}
	if fb == nil {
		return domain.ErrInvalidPayload
	}
	return f.store.Enqueue(buffer.Item{Feedback: *fb})
}

// Size returns the number of buffered items.
func (f *FeedbackFlusher) Size() int {
	if f == nil || f.store == nil {
		return 0
	}
	size, err := f.store.Size()
	if err != nil {
		return 0
	}
	return size
}

var _ usecase.FeedbackBuffer = (*FeedbackFlusher)(nil)
