package service

import (
	"context"
	"time"

	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/repository/memory"
	"github.com/QTMarketing/lama-cms/pkg/events"
)

type ISchedulerService interface {
	// Run blocks until the context is cancelled.
	Run(ctx context.Context)
}

type schedulerService struct {
	postService IPostService
	bus         *events.Bus
	store       *memory.ContentStore
	interval    time.Duration
	logger      logger.ILogger
}

func NewSchedulerService(postService IPostService, bus *events.Bus, store *memory.ContentStore, interval time.Duration, log logger.ILogger) ISchedulerService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &schedulerService{
		postService: postService,
		bus:         bus,
		store:       store,
		interval:    interval,
		logger:      log,
	}
}

func (s *schedulerService) Run(ctx context.Context) {
	go s.consumeContentChanges(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			published, err := s.postService.PublishDue(ctx)
			if err != nil {
				s.logger.Error("scheduler", "scheduled publish sweep failed", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}
			if published > 0 {
				s.logger.Info("scheduler", "published scheduled posts", map[string]interface{}{
					"count": published,
				})
			}
		}
	}
}

// consumeContentChanges records the last change time per content item so
// the admin UI can surface unsaved-draft hints after a reload.
func (s *schedulerService) consumeContentChanges(ctx context.Context) {
	messages, err := s.bus.Subscribe(ctx, events.TopicContentChanged)
	if err != nil {
		s.logger.Error("scheduler", "failed to subscribe to content changes", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for msg := range messages {
		evt, err := events.Decode(msg)
		if err != nil {
			msg.Ack()
			continue
		}
		kind, _ := evt.Data["kind"].(string)
		id, _ := evt.Data["id"].(string)
		if kind != "" && id != "" {
			s.store.Set("autosave:"+kind+":"+id, time.Now())
		}
		msg.Ack()
	}
}
