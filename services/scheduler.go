// services/scheduler.go
package services

import (
	"context"
	"log"
	"time"

	"fighter-arena/store"

	"github.com/go-co-op/gocron/v2"
)

// RetentionService hard-deletes soft-deleted fighters and contests once they
// are older than Retention.
type RetentionService struct {
	Fighters  store.FighterStore
	Contests  store.ContestStore
	Retention time.Duration
	Now       func() time.Time
}

func NewRetentionService(fighters store.FighterStore, contests store.ContestStore, retention time.Duration) *RetentionService {
	return &RetentionService{Fighters: fighters, Contests: contests, Retention: retention, Now: time.Now}
}

// Purge runs one retention pass and returns how many rows were removed.
func (s *RetentionService) Purge(ctx context.Context) (int64, error) {
	cutoff := s.Now().Add(-s.Retention)

	fighters, err := s.Fighters.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	contests, err := s.Contests.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return fighters, err
	}
	return fighters + contests, nil
}

// StartPurgeScheduler runs Purge every interval until the scheduler is shut down.
func (s *RetentionService) StartPurgeScheduler(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			n, err := s.Purge(ctx)
			if err != nil {
				log.Printf("[Scheduler] Purge failed: %v", err)
				return
			}
			if n > 0 {
				log.Printf("🧹 Purged %d soft-deleted row(s)", n)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	return sched, nil
}
