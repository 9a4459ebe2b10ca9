package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/hmraza/weatherman/internal/ingest"
)

// Scheduler periodically syncs the current month's weather file for each
// configured location.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   *ingest.Fetcher
	locations []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []string, interval time.Duration, fetcher *ingest.Fetcher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		fetcher:   fetcher,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic sync job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no sync locations configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		log.Println("scheduler: running weather file sync job")

		now := time.Now().UTC()

		var wg sync.WaitGroup
		for _, loc := range s.locations {
			loc := loc
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.fetcher.SyncMonth(ctx, loc, now.Year(), now.Month()); err != nil {
					log.Printf("scheduler: sync failed for %s: %v", loc, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed weather file sync job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
