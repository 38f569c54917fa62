package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/amaumene/seerrctl/internal/controllers"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	watchCtrl *controllers.WatchController
	logger    *logrus.Logger
	firstRun  sync.WaitGroup
}

// NewScheduler creates a new scheduler
func NewScheduler(schedule string, watchCtrl *controllers.WatchController, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		schedule:  schedule,
		watchCtrl: watchCtrl,
		logger:    logger,
	}
}

// Start registers the watch job and runs it once immediately
func (s *Scheduler) Start() error {
	s.logger.WithField("schedule", s.schedule).Info("Starting scheduler")

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.runWatch()
	})
	if err != nil {
		return fmt.Errorf("failed to add watch job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	s.firstRun.Add(1)
	go func() {
		defer s.firstRun.Done()
		s.runWatch()
	}()

	return nil
}

// Stop stops the scheduler and waits for running jobs, the first run included
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
	s.firstRun.Wait()
}

// runWatch executes the watch job
func (s *Scheduler) runWatch() {
	s.logger.Debug("Running scheduled watch")
	if err := s.watchCtrl.Poll(context.Background()); err != nil {
		s.logger.WithError(err).Error("Watch job failed")
	}
}
