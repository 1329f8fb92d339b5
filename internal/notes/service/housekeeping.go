package service

import (
	"context"
	"log/slog"
	"time"
)

// Task is a named unit of periodic cleanup.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// HousekeepingService periodically runs cleanup tasks, such as sweeping
// expired entries out of the login limiter.
type HousekeepingService struct {
	Logger   *slog.Logger
	Interval time.Duration
	Tasks    []Task

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewHousekeepingService(logger *slog.Logger, interval time.Duration, tasks ...Task) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &HousekeepingService{
		Logger:   logger,
		Interval: interval,
		Tasks:    tasks,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "tasks", len(s.Tasks))
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce executes every task once. Each task is independent; a failure in
// one won't stop the others. It returns the number of tasks that succeeded.
func (s *HousekeepingService) RunOnce(ctx context.Context) int {
	var ok int
	for _, t := range s.Tasks {
		if err := t.Run(ctx); err != nil {
			s.Logger.Error("housekeeping task failed", "task", t.Name, "error", err)
			continue
		}
		ok++
	}
	s.Logger.Debug("housekeeping completed", "successful_tasks", ok)
	return ok
}
