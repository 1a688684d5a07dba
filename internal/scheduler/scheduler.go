package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/remiges-tech/logharbour/logharbour"
)

// JobFunc is the function signature for scheduled runs
type JobFunc func(ctx context.Context) error

// Scheduler runs a job immediately and then periodically until its context ends
type Scheduler struct {
	interval  time.Duration
	job       JobFunc
	logger    *logharbour.Logger
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.Mutex

	// Statistics
	lastRunTime  time.Time
	lastRunError error
	runCount     int64
	startTime    time.Time
}

// New creates a scheduler. An interval <= 0 means a single run.
func New(interval time.Duration, job JobFunc, logger *logharbour.Logger) *Scheduler {
	return &Scheduler{
		interval:  interval,
		job:       job,
		logger:    logger.WithModule("scheduler"),
		startTime: time.Now(),
	}
}

// Run performs the initial run and then one run per interval. It returns
// when ctx is done, after any in-flight run finishes.
func (s *Scheduler) Run(ctx context.Context) {
	defer s.wg.Wait()

	s.logger.Info().LogActivity("Starting initial run", nil)
	s.runSafe(ctx)

	if s.interval <= 0 {
		s.logger.Info().LogActivity("One-shot mode: no interval set, not scheduling further runs", nil)
		return
	}

	s.logger.Info().LogActivity("Scheduler started", map[string]any{"interval": s.interval.String()})
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().LogActivity("Scheduler stopped", nil)
			return
		case <-ticker.C:
			s.runSafe(ctx)
		}
	}
}

// runSafe executes the job with mutex protection to prevent concurrent runs
func (s *Scheduler) runSafe(ctx context.Context) {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		s.logger.Warn().LogActivity("Run already in progress, skipping", nil)
		return
	}
	s.isRunning = true
	s.mu.Unlock()

	s.wg.Add(1)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		s.wg.Done()
	}()

	startTime := time.Now()
	err := s.job(ctx)

	s.mu.Lock()
	s.lastRunTime = time.Now()
	s.lastRunError = err
	s.runCount++
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(err).LogActivity("Run failed", map[string]any{"duration": time.Since(startTime).String()})
	} else {
		s.logger.Info().LogActivity("Run completed", map[string]any{"duration": time.Since(startTime).String()})
	}
}

// Stats returns current scheduler statistics
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastError string
	if s.lastRunError != nil {
		lastError = s.lastRunError.Error()
	}

	return Stats{
		LastRunTime:  s.lastRunTime,
		LastRunError: lastError,
		RunCount:     s.runCount,
		IsRunning:    s.isRunning,
		Uptime:       time.Since(s.startTime),
	}
}

// Stats holds scheduler statistics
type Stats struct {
	LastRunTime  time.Time
	LastRunError string
	RunCount     int64
	IsRunning    bool
	Uptime       time.Duration
}
