package health

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Status represents the health check response
type Status struct {
	Status        string    `json:"status"`
	LastRun       time.Time `json:"last_run,omitempty"`
	LastError     string    `json:"last_error,omitempty"`
	RunCount      int64     `json:"run_count"`
	IsRunning     bool      `json:"is_running"`
	Uptime        string    `json:"uptime"`
	NextRun       string    `json:"next_run,omitempty"`
	BatchInterval string    `json:"batch_interval,omitempty"`
}

// Status values
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Checker maintains health check state for the daemon and its batch runs
type Checker struct {
	mu           sync.RWMutex
	lastRunTime  time.Time
	lastRunError error
	runCount     int64
	isRunning    bool
	startTime    time.Time
	interval     time.Duration
	now          func() time.Time
}

// NewChecker creates a new health checker. interval is the batch interval,
// zero when no periodic batch is scheduled.
func NewChecker(interval time.Duration) *Checker {
	return &Checker{
		startTime: time.Now(),
		interval:  interval,
		now:       time.Now,
	}
}

// UpdateRunStatus records the outcome of a batch run
func (c *Checker) UpdateRunStatus(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastRunTime = c.now()
	c.lastRunError = err
	c.runCount++
}

// SetRunning sets the running state
func (c *Checker) SetRunning(running bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isRunning = running
}

// GetStatus returns the current health status
func (c *Checker) GetStatus() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	status := Status{
		Status:    StatusHealthy,
		LastRun:   c.lastRunTime,
		RunCount:  c.runCount,
		IsRunning: c.isRunning,
		Uptime:    now.Sub(c.startTime).Round(time.Second).String(),
	}
	if c.interval > 0 {
		status.BatchInterval = c.interval.String()
	}

	if c.lastRunError != nil {
		status.Status = StatusDegraded
		status.LastError = c.lastRunError.Error()
	}

	if !c.lastRunTime.IsZero() && c.interval > 0 {
		nextRun := c.lastRunTime.Add(c.interval)
		if nextRun.After(now) {
			status.NextRun = nextRun.Sub(now).Round(time.Second).String()
		}

		// Mark as unhealthy if last run was too long ago (2x interval)
		if now.Sub(c.lastRunTime) > 2*c.interval {
			status.Status = StatusUnhealthy
		}
	}

	return status
}

// Handler returns a gin handler for health checks
func (c *Checker) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.GetStatus()

		code := http.StatusOK
		if status.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		ctx.JSON(code, status)
	}
}

// Register mounts the health endpoints on r
func (c *Checker) Register(r gin.IRoutes) {
	h := c.Handler()
	r.GET("/health", h)
	r.GET("/healthz", h) // Kubernetes compatibility
	r.GET("/ready", h)   // Readiness probe
}
