package cron

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Job is a task that runs once a day at a fixed wall-clock time.
type Job struct {
	Name string
	At   string // "HH:MM", local time
	Fn   func(ctx context.Context) error
}

// Scheduler runs daily jobs, such as the after-closing sales summary.
// Each job fires at its configured time of day, not on an interval from
// process start, so a restart at noon still reports in the evening.
type Scheduler struct {
	jobs   []Job
	now    func() time.Time
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddDailyJob registers a job to run every day at the given "HH:MM".
func (s *Scheduler) AddDailyJob(name, at string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name: name,
		At:   at,
		Fn:   fn,
	})
	slog.Info("Daily job registered", "name", name, "at", at)
}

// Start begins running all registered jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for them to exit.
func (s *Scheduler) Stop() {
	slog.Info("Stopping scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	for {
		// Recomputed every cycle so clock changes don't drift the fire time.
		timer := time.NewTimer(nextRun(s.now(), job.At).Sub(s.now()))
		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Daily job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Debug("Daily job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Daily job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Daily job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all registered jobs immediately, ignoring their schedule.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Daily job failed", "name", job.Name, "error", err)
		}
	}
}

// nextRun returns the first occurrence of the "HH:MM" wall-clock time
// strictly after now, in now's location.
func nextRun(now time.Time, at string) time.Time {
	hour, minute := parseAt(at)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func parseAt(at string) (hour, minute int) {
	h, m, _ := strings.Cut(at, ":")
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	return hour, minute
}
