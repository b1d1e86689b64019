package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	noon := time.Date(2025, 9, 15, 12, 0, 0, 0, loc)

	tests := []struct {
		name string
		now  time.Time
		at   string
		want time.Time
	}{
		{
			name: "later today",
			now:  noon,
			at:   "21:00",
			want: time.Date(2025, 9, 15, 21, 0, 0, 0, loc),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  noon,
			at:   "09:30",
			want: time.Date(2025, 9, 16, 9, 30, 0, 0, loc),
		},
		{
			name: "exactly now rolls to tomorrow",
			now:  noon,
			at:   "12:00",
			want: time.Date(2025, 9, 16, 12, 0, 0, 0, loc),
		},
		{
			name: "month boundary",
			now:  time.Date(2025, 9, 30, 22, 0, 0, 0, loc),
			at:   "21:00",
			want: time.Date(2025, 10, 1, 21, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRun(tt.now, tt.at)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.True(t, got.After(tt.now))
		})
	}
}

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	s.AddDailyJob("summary", "21:00", func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	s.AddDailyJob("failing", "21:00", func(ctx context.Context) error {
		ran.Add(1)
		return errors.New("send failed")
	})

	// A failing job must not stop the others.
	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), ran.Load())
}

func TestStop_ExitsBeforeFireTime(t *testing.T) {
	s := NewScheduler()

	s.AddDailyJob("summary", "21:00", func(ctx context.Context) error {
		t.Error("job must not fire")
		return nil
	})
	// Pin "now" so the job is always hours away from firing.
	s.now = func() time.Time {
		return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	}

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Stop did not return")
	}
}

func TestDailyJobFiresAtConfiguredTime(t *testing.T) {
	s := NewScheduler()

	fired := make(chan struct{}, 1)
	s.AddDailyJob("summary", "21:00", func(ctx context.Context) error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	})
	// Hold "now" just before the fire time so the timer is a few
	// milliseconds, not hours.
	s.now = func() time.Time {
		return time.Date(2025, 9, 15, 20, 59, 59, 990_000_000, time.UTC)
	}

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		require.Fail(t, "job did not fire at its scheduled time")
	}
}
