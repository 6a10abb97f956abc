package domain

import (
	"fmt"
	"time"
)

const (
	DefaultWateringInterval    = 24 * time.Hour
	DefaultFertilizingInterval = 48 * time.Hour
)

const loginRequiredMessage = "Login Required"

// Reminder is a pure progress computation over a start instant and an
// interval. There is no background ticking: callers recompute on every
// render.
type Reminder struct {
	Name       string
	Start      *time.Time
	Interval   time.Duration
	DueMessage string
}

// Progress reports how far the reminder interval has elapsed at the
// given instant, as a 0..100 percentage plus a human-readable message.
func (r Reminder) Progress(now time.Time) (float64, string) {
	if r.Start == nil {
		return 0, loginRequiredMessage
	}

	elapsed := now.Sub(*r.Start)
	if elapsed >= r.Interval {
		return 100, r.DueMessage
	}
	if elapsed < 0 {
		elapsed = 0
	}

	percent := 100 * float64(elapsed) / float64(r.Interval)
	return percent, "Time left: " + formatRemaining(r.Interval-elapsed)
}

// formatRemaining renders a duration as H:MM:SS, hours uncapped.
func formatRemaining(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
