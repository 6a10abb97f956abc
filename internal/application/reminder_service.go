package application

import (
	"time"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

// ReminderStatus is one rendered reminder row.
type ReminderStatus struct {
	Name    string
	Percent float64
	Message string
}

// ReminderService derives the watering and fertilizing reminder rows
// from a session's timer anchors. The intervals are policy injected from
// configuration, not mechanism.
type ReminderService struct {
	watering    time.Duration
	fertilizing time.Duration
	clock       ports.Clock
}

func NewReminderService(watering, fertilizing time.Duration, clock ports.Clock) *ReminderService {
	if watering <= 0 {
		watering = domain.DefaultWateringInterval
	}
	if fertilizing <= 0 {
		fertilizing = domain.DefaultFertilizingInterval
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ReminderService{
		watering:    watering,
		fertilizing: fertilizing,
		clock:       clock,
	}
}

// Statuses recomputes both reminders for the current instant. Before
// login both report zero progress and a login-required message.
func (s *ReminderService) Statuses(session *domain.Session) []ReminderStatus {
	now := s.clock.Now()

	reminders := []domain.Reminder{
		{
			Name:       "Water",
			Start:      session.WaterStart,
			Interval:   s.watering,
			DueMessage: "Time to water!",
		},
		{
			Name:       "Fertilizer",
			Start:      session.FertilizerStart,
			Interval:   s.fertilizing,
			DueMessage: "Time to fertilize!",
		},
	}

	statuses := make([]ReminderStatus, 0, len(reminders))
	for _, reminder := range reminders {
		percent, message := reminder.Progress(now)
		statuses = append(statuses, ReminderStatus{
			Name:    reminder.Name,
			Percent: percent,
			Message: message,
		})
	}

	return statuses
}
