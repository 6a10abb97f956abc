package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rooftop/internal/domain"
)

func TestReminderServiceBeforeLogin(t *testing.T) {
	t.Parallel()

	service := NewReminderService(0, 0, fixedClock{now: time.Now()})

	statuses := service.Statuses(domain.NewSession())

	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Zero(t, status.Percent)
		assert.Equal(t, "Login Required", status.Message)
	}
	assert.Equal(t, "Water", statuses[0].Name)
	assert.Equal(t, "Fertilizer", statuses[1].Name)
}

func TestReminderServiceAfterLogin(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	// 12h into a 24h watering / 48h fertilizing cycle.
	service := NewReminderService(24*time.Hour, 48*time.Hour, fixedClock{now: start.Add(12 * time.Hour)})

	session := domain.NewSession()
	session.Arm("shiva", start)

	statuses := service.Statuses(session)

	require.Len(t, statuses, 2)
	assert.InDelta(t, 50, statuses[0].Percent, 0.01)
	assert.Equal(t, "Time left: 12:00:00", statuses[0].Message)
	assert.InDelta(t, 25, statuses[1].Percent, 0.01)
	assert.Equal(t, "Time left: 36:00:00", statuses[1].Message)
}

func TestReminderServiceDueMessages(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	service := NewReminderService(24*time.Hour, 48*time.Hour, fixedClock{now: start.Add(72 * time.Hour)})

	session := domain.NewSession()
	session.Arm("karthik", start)

	statuses := service.Statuses(session)

	assert.Equal(t, float64(100), statuses[0].Percent)
	assert.Equal(t, "Time to water!", statuses[0].Message)
	assert.Equal(t, float64(100), statuses[1].Percent)
	assert.Equal(t, "Time to fertilize!", statuses[1].Message)
}
