package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_DefaultsRunTimeout(t *testing.T) {
	s := New(nil, Config{CronSchedule: "0 3 * * *"}, zap.NewNop())
	assert.Equal(t, 30*time.Minute, s.config.RunTimeout)
}

func TestScheduler_Start(t *testing.T) {
	t.Run("rejects an invalid cron expression", func(t *testing.T) {
		s := New(nil, Config{CronSchedule: "not-a-schedule"}, zap.NewNop())
		assert.Error(t, s.Start())
	})

	t.Run("starts and stops cleanly", func(t *testing.T) {
		s := New(nil, Config{CronSchedule: "0 3 * * *"}, zap.NewNop())
		require.NoError(t, s.Start())
		s.Stop()
		// A second Stop is a no-op.
		s.Stop()
	})
}
