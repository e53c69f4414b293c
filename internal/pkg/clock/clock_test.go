//go:build unit

package clock_test

import (
	"testing"
	"time"

	"auction-sync/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	assert.Equal(t, 10*time.Minute, clock.Remaining(clk, now.Add(10*time.Minute)))
	assert.Zero(t, clock.Remaining(clk, now))
	assert.Zero(t, clock.Remaining(clk, now.Add(-time.Second)))

	clk.Add(4 * time.Minute)
	assert.Equal(t, 6*time.Minute, clock.Remaining(clk, now.Add(10*time.Minute)))
}
