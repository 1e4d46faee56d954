package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAveragesFrameTime(t *testing.T) {
	m := NewMetrics()
	m.Update(0.010)
	m.Update(0.020)
	assert.InDelta(t, 15.0, m.FrameTime(), 1e-9)
	assert.Zero(t, m.FPS())
}

func TestMetricsRollingWindowDropsOldest(t *testing.T) {
	m := NewMetrics()
	m.Update(1.0)
	for i := 0; i < AVG_COUNT; i++ {
		m.Update(0.002)
	}
	assert.InDelta(t, 2.0, m.FrameTime(), 1e-9)
}

func TestMetricsFPSAfterOneSecond(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 64; i++ {
		m.Update(1.0 / 64)
	}
	fps, ms := m.Frame()
	assert.InDelta(t, 64.0, fps, 1e-6)
	assert.InDelta(t, 15.625, ms, 1e-9)
}

func TestClockElapsed(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClockWithSource(func() time.Time { return now })

	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	now = now.Add(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
	assert.False(t, c.Running())
}
