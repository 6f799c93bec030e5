package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSourceReleasesEveryPress(t *testing.T) {
	src := NewRandomSource(3, 1.0)

	first := src.Poll()
	require.Len(t, first, 1)
	assert.Equal(t, session.Pressed, first[0].Edge)
	pressed := first[0].Key

	second := src.Poll()
	require.Len(t, second, 2)
	assert.Equal(t, session.Event{Key: pressed, Edge: session.Released}, second[0])
	assert.Equal(t, session.Pressed, second[1].Edge)
}

func TestRandomSourceNeverPressesAtZeroRate(t *testing.T) {
	src := NewRandomSource(3, 0)
	for range 100 {
		assert.Empty(t, src.Poll())
	}
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	clock := driver.NewFrameClock(time.Unix(0, 0))
	game := driver.NewGame(5, session.WithClock(clock))
	scheduler := loop.NewScheduler()
	scheduler.Register(clock)
	scheduler.Register(&driver.InputSystem{Game: game, Source: NewRandomSource(5, 0.5)})
	scheduler.Register(&driver.TickSystem{Game: game})
	scheduler.Register(&driver.RestartSystem{Game: game})

	for range 5000 {
		scheduler.Once(0.1)
	}

	report := &Report{
		Seed:       5,
		FrameTime:  100 * time.Millisecond,
		PressRate:  0.5,
		Totals:     game.Totals,
		Systems:    scheduler.GetStats().Systems,
		UpdateTime: Stats{Samples: []time.Duration{time.Millisecond}},
	}
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Soak Report")
	assert.Contains(t, out, "**Seed:** 5")
	assert.Contains(t, out, "**Press Rate:** 0.50")
	assert.Contains(t, out, "TickSystem")
	assert.Positive(t, game.Totals.Pieces)
}
