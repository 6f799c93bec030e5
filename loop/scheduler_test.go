package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
)

type countingSystem struct {
	ExecuteCount int
	LastDelta    float64
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

type sleepySystem struct {
	sleep time.Duration
}

func (s *sleepySystem) Execute(frame *loop.Frame) {
	time.Sleep(s.sleep)
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var order []string
		scheduler := loop.NewScheduler()
		scheduler.Register(&countingSystem{order: &order, name: "input"})
		scheduler.Register(&countingSystem{order: &order, name: "tick"})
		scheduler.Register(&countingSystem{order: &order, name: "render"})

		scheduler.Once(1.0 / 60.0)
		scheduler.Once(1.0 / 60.0)

		want := []string{"input", "tick", "render", "input", "tick", "render"}
		if len(order) != len(want) {
			t.Fatalf("expected %d executions, got %d", len(want), len(order))
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("execution %d: expected %s, got %s", i, want[i], order[i])
			}
		}
	})

	t.Run("delta time and frame numbers", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		var numbers []int64
		scheduler.Register(counter)
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			numbers = append(numbers, frame.Number)
		}))

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		if counter.LastDelta != 0.25 {
			t.Errorf("expected last delta 0.25, got %f", counter.LastDelta)
		}
		if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 2 {
			t.Errorf("expected frame numbers [1 2], got %v", numbers)
		}
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var events []string

		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frame.Commands.Defer(func() { events = append(events, "deferred") })
			events = append(events, "first")
		}))
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			events = append(events, "second")
		}))

		scheduler.Once(0)

		want := []string{"first", "second", "deferred"}
		if len(events) != len(want) {
			t.Fatalf("expected %v, got %v", want, events)
		}
		for i := range want {
			if events[i] != want[i] {
				t.Errorf("expected %v, got %v", want, events)
				break
			}
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 || stats.Frames != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	scheduler.Register(&sleepySystem{sleep: 2 * time.Millisecond})
	scheduler.Register(&countingSystem{})

	stats = scheduler.GetStats()
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any run, got %v", stats.Systems[0].MinDuration)
	}

	for range 3 {
		scheduler.Once(0)
	}

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", stats.Frames)
	}

	sleepy := stats.Systems[0]
	if sleepy.Name != "sleepySystem" {
		t.Errorf("expected name sleepySystem, got %s", sleepy.Name)
	}
	if sleepy.ExecutionCount != 3 {
		t.Errorf("expected 3 executions, got %d", sleepy.ExecutionCount)
	}
	if sleepy.MinDuration < 2*time.Millisecond {
		t.Errorf("expected min duration >= 2ms, got %v", sleepy.MinDuration)
	}
	if sleepy.MaxDuration < sleepy.MinDuration || sleepy.AvgDuration < sleepy.MinDuration {
		t.Errorf("inconsistent durations: %+v", sleepy)
	}
	if sleepy.TotalDuration < 6*time.Millisecond {
		t.Errorf("expected total >= 6ms, got %v", sleepy.TotalDuration)
	}
	if stats.Systems[1].Name != "countingSystem" {
		t.Errorf("expected name countingSystem, got %s", stats.Systems[1].Name)
	}
}
