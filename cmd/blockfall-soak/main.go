package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	frameTime := flag.Duration("frame", time.Second/60, "Simulated time per frame.")
	pressRate := flag.Float64("press-rate", 0.2, "Chance of a key press on each frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for pieces and input. Zero picks a random one.")
	flag.Parse()

	seed, err := cfg.ResolveSeed()
	if err != nil {
		log.Fatalf("Failed to pick a seed: %v", err)
	}

	log.Printf("Starting soak run with seed %d...", seed)

	clock := driver.NewFrameClock(time.Unix(0, 0))
	game := driver.NewGame(seed, session.WithClock(clock))

	scheduler := loop.NewScheduler()
	scheduler.Register(clock)
	scheduler.Register(&driver.InputSystem{Game: game, Source: NewRandomSource(seed, *pressRate)})
	scheduler.Register(&driver.TickSystem{Game: game})
	scheduler.Register(&driver.RestartSystem{Game: game})

	report := &Report{
		Duration:       *duration,
		Seed:           seed,
		FrameTime:      *frameTime,
		PressRate:      *pressRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := frameTime.Seconds()
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = time.Duration(totalUpdates) * *frameTime
	report.Totals = game.Totals
	report.Systems = scheduler.GetStats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
