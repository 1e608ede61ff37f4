package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	grid, pool, renderer, stats := initializeGame(config)
	displayGameInfo(config, grid)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runGameLoop(ctx, config, grid, pool, renderer, stats)
	})

	if err := eg.Wait(); err != nil && err != context.Canceled {
		fmt.Println("Game loop error:", err)
	}
}

// runGameLoop drives the simulation until cancellation or the generation cap
func runGameLoop(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	defer model.GridToPool(grid, pool)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			displayFinalStats(generation, stats)
			return ctx.Err()
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, grid, stats, lastRestartGen)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			displayFinalStats(generation, stats)
			return nil
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			model.GridToPool(grid, pool)
			grid = restartGame(config, pool)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount)
		}

		// Advance one generation
		grid.Step()
		generation++

		// Wait before next frame
		select {
		case <-time.After(config.FrameRate):
		case <-ctx.Done():
		}
	}
}

// displayFinalStats shows the closing summary
func displayFinalStats(generation int, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
