// Command queuedemo drives a queue.Manager with a small burst of synthetic
// work and prints each task's outcome, to exercise the package end-to-end
// outside of its test suite.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/johanjanssens/taskqueue/queue"
)

func main() {
	// Load .env if present; absence is not an error.
	_ = godotenv.Load()

	logger := queue.NewLogger(queue.LevelInfo, os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	depth := envInt("QUEUEDEMO_DEPTH", 10)
	count := envInt("QUEUEDEMO_COUNT", 20)

	var (
		mu        sync.Mutex
		completed int
		rejected  int
	)

	mgr, err := queue.NewManager(
		queue.Config{
			Name:        "queuedemo",
			Depth:       depth,
			CommandFunc: simulateWork,
		},
		queue.WithLogger(logger),
		queue.WithTimeout(2*time.Second),
		queue.WithMaxAge(30*time.Second),
		queue.WithCallback(func(result any, status queue.Status, args any) {
			mu.Lock()
			defer mu.Unlock()
			if status == queue.StatusQueueFull {
				rejected++
				return
			}
			completed++
			logger.Info("task finished", "args", args, "status", status.String(), "result", result)
		}),
	)
	if err != nil {
		logger.Error("failed to build queue manager", "error", err)
		os.Exit(1)
	}

	for i := 0; i < count; i++ {
		mgr.Add(i, nil)
	}

	// Wait for the burst to drain, or for a shutdown signal.
	for mgr.Length() > 0 {
		select {
		case <-ctx.Done():
			goto shutdown
		case <-time.After(100 * time.Millisecond):
		}
	}

shutdown:
	mu.Lock()
	logger.Info("demo complete", "completed", completed, "rejected", rejected, "submitted", count)
	mu.Unlock()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := mgr.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("shutdown did not complete cleanly", "error", err)
	}
}

// simulateWork stands in for a real opaque command, introducing jittered
// latency so the demo exercises the dispatcher's timing behavior.
func simulateWork(ctx context.Context, args any) (any, error) {
	delay := time.Duration(10+rand.Intn(40)) * time.Millisecond
	select {
	case <-time.After(delay):
		return fmt.Sprintf("task %v done", args), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
