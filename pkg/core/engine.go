/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main decode engine implementation. Dispatches one input across
the whole decoder battery in parallel, short-circuits on the first verified
plaintext, and reports an exhausted batch when every strategy fails.
*/

package core

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Engine runs the decode-and-verify pipeline. It owns a fixed worker count,
// a shared checker, and the decoder registry, and it hands every dispatched
// input to all registered strategies at once.
type Engine struct {
	config *interfaces.EngineConfig
	stats  *EngineStats
	logger *logrus.Logger

	// Core components
	registry *Registry
	checker  interfaces.Checker
	reporter Reporter

	// Worker management
	workers []*Worker

	// State management
	initialized bool
	mu          sync.RWMutex
}

// NewEngine creates a new decode engine instance.
func NewEngine() *Engine {
	return &Engine{
		stats:    &EngineStats{},
		logger:   logrus.New(),
		reporter: &NopReporter{},
	}
}

// SetRegistry injects the decoder battery. Must be called before Initialize.
func (e *Engine) SetRegistry(registry *Registry) {
	e.registry = registry
}

// SetChecker injects the plausibility checker shared by all workers. Must be
// called before Initialize.
func (e *Engine) SetChecker(checker interfaces.Checker) {
	e.checker = checker
}

// SetLogger injects the logger used by the engine and its workers.
func (e *Engine) SetLogger(logger *logrus.Logger) {
	e.logger = logger
}

// SetReporter injects the lifecycle event reporter.
func (e *Engine) SetReporter(reporter Reporter) {
	e.reporter = reporter
}

// Initialize validates the injected components and builds the worker pool.
// A worker count of zero auto-detects from the CPU count; counts above the
// battery size are capped because a batch never has more jobs than decoders.
func (e *Engine) Initialize(config *interfaces.EngineConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if e.registry == nil {
		return fmt.Errorf("registry not set - use SetRegistry() before Initialize()")
	}
	if e.registry.Size() == 0 {
		return fmt.Errorf("registry contains no decoders")
	}
	if e.checker == nil {
		return fmt.Errorf("checker not set - use SetChecker() before Initialize()")
	}
	if config.Workers < 0 {
		return fmt.Errorf("worker count cannot be negative: %d", config.Workers)
	}

	workerCount := config.Workers
	if workerCount == 0 {
		workerCount = runtime.NumCPU()
	}
	if workerCount > e.registry.Size() {
		workerCount = e.registry.Size()
	}

	e.workers = make([]*Worker, workerCount)
	for i := range e.workers {
		e.workers[i] = NewWorker(i, e.checker, e.stats, e.logger)
	}

	e.config = config
	e.stats.StartTime = time.Now()
	e.initialized = true

	e.logger.WithFields(logrus.Fields{
		"workers":  workerCount,
		"decoders": e.registry.Size(),
		"battery":  e.registry.Names(),
	}).Info("Decode engine initialized")

	return nil
}

// Crack dispatches the input across the whole battery and returns the first
// verified plaintext as a matched batch. When every decoder completes without
// a verified hit, the batch is exhausted and carries all outcomes in
// completion order. The context cancels the batch cooperatively: queued work
// stops, in-flight attempts finish on their own.
func (e *Engine) Crack(ctx context.Context, text string) (*BatchResult, error) {
	e.mu.RLock()
	if !e.initialized {
		e.mu.RUnlock()
		return nil, fmt.Errorf("engine not initialized - call Initialize() first")
	}
	battery := e.registry.Decoders()
	workers := e.workers
	e.mu.RUnlock()

	start := time.Now()
	e.stats.IncrementBatches()

	jobs := make(chan interfaces.Decoder)
	results := make(chan *interfaces.Outcome, len(battery))
	var stop atomic.Bool

	// Fan out: one goroutine per worker, all draining the shared job feed.
	// The results buffer holds the entire battery, so a worker finishing
	// after the batch already matched never blocks.
	for _, worker := range workers {
		go func(w *Worker) {
			for decoder := range jobs {
				if stop.Load() {
					continue
				}
				results <- w.Attempt(decoder, text)
			}
		}(worker)
	}

	// Feed: every decoder gets the same input exactly once. A match or a
	// cancellation stops the feed; jobs already handed out run to completion.
	go func() {
		defer close(jobs)
		for _, decoder := range battery {
			if stop.Load() {
				return
			}
			select {
			case jobs <- decoder:
			case <-ctx.Done():
				return
			}
		}
	}()

	completed := make([]*interfaces.Outcome, 0, len(battery))
	for range battery {
		select {
		case outcome := <-results:
			e.stats.IncrementAttempts()
			e.reporter.OnAttempt(outcome)

			if outcome.Success {
				stop.Store(true)
				e.stats.IncrementMatches()

				result := &BatchResult{
					Status:   StatusMatched,
					Input:    text,
					Winner:   outcome,
					Duration: time.Since(start),
				}
				e.reporter.OnMatch(result)
				return result, nil
			}
			completed = append(completed, outcome)

		case <-ctx.Done():
			stop.Store(true)
			return nil, ctx.Err()
		}
	}

	e.stats.IncrementExhaustions()
	result := &BatchResult{
		Status:   StatusExhausted,
		Input:    text,
		Attempts: completed,
		Duration: time.Since(start),
	}
	e.reporter.OnExhausted(result)
	return result, nil
}

// Stats returns the engine statistics structure.
func (e *Engine) Stats() *EngineStats {
	return e.stats
}

// GetStats returns a point-in-time snapshot of engine statistics.
func (e *Engine) GetStats() map[string]interface{} {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := map[string]interface{}{
		"batches_run":        atomic.LoadInt64(&e.stats.BatchesRun),
		"attempts_completed": atomic.LoadInt64(&e.stats.AttemptsCompleted),
		"matches":            atomic.LoadInt64(&e.stats.Matches),
		"exhaustions":        atomic.LoadInt64(&e.stats.Exhaustions),
		"panics_recovered":   atomic.LoadInt64(&e.stats.PanicsRecovered),
		"workers":            len(e.workers),
	}
	if e.registry != nil {
		stats["decoders"] = e.registry.Size()
	}
	if e.initialized {
		uptime := time.Since(e.stats.StartTime).Seconds()
		stats["uptime_seconds"] = uptime
		if uptime > 0 {
			stats["attempts_per_second"] = float64(atomic.LoadInt64(&e.stats.AttemptsCompleted)) / uptime
		}
	}
	return stats
}
