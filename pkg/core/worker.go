/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: worker.go
Description: Worker implementation for parallel decoder dispatch in the
Akaylee Decoder. Runs individual strategy attempts, converts decoder panics
into failed outcomes, and tracks per-worker counters.
*/

package core

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Worker executes decoder attempts inside a dispatch batch. A worker owns no
// goroutine of its own: the engine runs worker methods from its fan-out
// goroutines, so every field mutation here must stay atomic.
type Worker struct {
	ID      int                // Unique worker identifier
	checker interfaces.Checker // Shared plausibility checker
	stats   *EngineStats       // Engine-wide counters
	logger  *logrus.Logger     // Worker-specific logger

	// Performance tracking
	attempts  int64     // Number of decoder attempts executed
	panics    int64     // Number of panics converted to failures
	startTime time.Time // When worker was created
}

// NewWorker creates a new worker instance.
func NewWorker(id int, checker interfaces.Checker, stats *EngineStats, logger *logrus.Logger) *Worker {
	return &Worker{
		ID:        id,
		checker:   checker,
		stats:     stats,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Attempt runs one decoder against the text and always produces an outcome.
// A panicking decoder must not take the batch down, so panics are recovered
// and converted into failed outcomes with no candidates.
func (w *Worker) Attempt(decoder interfaces.Decoder, text string) (outcome *interfaces.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(&w.panics, 1)
			w.stats.IncrementPanics()
			w.logger.WithFields(logrus.Fields{
				"worker_id": w.ID,
				"decoder":   decoder.Name(),
				"panic":     fmt.Sprint(r),
			}).Error("Decoder panicked, converting to failed outcome")

			outcome = &interfaces.Outcome{
				ID:        uuid.New().String(),
				Decoder:   decoder.Name(),
				Attempted: text,
				Success:   false,
			}
		}
	}()

	atomic.AddInt64(&w.attempts, 1)

	outcome = decoder.Attempt(text, w.checker)
	if outcome == nil {
		outcome = &interfaces.Outcome{
			ID:        uuid.New().String(),
			Decoder:   decoder.Name(),
			Attempted: text,
			Success:   false,
		}
	}
	return outcome
}

// GetStats returns worker statistics.
func (w *Worker) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"worker_id": w.ID,
		"attempts":  atomic.LoadInt64(&w.attempts),
		"panics":    atomic.LoadInt64(&w.panics),
		"uptime":    time.Since(w.startTime).String(),
	}
}
