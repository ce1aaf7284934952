/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the Akaylee Decoder engine. Defines the fundamental
data structures used throughout the decode pipeline including batch results
and the atomic statistics shared across workers.
*/

package core

import (
	"sync/atomic"
	"time"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// BatchStatus is the terminal state of one dispatch batch
type BatchStatus string

const (
	// StatusMatched means a decoder produced checker-approved plaintext
	StatusMatched BatchStatus = "matched"

	// StatusExhausted means every decoder completed without a verified hit
	StatusExhausted BatchStatus = "exhausted"
)

// BatchResult represents the result of dispatching one input across the
// decoder battery. A matched batch carries the winning outcome; an exhausted
// batch carries every completed outcome in completion order so callers can
// mine the unverified candidates for further rounds.
type BatchResult struct {
	Status   BatchStatus           `json:"status"`             // Terminal state of the batch
	Input    string                `json:"input"`              // The text that was dispatched
	Winner   *interfaces.Outcome   `json:"winner,omitempty"`   // Winning outcome, set only when matched
	Attempts []*interfaces.Outcome `json:"attempts,omitempty"` // All completed outcomes, set only when exhausted
	Duration time.Duration         `json:"duration"`           // Wall-clock time for the whole batch
}

// Matched reports whether the batch ended with verified plaintext.
func (r *BatchResult) Matched() bool {
	return r.Status == StatusMatched
}

// Plaintext returns the verified plaintext of a matched batch, or the empty
// string for an exhausted one.
func (r *BatchResult) Plaintext() string {
	if r.Winner == nil {
		return ""
	}
	return r.Winner.Plaintext()
}

// EngineStats tracks pipeline statistics. All counters use atomic operations
// for thread safety across workers.
type EngineStats struct {
	BatchesRun        int64     `json:"batches_run"`        // Total inputs dispatched
	AttemptsCompleted int64     `json:"attempts_completed"` // Decoder invocations consumed by the engine
	Matches           int64     `json:"matches"`            // Batches that ended in verified plaintext
	Exhaustions       int64     `json:"exhaustions"`        // Batches where the whole battery failed
	PanicsRecovered   int64     `json:"panics_recovered"`   // Decoder panics converted to failures
	StartTime         time.Time `json:"start_time"`         // When the engine was initialized
}

// IncrementBatches atomically increments the batch counter
func (s *EngineStats) IncrementBatches() {
	atomic.AddInt64(&s.BatchesRun, 1)
}

// IncrementAttempts atomically increments the completed attempt counter
func (s *EngineStats) IncrementAttempts() {
	atomic.AddInt64(&s.AttemptsCompleted, 1)
}

// IncrementMatches atomically increments the match counter
func (s *EngineStats) IncrementMatches() {
	atomic.AddInt64(&s.Matches, 1)
}

// IncrementExhaustions atomically increments the exhaustion counter
func (s *EngineStats) IncrementExhaustions() {
	atomic.AddInt64(&s.Exhaustions, 1)
}

// IncrementPanics atomically increments the recovered panic counter
func (s *EngineStats) IncrementPanics() {
	atomic.AddInt64(&s.PanicsRecovered, 1)
}
