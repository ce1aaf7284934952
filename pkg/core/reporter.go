/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for Akaylee Decoder
telemetry. Allows the engine to notify listeners of attempt, match, and
exhaustion events without coupling dispatch to any output format.
*/

package core

import (
	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Reporter defines the interface for pipeline lifecycle hooks.
// The engine calls these from its consumer loop, never concurrently.
type Reporter interface {
	// OnAttempt is called after each decoder outcome is consumed.
	OnAttempt(outcome *interfaces.Outcome)
	// OnMatch is called when a batch ends in verified plaintext.
	OnMatch(result *BatchResult)
	// OnExhausted is called when the whole battery fails on an input.
	OnExhausted(result *BatchResult)
}

// NopReporter discards every event. Used when no reporter is injected.
type NopReporter struct{}

// OnAttempt discards the event.
func (r *NopReporter) OnAttempt(outcome *interfaces.Outcome) {}

// OnMatch discards the event.
func (r *NopReporter) OnMatch(result *BatchResult) {}

// OnExhausted discards the event.
func (r *NopReporter) OnExhausted(result *BatchResult) {}

// LoggerReporter logs pipeline events using the standard logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnAttempt logs each consumed outcome at debug level.
func (r *LoggerReporter) OnAttempt(outcome *interfaces.Outcome) {
	r.logger.WithFields(logrus.Fields{
		"decoder":    outcome.Decoder,
		"success":    outcome.Success,
		"candidates": len(outcome.Candidates),
	}).Debug("Decoder attempt completed")
}

// OnMatch logs the winning outcome.
func (r *LoggerReporter) OnMatch(result *BatchResult) {
	r.logger.WithFields(logrus.Fields{
		"decoder":  result.Winner.Decoder,
		"checker":  result.Winner.Verdict.Checker,
		"duration": result.Duration.String(),
	}).Info("Plaintext identified")
}

// OnExhausted logs a fully failed batch.
func (r *LoggerReporter) OnExhausted(result *BatchResult) {
	r.logger.WithFields(logrus.Fields{
		"attempts": len(result.Attempts),
		"duration": result.Duration.String(),
	}).Warn("Battery exhausted without a verified hit")
}
