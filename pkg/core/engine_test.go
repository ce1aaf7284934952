/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine_test.go
Description: Tests for the decode engine. Covers dependency-injection
validation, the short-circuit on the first verified plaintext, exhaustion
accounting, panic recovery, cancellation, and end-to-end battery runs.
*/

package core

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// scriptedDecoder lets tests control exactly what a battery member does.
type scriptedDecoder struct {
	name    string
	delay   time.Duration
	panics  bool
	succeed bool
	output  string
}

func (d *scriptedDecoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	if d.panics {
		panic("scripted panic")
	}

	outcome := &interfaces.Outcome{
		ID:        uuid.New().String(),
		Decoder:   d.name,
		Attempted: text,
		Success:   d.succeed,
	}
	if d.succeed {
		outcome.Candidates = []string{d.output}
		outcome.Verdict = &interfaces.Verdict{Identified: true, Checker: "StubChecker", Reason: "scripted"}
	}
	return outcome
}

func (d *scriptedDecoder) Name() string                 { return d.name }
func (d *scriptedDecoder) Tags() []string               { return []string{"test"} }
func (d *scriptedDecoder) Info() interfaces.DecoderInfo { return interfaces.DecoderInfo{Name: d.name} }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine(t *testing.T, workers int, battery ...interfaces.Decoder) *Engine {
	t.Helper()

	engine := NewEngine()
	engine.SetRegistry(NewRegistryWith(battery...))
	engine.SetChecker(checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold))
	engine.SetLogger(quietLogger())
	require.NoError(t, engine.Initialize(&interfaces.EngineConfig{Workers: workers}))
	return engine
}

func TestEngineInitializeValidation(t *testing.T) {
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	t.Run("nil config", func(t *testing.T) {
		engine := NewEngine()
		engine.SetRegistry(NewRegistry())
		engine.SetChecker(checker)
		assert.ErrorContains(t, engine.Initialize(nil), "config cannot be nil")
	})

	t.Run("missing registry", func(t *testing.T) {
		engine := NewEngine()
		engine.SetChecker(checker)
		assert.ErrorContains(t, engine.Initialize(&interfaces.EngineConfig{}),
			"registry not set - use SetRegistry() before Initialize()")
	})

	t.Run("empty registry", func(t *testing.T) {
		engine := NewEngine()
		engine.SetRegistry(NewRegistryWith())
		engine.SetChecker(checker)
		assert.ErrorContains(t, engine.Initialize(&interfaces.EngineConfig{}), "no decoders")
	})

	t.Run("missing checker", func(t *testing.T) {
		engine := NewEngine()
		engine.SetRegistry(NewRegistry())
		assert.ErrorContains(t, engine.Initialize(&interfaces.EngineConfig{}),
			"checker not set - use SetChecker() before Initialize()")
	})

	t.Run("negative workers", func(t *testing.T) {
		engine := NewEngine()
		engine.SetRegistry(NewRegistry())
		engine.SetChecker(checker)
		assert.ErrorContains(t, engine.Initialize(&interfaces.EngineConfig{Workers: -1}), "negative")
	})
}

func TestEngineCrackRequiresInitialize(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Crack(context.Background(), "anything")
	assert.ErrorContains(t, err, "not initialized")
}

func TestEngineShortCircuitsOnMatch(t *testing.T) {
	winner := &scriptedDecoder{name: "winner", succeed: true, output: "plaintext"}
	battery := []interfaces.Decoder{
		winner,
		&scriptedDecoder{name: "loser-1"},
		&scriptedDecoder{name: "loser-2"},
		&scriptedDecoder{name: "loser-3"},
	}
	engine := newTestEngine(t, 1, battery...)

	result, err := engine.Crack(context.Background(), "input")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Matched())
	assert.Equal(t, StatusMatched, result.Status)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "winner", result.Winner.Decoder)
	assert.Equal(t, "plaintext", result.Plaintext())
	assert.Empty(t, result.Attempts, "a matched batch does not carry the losers")

	// The winner is fed first and the consumer returns on its outcome, so
	// exactly one attempt is ever consumed.
	stats := engine.GetStats()
	assert.Equal(t, int64(1), stats["attempts_completed"])
	assert.Equal(t, int64(1), stats["matches"])
}

func TestEngineExhaustionCollectsEveryOutcome(t *testing.T) {
	battery := []interfaces.Decoder{
		&scriptedDecoder{name: "a"},
		&scriptedDecoder{name: "b"},
		&scriptedDecoder{name: "c"},
		&scriptedDecoder{name: "d"},
		&scriptedDecoder{name: "e"},
		&scriptedDecoder{name: "f"},
	}
	engine := newTestEngine(t, 3, battery...)

	result, err := engine.Crack(context.Background(), "input")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Matched())
	assert.Equal(t, StatusExhausted, result.Status)
	assert.Nil(t, result.Winner)
	require.Len(t, result.Attempts, len(battery),
		"an exhausted batch carries exactly one outcome per decoder")

	seen := make(map[string]bool)
	for _, outcome := range result.Attempts {
		assert.False(t, outcome.Success)
		assert.False(t, seen[outcome.Decoder], "decoder %s reported twice", outcome.Decoder)
		seen[outcome.Decoder] = true
	}

	stats := engine.GetStats()
	assert.Equal(t, int64(len(battery)), stats["attempts_completed"])
	assert.Equal(t, int64(1), stats["exhaustions"])
}

func TestEnginePanicRecovery(t *testing.T) {
	battery := []interfaces.Decoder{
		&scriptedDecoder{name: "stable"},
		&scriptedDecoder{name: "unstable", panics: true},
		&scriptedDecoder{name: "stable-2"},
	}
	engine := newTestEngine(t, 2, battery...)

	result, err := engine.Crack(context.Background(), "input")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StatusExhausted, result.Status)
	assert.Len(t, result.Attempts, len(battery),
		"a panicking decoder still reports a failed outcome")

	stats := engine.GetStats()
	assert.Equal(t, int64(1), stats["panics_recovered"])
}

func TestEngineContextCancellation(t *testing.T) {
	battery := []interfaces.Decoder{
		&scriptedDecoder{name: "slow-1", delay: 500 * time.Millisecond},
		&scriptedDecoder{name: "slow-2", delay: 500 * time.Millisecond},
		&scriptedDecoder{name: "slow-3", delay: 500 * time.Millisecond},
	}
	engine := newTestEngine(t, 1, battery...)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := engine.Crack(ctx, "input")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, result)
	assert.Less(t, time.Since(start), 400*time.Millisecond,
		"cancellation must not wait for the whole battery")
}

func TestEngineWorkerCountCappedByBattery(t *testing.T) {
	engine := newTestEngine(t, 64, &scriptedDecoder{name: "only"})

	stats := engine.GetStats()
	assert.Equal(t, 1, stats["workers"])
}

func TestEngineEndToEndVectors(t *testing.T) {
	engine := NewEngine()
	engine.SetRegistry(NewRegistry())
	engine.SetChecker(checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold))
	engine.SetLogger(quietLogger())
	require.NoError(t, engine.Initialize(&interfaces.EngineConfig{}))

	tests := []struct {
		name    string
		input   string
		decoder string
		want    string
	}{
		{"base64url", "aHR0cHM6Ly93d3cuZ29vZ2xlLmNvbS8_ZXhhbXBsZT10ZXN0", "Base64URL", "https://www.google.com/?example=test"},
		{"caesar rot13", "uryyb guvf vf ybat grkg", "Caesar", "hello this is long text"},
		{"morse ip", ".---- ----. ..--- .-.-.- .---- -.... ---.. .-.-.- ----- .-.-.- .----", "Morse", "192.168.0.1"},
		{"reverse", "stac", "Reverse", "cats"},
		{"base91", "TPwJh>Io2Tv!lE", "Base91", "hello world"},
		{"z85", "nm=QNzY&b1A+]nf", "Z85", "Hello World!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Crack(context.Background(), tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.True(t, result.Matched(), "expected a verified decode")
			assert.Equal(t, tt.decoder, result.Winner.Decoder)
			assert.Equal(t, tt.want, result.Plaintext())
			require.NotNil(t, result.Winner.Verdict)
			assert.True(t, result.Winner.Verdict.Identified)
		})
	}
}

func TestEngineEndToEndExhaustion(t *testing.T) {
	registry := NewRegistry()
	engine := NewEngine()
	engine.SetRegistry(registry)
	engine.SetChecker(checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold))
	engine.SetLogger(quietLogger())
	require.NoError(t, engine.Initialize(&interfaces.EngineConfig{}))

	result, err := engine.Crack(context.Background(), "zzzzzz")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StatusExhausted, result.Status)
	assert.Len(t, result.Attempts, registry.Size(),
		"every registered decoder reports exactly once")
}
