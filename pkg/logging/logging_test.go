/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Comprehensive tests for the logging system. Tests logger creation,
formatting, file output, rotation, and analysis capabilities.
*/

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerCreation tests logger creation with different configurations
func TestLoggerCreation(t *testing.T) {
	// Test with default configuration
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Close()
	os.RemoveAll("./logs")

	// Test with custom configuration
	config := &LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatJSON,
		OutputDir: t.TempDir(),
		MaxFiles:  5,
		MaxSize:   1024 * 1024, // 1MB
		Timestamp: true,
		Caller:    true,
		Colors:    false,
		Compress:  false,
	}

	logger, err = NewLogger(config)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Close()
}

// TestLoggerConfigValidate tests config validation
func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: "./logs",
		MaxFiles:  10,
		MaxSize:   1024,
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name    string
		mutate  func(c *LoggerConfig)
		wantErr string
	}{
		{"empty output dir", func(c *LoggerConfig) { c.OutputDir = "" }, "output_dir"},
		{"zero max files", func(c *LoggerConfig) { c.MaxFiles = 0 }, "max_files"},
		{"zero max size", func(c *LoggerConfig) { c.MaxSize = 0 }, "max_size"},
		{"bad format", func(c *LoggerConfig) { c.Format = "xml" }, "unsupported log format"},
		{"bad level", func(c *LoggerConfig) { c.Level = "verbose" }, "unsupported log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := *valid
			tc.mutate(&config)

			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// TestLogLevels tests different log levels
func TestLogLevels(t *testing.T) {
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatText,
		OutputDir: t.TempDir(),
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: false,
		Caller:    false,
		Colors:    false,
	})
	require.NoError(t, err)
	defer logger.Close()

	// Test all log levels
	logger.Debug("Debug message", map[string]interface{}{"key": "value"})
	logger.Info("Info message", map[string]interface{}{"key": "value"})
	logger.Warning("Warning message", map[string]interface{}{"key": "value"})
	logger.Error("Error message", map[string]interface{}{"key": "value"})
}

// TestLogFormats tests different log formats
func TestLogFormats(t *testing.T) {
	formats := []LogFormat{
		LogFormatText,
		LogFormatJSON,
		LogFormatCustom,
	}

	for _, format := range formats {
		t.Run(string(format), func(t *testing.T) {
			logger, err := NewLogger(&LoggerConfig{
				Level:     LogLevelInfo,
				Format:    format,
				OutputDir: t.TempDir(),
				MaxFiles:  5,
				MaxSize:   1024 * 1024,
				Timestamp: true,
				Caller:    true,
				Colors:    false,
			})
			require.NoError(t, err)
			defer logger.Close()

			logger.Info("Test message", map[string]interface{}{
				"test_key": "test_value",
				"number":   42,
			})
		})
	}
}

// TestDecoderSpecificLogging tests decoder-specific logging methods
func TestDecoderSpecificLogging(t *testing.T) {
	outputDir := t.TempDir()

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatText,
		OutputDir: outputDir,
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
		Caller:    false,
		Colors:    false,
	})
	require.NoError(t, err)
	defer logger.Close()

	// Test attempt logging
	logger.LogAttempt("Base64URL", 2*time.Millisecond, true, map[string]interface{}{
		"candidates": 1,
	})

	// Test match logging
	logger.LogMatch("Caesar", "LexicalChecker", "attack at dawn", map[string]interface{}{
		"shift": 13,
	})

	// Test exhaustion logging
	logger.LogExhausted("zzzzzz", 6, map[string]interface{}{
		"duration": 10 * time.Millisecond,
	})

	// Test round logging
	logger.LogRound(2, 28, map[string]interface{}{
		"examined": 12,
	})

	// Test stats logging
	logger.LogStats(10, 60, 4, 6, 120.5, map[string]interface{}{
		"panics": 0,
	})

	// The decoder events must land in the active log file
	files, err := filepath.Glob(filepath.Join(outputDir, "akaylee-decoder_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Plaintext identified")
	assert.Contains(t, content, "Battery exhausted without a verified hit")
	assert.Contains(t, content, "Statistics update")
}

// TestLoggerRotate tests active file rotation
func TestLoggerRotate(t *testing.T) {
	outputDir := t.TempDir()

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: outputDir,
		MaxFiles:  10,
		MaxSize:   16, // startup message alone exceeds this
		Timestamp: true,
		Caller:    false,
		Colors:    false,
	})
	require.NoError(t, err)
	defer logger.Close()

	require.NoError(t, logger.Rotate())

	files, err := filepath.Glob(filepath.Join(outputDir, "akaylee-decoder_*.log*"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(files), 2, "rotation keeps the old file and opens a new one")
}

// TestLogManager tests log management functionality
func TestLogManager(t *testing.T) {
	logDir := t.TempDir()

	// Create log manager
	manager := NewLogManager(logDir, 3, 1024, false)

	// Create some test log files
	testFiles := []string{
		"akaylee-decoder_2026-01-01_10-00-00.log",
		"akaylee-decoder_2026-01-01_11-00-00.log",
		"akaylee-decoder_2026-01-01_12-00-00.log",
		"akaylee-decoder_2026-01-01_13-00-00.log",
	}

	for _, filename := range testFiles {
		path := filepath.Join(logDir, filename)
		file, err := os.Create(path)
		require.NoError(t, err)
		file.Close()
	}

	// Test cleanup
	err := manager.CleanupOldLogs()
	require.NoError(t, err)

	// Verify cleanup worked
	files, err := filepath.Glob(filepath.Join(logDir, "akaylee-decoder_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 3) // Should keep only 3 files

	// Test log stats
	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalFiles)
}

// TestLogManagerCompression tests gzip compression on rotation
func TestLogManagerCompression(t *testing.T) {
	logDir := t.TempDir()

	manager := NewLogManager(logDir, 10, 8, true)

	path := filepath.Join(logDir, "akaylee-decoder_2026-01-01_10-00-00.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("decode\n", 16)), 0644))

	require.NoError(t, manager.RotateLogs())

	// Original is gone, a compressed rotated file remains
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	compressed, err := filepath.Glob(filepath.Join(logDir, "akaylee-decoder_*.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, compressed, 1)
}

// TestLogAnalyzer tests log analysis functionality
func TestLogAnalyzer(t *testing.T) {
	logDir := t.TempDir()

	// Create test log file with various entries
	logFile := filepath.Join(logDir, "akaylee-decoder_2026-01-01_10-00-00.log")
	file, err := os.Create(logFile)
	require.NoError(t, err)

	// Write test log entries
	testLogs := []string{
		"2026-01-01 10:00:01 DEBUG Decoder attempt completed decoder=Base64URL success=false",
		"2026-01-01 10:00:02 DEBUG Search round started round=1 pending=1",
		"2026-01-01 10:00:03 INFO Plaintext identified decoder=Caesar checker=LexicalChecker",
		"2026-01-01 10:00:04 WARN Battery exhausted without a verified hit attempts=6",
		"2026-01-01 10:00:05 ERROR Decoder panicked, converting to failed outcome decoder=Z85",
		"2026-01-01 10:00:06 INFO Statistics update batches=10 matches=4",
	}

	for _, logEntry := range testLogs {
		file.WriteString(logEntry + "\n")
	}
	file.Close()

	// Test log analysis
	analyzer := NewLogAnalyzer(logDir)
	analysis, err := analyzer.AnalyzeLogs()
	require.NoError(t, err)

	// Verify analysis results
	assert.Equal(t, 1, analysis.LogFiles)
	assert.Equal(t, int64(6), analysis.TotalLines)
	assert.Equal(t, int64(2), analysis.DebugCount)
	assert.Equal(t, int64(2), analysis.InfoCount)
	assert.Equal(t, int64(1), analysis.WarningCount)
	assert.Equal(t, int64(1), analysis.ErrorCount)
	assert.Equal(t, int64(1), analysis.MatchCount)
	assert.Equal(t, int64(1), analysis.ExhaustedCount)
	assert.Equal(t, int64(1), analysis.AttemptCount)
	assert.Equal(t, int64(1), analysis.PanicCount)
	assert.Equal(t, int64(1), analysis.RoundCount)

	// Test log summary
	summary := analysis.GetLogSummary()
	assert.Contains(t, summary, "Log Analysis Summary")
	assert.Contains(t, summary, "Files: 1")
	assert.Contains(t, summary, "Total Lines: 6")
}

// TestCustomFormatter tests the custom formatter
func TestCustomFormatter(t *testing.T) {
	formatter := &CustomFormatter{
		Timestamp: true,
		Caller:    true,
		Colors:    false,
	}

	// Create a test log entry
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Test message",
		Time:    time.Now(),
		Data: logrus.Fields{
			"key1": "value1",
			"key2": 42,
		},
	}

	// Format the entry
	formatted, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.NotEmpty(t, formatted)

	// Verify formatting
	formattedStr := string(formatted)
	assert.Contains(t, formattedStr, "INFO")
	assert.Contains(t, formattedStr, "Test message")
	assert.Contains(t, formattedStr, "key1=value1")
	assert.Contains(t, formattedStr, "key2=42")
}

// TestDecoderFormatter tests the decoder-specific formatter
func TestDecoderFormatter(t *testing.T) {
	formatter := &DecoderFormatter{
		CustomFormatter: CustomFormatter{
			Timestamp: true,
			Caller:    false,
			Colors:    false,
		},
		ShowVerdicts:   true,
		ShowCandidates: true,
	}

	// Test with different message types
	testCases := []struct {
		message string
		prefix  string
	}{
		{"Decoder attempt completed", "ATTEMPT"},
		{"Plaintext identified", "MATCH"},
		{"Battery exhausted without a verified hit", "EXHAUSTED"},
		{"Decoder panicked, converting to failed outcome", "PANIC"},
		{"Statistics update", "STATS"},
		{"Search round started", "SEARCH"},
		{"Worker started", "WORKER"},
		{"Decode engine initialized", "ENGINE"},
		{"Random message", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			entry := &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Time:    time.Now(),
				Data:    logrus.Fields{},
			}

			formatted, err := formatter.Format(entry)
			require.NoError(t, err)
			formattedStr := string(formatted)

			if tc.prefix != "" {
				assert.Contains(t, formattedStr, "["+tc.prefix+"]")
			} else {
				assert.NotContains(t, formattedStr, "[")
			}
		})
	}
}

// TestDecoderFormatterValues tests decoder-specific value formatting
func TestDecoderFormatterValues(t *testing.T) {
	formatter := &DecoderFormatter{
		CustomFormatter: CustomFormatter{Colors: false},
	}

	entry := &logrus.Entry{
		Level:   logrus.DebugLevel,
		Message: "Decoder attempt completed",
		Time:    time.Now(),
		Data: logrus.Fields{
			"entropy":          4.25,
			"outcome_id":       "0123456789abcdef",
			"duration":         1500 * time.Millisecond,
			"attempts_per_sec": 120.5,
		},
	}

	formatted, err := formatter.Format(entry)
	require.NoError(t, err)
	formattedStr := string(formatted)

	assert.Contains(t, formattedStr, "entropy=4.250 bits/byte")
	assert.Contains(t, formattedStr, "outcome_id=01234567...")
	assert.Contains(t, formattedStr, "duration=1.5s")
	assert.Contains(t, formattedStr, "attempts_per_sec=120.50/sec")
}
