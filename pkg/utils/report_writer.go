/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing decode results to the reports directory.
Handles timestamped, kind-specific subdirectory naming. Ensures directories
exist and writes JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultReportDir is used when no report directory is configured.
const DefaultReportDir = "reports"

// WriteReport writes a decode result to the reports directory with timestamp and kind
func WriteReport(reportDir string, kind string, payload interface{}) (string, error) {
	if reportDir == "" {
		reportDir = DefaultReportDir
	}

	// Ensure reports directory and subdirectory exist
	kindDir := filepath.Join(reportDir, kind)
	if err := os.MkdirAll(kindDir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create report directory")
	}

	// Generate filename: 2026-08-25_01-30-00_decode_3f2a1b9c.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_%s.json", timestamp, kind, uuid.New().String()[:8])
	filePath := filepath.Join(kindDir, filename)

	// Marshal payload to JSON
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal report payload")
	}

	// Write to file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", errors.Wrap(err, "failed to write report file")
	}

	return filePath, nil
}
