/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: Akaylee.go
Description: Batch decode harness. Runs the full decode search on every file in a
samples directory, captures plaintext, decode path, and timing for each, and writes
detailed HTML/JSON reports to ./decode_output. Modular, clean, and beautiful.
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
	"github.com/kleascm/akaylee-decoder/pkg/core"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
	"github.com/kleascm/akaylee-decoder/pkg/search"
)

type DecodeResult struct {
	Sample    string   `json:"sample"`
	Status    string   `json:"status"`
	Plaintext string   `json:"plaintext,omitempty"`
	Path      []string `json:"path,omitempty"`
	Rounds    int      `json:"rounds,omitempty"`
	Error     string   `json:"error,omitempty"`
	Duration  string   `json:"duration"`
}

func newBatchSearcher() (*search.Searcher, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	engine := core.NewEngine()
	engine.SetRegistry(core.NewRegistry())
	engine.SetChecker(checker)
	engine.SetLogger(logger)

	config := &interfaces.EngineConfig{}
	if err := engine.Initialize(config); err != nil {
		return nil, err
	}

	return search.NewSearcher(engine, checker, config, logger), nil
}

func decodeSample(searcher *search.Searcher, sample string, input []byte) DecodeResult {
	text := strings.TrimRight(string(input), "\r\n")

	result, err := searcher.Search(context.Background(), text)
	if err != nil {
		return DecodeResult{Sample: sample, Status: "error", Error: err.Error()}
	}

	out := DecodeResult{
		Sample:   sample,
		Rounds:   result.Rounds,
		Duration: result.Duration.String(),
	}
	if result.Found {
		out.Status = "decoded"
		out.Plaintext = result.Plaintext
		out.Path = result.Path
	} else {
		out.Status = "exhausted"
	}
	return out
}

func main() {
	var results []DecodeResult
	defer func() {
		if r := recover(); r != nil {
			timestamp := time.Now().Format("2006-01-02_15-04-05")
			jsonPath := filepath.Join("./decode_output", fmt.Sprintf("akaylee_decode_report_panic_%s.json", timestamp))
			htmlPath := filepath.Join("./decode_output", fmt.Sprintf("akaylee_decode_report_panic_%s.html", timestamp))
			jsonData, _ := json.MarshalIndent(results, "", "  ")
			os.WriteFile(jsonPath, jsonData, 0644)
			writeHTMLReport(htmlPath, results)
		}
	}()

	samplesDir := "./samples"
	outputDir := "./decode_output"
	os.MkdirAll(outputDir, 0755)

	searcher, err := newBatchSearcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build decode engine: %v\n", err)
		os.Exit(1)
	}

	files, _ := filepath.Glob(filepath.Join(samplesDir, "*"))
	for _, file := range files {
		input, err := os.ReadFile(file)
		if err != nil {
			results = append(results, DecodeResult{Sample: file, Status: "error", Error: err.Error()})
			continue
		}

		res := decodeSample(searcher, file, input)
		results = append(results, res)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		jsonPath := filepath.Join(outputDir, fmt.Sprintf("akaylee_decode_report_live_%s.json", timestamp))
		htmlPath := filepath.Join(outputDir, fmt.Sprintf("akaylee_decode_report_live_%s.html", timestamp))
		jsonData, _ := json.MarshalIndent(results, "", "  ")
		os.WriteFile(jsonPath, jsonData, 0644)
		writeHTMLReport(htmlPath, results)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("akaylee_decode_report_final_%s.json", timestamp))
	htmlPath := filepath.Join(outputDir, fmt.Sprintf("akaylee_decode_report_final_%s.html", timestamp))
	jsonData, _ := json.MarshalIndent(results, "", "  ")
	os.WriteFile(jsonPath, jsonData, 0644)
	writeHTMLReport(htmlPath, results)
}

func writeHTMLReport(path string, results []DecodeResult) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString("<html><head><title>Akaylee Decode Report</title><style>body{font-family:sans-serif;}table{border-collapse:collapse;}th,td{border:1px solid #ccc;padding:4px;}th{background:#eee;}tr.decoded{background:#dfd;}tr.exhausted{background:#ffd;}tr.error{background:#fdd;}</style></head><body>")
	f.WriteString("<h1>Akaylee Decode Report</h1><table><tr><th>Sample</th><th>Status</th><th>Plaintext</th><th>Path</th><th>Rounds</th><th>Duration</th><th>Error</th></tr>")
	for _, r := range results {
		rowClass := r.Status
		f.WriteString(fmt.Sprintf("<tr class='%s'><td>%s</td><td>%s</td><td><pre>%s</pre></td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			rowClass, htmlEscape(r.Sample), r.Status, htmlEscape(r.Plaintext), htmlEscape(strings.Join(r.Path, " -> ")), r.Rounds, r.Duration, htmlEscape(r.Error)))
	}
	f.WriteString("</table></body></html>")
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
