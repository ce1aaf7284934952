/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decode.go
Description: Decode command implementation for the Akaylee Decoder. Handles the main
decode search with comprehensive configuration, engine management, interactive
confirmation, and final statistics reporting.
*/

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
	"github.com/kleascm/akaylee-decoder/pkg/core"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
	"github.com/kleascm/akaylee-decoder/pkg/logging"
	"github.com/kleascm/akaylee-decoder/pkg/search"
	"github.com/kleascm/akaylee-decoder/pkg/utils"
)

// RunDecode executes the main decode search
func RunDecode(cmd *cobra.Command, args []string) error {
	fmt.Println("🔓 Akaylee Decoder - Starting Decode Session")
	fmt.Println("============================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	// Resolve the input text
	input, err := ReadInput(args, "input_file")
	if err != nil {
		return err
	}

	// Create engine configuration
	config := createEngineConfig()

	// Setup structured file logging
	appLogger, err := createAppLogger(config)
	if err != nil {
		return fmt.Errorf("failed to setup log files: %w", err)
	}
	defer appLogger.Close()
	logger := appLogger.GetLogger()

	// Create the checker stack
	checker := checkers.NewDefaultChecker(config.LexicalThreshold)

	// Create decode engine
	engine := core.NewEngine()

	// Set up components
	if err := setupDecoderComponents(engine, checker, logger); err != nil {
		return fmt.Errorf("failed to setup decoder components: %w", err)
	}

	// Initialize engine
	if err := engine.Initialize(config); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\n🛑 Received shutdown signal, stopping decoder...")
		cancel()
	}()

	// Create the searcher and wire the confirmation gate
	searcher := search.NewSearcher(engine, checker, config, logger)
	if !viper.GetBool("auto_confirm") {
		searcher.SetConfirmer(NewTerminalConfirmer(os.Stdin))
	}

	fmt.Printf("🔬 Input: %d bytes | entropy %.3f bits/byte\n", len(input), checkers.Shannon(input))
	fmt.Println()

	// Run the search
	result, err := searcher.Search(ctx, input)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	// Print results and statistics
	printSearchResult(result)
	printFinalStats(engine, appLogger)

	// Write JSON report if requested
	if viper.GetBool("write_report") {
		path, err := utils.WriteReport(viper.GetString("report_dir"), "decode", result)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("\n📄 Report saved: %s\n", path)
	}

	fmt.Println("\n✨ Decode session completed!")
	return nil
}

// setupDecoderComponents configures all decode engine components
func setupDecoderComponents(engine *core.Engine, checker interfaces.Checker, logger *logrus.Logger) error {
	engine.SetRegistry(core.NewRegistry())
	engine.SetChecker(checker)
	engine.SetLogger(logger)
	engine.SetReporter(core.NewLoggerReporter(logger))

	return nil
}

// createEngineConfig creates the engine configuration from viper
func createEngineConfig() *interfaces.EngineConfig {
	return &interfaces.EngineConfig{
		Workers:          viper.GetInt("workers"),
		LexicalThreshold: viper.GetFloat64("lexical_threshold"),
		MaxDepth:         viper.GetInt("max_depth"),
		MaxFrontier:      viper.GetInt("max_frontier"),
		LogLevel:         viper.GetString("log_level"),
		LogFormat:        viper.GetString("log_format"),
		LogDir:           viper.GetString("log_dir"),
		ReportDir:        viper.GetString("report_dir"),
	}
}

// createAppLogger builds the structured file logger from configuration
func createAppLogger(config *interfaces.EngineConfig) (*logging.Logger, error) {
	loggerConfig := &logging.LoggerConfig{
		Level:     logging.LogLevel(config.LogLevel),
		Format:    logging.LogFormat(config.LogFormat),
		OutputDir: config.LogDir,
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    true,
		Compress:  viper.GetBool("log_compress"),
	}

	if err := loggerConfig.Validate(); err != nil {
		return nil, err
	}

	return logging.NewLogger(loggerConfig)
}

// printSearchResult prints the outcome of the decode search
func printSearchResult(result *search.SearchResult) {
	fmt.Println("📊 Search Result")
	fmt.Println("================")

	if result.Found {
		fmt.Printf("✅ Plaintext: %s\n", result.Plaintext)
		if len(result.Path) > 0 {
			fmt.Printf("   Path: %s\n", strings.Join(result.Path, " -> "))
		} else {
			fmt.Println("   Path: input was already plaintext")
		}
	} else {
		fmt.Println("❌ No verified plaintext found")
		fmt.Println("   Try raising --max-depth or lowering --threshold")
	}

	fmt.Printf("   Rounds: %d | Examined: %d | Duration: %v\n",
		result.Rounds, result.Examined, result.Duration)
}

// printFinalStats prints comprehensive final statistics
func printFinalStats(engine *core.Engine, appLogger *logging.Logger) {
	stats := engine.GetStats()

	fmt.Println()
	fmt.Println("📈 Engine Statistics")
	fmt.Println("====================")
	fmt.Printf("Batches Run: %v\n", stats["batches_run"])
	fmt.Printf("Attempts Completed: %v\n", stats["attempts_completed"])
	fmt.Printf("Matches: %v\n", stats["matches"])
	fmt.Printf("Exhaustions: %v\n", stats["exhaustions"])
	fmt.Printf("Panics Recovered: %v\n", stats["panics_recovered"])

	rate, _ := stats["attempts_per_second"].(float64)
	appLogger.LogStats(
		stats["batches_run"].(int64),
		stats["attempts_completed"].(int64),
		stats["matches"].(int64),
		stats["exhaustions"].(int64),
		rate,
		nil,
	)
}

// TerminalConfirmer asks the operator to accept or reject each verified hit.
type TerminalConfirmer struct {
	reader *bufio.Reader
}

// NewTerminalConfirmer creates a confirmer reading y/n answers from r.
func NewTerminalConfirmer(r io.Reader) *TerminalConfirmer {
	return &TerminalConfirmer{reader: bufio.NewReader(r)}
}

// Confirm prompts for a decision on the candidate plaintext.
func (c *TerminalConfirmer) Confirm(outcome *interfaces.Outcome) bool {
	fmt.Printf("\n🔎 Candidate plaintext from %s:\n   %s\n", outcome.Decoder, outcome.Plaintext())
	if outcome.Verdict != nil {
		fmt.Printf("   Verdict: %s (%s)\n", outcome.Verdict.Checker, outcome.Verdict.Reason)
	}
	fmt.Print("   Accept? [y/N]: ")

	line, err := c.reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
