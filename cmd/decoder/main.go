/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Decoder. Provides comprehensive
command-line options, configuration management, and beautiful user interface for
controlling the decode process with advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-decoder/cmd/decoder/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string

	// Input configuration
	inputFile string
	checkFile string

	// Engine configuration
	workers          int
	lexicalThreshold float64
	checkThreshold   float64

	// Search configuration
	maxDepth    int
	maxFrontier int

	// Confirmation configuration
	autoConfirm bool

	// Reporting configuration
	reportDir   string
	writeReport bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-decoder",
		Short: "Akaylee Decoder - Automatic encoding detection and reversal engine",
		Long: `Akaylee Decoder is a sophisticated, production-grade decoding engine that strips
layered encodings and classical ciphers from captured text without being told
what they are. Every round fans a battery of decoders out in parallel, verifies
each candidate against plaintext checkers, and keeps peeling until confirmed
plaintext emerges.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add decode command
	decodeCmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Detect and reverse layered encodings on the given text",
		Long: `Run the full decode search on a piece of text. The engine repeatedly fans the
decoder battery out in parallel, verifies every candidate against the plaintext
checkers, and follows promising candidates through multiple rounds until
confirmed plaintext emerges or the search space is exhausted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunDecode,
	}

	// Add decode command flags
	decodeCmd.Flags().StringVar(&inputFile, "file", "", "Read the input text from a file instead of an argument")
	decodeCmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	decodeCmd.Flags().Float64Var(&lexicalThreshold, "threshold", 0.5, "Dictionary fraction required to call text plaintext")
	decodeCmd.Flags().IntVar(&maxDepth, "max-depth", 4, "Maximum number of decode rounds")
	decodeCmd.Flags().IntVar(&maxFrontier, "max-frontier", 256, "Maximum candidates carried into the next round")
	decodeCmd.Flags().BoolVar(&autoConfirm, "yes", false, "Accept every verified hit without prompting")
	decodeCmd.Flags().BoolVar(&writeReport, "report", false, "Write a JSON report of the search result")
	decodeCmd.Flags().StringVar(&reportDir, "report-dir", "./reports", "Directory for JSON reports")

	// Bind flags to viper
	viper.BindPFlag("input_file", decodeCmd.Flags().Lookup("file"))
	viper.BindPFlag("workers", decodeCmd.Flags().Lookup("workers"))
	viper.BindPFlag("lexical_threshold", decodeCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("max_depth", decodeCmd.Flags().Lookup("max-depth"))
	viper.BindPFlag("max_frontier", decodeCmd.Flags().Lookup("max-frontier"))
	viper.BindPFlag("auto_confirm", decodeCmd.Flags().Lookup("yes"))
	viper.BindPFlag("write_report", decodeCmd.Flags().Lookup("report"))
	viper.BindPFlag("report_dir", decodeCmd.Flags().Lookup("report-dir"))

	rootCmd.AddCommand(decodeCmd)

	// Add check command for the pipeline self-test
	checkCmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Verify the pipeline and optionally inspect text without decoding",
		Long: `Verify that the dictionaries load, the decoder battery builds, and the engine
cracks a known vector. With text supplied, additionally run the pattern and
lexical checkers on it and compare its entropy against each strategy's
advisory band. Useful for tuning the lexical threshold and for inspecting
captured data before a full decode run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunCheck,
	}

	// Add check command flags
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Read the input text from a file instead of an argument")
	checkCmd.Flags().Float64Var(&checkThreshold, "threshold", 0.5, "Dictionary fraction required to call text plaintext")

	// Bind flags to viper
	viper.BindPFlag("check_file", checkCmd.Flags().Lookup("file"))
	viper.BindPFlag("check_threshold", checkCmd.Flags().Lookup("threshold"))

	rootCmd.AddCommand(checkCmd)

	// Add list-decoders command
	listDecodersCmd := &cobra.Command{
		Use:   "list-decoders",
		Short: "List registered decoders and their capabilities",
		Long: `List all decoders registered in the Akaylee Decoder battery with detailed
descriptions of their capabilities, popularity, and expected entropy bands.`,
		Run: func(cmd *cobra.Command, args []string) {
			commands.ListDecoders(cmd, args)
		},
	}
	rootCmd.AddCommand(listDecodersCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
