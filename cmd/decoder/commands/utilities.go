/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for the Akaylee Decoder. Provides list-decoders
for battery inspection and the check self-test covering dictionary load,
registry build, an engine smoke decode, and optional input inspection.
*/

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
	"github.com/kleascm/akaylee-decoder/pkg/core"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
	"github.com/kleascm/akaylee-decoder/pkg/storage"
)

// smokeVector is "attack at dawn" behind one Base64URL layer. The check
// command cracks it to prove the whole pipeline is wired.
const smokeVector = "YXR0YWNrIGF0IGRhd24="

// ListDecoders lists all registered decoders and their capabilities
func ListDecoders(cmd *cobra.Command, args []string) {
	fmt.Println("🧩 Akaylee Decoder - Registered Decoders")
	fmt.Println("========================================")
	fmt.Println()

	registry := core.NewRegistry()

	for i, decoder := range registry.Decoders() {
		info := decoder.Info()

		fmt.Printf("%d. %s\n", i+1, info.Name)
		fmt.Printf("   Description: %s\n", info.Description)
		fmt.Printf("   Tags: %s\n", strings.Join(info.Tags, ", "))
		fmt.Printf("   Popularity: %.1f | Expected success: %.1f\n", info.Popularity, info.ExpectedSuccess)
		fmt.Printf("   Entropy band: %.1f-%.1f bits/byte\n", info.EntropyLow, info.EntropyHigh)
		if info.Link != "" {
			fmt.Printf("   Link: %s\n", info.Link)
		}
		fmt.Println()
	}

	fmt.Printf("✨ %d decoders fan out in parallel on every decode round\n", registry.Size())
	fmt.Println("   Use the decode command to run the full battery on captured text")
}

// RunCheck runs the pipeline self-check: dictionary load, registry build, and
// a smoke decode of a known vector. When text is supplied it is additionally
// inspected with the checkers and its entropy is compared against each
// strategy's advisory band, without any decoding.
func RunCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Decoder - Self Check")
	fmt.Println("===============================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	// Dictionary corpora
	words, ok := storage.Dictionary("english")
	if !ok {
		return fmt.Errorf("english dictionary is not embedded")
	}
	fmt.Printf("📚 Dictionaries: %s (english: %d words)\n",
		strings.Join(storage.Dictionaries(), ", "), len(words))

	// Decoder battery
	registry := core.NewRegistry()
	fmt.Printf("🧩 Registry: %d decoders (%s)\n",
		registry.Size(), strings.Join(registry.Names(), ", "))

	// Engine smoke decode
	checker := checkers.NewDefaultChecker(viper.GetFloat64("check_threshold"))

	quiet := logrus.New()
	quiet.SetLevel(logrus.ErrorLevel)

	engine := core.NewEngine()
	engine.SetRegistry(registry)
	engine.SetChecker(checker)
	engine.SetLogger(quiet)
	if err := engine.Initialize(&interfaces.EngineConfig{}); err != nil {
		return fmt.Errorf("engine initialization failed: %w", err)
	}

	batch, err := engine.Crack(context.Background(), smokeVector)
	if err != nil {
		return fmt.Errorf("smoke decode failed: %w", err)
	}
	if !batch.Matched() {
		return fmt.Errorf("smoke decode did not verify the known vector")
	}
	fmt.Printf("⚙️  Engine: smoke vector decoded by %s in %v\n", batch.Winner.Decoder, batch.Duration)
	fmt.Println()

	// Without input text the self-check is the whole job
	if len(args) == 0 && viper.GetString("check_file") == "" {
		fmt.Println("✅ All systems operational")
		return nil
	}

	input, err := ReadInput(args, "check_file")
	if err != nil {
		return err
	}

	entropy := checkers.Shannon(input)

	fmt.Println("🔬 Input Inspection")
	fmt.Println("-------------------")
	fmt.Printf("📏 Length: %d bytes\n", len(input))
	fmt.Printf("🌀 Entropy: %.3f bits/byte\n", entropy)
	fmt.Println()

	for _, decoder := range registry.Decoders() {
		info := decoder.Info()
		marker := "outside"
		if checkers.InBand(entropy, info.EntropyLow, info.EntropyHigh) {
			marker = "within"
		}
		fmt.Printf("   %-9s advisory band %.1f-%.1f: %s\n", info.Name, info.EntropyLow, info.EntropyHigh, marker)
	}
	fmt.Println()

	verdict := checker.Check(input)
	if verdict.Identified {
		fmt.Printf("✅ Recognized by %s\n", verdict.Checker)
		fmt.Printf("   Reason: %s\n", verdict.Reason)
	} else {
		fmt.Println("❌ Not recognized as plaintext")
		fmt.Printf("   Reason: %s\n", verdict.Reason)
		fmt.Println("   Run the decode command to search for hidden encodings.")
	}

	return nil
}
