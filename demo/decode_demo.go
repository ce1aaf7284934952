/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decode_demo.go
Description: Beautiful demo showcasing the layered decode search on real samples
including Caesar rotations, stacked Base64URL blobs, and Morse code, plus a
direct tour of the plaintext checkers and the entropy gauge.
*/

package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
	"github.com/kleascm/akaylee-decoder/pkg/core"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
	"github.com/kleascm/akaylee-decoder/pkg/search"
)

func main() {
	fmt.Println("🌸 Akaylee Decoder - Layered Decode Demo 🌸")
	fmt.Println("============================================")
	fmt.Println()

	searcher, err := buildDemoSearcher()
	if err != nil {
		log.Fatalf("Error building decode stack: %v", err)
	}

	// Demo 1: Single Caesar rotation
	demoCaesar(searcher)

	// Demo 2: Two stacked Base64URL layers
	demoLayeredBase64(searcher)

	// Demo 3: Morse code with word gaps
	demoMorse(searcher)

	// Demo 4: Checkers and the entropy gauge
	demoCheckers()

	fmt.Println("🎉 Decode Demo Complete! 🎉")
}

func buildDemoSearcher() (*search.Searcher, error) {
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

func demoCaesar(searcher *search.Searcher) {
	fmt.Println("✨ Demo 1: Caesar Rotation")
	fmt.Println("--------------------------")

	sample := "nggnpx ng qnja"
	fmt.Printf("Encoded sample: %s\n", sample)
	runSearch(searcher, sample)
}

func demoLayeredBase64(searcher *search.Searcher) {
	fmt.Println("📦 Demo 2: Stacked Base64URL")
	fmt.Println("----------------------------")

	inner := base64.URLEncoding.EncodeToString([]byte("attack at dawn"))
	outer := base64.URLEncoding.EncodeToString([]byte(inner))
	fmt.Printf("Encoded sample: %s\n", outer)
	runSearch(searcher, outer)
}

func demoMorse(searcher *search.Searcher) {
	fmt.Println("📡 Demo 3: Morse Code")
	fmt.Println("---------------------")

	sample := ".- - - .- -.-. -.- / .- - / -.. .- .-- -."
	fmt.Printf("Encoded sample: %s\n", sample)
	runSearch(searcher, sample)
}

func runSearch(searcher *search.Searcher, sample string) {
	result, err := searcher.Search(context.Background(), sample)
	if err != nil {
		log.Printf("Error searching: %v", err)
		return
	}

	if result.Found {
		fmt.Printf("Plaintext: %s\n", result.Plaintext)
		if len(result.Path) > 0 {
			fmt.Printf("Path: %s\n", strings.Join(result.Path, " -> "))
		}
	} else {
		fmt.Println("No verified plaintext found")
	}
	fmt.Printf("Rounds: %d | Examined: %d | Duration: %s\n", result.Rounds, result.Examined, result.Duration)
	fmt.Println()
}

func demoCheckers() {
	fmt.Println("🔍 Demo 4: Checkers and Entropy")
	fmt.Println("-------------------------------")

	samples := []string{
		"attack at dawn",
		"https://example.com/api/v1/users",
		"YXR0YWNrIGF0IGRhd24=",
	}

	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)
	for _, sample := range samples {
		verdict := checker.Check(sample)
		entropy := checkers.Shannon(sample)

		status := "❌ not plaintext"
		if verdict.Identified {
			status = fmt.Sprintf("✅ %s", verdict.Checker)
		}
		fmt.Printf("%-36q %.3f bits/byte  %s\n", sample, entropy, status)
	}
	fmt.Println()
}
