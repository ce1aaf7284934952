/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reverse.go
Description: Reverse decoder strategy. Reverses the input rune by rune, the
cheapest transformation in the battery and the catch-all for mirrored text.
*/

package decoders

import (
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// ReverseDecoder un-mirrors text. Reversal happens on runes, not bytes, so
// multi-byte characters survive intact. Palindromes reverse to themselves
// and are rejected as no-ops.
type ReverseDecoder struct {
	info interfaces.DecoderInfo
}

// NewReverseDecoder creates the reversal strategy.
func NewReverseDecoder() *ReverseDecoder {
	return &ReverseDecoder{
		info: interfaces.DecoderInfo{
			Name:            "Reverse",
			Description:     "Rune-wise text reversal",
			Link:            "http://string-functions.com/reverse.aspx",
			Tags:            []string{"reverse", "decoder"},
			Popularity:      0.2,
			ExpectedRuntime: 0.01,
			FailureRuntime:  0.01,
			ExpectedSuccess: 1.0,
			EntropyLow:      1.0,
			EntropyHigh:     10.0,
		},
	}
}

// Attempt reverses the text. Only empty input is structurally undecodable;
// everything else produces a candidate for the checker.
func (d *ReverseDecoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	if text == "" {
		return newFailure(d.info.Name, text)
	}

	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	candidate := string(runes)
	if !viableCandidate(text, candidate) {
		return newFailure(d.info.Name, text)
	}

	return verify(d.info.Name, text, candidate, checker)
}

// Name returns the strategy name
func (d *ReverseDecoder) Name() string {
	return d.info.Name
}

// Tags returns the strategy classification labels
func (d *ReverseDecoder) Tags() []string {
	return d.info.Tags
}

// Info returns the full strategy metadata
func (d *ReverseDecoder) Info() interfaces.DecoderInfo {
	return d.info
}
