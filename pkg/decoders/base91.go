/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base91.go
Description: basE91 decoder strategy. Reverses the dense 91-character ASCII
encoding using the standard basE91 alphabet.
*/

package decoders

import (
	"unicode/utf8"

	"github.com/mtraver/base91"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Base91Decoder reverses basE91, a binary-to-text encoding that packs 13 or
// 14 bits into two ASCII characters. Its alphabet covers most printable
// ASCII, so plenty of ordinary text is coincidentally decodable and the
// checker carries more of the burden than it does for stricter encodings.
type Base91Decoder struct {
	info interfaces.DecoderInfo
}

// NewBase91Decoder creates the basE91 strategy.
func NewBase91Decoder() *Base91Decoder {
	return &Base91Decoder{
		info: interfaces.DecoderInfo{
			Name:            "Base91",
			Description:     "basE91 binary-to-text encoding",
			Link:            "https://base91.sourceforge.net/",
			Tags:            []string{"base91", "decoder", "base"},
			Popularity:      0.3,
			ExpectedRuntime: 0.01,
			FailureRuntime:  0.01,
			ExpectedSuccess: 0.7,
			EntropyLow:      1.0,
			EntropyHigh:     10.0,
		},
	}
}

// Attempt decodes with the standard basE91 alphabet. Decoded bytes must form
// valid UTF-8 text.
func (d *Base91Decoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	decoded, err := base91.StdEncoding.DecodeString(text)
	if err != nil {
		return newFailure(d.info.Name, text)
	}

	if !utf8.Valid(decoded) {
		return newFailure(d.info.Name, text)
	}

	candidate := string(decoded)
	if !viableCandidate(text, candidate) {
		return newFailure(d.info.Name, text)
	}

	return verify(d.info.Name, text, candidate, checker)
}

// Name returns the strategy name
func (d *Base91Decoder) Name() string {
	return d.info.Name
}

// Tags returns the strategy classification labels
func (d *Base91Decoder) Tags() []string {
	return d.info.Tags
}

// Info returns the full strategy metadata
func (d *Base91Decoder) Info() interfaces.DecoderInfo {
	return d.info
}
