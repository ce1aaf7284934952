/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: caesar.go
Description: Caesar shift decoder strategy. Tries all 25 rotations of the
Latin alphabet, keeps case, passes non-letters through, and short-circuits
on the first rotation the checker accepts.
*/

package decoders

import (
	"strings"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// CaesarDecoder brute-forces the classic shift cipher. Decoding a shift of
// s is the same as encoding with 26-s, so walking the 25 forward rotations
// covers every possible key.
type CaesarDecoder struct {
	info interfaces.DecoderInfo
}

// NewCaesarDecoder creates the Caesar shift strategy.
func NewCaesarDecoder() *CaesarDecoder {
	return &CaesarDecoder{
		info: interfaces.DecoderInfo{
			Name:            "Caesar",
			Description:     "Caesar shift cipher over the Latin alphabet, all 25 rotations",
			Link:            "https://en.wikipedia.org/wiki/Caesar_cipher",
			Tags:            []string{"caesar", "decryption", "classic", "reciprocal"},
			Popularity:      1.0,
			ExpectedRuntime: 0.01,
			FailureRuntime:  0.25,
			ExpectedSuccess: 0.6,
			EntropyLow:      3.5,
			EntropyHigh:     4.5,
		},
	}
}

// Attempt walks rotations 1 through 25 in order. The first rotation the
// checker identifies wins immediately; when none does, all 25 rotations are
// returned as unverified candidates. Input that shifts to itself (it has no
// letters to rotate) is not decodable at all and yields no candidates.
func (d *CaesarDecoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	candidates := make([]string, 0, 25)

	for shift := 1; shift <= 25; shift++ {
		decoded := shiftText(text, shift)
		if !viableCandidate(text, decoded) {
			return newFailure(d.info.Name, text)
		}

		verdict := checker.Check(decoded)
		if verdict.Identified {
			return newSuccess(d.info.Name, text, decoded, verdict)
		}

		candidates = append(candidates, decoded)
	}

	return newFailure(d.info.Name, text, candidates...)
}

// Name returns the strategy name
func (d *CaesarDecoder) Name() string {
	return d.info.Name
}

// Tags returns the strategy classification labels
func (d *CaesarDecoder) Tags() []string {
	return d.info.Tags
}

// Info returns the full strategy metadata
func (d *CaesarDecoder) Info() interfaces.DecoderInfo {
	return d.info
}

// shiftText rotates every Latin letter forward by the given shift. Case is
// preserved and all other runes pass through untouched.
func shiftText(text string, shift int) string {
	var builder strings.Builder
	builder.Grow(len(text))

	for _, r := range text {
		builder.WriteRune(shiftRune(r, shift))
	}

	return builder.String()
}

// shiftRune rotates a single rune when it is a Latin letter.
func shiftRune(r rune, shift int) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(shift))%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(shift))%26
	default:
		return r
	}
}
