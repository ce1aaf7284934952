/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: morse.go
Description: Morse code decoder strategy. Translates space-separated dot-dash
tokens through the international Morse table, with "/" and runs of extra
spaces both treated as word gaps.
*/

package decoders

import (
	"strings"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// morseTable maps international Morse tokens to uppercase characters.
var morseTable = map[string]rune{
	".-":   'A',
	"-...": 'B',
	"-.-.": 'C',
	"-..":  'D',
	".":    'E',
	"..-.": 'F',
	"--.":  'G',
	"....": 'H',
	"..":   'I',
	".---": 'J',
	"-.-":  'K',
	".-..": 'L',
	"--":   'M',
	"-.":   'N',
	"---":  'O',
	".--.": 'P',
	"--.-": 'Q',
	".-.":  'R',
	"...":  'S',
	"-":    'T',
	"..-":  'U',
	"...-": 'V',
	".--":  'W',
	"-..-": 'X',
	"-.--": 'Y',
	"--..": 'Z',

	"-----": '0',
	".----": '1',
	"..---": '2',
	"...--": '3',
	"....-": '4',
	".....": '5',
	"-....": '6',
	"--...": '7',
	"---..": '8',
	"----.": '9',

	".-.-.-":  '.',
	"--..--":  ',',
	"..--..":  '?',
	".----.":  '\'',
	"-.-.--":  '!',
	"-..-.":   '/',
	"-.--.":   '(',
	"-.--.-":  ')',
	".-...":   '&',
	"---...":  ':',
	"-.-.-.":  ';',
	"-...-":   '=',
	".-.-.":   '+',
	"-....-":  '-',
	"..--.-":  '_',
	".-..-.":  '"',
	"...-..-": '$',
	".--.-.":  '@',
}

// MorseDecoder reverses international Morse code. Tokens are separated by
// single spaces; a "/" token or an empty token (two spaces in the wire text)
// separates words. One unknown token fails the whole decode, which keeps
// ordinary prose from half-translating into noise.
type MorseDecoder struct {
	info interfaces.DecoderInfo
}

// NewMorseDecoder creates the Morse code strategy.
func NewMorseDecoder() *MorseDecoder {
	return &MorseDecoder{
		info: interfaces.DecoderInfo{
			Name:            "Morse",
			Description:     "International Morse code, space-separated tokens",
			Link:            "https://en.wikipedia.org/wiki/Morse_code",
			Tags:            []string{"morse", "decoder", "signals"},
			Popularity:      0.5,
			ExpectedRuntime: 0.01,
			FailureRuntime:  0.01,
			ExpectedSuccess: 1.0,
			EntropyLow:      1.0,
			EntropyHigh:     10.0,
		},
	}
}

// Attempt translates every token through the Morse table. The translation is
// all-or-nothing: any token outside the table aborts with no candidates.
func (d *MorseDecoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	var builder strings.Builder

	for _, token := range strings.Split(text, " ") {
		if token == "/" || token == "" {
			builder.WriteRune(' ')
			continue
		}

		char, ok := morseTable[token]
		if !ok {
			return newFailure(d.info.Name, text)
		}
		builder.WriteRune(char)
	}

	candidate := builder.String()
	if !viableCandidate(text, candidate) {
		return newFailure(d.info.Name, text)
	}

	return verify(d.info.Name, text, candidate, checker)
}

// Name returns the strategy name
func (d *MorseDecoder) Name() string {
	return d.info.Name
}

// Tags returns the strategy classification labels
func (d *MorseDecoder) Tags() []string {
	return d.info.Tags
}

// Info returns the full strategy metadata
func (d *MorseDecoder) Info() interfaces.DecoderInfo {
	return d.info
}
