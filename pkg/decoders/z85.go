/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: z85.go
Description: Z85 decoder strategy. Reverses the ZeroMQ Base-85 encoding
(ZMQ RFC 32), which requires input lengths that are a multiple of five.
*/

package decoders

import (
	"unicode/utf8"

	"github.com/tilinna/z85"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Z85Decoder reverses Z85, the ZeroMQ flavor of Base-85. ZMQ RFC 32 fixes
// the frame shape at five input characters per four output bytes, so the
// length precheck rejects most non-Z85 input before any table lookups.
type Z85Decoder struct {
	info interfaces.DecoderInfo
}

// NewZ85Decoder creates the Z85 strategy.
func NewZ85Decoder() *Z85Decoder {
	return &Z85Decoder{
		info: interfaces.DecoderInfo{
			Name:            "Z85",
			Description:     "ZeroMQ Base-85 encoding",
			Link:            "https://en.wikipedia.org/wiki/Ascii85",
			Tags:            []string{"z85", "decoder", "base85"},
			Popularity:      0.6,
			ExpectedRuntime: 0.01,
			FailureRuntime:  0.01,
			ExpectedSuccess: 0.8,
			EntropyLow:      1.0,
			EntropyHigh:     10.0,
		},
	}
}

// Attempt decodes the text as Z85. Inputs whose length is not a positive
// multiple of five can never be Z85 frames and fail immediately.
func (d *Z85Decoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	if len(text) == 0 || len(text)%5 != 0 {
		return newFailure(d.info.Name, text)
	}

	dst := make([]byte, z85.DecodedLen(len(text)))
	n, err := z85.Decode(dst, []byte(text))
	if err != nil {
		return newFailure(d.info.Name, text)
	}

	decoded := dst[:n]
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
func (d *Z85Decoder) Name() string {
	return d.info.Name
}

// Tags returns the strategy classification labels
func (d *Z85Decoder) Tags() []string {
	return d.info.Tags
}

// Info returns the full strategy metadata
func (d *Z85Decoder) Info() interfaces.DecoderInfo {
	return d.info
}
