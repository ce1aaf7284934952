/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base64url.go
Description: URL-safe Base64 decoder strategy. Accepts padded and unpadded
variants of the URL-safe alphabet and rejects standard-alphabet input and
decodes that are not valid UTF-8 text.
*/

package decoders

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Base64URLDecoder reverses RFC 4648 URL-safe Base64 ('-' and '_' in place
// of '+' and '/'). Standard-alphabet input must fail here so it can be
// attributed to a plain Base64 strategy instead.
type Base64URLDecoder struct {
	info interfaces.DecoderInfo
}

// NewBase64URLDecoder creates the URL-safe Base64 strategy.
func NewBase64URLDecoder() *Base64URLDecoder {
	return &Base64URLDecoder{
		info: interfaces.DecoderInfo{
			Name:            "Base64URL",
			Description:     "URL-safe Base64 with or without padding",
			Link:            "https://en.wikipedia.org/wiki/Base64#URL_applications",
			Tags:            []string{"base64", "url", "decoder", "base"},
			Popularity:      0.9,
			ExpectedRuntime: 0.01,
			FailureRuntime:  0.01,
			ExpectedSuccess: 1.0,
			EntropyLow:      1.0,
			EntropyHigh:     10.0,
		},
	}
}

// Attempt decodes with the padded URL-safe alphabet first and falls back to
// the raw (unpadded) variant. Decoded bytes must form valid UTF-8 text.
func (d *Base64URLDecoder) Attempt(text string, checker interfaces.Checker) *interfaces.Outcome {
	decoded, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(text)
		if err != nil {
			return newFailure(d.info.Name, text)
		}
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
func (d *Base64URLDecoder) Name() string {
	return d.info.Name
}

// Tags returns the strategy classification labels
func (d *Base64URLDecoder) Tags() []string {
	return d.info.Tags
}

// Info returns the full strategy metadata
func (d *Base64URLDecoder) Info() interfaces.DecoderInfo {
	return d.info
}
