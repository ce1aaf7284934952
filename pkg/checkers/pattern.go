/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pattern.go
Description: Pattern checker for structured data signatures. Matches decoded
candidates against an anchored regex battery for IPs, URLs, credentials and
hash digests, so short machine-readable plaintexts are identified even when
they contain no dictionary words.
*/

package checkers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// signature pairs a human-readable name with its anchored pattern.
// Every pattern is anchored on both ends: a candidate must BE the thing,
// not merely contain it, or garbage with an embedded substring would pass.
type signature struct {
	name    string
	pattern *regexp.Regexp
}

var signatures = []signature{
	{"ipv4 address", regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)},
	{"ipv6 address", regexp.MustCompile(`^(?:[0-9A-Fa-f]{1,4}:){7}[0-9A-Fa-f]{1,4}$|^(?:[0-9A-Fa-f]{1,4}:)+:(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?$|^::(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?$`)},
	{"url", regexp.MustCompile(`^(?:https?|ftp)://[^\s/$.?#][^\s]*$`)},
	{"email address", regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)},
	{"uuid", regexp.MustCompile(`^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}$`)},
	{"mac address", regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}[:\-]){5}[0-9A-Fa-f]{2}$`)},
	{"jwt", regexp.MustCompile(`^eyJ[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]*$`)},
	{"hash digest", regexp.MustCompile(`^(?:[0-9A-Fa-f]{32}|[0-9A-Fa-f]{40}|[0-9A-Fa-f]{64})$`)},
	{"aws access key", regexp.MustCompile(`^(?:AKIA|ASIA)[0-9A-Z]{16}$`)},
	{"slack token", regexp.MustCompile(`^xox[baprs]-[0-9A-Za-z\-]{10,}$`)},
}

// PatternChecker identifies candidates that are structured data rather than
// prose. It runs before the lexical checker so an IP or URL is accepted even
// though it shares no tokens with an English corpus.
type PatternChecker struct{}

// NewPatternChecker creates a pattern checker over the built-in battery.
func NewPatternChecker() *PatternChecker {
	return &PatternChecker{}
}

// Check matches the trimmed candidate against each signature in order and
// reports the first hit. The verdict is always non-nil.
func (c *PatternChecker) Check(text string) *interfaces.Verdict {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &interfaces.Verdict{
			Identified: false,
			Checker:    c.Name(),
			Reason:     "empty candidate",
		}
	}

	for _, sig := range signatures {
		if sig.pattern.MatchString(trimmed) {
			return &interfaces.Verdict{
				Identified: true,
				Checker:    c.Name(),
				Reason:     fmt.Sprintf("matches %s signature", sig.name),
			}
		}
	}

	return &interfaces.Verdict{
		Identified: false,
		Checker:    c.Name(),
		Reason:     "no known data signature",
	}
}

// Name returns the checker name
func (c *PatternChecker) Name() string {
	return "PatternChecker"
}
