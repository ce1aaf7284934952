/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: lexical.go
Description: Lexical checker for natural-language plaintext. Scores candidates
by the fraction of their tokens found in an embedded dictionary corpus and
accepts once the fraction clears a configurable threshold.
*/

package checkers

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
	"github.com/kleascm/akaylee-decoder/pkg/storage"
)

// DefaultLexicalThreshold is the fraction of dictionary tokens a candidate
// needs before it is accepted as plaintext.
const DefaultLexicalThreshold = 0.5

// LexicalChecker scores whitespace-separated tokens against a word corpus.
// Tokens are lowercased and stripped of leading/trailing punctuation before
// lookup, so "Hello!" counts the same as "hello".
type LexicalChecker struct {
	words     map[string]struct{}
	corpus    string
	threshold float64
}

// NewLexicalChecker creates a lexical checker over the embedded english
// corpus. A non-positive threshold falls back to DefaultLexicalThreshold.
func NewLexicalChecker(threshold float64) *LexicalChecker {
	return NewLexicalCheckerWith("english", storage.MustDictionary("english"), threshold)
}

// NewLexicalCheckerWith creates a lexical checker over an explicit word set.
func NewLexicalCheckerWith(corpus string, words map[string]struct{}, threshold float64) *LexicalChecker {
	if threshold <= 0 {
		threshold = DefaultLexicalThreshold
	}
	return &LexicalChecker{
		words:     words,
		corpus:    corpus,
		threshold: threshold,
	}
}

// Check tokenizes the candidate and accepts it when the dictionary fraction
// reaches the threshold. A candidate with no tokens (empty or all punctuation)
// is rejected, never treated as vacuously matching. The verdict is always
// non-nil.
func (c *LexicalChecker) Check(text string) *interfaces.Verdict {
	total := 0
	matched := 0

	for _, field := range strings.Fields(text) {
		token := normalizeToken(field)
		if token == "" {
			continue
		}
		total++
		if _, ok := c.words[token]; ok {
			matched++
		}
	}

	if total == 0 {
		return &interfaces.Verdict{
			Identified: false,
			Checker:    c.Name(),
			Reason:     "no lexical tokens",
		}
	}

	fraction := float64(matched) / float64(total)
	if fraction >= c.threshold {
		return &interfaces.Verdict{
			Identified: true,
			Checker:    c.Name(),
			Reason:     fmt.Sprintf("%d of %d tokens in %s corpus (%.0f%%)", matched, total, c.corpus, fraction*100),
		}
	}

	return &interfaces.Verdict{
		Identified: false,
		Checker:    c.Name(),
		Reason:     fmt.Sprintf("only %d of %d tokens in %s corpus", matched, total, c.corpus),
	}
}

// Name returns the checker name
func (c *LexicalChecker) Name() string {
	return "LexicalChecker"
}

// normalizeToken lowercases a token and strips punctuation from both ends.
// Interior punctuation stays so "don't" and "192.168.0.1" survive intact.
func normalizeToken(field string) string {
	trimmed := strings.TrimFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.ToLower(trimmed)
}
