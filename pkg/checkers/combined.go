/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: combined.go
Description: Combined checker chain. Runs member checkers in a fixed order and
returns the first positive verdict, preserving which member identified the
candidate. Pattern signatures always run before lexical scoring.
*/

package checkers

import (
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// CombinedChecker chains checkers in priority order. The order is part of the
// contract: structured-data signatures must win over dictionary scoring so a
// decoded IP address is reported as an IP, not as three unknown tokens.
type CombinedChecker struct {
	checkers []interfaces.Checker
}

// NewCombinedChecker creates a chain over the given members, consulted in
// argument order.
func NewCombinedChecker(checkers ...interfaces.Checker) *CombinedChecker {
	return &CombinedChecker{checkers: checkers}
}

// NewDefaultChecker builds the standard chain: pattern signatures first, then
// lexical scoring against the english corpus.
func NewDefaultChecker(threshold float64) *CombinedChecker {
	return NewCombinedChecker(
		NewPatternChecker(),
		NewLexicalChecker(threshold),
	)
}

// Check consults each member in order and returns the first positive verdict
// unmodified. When every member declines, the rejection is definitive. The
// verdict is always non-nil.
func (c *CombinedChecker) Check(text string) *interfaces.Verdict {
	for _, checker := range c.checkers {
		if verdict := checker.Check(text); verdict.Identified {
			return verdict
		}
	}

	return &interfaces.Verdict{
		Identified: false,
		Checker:    c.Name(),
		Reason:     "no checker identified the text",
	}
}

// Name returns the checker name
func (c *CombinedChecker) Name() string {
	return "CombinedChecker"
}
