/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: searcher.go
Description: Multi-round search over the decode engine. Peels layered
encodings breadth-first: every frontier text is dispatched across the whole
battery, verified hits end the search through the confirmation gate, and
unverified candidates seed the next round.
*/

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
	"github.com/kleascm/akaylee-decoder/pkg/core"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

const (
	// DefaultMaxDepth bounds how many encoding layers a search will peel.
	DefaultMaxDepth = 4

	// DefaultMaxFrontier bounds how many candidates one round may carry.
	DefaultMaxFrontier = 256
)

// SearchResult is the terminal state of a multi-round search.
type SearchResult struct {
	Found     bool          `json:"found"`               // True when confirmed plaintext was reached
	Plaintext string        `json:"plaintext,omitempty"` // The confirmed plaintext
	Path      []string      `json:"path,omitempty"`      // Decoder names applied, outermost first
	Rounds    int           `json:"rounds"`              // Decode rounds executed
	Examined  int           `json:"examined"`            // Texts dispatched across all rounds
	Duration  time.Duration `json:"duration"`            // Wall-clock time for the whole search
}

// Searcher drives the decode engine through breadth-first rounds.
type Searcher struct {
	engine    *core.Engine
	checker   interfaces.Checker
	confirmer interfaces.Confirmer
	logger    *logrus.Logger

	maxDepth    int
	maxFrontier int
}

// NewSearcher creates a searcher over an initialized engine. Non-positive
// depth and frontier limits fall back to the package defaults, and the
// confirmer defaults to automatic acceptance.
func NewSearcher(engine *core.Engine, checker interfaces.Checker, config *interfaces.EngineConfig, logger *logrus.Logger) *Searcher {
	maxDepth := DefaultMaxDepth
	maxFrontier := DefaultMaxFrontier
	if config != nil && config.MaxDepth > 0 {
		maxDepth = config.MaxDepth
	}
	if config != nil && config.MaxFrontier > 0 {
		maxFrontier = config.MaxFrontier
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Searcher{
		engine:      engine,
		checker:     checker,
		confirmer:   &AutoConfirmer{},
		logger:      logger,
		maxDepth:    maxDepth,
		maxFrontier: maxFrontier,
	}
}

// SetConfirmer replaces the confirmation gate consulted on every verified hit.
func (s *Searcher) SetConfirmer(confirmer interfaces.Confirmer) {
	if confirmer != nil {
		s.confirmer = confirmer
	}
}

// Search peels encodings off the text until confirmed plaintext, the depth
// limit, or an empty frontier. A verified hit the confirmer declines is not
// discarded: the declined candidate re-enters the frontier so the search
// keeps peeling through it.
func (s *Searcher) Search(ctx context.Context, text string) (*SearchResult, error) {
	if text == "" {
		return nil, fmt.Errorf("search input cannot be empty")
	}

	start := time.Now()
	result := &SearchResult{}

	s.logger.WithFields(logrus.Fields{
		"length":  len(text),
		"entropy": checkers.Shannon(text),
	}).Debug("Search started")

	// The input may already be plaintext, in which case no peeling is
	// needed at all. The confirmation gate still applies.
	if verdict := s.checker.Check(text); verdict.Identified {
		given := &interfaces.Outcome{
			Decoder:    "Plaintext",
			Attempted:  text,
			Success:    true,
			Candidates: []string{text},
			Verdict:    verdict,
		}
		if s.confirmer.Confirm(given) {
			result.Found = true
			result.Plaintext = text
			result.Duration = time.Since(start)
			return result, nil
		}
	}

	frontier := NewFrontier(s.maxFrontier)
	frontier.MarkSeen(text)
	current := []*Node{{Text: text}}

	for depth := 0; depth < s.maxDepth && len(current) > 0; depth++ {
		result.Rounds++
		s.logger.WithFields(logrus.Fields{
			"round":    result.Rounds,
			"frontier": len(current),
		}).Debug("Search round started")

		for _, node := range current {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			batch, err := s.engine.Crack(ctx, node.Text)
			if err != nil {
				return nil, err
			}
			result.Examined++

			if batch.Matched() {
				winner := batch.Winner
				path := appendPath(node.Path, winner.Decoder)

				if s.confirmer.Confirm(winner) {
					result.Found = true
					result.Plaintext = winner.Plaintext()
					result.Path = path
					result.Duration = time.Since(start)

					s.logger.WithFields(logrus.Fields{
						"rounds":   result.Rounds,
						"examined": result.Examined,
						"path":     result.Path,
					}).Info("Search found confirmed plaintext")
					return result, nil
				}

				frontier.Push(&Node{
					Text:  winner.Plaintext(),
					Path:  path,
					Depth: node.Depth + 1,
				})
				continue
			}

			for _, outcome := range batch.Attempts {
				for _, candidate := range outcome.Candidates {
					frontier.Push(&Node{
						Text:  candidate,
						Path:  appendPath(node.Path, outcome.Decoder),
						Depth: node.Depth + 1,
					})
				}
			}
		}

		current = frontier.Drain()
	}

	result.Duration = time.Since(start)
	s.logger.WithFields(logrus.Fields{
		"rounds":   result.Rounds,
		"examined": result.Examined,
	}).Warn("Search exhausted without confirmed plaintext")
	return result, nil
}

// appendPath copies the parent path before extending it, because sibling
// candidates share the parent slice.
func appendPath(path []string, decoder string) []string {
	extended := make([]string, 0, len(path)+1)
	extended = append(extended, path...)
	return append(extended, decoder)
}

// AutoConfirmer accepts every verified outcome without interaction.
type AutoConfirmer struct{}

// Confirm accepts the outcome.
func (c *AutoConfirmer) Confirm(outcome *interfaces.Outcome) bool {
	return true
}
