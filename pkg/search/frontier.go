/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frontier.go
Description: Frontier management for multi-round searches. Provides bounded
storage of candidate texts awaiting the next decode round, with fingerprint
deduplication so reciprocal encodings cannot cycle the search forever.
*/

package search

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Node is one candidate text awaiting a decode round, together with the
// decoder path that produced it (outermost layer first).
type Node struct {
	Text  string   `json:"text"`  // Candidate text to dispatch
	Path  []string `json:"path"`  // Decoder names applied so far
	Depth int      `json:"depth"` // Number of layers already peeled
}

// Frontier holds the candidates queued for the next round.
// Admission is deduplicated across the whole search, not per round: a text
// seen at any depth never re-enters, which is what breaks decode cycles.
type Frontier struct {
	nodes   []*Node
	seen    map[string]bool // Fingerprints of every text ever admitted
	maxSize int

	// Statistics
	admitted int
	rejected int

	mu sync.RWMutex
}

// NewFrontier creates a frontier with the given per-round capacity.
// A non-positive capacity falls back to DefaultMaxFrontier.
func NewFrontier(maxSize int) *Frontier {
	if maxSize <= 0 {
		maxSize = DefaultMaxFrontier
	}
	return &Frontier{
		seen:    make(map[string]bool),
		maxSize: maxSize,
	}
}

// Push admits a candidate unless its text has been seen before or the
// pending round is already full. Returns true when admitted.
func (f *Frontier) Push(node *Node) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp := fingerprint(node.Text)
	if f.seen[fp] {
		f.rejected++
		return false
	}
	if len(f.nodes) >= f.maxSize {
		f.rejected++
		return false
	}

	f.seen[fp] = true
	f.nodes = append(f.nodes, node)
	f.admitted++
	return true
}

// MarkSeen records a text as already explored without queueing it. The
// search seeds the original input this way so candidates that decode back
// to the start are rejected.
func (f *Frontier) MarkSeen(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seen[fingerprint(text)] = true
}

// Drain removes and returns every pending node. The seen set survives the
// drain so later rounds still deduplicate against earlier ones.
func (f *Frontier) Drain() []*Node {
	f.mu.Lock()
	defer f.mu.Unlock()

	nodes := f.nodes
	f.nodes = nil
	return nodes
}

// Pending returns the number of queued candidates.
func (f *Frontier) Pending() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.nodes)
}

// GetStats returns frontier statistics.
func (f *Frontier) GetStats() map[string]interface{} {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return map[string]interface{}{
		"pending":  len(f.nodes),
		"admitted": f.admitted,
		"rejected": f.rejected,
		"seen":     len(f.seen),
		"max_size": f.maxSize,
	}
}

// fingerprint produces a stable content identity for dedupe decisions.
func fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
