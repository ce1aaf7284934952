/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Akaylee Decoder. Defines the core interfaces
used across all packages to break import cycles and enable proper modular design.
*/

package interfaces

// DecoderInfo carries the static descriptive metadata of a decoder strategy.
// All fields are advisory: they exist for introspection and future
// prioritization and are never consulted by the dispatch engine itself.
type DecoderInfo struct {
	Name            string   `json:"name"`             // Unique human-readable identifier
	Description     string   `json:"description"`      // What the strategy reverses
	Link            string   `json:"link"`             // Reference documentation URL
	Tags            []string `json:"tags"`             // Free-form classification labels
	Popularity      float64  `json:"popularity"`       // Relative prior likelihood in [0,1]
	ExpectedRuntime float64  `json:"expected_runtime"` // Advisory cost estimate in seconds
	FailureRuntime  float64  `json:"failure_runtime"`  // Advisory cost of a failed attempt in seconds
	ExpectedSuccess float64  `json:"expected_success"` // Advisory prior success rate in [0,1]
	EntropyLow      float64  `json:"entropy_low"`      // Lower bound of the typical ciphertext entropy band
	EntropyHigh     float64  `json:"entropy_high"`     // Upper bound of the typical ciphertext entropy band
}

// Verdict is the classification detail a plausibility checker attaches to a
// candidate: which checker spoke, whether it identified plaintext, and why.
type Verdict struct {
	Identified bool   `json:"identified"` // True when the candidate looks like real plaintext
	Checker    string `json:"checker"`    // Name of the checker that produced this verdict
	Reason     string `json:"reason"`     // Human-readable explanation of the classification
}

// Outcome is the immutable result record of one decoder strategy invocation.
// Success implies Candidates is non-empty and Verdict describes Candidates[0].
// Failed attempts may still carry unverified candidates (a shift cipher can
// return all 25) to support downstream manual inspection.
type Outcome struct {
	ID         string   `json:"id"`                // Unique identifier for this attempt
	Decoder    string   `json:"decoder"`           // Name of the strategy that produced this outcome
	Attempted  string   `json:"attempted_text"`    // The input the strategy was given
	Success    bool     `json:"success"`           // True iff a candidate passed the checker
	Candidates []string `json:"candidates"`        // Ordered candidate plaintexts, 0..N
	Verdict    *Verdict `json:"verdict,omitempty"` // Attached only on success, for Candidates[0]
}

// Plaintext returns the verified candidate of a successful outcome.
// Returns the empty string for failed outcomes.
func (o *Outcome) Plaintext() string {
	if !o.Success || len(o.Candidates) == 0 {
		return ""
	}
	return o.Candidates[0]
}

// EngineConfig contains all configuration parameters for the decode pipeline.
// Supports both command-line flags and configuration files.
type EngineConfig struct {
	// Execution configuration
	Workers int `json:"workers"` // Number of parallel workers (0 = auto-detect)

	// Checker configuration
	LexicalThreshold float64 `json:"lexical_threshold"` // Fraction of dictionary tokens required for a lexical hit

	// Search configuration
	MaxDepth    int `json:"max_depth"`    // Maximum encoding layers to peel
	MaxFrontier int `json:"max_frontier"` // Maximum candidate texts carried into one round

	// Logging configuration
	LogLevel  string `json:"log_level"`  // Logging level (debug, info, warn, error)
	LogFormat string `json:"log_format"` // Log format (text, json, custom)
	LogDir    string `json:"log_dir"`    // Log output directory

	// Reporting configuration
	ReportDir string `json:"report_dir"` // Directory for attempt reports (empty = disabled)
}

// Decoder is the contract every decoding strategy satisfies. Implementations
// are stateless, constructed once at registry build time, and safely shared
// across concurrent invocations.
type Decoder interface {
	// Attempt tries to reverse one specific encoding on the given text.
	// It never panics out and never blocks beyond its own bounded transform:
	// any internal failure is converted into a failed Outcome.
	Attempt(text string, checker Checker) *Outcome

	// Name returns the unique name of this strategy
	Name() string

	// Tags returns the free-form classification labels of this strategy
	Tags() []string

	// Info returns the full static metadata without re-invoking the transform
	Info() DecoderInfo
}

// Checker decides whether a string looks like meaningful plaintext.
// Check always returns a non-nil Verdict; a negative verdict is definitive,
// never "unknown". Implementations must be safe for concurrent use.
type Checker interface {
	// Check classifies the given text
	Check(text string) *Verdict

	// Name returns the name of this checker
	Name() string
}

// Confirmer is the optional post-success gate: it accepts a successful
// Outcome, presents its leading candidate, and returns a boolean acceptance.
// The dispatch protocol itself never consults it.
type Confirmer interface {
	Confirm(outcome *Outcome) bool
}
