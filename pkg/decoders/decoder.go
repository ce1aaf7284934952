/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decoder.go
Description: Shared construction helpers for decoder strategies. Every decoder
builds its outcomes through these helpers so the no-op guard and the
success/verdict coupling stay uniform across strategies.
*/

package decoders

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// viableCandidate reports whether decoded is a real transformation of the
// input. Empty output, byte-identical output, and output that differs only
// by surrounding whitespace are all no-ops: passing them on would let a
// strategy "succeed" without decoding anything.
func viableCandidate(input, decoded string) bool {
	if decoded == "" || decoded == input {
		return false
	}
	if strings.TrimSpace(decoded) == strings.TrimSpace(input) {
		return false
	}
	return true
}

// newSuccess builds the outcome for a verified candidate. The verdict must
// describe the candidate.
func newSuccess(decoder, attempted, candidate string, verdict *interfaces.Verdict) *interfaces.Outcome {
	return &interfaces.Outcome{
		ID:         uuid.New().String(),
		Decoder:    decoder,
		Attempted:  attempted,
		Success:    true,
		Candidates: []string{candidate},
		Verdict:    verdict,
	}
}

// newFailure builds a failed outcome. Structurally valid but unverified
// candidates ride along for downstream inspection; hard failures carry none.
func newFailure(decoder, attempted string, candidates ...string) *interfaces.Outcome {
	return &interfaces.Outcome{
		ID:         uuid.New().String(),
		Decoder:    decoder,
		Attempted:  attempted,
		Success:    false,
		Candidates: candidates,
	}
}

// verify classifies a single decoded candidate. A checker hit yields a
// successful outcome carrying the verdict; a miss yields a failed outcome
// that still carries the candidate.
func verify(decoder, attempted, candidate string, checker interfaces.Checker) *interfaces.Outcome {
	verdict := checker.Check(candidate)
	if verdict.Identified {
		return newSuccess(decoder, attempted, candidate, verdict)
	}
	return newFailure(decoder, attempted, candidate)
}
