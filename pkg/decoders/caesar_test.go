/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: caesar_test.go
Description: Tests for the Caesar shift strategy. Covers the canonical ROT13
vectors, case and unicode passthrough, the early exit on a checker hit, the
25-candidate fallback, and the full shift round-trip property.
*/

package decoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
)

func TestCaesarDecodesRot13(t *testing.T) {
	decoder := NewCaesarDecoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	outcome := decoder.Attempt("uryyb guvf vf ybat grkg", checker)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, "hello this is long text", outcome.Plaintext())
	require.NotNil(t, outcome.Verdict)
	assert.Equal(t, "LexicalChecker", outcome.Verdict.Checker)
}

func TestCaesarPreservesCaseAndPunctuation(t *testing.T) {
	decoder := NewCaesarDecoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	outcome := decoder.Attempt("Uryyb! guvf vf ybat grkg?", checker)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, "Hello! this is long text?", outcome.Plaintext())
}

func TestCaesarDecodesArbitraryShifts(t *testing.T) {
	decoder := NewCaesarDecoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	tests := map[string]string{
		"fyyfhp": "attack",
		"buubdl": "attack",
		"zsszbj": "attack",
	}

	for input, want := range tests {
		outcome := decoder.Attempt(input, checker)
		require.NotNil(t, outcome)
		assert.True(t, outcome.Success, "expected %q to decode", input)
		assert.Equal(t, want, outcome.Plaintext())
	}
}

func TestCaesarPassesUnicodeThrough(t *testing.T) {
	decoder := NewCaesarDecoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	outcome := decoder.Attempt("fyyfhp fy ifbs 攻", checker)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, "attack at dawn 攻", outcome.Plaintext())
}

func TestCaesarEarlyExitKeepsSingleCandidate(t *testing.T) {
	decoder := NewCaesarDecoder()

	outcome := decoder.Attempt("fyyfhp", acceptOnly("attack"))
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, []string{"attack"}, outcome.Candidates,
		"a checker hit stops the rotation walk immediately")
}

func TestCaesarExhaustionCarriesAllRotations(t *testing.T) {
	decoder := NewCaesarDecoder()

	outcome := decoder.Attempt("uryyb", rejectAll())
	require.NotNil(t, outcome)

	assert.False(t, outcome.Success)
	assert.Len(t, outcome.Candidates, 25)
	assert.NotContains(t, outcome.Candidates, "uryyb", "the input itself is not a rotation")

	seen := make(map[string]bool)
	for _, candidate := range outcome.Candidates {
		assert.False(t, seen[candidate], "rotations must be distinct")
		seen[candidate] = true
	}
	assert.Contains(t, outcome.Candidates, "hello")
}

func TestCaesarRejectsLetterlessInput(t *testing.T) {
	decoder := NewCaesarDecoder()

	for _, input := range []string{"#", "12345", "", "  ", "!!! ???"} {
		outcome := decoder.Attempt(input, rejectAll())
		require.NotNil(t, outcome)
		assert.False(t, outcome.Success, "expected %q to fail", input)
		assert.Empty(t, outcome.Candidates, "letterless input yields no candidates")
	}
}

func TestCaesarRoundTripAllShifts(t *testing.T) {
	decoder := NewCaesarDecoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)
	plain := "hello this is long text"

	for shift := 1; shift <= 25; shift++ {
		cipher := shiftText(plain, shift)
		outcome := decoder.Attempt(cipher, checker)
		require.NotNil(t, outcome)
		assert.True(t, outcome.Success, "shift %d should decode", shift)
		assert.Equal(t, plain, outcome.Plaintext(), "shift %d", shift)
	}
}

func TestShiftRune(t *testing.T) {
	assert.Equal(t, 'b', shiftRune('a', 1))
	assert.Equal(t, 'a', shiftRune('z', 1))
	assert.Equal(t, 'N', shiftRune('A', 13))
	assert.Equal(t, '7', shiftRune('7', 13), "digits pass through")
	assert.Equal(t, '攻', shiftRune('攻', 13), "non-latin runes pass through")
}
