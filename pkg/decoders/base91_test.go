/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base91_test.go
Description: Tests for the basE91 strategy. Covers the canonical vector, a
programmatic round trip, and inputs that can never verify.
*/

package decoders

import (
	"testing"

	"github.com/mtraver/base91"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-decoder/pkg/checkers"
)

func TestBase91DecodesHelloWorld(t *testing.T) {
	decoder := NewBase91Decoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	outcome := decoder.Attempt("TPwJh>Io2Tv!lE", checker)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, "hello world", outcome.Plaintext())
}

func TestBase91RoundTrip(t *testing.T) {
	decoder := NewBase91Decoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	encoded := base91.StdEncoding.EncodeToString([]byte("attack at dawn"))
	outcome := decoder.Attempt(encoded, checker)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, "attack at dawn", outcome.Plaintext())
}

func TestBase91RejectsEmpty(t *testing.T) {
	decoder := NewBase91Decoder()

	outcome := decoder.Attempt("", rejectAll())
	require.NotNil(t, outcome)

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Candidates)
}

func TestBase91GarbageDoesNotVerify(t *testing.T) {
	decoder := NewBase91Decoder()
	checker := checkers.NewDefaultChecker(checkers.DefaultLexicalThreshold)

	// Plenty of ordinary ASCII is coincidentally decodable basE91; the decode
	// must come out as garbage the checker refuses, never as a success.
	for _, input := range []string{"hello good day!", "hello my name is panicky mc panic face!"} {
		outcome := decoder.Attempt(input, checker)
		require.NotNil(t, outcome)
		assert.False(t, outcome.Success, "expected %q not to verify", input)
	}
}
