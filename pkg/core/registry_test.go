/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry_test.go
Description: Tests for the decoder registry. Verifies the standard battery
composition, lookup by name, and the copy semantics of Decoders().
*/

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryStandardBattery(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, 6, registry.Size())
	assert.Equal(t,
		[]string{"Base64URL", "Base91", "Z85", "Caesar", "Morse", "Reverse"},
		registry.Names(),
		"battery order is fixed at construction")
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	caesar, ok := registry.Get("Caesar")
	require.True(t, ok)
	assert.Equal(t, "Caesar", caesar.Name())
	assert.Contains(t, caesar.Tags(), "classic")

	_, ok = registry.Get("Vigenere")
	assert.False(t, ok)
}

func TestRegistryDecodersReturnsCopy(t *testing.T) {
	registry := NewRegistry()

	battery := registry.Decoders()
	battery[0], battery[1] = battery[1], battery[0]

	assert.Equal(t, "Base64URL", registry.Names()[0],
		"reordering the returned slice must not touch the registry")
}

func TestRegistryMetadataComplete(t *testing.T) {
	for _, decoder := range NewRegistry().Decoders() {
		info := decoder.Info()
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Link)
		assert.NotEmpty(t, info.Tags)
		assert.GreaterOrEqual(t, info.Popularity, 0.0)
		assert.LessOrEqual(t, info.Popularity, 1.0)
		assert.Greater(t, info.ExpectedRuntime, 0.0)
		assert.Greater(t, info.FailureRuntime, 0.0)
		assert.Less(t, info.EntropyLow, info.EntropyHigh)
	}
}
