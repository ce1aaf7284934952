/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Decoder registry for the Akaylee Decoder engine. Builds the
strategy battery exactly once and serves it read-only to every batch, so
dispatch never pays construction cost per input.
*/

package core

import (
	"github.com/kleascm/akaylee-decoder/pkg/decoders"
	"github.com/kleascm/akaylee-decoder/pkg/interfaces"
)

// Registry holds the decoder battery in a fixed order. It is immutable after
// construction: batches share the same decoder instances, which is safe
// because strategies are stateless.
type Registry struct {
	decoders []interfaces.Decoder
	byName   map[string]interfaces.Decoder
}

// NewRegistry builds the standard battery with every supported strategy.
func NewRegistry() *Registry {
	return NewRegistryWith(
		decoders.NewBase64URLDecoder(),
		decoders.NewBase91Decoder(),
		decoders.NewZ85Decoder(),
		decoders.NewCaesarDecoder(),
		decoders.NewMorseDecoder(),
		decoders.NewReverseDecoder(),
	)
}

// NewRegistryWith builds a registry over an explicit battery, preserving
// argument order.
func NewRegistryWith(battery ...interfaces.Decoder) *Registry {
	registry := &Registry{
		decoders: make([]interfaces.Decoder, 0, len(battery)),
		byName:   make(map[string]interfaces.Decoder, len(battery)),
	}

	for _, decoder := range battery {
		registry.decoders = append(registry.decoders, decoder)
		registry.byName[decoder.Name()] = decoder
	}

	return registry
}

// Decoders returns a copy of the battery so callers cannot reorder the
// registry underneath running batches.
func (r *Registry) Decoders() []interfaces.Decoder {
	battery := make([]interfaces.Decoder, len(r.decoders))
	copy(battery, r.decoders)
	return battery
}

// Get returns the decoder with the given name.
func (r *Registry) Get(name string) (interfaces.Decoder, bool) {
	decoder, ok := r.byName[name]
	return decoder, ok
}

// Names returns the battery names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.decoders))
	for _, decoder := range r.decoders {
		names = append(names, decoder.Name())
	}
	return names
}

// Size returns the number of registered decoders.
func (r *Registry) Size() int {
	return len(r.decoders)
}
