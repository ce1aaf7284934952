/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: entropy.go
Description: Shannon entropy helper. Measures byte-level entropy of a text in
bits per byte, used for diagnostics and for comparing inputs against the
advisory entropy bands each decoder declares.
*/

package checkers

import (
	"math"
)

// Shannon computes the byte-level Shannon entropy of the text in bits per
// byte. Returns 0 for empty or single-symbol texts and approaches 8 for
// uniformly random bytes.
func Shannon(text string) float64 {
	if len(text) == 0 {
		return 0
	}

	var counts [256]int
	for i := 0; i < len(text); i++ {
		counts[text[i]]++
	}

	length := float64(len(text))
	entropy := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// InBand reports whether an entropy value falls inside the inclusive band
// [low, high]. Bands are advisory metadata and never gate dispatch.
func InBand(entropy, low, high float64) bool {
	return entropy >= low && entropy <= high
}
