// Package sound classifies single Sanskrit sounds (in the internal SLP1
// encoding) into the traditional pratyāhāra sets, computes savarṇa
// (phonetically-similar) substitutes, and exposes the small set of
// predicates the rest of the engine needs: vowel length, guṇa/vṛddhi
// grade, voicing.
//
// All sounds are single printable ASCII bytes drawn from the 49-letter
// SLP1 alphabet (see the package-level Alphabet set). A Set is a 256-entry
// membership bitmap so containment is an O(1) array read; a Map is the
// same shape with a sound value instead of a boolean.
package sound

import "strings"

// Sound is a single SLP1 code point.
type Sound = byte

// traditionalOrder is the canonical display order for the SLP1 alphabet,
// vowels then consonants, used by Set.String.
const traditionalOrder = "aAiIuUfFxXeEoOMHkKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"

// Alphabet is the full 49-symbol SLP1 alphabet.
var Alphabet = FromString(traditionalOrder)

// Set is a 256-entry membership bitmap over SLP1 sounds.
type Set [256]bool

// FromString builds a Set whose members are exactly the bytes in s.
func FromString(s string) Set {
	var set Set
	for i := 0; i < len(s); i++ {
		set[s[i]] = true
	}
	return set
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c Sound) bool {
	return s[c]
}

// Union returns a new set containing every member of s or other.
func (s Set) Union(other Set) Set {
	var out Set
	for i := range out {
		out[i] = s[i] || other[i]
	}
	return out
}

// String renders the set's members in traditional Śiva-sūtra order.
func (s Set) String() string {
	var b strings.Builder
	for i := 0; i < len(traditionalOrder); i++ {
		c := traditionalOrder[i]
		if s.Contains(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Map is a sound-to-sound lookup table, e.g. the jaśtva substitution map.
type Map [256]Sound

// Get returns the mapped sound and whether c had an entry.
func (m Map) Get(c Sound) (Sound, bool) {
	v := m[c]
	return v, v != 0
}
