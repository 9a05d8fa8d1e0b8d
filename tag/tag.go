// Package tag defines the closed enumeration of grammatical tags the
// engine attaches to morphs and to the prakriyā as a whole, and a dense
// bitset (tag.Set) for storing them with O(1) membership and union tests.
//
// The teacher (az-lang-nlp/morph) stores one MorphTag per morpheme because
// its domain never needs more than one grammatical label per suffix. This
// engine's rules routinely guard on conjunctions of a dozen or more tags
// at once (spec.md §3), so the single-enum-field approach is generalized
// here into a bitset, following the same "enum + name table" idiom.
package tag

import "fmt"

// Tag is a single grammatical label.
type Tag int

const (
	// Morph-class tags.
	Dhatu Tag = iota
	Pratipadika
	Pratyaya
	Upasarga
	Agama
	Abhyasa
	Anga
	Pada

	// Suffix-inventory tags.
	Sarvadhatuka
	Ardhadhatuka
	Krt
	Taddhita
	Sup
	Tin

	// It-saṃjñā-induced tags (spec.md §4.2): the four that carry a named
	// grammatical effect ("ṅit forbids guṇa; kit triggers weakening; śit
	// makes sārvadhātuka; pit unaccented"). Other it letters (c, j, ṭ,
	// ṭh, ḍ, ḍh, ñ, ṣ, s) are stripped but do not carry a dedicated tag
	// in this port's pragmatic scope.
	Nit // ṅit
	Kit // kit
	Sit // śit
	Pit // pit

	// Derivational process markers.
	Guna
	Vrddhi
	Samprasarana

	// Voice / pada tags.
	Parasmaipada
	Atmanepada

	// Miscellaneous derivation-wide tags.
	Chandasa
	Seti // seṭ: root takes the iṭ augment before ārdhadhātuka suffixes
	Anit
	Vet

	numTags
)

var tagNames = map[Tag]string{
	Dhatu:        "Dhatu",
	Pratipadika:  "Pratipadika",
	Pratyaya:     "Pratyaya",
	Upasarga:     "Upasarga",
	Agama:        "Agama",
	Abhyasa:      "Abhyasa",
	Anga:         "Anga",
	Pada:         "Pada",
	Sarvadhatuka: "Sarvadhatuka",
	Ardhadhatuka: "Ardhadhatuka",
	Krt:          "Krt",
	Taddhita:     "Taddhita",
	Sup:          "Sup",
	Tin:          "Tin",
	Nit:          "Nit",
	Kit:          "Kit",
	Sit:          "Sit",
	Pit:          "Pit",
	Guna:         "Guna",
	Vrddhi:       "Vrddhi",
	Samprasarana: "Samprasarana",
	Parasmaipada: "Parasmaipada",
	Atmanepada:   "Atmanepada",
	Chandasa:     "Chandasa",
	Seti:         "Seti",
	Anit:         "Anit",
	Vet:          "Vet",
}

// String returns the tag's name, or "Tag(n)" for an unregistered value.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// stickyTags are never removed once set on a morph, except by an explicit
// substitution of the whole morph (spec.md §8 invariant 2).
var stickyTags = map[Tag]bool{
	Dhatu: true, Pratyaya: true, Anga: true,
}

// IsSticky reports whether t is a sticky tag per spec.md §8 invariant 2.
func IsSticky(t Tag) bool { return stickyTags[t] }

const wordBits = 64
const numWords = (int(numTags) + wordBits - 1) / wordBits

// Set is a dense, fixed-size bitset of Tags.
type Set [numWords]uint64

// With returns a copy of s with t added.
func (s Set) With(t Tag) Set {
	s[t/wordBits] |= 1 << (uint(t) % wordBits)
	return s
}

// Without returns a copy of s with t removed.
func (s Set) Without(t Tag) Set {
	s[t/wordBits] &^= 1 << (uint(t) % wordBits)
	return s
}

// Has reports whether t is a member of s.
func (s Set) Has(t Tag) bool {
	return s[t/wordBits]&(1<<(uint(t)%wordBits)) != 0
}

// HasAny reports whether any of ts is a member of s.
func (s Set) HasAny(ts ...Tag) bool {
	for _, t := range ts {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// HasAll reports whether every tag in ts is a member of s.
func (s Set) HasAll(ts ...Tag) bool {
	for _, t := range ts {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Union returns a new Set containing every tag in s or other.
func (s Set) Union(other Set) Set {
	var out Set
	for i := range out {
		out[i] = s[i] | other[i]
	}
	return out
}

// Of builds a Set from the given tags.
func Of(ts ...Tag) Set {
	var s Set
	for _, t := range ts {
		s = s.With(t)
	}
	return s
}
