// Package itsamjna implements it-saṃjñā: stripping the marker ("it")
// sounds from an upadeśa (citation form) to recover the sound-form that
// actually participates in a derivation, per spec.md §4.2's rule list:
//
//  1. a nasalized vowel is it (the vowel itself is consumed);
//  2. a trailing single consonant is it — this port applies rule 2
//     together with rule 4: only a final letter from rule 4's marker
//     list is stripped, and any other final consonant (the "m" of
//     "gam") is kept as part of the root;
//  3. a leading consonant from a defined set (ñ, ṭu, ḍu before a
//     consonant) is it;
//  4. specific final marker letters (k, kh, g, gh, ṅ, c, j, ñ, ṭ, ṭh, ḍ,
//     ḍh, ṇ, p, ś, ṣ, s) are it, each inducing its own tag.
//
// Citation forms also carry accent decorations (anudātta "\", svarita
// "^") that are not sounds at all and fall outside the SLP1 alphabet
// (sound.Alphabet); Strip discards these too so its output always
// satisfies the alphabet-closure invariant (spec.md §8 invariant 3).
//
// Grounded on spec.md §4.2's rule list directly; the teacher's
// morph/dict.go byte-level scan-and-classify style (single pass over a
// []byte, no regex) grounds the implementation approach.
package itsamjna

import "github.com/ambuda-org/vidyut-prakriya/tag"

// leadingItPairs are two-letter leading it sequences: ñi, ṭu, ḍu, each
// followed (in the citation) by a consonant-initial root.
var leadingItPairs = []string{"Yi", "wu", "qu"}

// finalItTags maps a final marker letter (spec.md §4.2 rule 4) to the
// tag it induces, for the subset of letters with a named grammatical
// effect. Letters not in this map are still stripped by rule 2/4 but
// induce no dedicated tag.
var finalItTags = map[byte]tag.Tag{
	'k': tag.Kit,
	'N': tag.Nit,
	'S': tag.Sit,
	'p': tag.Pit,
}

// finalItLetters is the full defined set from spec.md §4.2 rule 4.
var finalItLetters = map[byte]bool{
	'k': true, 'K': true, 'g': true, 'G': true, 'N': true,
	'c': true, 'j': true, 'Y': true,
	'w': true, 'W': true, 'q': true, 'Q': true, 'R': true,
	'p': true, 'S': true, 'z': true, 's': true,
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}

func isDecoration(c byte) bool {
	return c == '\\' || c == '^'
}

// Strip removes decoration and it sounds from upadesha, returning the
// clean sound-form and the tag set the stripped sounds induce.
//
// The algorithm strips, in order: accent decorations anywhere in the
// string; a leading it pair (ñi/ṭu/ḍu) when followed by a consonant; a
// nasalized final vowel (vowel immediately before end-of-string or
// before a single trailing it consonant); and a trailing single it
// consonant, recording its induced tag if one is defined.
func Strip(upadesha string) (string, tag.Set) {
	var tags tag.Set
	s := []byte(upadesha)

	// Rule 3: leading it pair before a consonant.
	if len(s) >= 3 {
		for _, pair := range leadingItPairs {
			if string(s[:2]) == pair && !isVowel(s[2]) {
				s = s[2:]
				break
			}
		}
	}

	// Strip accent decorations wherever they occur; they are not sounds.
	out := s[:0:0]
	for _, c := range s {
		if !isDecoration(c) {
			out = append(out, c)
		}
	}
	s = out

	// Rule 4 / rule 2: a trailing single it consonant.
	if n := len(s); n >= 2 && !isVowel(s[n-1]) && finalItLetters[s[n-1]] {
		last := s[n-1]
		if t, ok := finalItTags[last]; ok {
			tags = tags.With(t)
		}
		s = s[:n-1]
	}

	// Rule 1: a nasalized final vowel — the citation marks this with a
	// trailing "~" immediately after the vowel. "~" is a sound marker,
	// not an accent decoration, so it survives the decoration-stripping
	// pass above; this step consumes both the marker and the vowel it
	// marks, which is why e.g. "qupa\ca~^z" reduces to "pac" rather than
	// "pac" + a dangling nasalized vowel.
	if n := len(s); n >= 2 && s[n-1] == '~' && isVowel(s[n-2]) {
		s = s[:n-2]
	}

	return string(s), tags
}
