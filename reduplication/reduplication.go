// Package reduplication builds the abhyāsa (reduplicant) morph for
// liṭ, the desiderative, and the intensive, per spec.md §4.6's
// algorithm sketch: take the root's first syllable, lighten it (shorten
// long vowels, drop aspiration, velar/guttural -> palatal substitution),
// and insert it immediately before the root.
//
// Grounded on spec.md §4.6 directly — no corpus file implements
// reduplication, since none of the pack's morphological analyzers
// reduplicate anything — and follows grading's style of a single
// local-substitution pass guarded by sound predicates.
package reduplication

import (
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/sound"
	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// kuSeries maps a guttural (k-series) consonant to its palatal
// counterpart, used when building the abhyāsa (spec.md §4.6 step 2,
// "substitute c for k-series").
var kuSeries = map[byte]byte{
	'k': 'c', 'K': 'C', 'g': 'j', 'G': 'J', 'N': 'Y',
}

// huSubstitute is h's reduplication substitute, j (spec.md §4.6 step
// 2, "substitute j for h").
const huSubstitute = 'j'

// lightenInitialConsonant applies the abhyāsa consonant substitutions:
// guttural -> palatal, h -> j, and drops aspiration from any consonant,
// including the palatal a guttural was just replaced with (spec.md §4.6
// step 2).
func lightenInitialConsonant(c byte) byte {
	if r, ok := kuSeries[c]; ok {
		c = r
	}
	if c == 'h' {
		return huSubstitute
	}
	switch c {
	case 'K':
		return 'k'
	case 'G':
		return 'g'
	case 'C':
		return 'c'
	case 'J':
		return 'j'
	case 'W':
		return 'w'
	case 'Q':
		return 'q'
	case 'T':
		return 't'
	case 'D':
		return 'd'
	case 'P':
		return 'p'
	case 'B':
		return 'b'
	}
	return c
}

// lightenVowel shortens a long vowel and reduces ṛ/ṝ to a (spec.md §4.6
// step 2: "apply ṛ → a (or i/u depending on context)" — this port takes
// the default ṛ→a case and leaves the contextual i/u variants as a
// documented gap).
func lightenVowel(c byte) byte {
	switch c {
	case 'A':
		return 'a'
	case 'I':
		return 'i'
	case 'U':
		return 'u'
	case 'f', 'F':
		return 'a'
	case 'x', 'X':
		return 'a'
	}
	return c
}

// initialSyllable splits text into a leading-consonant span and the
// vowel that follows it, per spec.md §4.6 step 1 and its cluster-initial
// edge case: a consonant cluster contributes only its first member,
// except an s+stop cluster, which contributes the stop.
func initialSyllable(text string) (consonants string, vowel byte, rest string) {
	if len(text) == 0 {
		return "", 0, ""
	}
	if sound.IsVowel(text[0]) {
		return "", text[0], text[1:]
	}
	i := 0
	for i < len(text) && sound.IsConsonant(text[i]) {
		i++
	}
	if i >= len(text) {
		return text, 0, ""
	}
	cluster := text[:i]
	vowel = text[i]
	rest = text[i+1:]
	if len(cluster) >= 2 && cluster[0] == 's' && sound.MustS("Kay").Contains(cluster[1]) {
		return cluster[1:2], vowel, rest
	}
	return cluster[:1], vowel, rest
}

// Build returns the abhyāsa text for the given dhātu/aṅga text; it only
// computes the string — Reduplicate inserts it via InsertBefore.
//
// A vowel-initial root (e.g. "as", "i") naturally falls out of this as
// the lightened vowel alone, with no leading consonant — spec.md §4.6's
// "monosyllabic vowel-initial roots require a special prefix" augment
// (e.g. the classical "Ap" before ad's abhyāsa) is a documented gap:
// this port reduplicates the vowel but does not insert that augment.
func Build(text string) string {
	cons, vowel, _ := initialSyllable(text)
	if vowel == 0 {
		if len(text) == 0 {
			return ""
		}
		return string(lightenInitialConsonant(text[0]))
	}
	var out []byte
	for i := 0; i < len(cons); i++ {
		out = append(out, lightenInitialConsonant(cons[i]))
	}
	out = append(out, lightenVowel(vowel))
	return string(out)
}

// Reduplicate inserts the abhyāsa morph immediately before the aṅga at
// index i, tagging it Abhyasa (spec.md §4.6 step 3).
func Reduplicate(rule string, p *prakriya.Prakriya, i int) bool {
	if i < 0 || i >= len(p.Morphs) {
		return false
	}
	abhyasa := Build(p.Morphs[i].Text)
	if abhyasa == "" {
		return false
	}
	p.InsertBefore(rule, i, prakriya.NewMorph(abhyasa, tag.Of(tag.Abhyasa)))
	return true
}
