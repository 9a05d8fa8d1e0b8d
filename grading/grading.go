// Package grading applies the stem-grade adjustments spec.md §4.7 names:
// guṇa and vṛddhi substitution of an aṅga's last vowel, and augment
// insertion (iṭ, num) ahead of a pratyaya that conditions them.
//
// Grounded on sound.ToGuna/ToVrddhi (itself a port of sounds.rs) for the
// substitution tables; the teacher's voweldrop.go (a single-purpose
// phonological repair pass walking a stem, applying a harmony-guarded
// substitution) grounds the shape of a local, predicate-guarded pass
// over the aṅga's last vowel rather than a general rewrite system.
package grading

import (
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/sound"
	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// lastVowelIndex returns the byte offset of the last vowel in text, or
// -1 if text has none.
func lastVowelIndex(text string) int {
	for i := len(text) - 1; i >= 0; i-- {
		if sound.IsVowel(text[i]) {
			return i
		}
	}
	return -1
}

// Guna applies guṇa to the last vowel of the morph at index i, unless
// that morph is tagged Nit (ṅit suffixes forbid guṇa, spec.md §4.2) or
// has no vowel to raise. Returns whether a substitution was made.
func Guna(rule string, p *prakriya.Prakriya, i int) bool {
	if i < 0 || i >= len(p.Morphs) {
		return false
	}
	if p.Morphs[i].Tags.Has(tag.Nit) {
		return false
	}
	text := p.Morphs[i].Text
	vi := lastVowelIndex(text)
	if vi < 0 {
		return false
	}
	if sound.IsGuna(text[vi]) || sound.IsVrddhi(text[vi]) {
		return false
	}
	replacement, ok := sound.ToGuna(text[vi])
	if !ok {
		return false
	}
	p.SetAt(rule, i, text[:vi]+replacement+text[vi+1:])
	p.AddTag(i, tag.Guna)
	return true
}

// Vrddhi applies vṛddhi to the last vowel of the morph at index i,
// subject to the same ṅit guard as Guna.
func Vrddhi(rule string, p *prakriya.Prakriya, i int) bool {
	if i < 0 || i >= len(p.Morphs) {
		return false
	}
	if p.Morphs[i].Tags.Has(tag.Nit) {
		return false
	}
	text := p.Morphs[i].Text
	vi := lastVowelIndex(text)
	if vi < 0 {
		return false
	}
	if sound.IsVrddhi(text[vi]) {
		return false
	}
	replacement, ok := sound.ToVrddhi(text[vi])
	if !ok {
		return false
	}
	p.SetAt(rule, i, text[:vi]+replacement+text[vi+1:])
	p.AddTag(i, tag.Vrddhi)
	return true
}

// InsertIt inserts the iṭ augment ("i") before the pratyaya at index i,
// when the dhātu immediately to its left is tagged Seti (seṭ) and the
// pratyaya is ārdhadhātuka (spec.md §4.3's seṭ/aniṭ distinction; spec.md
// §4.7's augment-insertion list).
func InsertIt(rule string, p *prakriya.Prakriya, i int) bool {
	if i <= 0 || i > len(p.Morphs) {
		return false
	}
	dhatuIdx := p.FindLast(i-1, tag.Dhatu)
	if dhatuIdx < 0 || !p.Morphs[dhatuIdx].Tags.Has(tag.Seti) {
		return false
	}
	if !p.Morphs[i].Tags.Has(tag.Ardhadhatuka) {
		return false
	}
	p.InsertBefore(rule, i, prakriya.NewMorph("i", tag.Of(tag.Agama)))
	return true
}

// InsertNum inserts the num augment ("n") before the final consonant of
// the aṅga at index i, for the nasal-infix class of roots (spec.md
// §4.7). Callers identify eligible dhātus by tag before calling this;
// it inserts whenever the index is valid and the aṅga text ends in a
// consonant, and returns false otherwise.
func InsertNum(rule string, p *prakriya.Prakriya, i int) bool {
	if i < 0 || i >= len(p.Morphs) {
		return false
	}
	text := p.Morphs[i].Text
	if len(text) == 0 || !sound.IsConsonant(text[len(text)-1]) {
		return false
	}
	p.SetAt(rule, i, text[:len(text)-1]+"n"+text[len(text)-1:])
	p.AddTag(i, tag.Agama)
	return true
}
