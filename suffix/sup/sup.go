// Package sup prepares the morph sequence for a subanta (declined
// nominal), spec.md §4.4's sup branch: the documented pragmatic subset
// this port covers is the masculine a-stem (prātipadika ending short
// "a") declension across all seven vibhaktis plus the vocative
// (sambodhana) and three vacanas — the
// other stem classes (i/u-stems, consonant stems) are a recorded gap in
// DESIGN.md.
//
// Grounded on spec.md §4.4 directly for the sup branch; the teacher's
// suffixRules table-of-structs-keyed-by-enum style grounds supTable's
// shape (a map keyed by a small feature struct, looked up once), the
// same idiom suffix/tinanta and suffix/krdanta reuse.
package sup

import (
	"errors"
	"fmt"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// ErrEmptyPratipadika is returned for a spec with no stem text.
var ErrEmptyPratipadika = errors.New("sup: empty prātipadika")

// ErrUnsupportedStem is returned for any liṅga/stem-shape combination
// outside the masculine-a-stem subset this port covers.
var ErrUnsupportedStem = errors.New("sup: unsupported liṅga or stem shape (only masculine a-stems are covered)")

// ErrUnsupportedCombination is returned for a vibhakti/vacana pair
// missing from the table (should not happen for the closed 8x3 space of
// seven vibhaktis plus the vocative).
var ErrUnsupportedCombination = errors.New("sup: unsupported vibhakti/vacana combination")

type stemOp int

const (
	keepStem       stemOp = iota // stem unchanged before the ending
	dropFinalVowel               // strip the stem's final "a"
	finalAToE                    // replace the stem's final "a" with "e"
)

type supKey struct {
	Vibhakti args.Vibhakti
	Vacana   args.Vacana
}

type supEntry struct {
	Op     stemOp
	Ending string
}

// supAStemMasculine is the classical rāma-type masculine a-stem
// paradigm: the 21 vibhakti/vacana cells of the sup suffixes (spec.md
// §4.4, "21 sup suffixes") plus the three vocative cells, 24 in all.
var supAStemMasculine = map[supKey]supEntry{
	{args.V1, args.Eka}:  {keepStem, "H"},
	{args.V1, args.Dvi}:  {dropFinalVowel, "O"},
	{args.V1, args.Bahu}: {dropFinalVowel, "AH"},

	{args.V2, args.Eka}:  {dropFinalVowel, "am"},
	{args.V2, args.Dvi}:  {dropFinalVowel, "O"},
	{args.V2, args.Bahu}: {dropFinalVowel, "An"},

	{args.V3, args.Eka}:  {finalAToE, "na"},
	{args.V3, args.Dvi}:  {dropFinalVowel, "AByAm"},
	{args.V3, args.Bahu}: {dropFinalVowel, "EH"},

	{args.V4, args.Eka}:  {dropFinalVowel, "Aya"},
	{args.V4, args.Dvi}:  {dropFinalVowel, "AByAm"},
	{args.V4, args.Bahu}: {finalAToE, "ByaH"},

	{args.V5, args.Eka}:  {dropFinalVowel, "At"},
	{args.V5, args.Dvi}:  {dropFinalVowel, "AByAm"},
	{args.V5, args.Bahu}: {finalAToE, "ByaH"},

	{args.V6, args.Eka}:  {keepStem, "sya"},
	{args.V6, args.Dvi}:  {keepStem, "yoH"},
	{args.V6, args.Bahu}: {dropFinalVowel, "AnAm"},

	{args.V7, args.Eka}:  {finalAToE, ""},
	{args.V7, args.Dvi}:  {keepStem, "yoH"},
	{args.V7, args.Bahu}: {dropFinalVowel, "ezu"},

	{args.Sambodhana, args.Eka}:  {keepStem, ""},
	{args.Sambodhana, args.Dvi}:  {dropFinalVowel, "O"},
	{args.Sambodhana, args.Bahu}: {dropFinalVowel, "AH"},
}

func applyOp(stem string, op stemOp) string {
	if stem == "" {
		return stem
	}
	switch op {
	case dropFinalVowel:
		if stem[len(stem)-1] == 'a' {
			return stem[:len(stem)-1]
		}
	case finalAToE:
		if stem[len(stem)-1] == 'a' {
			return stem[:len(stem)-1] + "e"
		}
	}
	return stem
}

// Prepare builds the morph sequence for spec: the prātipadika (tagged
// Pratipadika, Anga) with its stem-op applied, followed by the sup
// ending morph (tagged Pratyaya, Sup) when the cell has one.
func Prepare(spec args.Subanta) ([]prakriya.Morph, error) {
	if spec.Pratipadika.Text == "" {
		return nil, ErrEmptyPratipadika
	}
	stem := spec.Pratipadika.Text
	if spec.Linga != args.Pum || stem[len(stem)-1] != 'a' {
		return nil, ErrUnsupportedStem
	}
	entry, ok := supAStemMasculine[supKey{spec.Vibhakti, spec.Vacana}]
	if !ok {
		return nil, fmt.Errorf("%w: %v/%v", ErrUnsupportedCombination, spec.Vibhakti, spec.Vacana)
	}

	morphs := []prakriya.Morph{
		prakriya.NewMorph(applyOp(stem, entry.Op), tag.Of(tag.Pratipadika, tag.Anga)),
	}
	if entry.Ending != "" {
		morphs = append(morphs, prakriya.NewMorph(entry.Ending, tag.Of(tag.Pratyaya, tag.Sup)))
	}
	return morphs, nil
}
