// Package taddhita attaches a taddhita (secondary) suffix to a
// prātipadika, spec.md §4.4's taddhita branch: each suffix in the
// documented subset is licensed only under a specific semantic
// condition, which the caller must supply and this package checks before
// committing the substitution.
//
// Grounded on spec.md §4.4 directly; shares suffix/krdanta's
// table-of-structs-keyed-by-enum shape, itself grounded on the teacher's
// suffixRules table.
package taddhita

import (
	"errors"
	"fmt"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/sound"
	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// ErrEmptyPratipadika is returned for a spec with no stem text.
var ErrEmptyPratipadika = errors.New("taddhita: empty prātipadika")

// ErrUnsupportedTaddhita is returned for a Taddhita value outside the
// documented subset.
var ErrUnsupportedTaddhita = errors.New("taddhita: unsupported taddhita suffix")

// ErrWrongCondition is returned when the caller's semantic condition
// does not match the one the requested suffix requires (spec.md §4.4,
// "taddhita rules are guarded by a semantic condition enum").
var ErrWrongCondition = errors.New("taddhita: semantic condition does not license this suffix")

type taddhitaEntry struct {
	Text          string
	Tags          tag.Set
	Condition     args.SemanticCondition
	AppliesVrddhi bool
}

// taddhitaTable is the documented pragmatic subset of the ~180-suffix
// upstream set (spec.md §2).
var taddhitaTable = map[args.Taddhita]taddhitaEntry{
	args.Tyan: {Text: "a", Tags: tag.Of(tag.Pratyaya, tag.Taddhita), Condition: args.Apatyartha, AppliesVrddhi: true},
	args.Yat:  {Text: "ya", Tags: tag.Of(tag.Pratyaya, tag.Taddhita), Condition: args.TenaProktam},
	args.Matup: {Text: "mat", Tags: tag.Of(tag.Pratyaya, tag.Taddhita), Condition: args.TatraBhava},
}

// firstVowelIndex returns the byte offset of text's first vowel, or -1.
func firstVowelIndex(text string) int {
	for i := 0; i < len(text); i++ {
		if sound.IsVowel(text[i]) {
			return i
		}
	}
	return -1
}

// applyAdivrddhi strengthens a stem's FIRST vowel to vṛddhi grade —
// ādivṛddhi (spec.md §4.4's patronymic taddhitas, e.g. daśaratha ->
// dāśarathi), the complement of grading.Vrddhi's last-vowel rule (which
// grades a pratyaya-adjacent aṅga, not a whole stem's initial syllable),
// so it is implemented locally here rather than shared with grading.
func applyAdivrddhi(text string) string {
	vi := firstVowelIndex(text)
	if vi < 0 {
		return text
	}
	repl, ok := sound.ToVrddhi(text[vi])
	if !ok {
		return text
	}
	return text[:vi] + repl + text[vi+1:]
}

// Attach builds the taddhitānta morph sequence for stem, appending the
// taddhita suffix tt under condition cond.
func Attach(stem string, tt args.Taddhita, cond args.SemanticCondition) ([]prakriya.Morph, error) {
	if stem == "" {
		return nil, ErrEmptyPratipadika
	}
	entry, ok := taddhitaTable[tt]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTaddhita, tt)
	}
	if entry.Condition != cond {
		return nil, fmt.Errorf("%w: %v requires %v, got %v", ErrWrongCondition, tt, entry.Condition, cond)
	}

	if entry.AppliesVrddhi {
		stem = applyAdivrddhi(stem)
	}
	morphs := []prakriya.Morph{
		prakriya.NewMorph(stem, tag.Of(tag.Pratipadika, tag.Anga)),
		prakriya.NewMorph(entry.Text, entry.Tags),
	}
	return morphs, nil
}
