// Package krdanta attaches a kṛt (primary) suffix to a prepared dhātu
// morph sequence, forming a prātipadika (spec.md §4.4's kṛt branch): the
// vṛddhi and cu→ku (ghañ-specific) stem changes a suffix conditions, the
// iṭ augment where the general seṭ/aniṭ rule licenses one, and the
// prefix-presence constraint that chooses between ktvā and lyap.
//
// Grounded on spec.md §4.4 directly for the kṛt table; the teacher's
// suffixRules table-of-structs-keyed-by-enum style (suffixes.go) grounds
// krtTable's shape, generalized from a stripping FSM's fromStates/toState
// pair to an attaching pass's stem-transform flags.
package krdanta

import (
	"errors"
	"fmt"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/grading"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// ErrNoDhatu is returned when the prakriyā has no dhātu morph to attach
// a kṛt suffix to.
var ErrNoDhatu = errors.New("krdanta: no dhātu morph in prakriyā")

// ErrUnsupportedKrt is returned for a kṛt value outside krtTable's
// documented subset.
var ErrUnsupportedKrt = errors.New("krdanta: unsupported kṛt suffix")

// ErrKtvaWithPrefix is returned when ktvā is requested on a prefixed
// root — lyap, not ktvā, attaches there (spec.md §4.4).
var ErrKtvaWithPrefix = errors.New("krdanta: ktvā does not attach to a prefixed root (use lyap)")

// ErrLyapWithoutPrefix is the converse of ErrKtvaWithPrefix.
var ErrLyapWithoutPrefix = errors.New("krdanta: lyap requires a prefixed root (use ktvā)")

// cuToKu maps a cu-varga (palatal) consonant to its ku-varga (guttural)
// counterpart, the root-final substitution ghañ conditions (spec.md
// §4.4, "7.3.52-adjacent cutva/kutva alternation").
var cuToKu = map[byte]byte{'c': 'k', 'C': 'K', 'j': 'g', 'J': 'G', 'Y': 'N'}

func applyKutva(text string) string {
	if text == "" {
		return text
	}
	last := text[len(text)-1]
	if repl, ok := cuToKu[last]; ok {
		return text[:len(text)-1] + string(repl)
	}
	return text
}

// krtEntry is one kṛt suffix's attachment recipe.
type krtEntry struct {
	Text          string
	Tags          tag.Set
	AppliesVrddhi bool
	AppliesKutva  bool
}

// krtTable is the documented subset of kṛt suffixes this port supports
// (spec.md §2, "coverage is pragmatic" — the full args.Krt enum names
// the ~140-identifier upstream set this is drawn from).
var krtTable = map[args.Krt]krtEntry{
	args.Ktva:    {Text: "tvA", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka)},
	args.Lyap:    {Text: "ya", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka)},
	args.Tumun:   {Text: "tum", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka)},
	args.Kta:     {Text: "ta", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka, tag.Kit)},
	args.Ktavatu: {Text: "tavat", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka, tag.Kit)},
	args.Shatr:   {Text: "at", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Sarvadhatuka)},
	args.Shanac:  {Text: "Ana", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Sarvadhatuka, tag.Nit)},
	args.GaY:     {Text: "a", Tags: tag.Of(tag.Pratyaya, tag.Krt), AppliesVrddhi: true, AppliesKutva: true},
	args.Ap:      {Text: "a", Tags: tag.Of(tag.Pratyaya, tag.Krt, tag.Nit)},
}

// Attach appends the kṛt suffix k onto the last dhātu morph in p,
// applying ghañ's vṛddhi/kutva stem changes and the general iṭ augment
// where it's licensed, then returns. Like every other stage package,
// Attach does not run sandhi; callers join the resulting boundary.
func Attach(p *prakriya.Prakriya, k args.Krt) error {
	dhatuIdx := p.FindLast(len(p.Morphs)-1, tag.Dhatu)
	if dhatuIdx < 0 {
		return ErrNoDhatu
	}
	entry, ok := krtTable[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedKrt, k)
	}

	hasPrefix := p.Find(0, tag.Upasarga) >= 0
	if k == args.Ktva && hasPrefix {
		return ErrKtvaWithPrefix
	}
	if k == args.Lyap && !hasPrefix {
		return ErrLyapWithoutPrefix
	}

	rule := fmt.Sprintf("krt.%v", k)
	if entry.AppliesVrddhi {
		grading.Vrddhi(rule, p, dhatuIdx)
	}
	if entry.AppliesKutva {
		p.SetAtFunc(rule, dhatuIdx, applyKutva)
	}

	p.Append(rule, prakriya.NewMorph(entry.Text, entry.Tags))
	grading.InsertIt(rule, p, len(p.Morphs)-1)
	return nil
}
