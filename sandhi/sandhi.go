// Package sandhi applies the phonological rules spec.md §4.8 names, in
// two phases: internal sandhi (within a derivation, across the morph
// boundary the current rule is looking at) and external sandhi (between
// already-finished padas in a vākya).
//
// Grounded on sound.Map/sound.Set for the jaśtva substitution (directly
// from sounds.rs's own doctest, `sound.BuildMap("Jal", "jaS")`); the
// teacher's phonology.go predicate-table style (isVoiceless, lastVowel
// scanners run over a small window) grounds the locality checks below,
// generalized from a single adjacent rune to the "at most two adjacent
// morphs" n-gram window spec.md §4.8 specifies.
package sandhi

import (
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/sound"
)

// jashtvaMap sends a jhal sound to its jaś (voiced unaspirated)
// counterpart (spec.md §4.8, "8.2.39 jhalāṃ jaś jhaśi"). The map is
// built from the pratyāhāra spec "Jy" rather than "Jal": "Jy" stops at
// the stops and leaves out the sibilants and h that "Jal" includes, so a
// sibilant such as luṅ's sic "z" is not voiced before a vowel.
var jashtvaMap = sound.MustBuildMap("Jy", "jaS")

// chartvaMap sends a jhaś/jhal sound to its car (voiceless unaspirated)
// counterpart, used word-finally (the cartva alternation spec.md §4.8
// names alongside jaśtva).
var chartvaMap = sound.MustBuildMap("Jy", "car")

// retroflexNTriggers are the sounds that license n -> ṇ retroflexion
// when they occur earlier in the same pada (spec.md §4.8, "after
// r/ṛ/ṣ/kṣ"): r, vocalic ṛ/ṝ, and ṣ. The kṣ cluster is approximated
// below by also treating a bare k as a trigger.
var retroflexNTriggers = sound.FromString("rfFz")

// natvaTransparent are the sounds that may occur between the trigger and
// the n without blocking retroflexion (spec.md §4.8, "blocker: certain
// letters"): vowels, semivowels, nasals, h, anusvāra, and the labials.
// Any other sound (other than a trigger) stops the search.
var natvaTransparent = sound.MustS("ac yam h M pu~")

// JoinInternal runs the internal-sandhi pass over the boundary between
// the morph at i and the morph at i+1, committing at most one
// substitution per call (callers loop stages until no rule fires, per
// spec.md §4.9 step 5's terminality test).
func JoinInternal(rule string, p *prakriya.Prakriya, i int) bool {
	if i < 0 || i+1 >= len(p.Morphs) {
		return false
	}
	left := p.Morphs[i].Text
	right := p.Morphs[i+1].Text
	if left == "" || right == "" {
		return false
	}

	if jashtva(rule, p, i, left, right) {
		return true
	}
	if anusvara(rule, p, i, left, right) {
		return true
	}
	// n and s eligible for retroflexion may belong to either the left
	// morph (trailing) or the right morph (suffix-initial, as in the
	// sup ending "na"); check the right morph first since that's the
	// common case, then the left.
	if natva(rule, p, i+1) || natva(rule, p, i) {
		return true
	}
	if satva(rule, p, i+1) || satva(rule, p, i) {
		return true
	}
	if avAdesha(rule, p, i, left, right) {
		return true
	}
	return false
}

// avAdesha replaces a final e/o with ay/av when a vowel follows (6.1.78
// eco 'yavāyāvaḥ), the internal-sandhi counterpart of external sandhi's
// e/o elision — e.g. bhū's guṇa vowel "o" plus the śap vikaraṇa "a"
// becomes "av" + "a" on the way to "Bavati".
func avAdesha(rule string, p *prakriya.Prakriya, i int, left, right string) bool {
	last := left[len(left)-1]
	if !sound.IsVowel(right[0]) {
		return false
	}
	var repl string
	switch last {
	case 'e':
		repl = "ay"
	case 'o':
		repl = "av"
	default:
		return false
	}
	p.SetAt(rule, i, left[:len(left)-1]+repl)
	return true
}

// jashtva voices a final jhal consonant before a vowel or voiced sound
// (spec.md §4.8, 8.2.39).
func jashtva(rule string, p *prakriya.Prakriya, i int, left, right string) bool {
	last := left[len(left)-1]
	if !sound.HAL.Contains(last) {
		return false
	}
	voicedNext := sound.IsVowel(right[0]) || sound.IsVoiced(right[0])
	if !voicedNext {
		return false
	}
	repl, ok := jashtvaMap.Get(last)
	if !ok || repl == last {
		return false
	}
	p.SetAt(rule, i, left[:len(left)-1]+string(repl))
	return true
}

// anusvara converts a final m to anusvāra (M) before a following
// consonant (spec.md §4.8, "deletion or substitution of final m before
// consonants").
func anusvara(rule string, p *prakriya.Prakriya, i int, left, right string) bool {
	last := left[len(left)-1]
	if last != 'm' {
		return false
	}
	if !sound.IsConsonant(right[0]) {
		return false
	}
	p.SetAt(rule, i, left[:len(left)-1]+"M")
	return true
}

// natva retroflexes the first eligible "n" in the morph at i to "R" (ṇ)
// when a r/ṛ/ṣ trigger occurs earlier in the same pada's joined text
// with only transparent sounds between them (spec.md §4.8, 8.4.1-8.4.2).
// The n need not be word-final in its morph — a tiṅ/sup ending like
// "na" carries its n in first position — so this scans every offset in
// the morph's text, not just the last byte.
func natva(rule string, p *prakriya.Prakriya, i int) bool {
	text := p.Morphs[i].Text
	for pos := 0; pos < len(text); pos++ {
		if text[pos] != 'n' {
			continue
		}
		if !natvaHasTrigger(p, i, pos) {
			continue
		}
		p.SetAt(rule, i, text[:pos]+"R"+text[pos+1:])
		return true
	}
	return false
}

// natvaHasTrigger scans backward from offset pos in the morph at index
// i for a retroflexion trigger, stopping at the first non-transparent
// sound. It first walks the preceding bytes of the same morph, then
// the full text of earlier morphs.
func natvaHasTrigger(p *prakriya.Prakriya, i, pos int) bool {
	text := p.Morphs[i].Text
	for k := pos - 1; k >= 0; k-- {
		c := text[k]
		if retroflexNTriggers.Contains(c) || c == 'k' {
			return true
		}
		if !natvaTransparent.Contains(c) {
			return false
		}
	}
	for j := i - 1; j >= 0; j-- {
		text = p.Morphs[j].Text
		for k := len(text) - 1; k >= 0; k-- {
			c := text[k]
			if retroflexNTriggers.Contains(c) || c == 'k' {
				return true
			}
			if !natvaTransparent.Contains(c) {
				return false
			}
		}
	}
	return false
}

// satva retroflexes a trailing "s" to "z" (ṣ) when the preceding morph
// ends in a k/r/i/u sound (spec.md §4.8). Only that one adjacent sound is
// checked; unlike natva, there is no scan across transparent sounds.
func satva(rule string, p *prakriya.Prakriya, i int) bool {
	text := p.Morphs[i].Text
	if text == "" || text[len(text)-1] != 's' {
		return false
	}
	if i == 0 {
		return false
	}
	prev := p.Morphs[i-1].Text
	if prev == "" {
		return false
	}
	last := prev[len(prev)-1]
	if last != 'k' && last != 'r' && last != 'i' && last != 'I' && last != 'u' && last != 'U' {
		return false
	}
	p.SetAt(rule, i, text[:len(text)-1]+"z")
	return true
}

// visargaReplacement gives the default external-sandhi replacement for a
// word-final visarga before a following voiced sound or vowel (spec.md
// §4.8, "ḥ → ḥ, r, s, ś, ṣ, o, y, w, -").
func visargaReplacement(next byte) (string, bool) {
	switch {
	case next == 0: // end of utterance
		return "H", false
	case sound.IsVowel(next) && (next == 'a'):
		return "o", true
	case sound.IsVowel(next):
		return "r", true
	case next == 'k' || next == 'K' || next == 'p' || next == 'P':
		return "H", false
	case sound.IsVoiced(next):
		return "r", true
	default:
		return "H", false
	}
}

// Cartva devoices a word-final jhaś sound to its car (voiceless
// unaspirated) counterpart — the complementary alternation to jaśtva,
// applied at pada-final position rather than before a voiced sound
// (spec.md §4.8, "the jaśtva/cartva alternations").
func Cartva(text string) string {
	if text == "" {
		return text
	}
	last := text[len(text)-1]
	if repl, ok := chartvaMap.Get(last); ok && repl != last {
		return text[:len(text)-1] + string(repl)
	}
	return text
}

// JoinExternal runs external sandhi across the pada boundary between
// padas[i] and padas[i+1], returning the rewritten pair and whether a
// substitution was made.
func JoinExternal(left, right string) (string, string, bool) {
	return joinExternal(left, right, false)
}

func joinExternal(left, right string, nlpMode bool) (string, string, bool) {
	if left == "" || right == "" {
		return left, right, false
	}
	if changed, nl, nr := visargaSandhi(left, right, nlpMode); changed {
		return nl, nr, true
	}
	if changed, nl, nr := vowelSandhi(left, right); changed {
		return nl, nr, true
	}
	return left, right, false
}

func visargaSandhi(left, right string, nlpMode bool) (bool, string, string) {
	last := left[len(left)-1]
	// A word-final r or (non-conjunct) s reduces to visarga before any
	// external-sandhi rule runs (8.2.66 ssasya and sibling rules); this
	// port folds that reduction in here rather than as a separate pass.
	if last != 'H' && last != 's' && last != 'r' {
		return false, left, right
	}
	// nlp_mode (spec.md §4.9) preserves a word-final s/r/ḥ as-is instead
	// of reducing it to visarga, so downstream NLP consumers see the
	// citation-form consonant rather than a phonological rewrite.
	if nlpMode {
		return false, left, right
	}
	repl, consumesNext := visargaReplacement(right[0])
	newLeft := left[:len(left)-1] + repl
	if repl == "o" && consumesNext && right[0] == 'a' {
		// The stem's own final a merges with the o ("rAmaH atra" ->
		// "rAmo tra").
		if n := len(newLeft); n >= 2 && newLeft[n-2] == 'a' {
			newLeft = newLeft[:n-2] + "o"
		}
		return true, newLeft, right[1:]
	}
	return true, newLeft, right
}

// PadaPair is one candidate rewrite of a word boundary.
type PadaPair struct {
	Left, Right string
}

// sthanaClassNasal maps a consonant to the nasal sharing its point of
// articulation, for the padānta-m homorganic-assimilation variant below.
var sthanaClassNasal = map[byte]byte{
	'k': 'N', 'K': 'N', 'g': 'N', 'G': 'N', 'N': 'N',
	'c': 'Y', 'C': 'Y', 'j': 'Y', 'J': 'Y', 'Y': 'Y',
	'w': 'R', 'W': 'R', 'q': 'R', 'Q': 'R', 'R': 'R',
	't': 'n', 'T': 'n', 'd': 'n', 'D': 'n', 'n': 'n',
	'p': 'm', 'P': 'm', 'b': 'm', 'B': 'm', 'm': 'm',
}

// RulePadantaM identifies 8.4.59 ("vā padāntasya"), the one external-
// sandhi rule this port models as optional. A whole vākya resolves every
// occurrence of this rule to a single consistent branch rather than
// fanning out per boundary — see JoinExternalStyled.
const RulePadantaM = "8.4.59"

// BranchAnusvara and BranchParasavarna are the two resolutions
// RulePadantaM can take: the word-final m either becomes anusvāra (the
// default) or assimilates to the homorganic nasal of the sound that
// follows.
const (
	BranchAnusvara    = "anusvara"
	BranchParasavarna = "parasavarna"
)

// padantaMSandhi applies RulePadantaM under the given branch, reporting
// whether the rule's guard (word-final m before a stop or nasal) held.
func padantaMSandhi(left, right, branch string) (string, string, bool) {
	if left == "" || right == "" || left[len(left)-1] != 'm' {
		return left, right, false
	}
	nasal, ok := sthanaClassNasal[right[0]]
	if !ok {
		return left, right, false
	}
	base := left[:len(left)-1]
	if branch == BranchParasavarna {
		return base + string(nasal), right, true
	}
	return base + "M", right, true
}

// JoinExternalVariants is JoinExternal generalized to return every
// candidate rewrite of a single boundary, for RulePadantaM. Every other
// boundary rule in this port is mandatory, so it returns exactly one
// pair; this is the only producer of more than one. Useful for a lone
// pairwise sandhi query (spec.md §8's `Sandhi(a, b)` entry point); a
// multi-word vākya instead resolves RulePadantaM once for the whole
// sentence via JoinExternalStyled, since mixing anusvāra and the
// homorganic nasal within one utterance is not how the rule is actually
// applied in recitation (spec.md §8's "tam kaTam ... puruzas avaDIt"
// golden vākya only ever picks one style throughout).
func JoinExternalVariants(left, right string) []PadaPair {
	if left == "" || right == "" {
		return []PadaPair{{left, right}}
	}
	if anusvaraLeft, _, ok := padantaMSandhi(left, right, BranchAnusvara); ok {
		parasavarnaLeft, _, _ := padantaMSandhi(left, right, BranchParasavarna)
		return []PadaPair{{anusvaraLeft, right}, {parasavarnaLeft, right}}
	}
	nl, nr, _ := JoinExternal(left, right)
	return []PadaPair{{nl, nr}}
}

// JoinExternalStyled runs every mandatory external-sandhi rule across one
// boundary plus a forced resolution of RulePadantaM, for a caller (like
// DeriveVakyas) walking a whole pada sequence with one consistent branch.
// nlpMode, when true, preserves a word-final s/r/ḥ as-is instead of
// reducing it to visarga (spec.md §4.9, "nlp_mode").
func JoinExternalStyled(left, right, branch string, nlpMode bool) (string, string) {
	if left == "" || right == "" {
		return left, right
	}
	if nl, nr, ok := padantaMSandhi(left, right, branch); ok {
		return nl, nr
	}
	nl, nr, _ := joinExternal(left, right, nlpMode)
	return nl, nr
}

// vowelSandhi applies the "e/o -> -" before a vowel and "i/u -> y/v"
// before a dissimilar vowel rules (spec.md §4.8).
func vowelSandhi(left, right string) (bool, string, string) {
	last := left[len(left)-1]
	if !sound.IsVowel(last) || !sound.IsVowel(right[0]) {
		return false, left, right
	}
	switch last {
	case 'e', 'o':
		return true, left[:len(left)-1], right
	case 'i', 'I':
		if sound.IsSavarna(last, right[0]) {
			return false, left, right
		}
		return true, left[:len(left)-1] + "y", right
	case 'u', 'U':
		if sound.IsSavarna(last, right[0]) {
			return false, left, right
		}
		return true, left[:len(left)-1] + "v", right
	}
	return false, left, right
}
