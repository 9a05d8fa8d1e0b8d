// Package prakriya implements the core derivation data structures named in
// spec.md §3: the Morph (term) unit, the Prakriya container, and the
// small set of rule operators (spec.md §4, design notes) that every stage
// package uses to mutate it. No stage-specific rule data lives here — this
// package only provides the state machine the stages drive.
package prakriya

import (
	"strings"

	"github.com/ambuda-org/vidyut-prakriya/tag"
)

// Morph is one unit in a derivation's morph sequence: a span of text in
// the internal SLP1 alphabet plus the dense tag set it carries.
//
// Mirrors the teacher's Morpheme{Surface, Tag} pair (morph/morph.go),
// generalized from a single MorphTag to a tag.Set because a Sanskrit
// morph routinely carries several simultaneous classifications (e.g. a
// kṛt pratyaya is simultaneously Pratyaya, Krt, and possibly Kit).
type Morph struct {
	Text  string
	Tags  tag.Set
	Gana  int // verb-root class, 0 if not applicable
	Upadesha string // original citation form before it-saṃjñā stripping, if any
}

// NewMorph builds a Morph with the given text and tags.
func NewMorph(text string, tags tag.Set) Morph {
	return Morph{Text: text, Tags: tags}
}

// HistoryEntry records one committed rule fire: the rule's identifier and
// a snapshot of the joined morph texts immediately after the commit
// (spec.md §3, "history").
type HistoryEntry struct {
	Rule string
	Text string
}

// Prakriya is the mutable derivation state spec.md §3 describes: an
// ordered morph sequence, a derivation-wide tag set, a rule-fire history,
// a set of rule ids that must never fire again, and the log of optional-
// rule branches this particular derivation took.
type Prakriya struct {
	Morphs   []Morph
	Tags     tag.Set
	History  []HistoryEntry
	blocked  map[string]bool
	choices  map[string]string
	terminal bool
	logSteps bool
}

// New creates a fresh Prakriya from an initial morph sequence.
func New(morphs []Morph, logSteps bool) *Prakriya {
	return &Prakriya{
		Morphs:   morphs,
		blocked:  make(map[string]bool),
		choices:  make(map[string]string),
		logSteps: logSteps,
	}
}

// Text returns the joined surface form of every morph in order.
func (p *Prakriya) Text() string {
	var b strings.Builder
	for _, m := range p.Morphs {
		b.WriteString(m.Text)
	}
	return b.String()
}

// IsBlocked reports whether rule has already been declined (via Block) and
// must not fire again in this derivation.
func (p *Prakriya) IsBlocked(rule string) bool {
	return p.blocked[rule]
}

// HasRun reports whether rule already appears in the history — spec.md §3
// invariant: "every rule id appears in history at most once per prakriya
// unless explicitly allowed to re-fire".
func (p *Prakriya) HasRun(rule string) bool {
	for _, h := range p.History {
		if h.Rule == rule {
			return true
		}
	}
	return false
}

// Terminal reports whether this prakriyā has been marked as having no
// further applicable rule.
func (p *Prakriya) Terminal() bool { return p.terminal }

// MarkTerminal flags the prakriyā as finished (spec.md §4.9 step 5).
func (p *Prakriya) MarkTerminal() { p.terminal = true }

// Choices returns a copy of the choice log as a rule->branch map (a Go
// map, so iteration order is not defined), for deduplication (spec.md
// §4.9 step 6).
func (p *Prakriya) Choices() map[string]string {
	out := make(map[string]string, len(p.choices))
	for k, v := range p.choices {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of p, used by the scheduler to fan out on an
// optional rule (spec.md §4.9 step 4).
func (p *Prakriya) Clone() *Prakriya {
	c := &Prakriya{
		Morphs:   append([]Morph(nil), p.Morphs...),
		Tags:     p.Tags,
		History:  append([]HistoryEntry(nil), p.History...),
		blocked:  make(map[string]bool, len(p.blocked)),
		choices:  make(map[string]string, len(p.choices)),
		terminal: p.terminal,
		logSteps: p.logSteps,
	}
	for k, v := range p.blocked {
		c.blocked[k] = v
	}
	for k, v := range p.choices {
		c.choices[k] = v
	}
	return c
}
