package prakriya

import "github.com/ambuda-org/vidyut-prakriya/tag"

// recordRule appends a history entry for rule. spec.md §3 says every
// commit appends to history; we always keep the full log internally
// (HasRun depends on it) and let the log_steps setting control only how
// much of it Prakriya.VisibleHistory returns.
func (p *Prakriya) recordRule(rule string) {
	p.History = append(p.History, HistoryEntry{Rule: rule, Text: p.Text()})
}

// VisibleHistory returns the full history if log_steps is enabled, or a
// single-entry summary (the final state only) otherwise — spec.md §4.9
// config option log_steps: "if set, each commit records full history;
// otherwise only the final text is retained."
func (p *Prakriya) VisibleHistory() []HistoryEntry {
	if p.logSteps || len(p.History) == 0 {
		return p.History
	}
	last := p.History[len(p.History)-1]
	return []HistoryEntry{last}
}

// SetAt replaces the text of the morph at index i, tagging the commit
// with rule. This is the primitive substitution/grading rules build on.
func (p *Prakriya) SetAt(rule string, i int, newText string) {
	if i < 0 || i >= len(p.Morphs) {
		return
	}
	if p.IsBlocked(rule) {
		return
	}
	p.Morphs[i].Text = newText
	p.recordRule(rule)
}

// SetAtFunc replaces the text of the morph at index i using f(oldText),
// for rules whose substitution depends on the current value.
func (p *Prakriya) SetAtFunc(rule string, i int, f func(string) string) {
	if i < 0 || i >= len(p.Morphs) {
		return
	}
	if p.IsBlocked(rule) {
		return
	}
	p.Morphs[i].Text = f(p.Morphs[i].Text)
	p.recordRule(rule)
}

// InsertBefore inserts m immediately before index i, growing the morph
// sequence by one (spec.md §3 invariant: slot count only grows via
// insert).
func (p *Prakriya) InsertBefore(rule string, i int, m Morph) {
	if p.IsBlocked(rule) {
		return
	}
	p.Morphs = append(p.Morphs, Morph{})
	copy(p.Morphs[i+1:], p.Morphs[i:])
	p.Morphs[i] = m
	p.recordRule(rule)
}

// InsertAfter inserts m immediately after index i.
func (p *Prakriya) InsertAfter(rule string, i int, m Morph) {
	p.InsertBefore(rule, i+1, m)
}

// Append adds m to the end of the morph sequence.
func (p *Prakriya) Append(rule string, m Morph) {
	if p.IsBlocked(rule) {
		return
	}
	p.Morphs = append(p.Morphs, m)
	p.recordRule(rule)
}

// DeleteAt removes the morph at index i, shrinking the sequence by one
// (spec.md §3 invariant: slot count only shrinks via delete).
func (p *Prakriya) DeleteAt(rule string, i int) {
	if i < 0 || i >= len(p.Morphs) {
		return
	}
	if p.IsBlocked(rule) {
		return
	}
	p.Morphs = append(p.Morphs[:i], p.Morphs[i+1:]...)
	p.recordRule(rule)
}

// AddTag adds t to the morph at index i's tag set, honoring stickiness
// (spec.md §8 invariant 2: sticky tags are never silently removed — AddTag
// never removes a tag, and no operator in this file removes one either).
func (p *Prakriya) AddTag(i int, t tag.Tag) {
	if i < 0 || i >= len(p.Morphs) {
		return
	}
	p.Morphs[i].Tags = p.Morphs[i].Tags.With(t)
}

// AddGlobalTag adds t to the prakriyā-wide tag set.
func (p *Prakriya) AddGlobalTag(t tag.Tag) {
	p.Tags = p.Tags.With(t)
}

// Block marks rule so it can never fire again in this derivation, even if
// its guard would otherwise permit it (spec.md §3 invariant).
func (p *Prakriya) Block(rule string) {
	p.blocked[rule] = true
}

// Choose records that the optional rule `rule` resolved to `branch` in
// this derivation's choice log (spec.md §3, "choice log").
func (p *Prakriya) Choose(rule, branch string) {
	p.choices[rule] = branch
}

// Find returns the index of the first morph (scanning left-to-right
// starting at `from`) whose tags contain every tag in want, or -1.
// Together with FindLast it follows spec.md §9's "no back-pointers, scan
// instead" design note.
func (p *Prakriya) Find(from int, want ...tag.Tag) int {
	for i := from; i < len(p.Morphs); i++ {
		if p.Morphs[i].Tags.HasAll(want...) {
			return i
		}
	}
	return -1
}

// FindLast scans right-to-left from `from` (inclusive) for the first
// morph whose tags contain every tag in want, or -1. This is how a rule
// locates "the aṅga immediately to the left" of a given index.
func (p *Prakriya) FindLast(from int, want ...tag.Tag) int {
	if from >= len(p.Morphs) {
		from = len(p.Morphs) - 1
	}
	for i := from; i >= 0; i-- {
		if p.Morphs[i].Tags.HasAll(want...) {
			return i
		}
	}
	return -1
}
