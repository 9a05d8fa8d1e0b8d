package grading

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/tag"
	"github.com/stretchr/testify/assert"
)

func newP(morphs ...prakriya.Morph) *prakriya.Prakriya {
	return prakriya.New(morphs, true)
}

func TestGunaRaisesShortVowel(t *testing.T) {
	p := newP(prakriya.NewMorph("Buj", tag.Of(tag.Dhatu, tag.Anga)))
	ok := Guna("3.1.1.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "Boj", p.Morphs[0].Text)
	assert.True(t, p.Morphs[0].Tags.Has(tag.Guna))
}

func TestGunaBlockedByNit(t *testing.T) {
	p := newP(prakriya.NewMorph("Buj", tag.Of(tag.Dhatu, tag.Anga, tag.Nit)))
	ok := Guna("3.1.1.test", p, 0)
	assert.False(t, ok)
	assert.Equal(t, "Buj", p.Morphs[0].Text)
}

func TestVrddhiOnGhan(t *testing.T) {
	p := newP(
		prakriya.NewMorph("pac", tag.Of(tag.Dhatu, tag.Anga)),
		prakriya.NewMorph("a", tag.Of(tag.Pratyaya, tag.Krt)),
	)
	ok := Vrddhi("3.1.1.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "pAc", p.Morphs[0].Text)
}

func TestInsertItForSetRoot(t *testing.T) {
	p := newP(
		prakriya.NewMorph("kf", tag.Of(tag.Dhatu, tag.Anga, tag.Seti)),
		prakriya.NewMorph("tvA", tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka)),
	)
	ok := InsertIt("7.2.35.test", p, 1)
	assert.True(t, ok)
	assert.Equal(t, "kfitvA", p.Text())
}

func TestInsertItSkippedForAnitRoot(t *testing.T) {
	p := newP(
		prakriya.NewMorph("kf", tag.Of(tag.Dhatu, tag.Anga, tag.Anit)),
		prakriya.NewMorph("tvA", tag.Of(tag.Pratyaya, tag.Krt, tag.Ardhadhatuka)),
	)
	ok := InsertIt("7.2.35.test", p, 1)
	assert.False(t, ok)
	assert.Equal(t, "kftvA", p.Text())
}
