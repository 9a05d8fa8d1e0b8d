package sandhi

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/tag"
	"github.com/stretchr/testify/assert"
)

func TestJashtvaVoicesFinalStop(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("vAk", tag.Of(tag.Dhatu)),
		prakriya.NewMorph("Iza", tag.Of(tag.Pratyaya)),
	}, true)
	ok := JoinInternal("8.2.39.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "vAgIza", p.Text())
}

func TestNatvaAcrossTransparentVowel(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("rAme", tag.Of(tag.Pratipadika, tag.Anga)),
		prakriya.NewMorph("na", tag.Of(tag.Sup, tag.Pratyaya)),
	}, true)
	ok := JoinInternal("8.4.2.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "rAmeRa", p.Text())
}

func TestNatvaBlockedByOpaqueConsonant(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("rAja", tag.Of(tag.Pratipadika, tag.Anga)),
		prakriya.NewMorph("na", tag.Of(tag.Sup, tag.Pratyaya)),
	}, true)
	ok := JoinInternal("8.4.2.test", p, 0)
	assert.False(t, ok)
	assert.Equal(t, "rAjana", p.Text())
}

func TestAnusvaraBeforeConsonant(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("gam", tag.Of(tag.Dhatu)),
		prakriya.NewMorph("ti", tag.Of(tag.Pratyaya, tag.Tin)),
	}, true)
	ok := JoinInternal("8.3.23.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "gaMti", p.Text())
}

func TestJoinExternalVowelSandhiIToY(t *testing.T) {
	nl, nr, ok := JoinExternal("daDi", "udakam")
	assert.True(t, ok)
	assert.Equal(t, "daDy", nl)
	assert.Equal(t, "udakam", nr)
	assert.Equal(t, "daDyudakam", nl+nr)
}

func TestJoinExternalVisargaBeforeAEqualsO(t *testing.T) {
	nl, nr, ok := JoinExternal("rAmaH", "atra")
	assert.True(t, ok)
	assert.Equal(t, "rAmo", nl)
	assert.Equal(t, "tra", nr)
}

func TestCartvaDevoicesFinal(t *testing.T) {
	assert.Equal(t, "vAk", Cartva("vAg"))
}

func TestAvadeshaOToAvBeforeVowel(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("Bo", tag.Of(tag.Dhatu, tag.Anga, tag.Guna)),
		prakriya.NewMorph("a", tag.Of(tag.Pratyaya, tag.Sarvadhatuka)),
	}, true)
	ok := JoinInternal("6.1.78.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "Bava", p.Text())
}

func TestAvadeshaEToAyBeforeVowel(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("ne", tag.Of(tag.Dhatu, tag.Anga, tag.Guna)),
		prakriya.NewMorph("ana", tag.Of(tag.Pratyaya, tag.Krt)),
	}, true)
	ok := JoinInternal("6.1.78.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "nayana", p.Text())
}
