package itsamjna

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/tag"
	"github.com/stretchr/testify/assert"
)

func TestStripPac(t *testing.T) {
	clean, tags := Strip(`qupa\ca~^z`)
	assert.Equal(t, "pac", clean)
	assert.False(t, tags.Has(tag.Kit))
}

func TestStripKr(t *testing.T) {
	clean, _ := Strip(`qukf\Y`)
	assert.Equal(t, "kf", clean)
}

func TestStripNoItLetters(t *testing.T) {
	clean, tags := Strip("BU")
	assert.Equal(t, "BU", clean)
	assert.Equal(t, tag.Set{}, tags)
}

func TestStripFinalNit(t *testing.T) {
	clean, tags := Strip("likN")
	assert.Equal(t, "lik", clean)
	assert.True(t, tags.Has(tag.Nit))
}

func TestStripFinalPit(t *testing.T) {
	clean, tags := Strip("ktvap")
	assert.Equal(t, "ktva", clean)
	assert.True(t, tags.Has(tag.Pit))
}

func TestStripLeadingNiBeforeConsonant(t *testing.T) {
	clean, _ := Strip("YiSru")
	assert.Equal(t, "Sru", clean)
}
