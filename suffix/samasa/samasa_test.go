package samasa

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/stretchr/testify/assert"
)

func TestBuildTatpurushaWithNStemWeakening(t *testing.T) {
	result, err := Build(args.Samasa{
		Padas: []args.Subanta{
			{Pratipadika: args.Pratipadika{Text: "rAjan"}},
			{Pratipadika: args.Pratipadika{Text: "puruza"}},
		},
		Type: args.Tatpurusha,
	})
	assert.NoError(t, err)
	assert.Equal(t, "rAjapuruza", result.Text)
}

func TestBuildKeepsFinalMemberUntruncated(t *testing.T) {
	result, err := Build(args.Samasa{
		Padas: []args.Subanta{
			{Pratipadika: args.Pratipadika{Text: "mahA"}},
			{Pratipadika: args.Pratipadika{Text: "rAjan"}},
		},
		Type: args.Karmadharaya,
	})
	assert.NoError(t, err)
	assert.Equal(t, "mahArAjan", result.Text)
}

func TestBuildRejectsNoPadas(t *testing.T) {
	_, err := Build(args.Samasa{})
	assert.ErrorIs(t, err, ErrNoPadas)
}

func TestBuildRejectsEmptyPada(t *testing.T) {
	_, err := Build(args.Samasa{Padas: []args.Subanta{{Pratipadika: args.Pratipadika{Text: ""}}}})
	assert.ErrorIs(t, err, ErrEmptyPada)
}
