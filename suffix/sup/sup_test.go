package sup

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/sandhi"
	"github.com/stretchr/testify/assert"
)

func TestPrepareInstrumentalSingularTriggersNatva(t *testing.T) {
	morphs, err := Prepare(args.Subanta{
		Pratipadika: args.Pratipadika{Text: "rAma"},
		Linga:       args.Pum,
		Vibhakti:    args.V3,
		Vacana:      args.Eka,
	})
	assert.NoError(t, err)
	assert.Equal(t, "rAme", morphs[0].Text)
	assert.Equal(t, "na", morphs[1].Text)

	p := prakriya.New(morphs, true)
	ok := sandhi.JoinInternal("8.4.2.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "rAmeRa", p.Text())
}

func TestPrepareNominativeSingular(t *testing.T) {
	morphs, err := Prepare(args.Subanta{
		Pratipadika: args.Pratipadika{Text: "rAma"},
		Linga:       args.Pum,
		Vibhakti:    args.V1,
		Vacana:      args.Eka,
	})
	assert.NoError(t, err)
	p := prakriya.New(morphs, true)
	assert.Equal(t, "rAmaH", p.Text())
}

func TestPrepareLocativeSingularNoEnding(t *testing.T) {
	morphs, err := Prepare(args.Subanta{
		Pratipadika: args.Pratipadika{Text: "rAma"},
		Linga:       args.Pum,
		Vibhakti:    args.V7,
		Vacana:      args.Eka,
	})
	assert.NoError(t, err)
	assert.Len(t, morphs, 1)
	assert.Equal(t, "rAme", morphs[0].Text)
}

func TestPrepareRejectsNonAStem(t *testing.T) {
	_, err := Prepare(args.Subanta{
		Pratipadika: args.Pratipadika{Text: "hari"},
		Linga:       args.Pum,
		Vibhakti:    args.V1,
		Vacana:      args.Eka,
	})
	assert.ErrorIs(t, err, ErrUnsupportedStem)
}

func TestPrepareRejectsEmptyPratipadika(t *testing.T) {
	_, err := Prepare(args.Subanta{Vibhakti: args.V1, Vacana: args.Eka})
	assert.ErrorIs(t, err, ErrEmptyPratipadika)
}
