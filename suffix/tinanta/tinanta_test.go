package tinanta

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/dhatu"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/sandhi"
	"github.com/stretchr/testify/assert"
)

func TestAttachBhvadiLatPrathamaEka(t *testing.T) {
	d, err := args.NewDhatu("BU", args.Bhvadi)
	assert.NoError(t, err)
	morphs, _, err := dhatu.Prepare(d)
	assert.NoError(t, err)
	p := prakriya.New(morphs, true)

	err = Attach(p, args.Tinanta{
		Dhatu:   d,
		Lakara:  args.Lat,
		Purusha: args.Prathama,
		Vacana:  args.Eka,
	})
	assert.NoError(t, err)

	ok := sandhi.JoinInternal("6.1.78.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "Bavati", p.Text())
}

func TestAttachLunSicOfKr(t *testing.T) {
	d, err := args.NewDhatu("kf", args.Tanadi)
	assert.NoError(t, err)
	morphs, _, err := dhatu.Prepare(d)
	assert.NoError(t, err)
	p := prakriya.New(morphs, true)

	err = Attach(p, args.Tinanta{
		Dhatu:   d,
		Lakara:  args.Lun,
		Purusha: args.Prathama,
		Vacana:  args.Eka,
	})
	assert.NoError(t, err)

	ok := sandhi.JoinInternal("8.2.66.test", p, 1)
	assert.True(t, ok)
	assert.Equal(t, "akArzIt", p.Text())
}

func TestAttachAtmanepadaLat(t *testing.T) {
	d, err := args.NewDhatu("Edh", args.Bhvadi)
	assert.NoError(t, err)
	morphs, _, err := dhatu.Prepare(d)
	assert.NoError(t, err)
	p := prakriya.New(morphs, true)

	err = Attach(p, args.Tinanta{
		Dhatu:   d,
		Lakara:  args.Lat,
		Purusha: args.Uttama,
		Vacana:  args.Eka,
		Pada:    args.Atmanepada,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Edhae", p.Text())
}

func TestAttachUnsupportedGana(t *testing.T) {
	d := args.Dhatu{Upadesha: "kfz", Gana: args.Gana(99)}
	morphs, _, err := dhatu.Prepare(d)
	assert.NoError(t, err)
	p := prakriya.New(morphs, true)

	err = Attach(p, args.Tinanta{Dhatu: d, Lakara: args.Lat, Purusha: args.Prathama, Vacana: args.Eka})
	assert.ErrorIs(t, err, ErrUnsupportedGana)
}
