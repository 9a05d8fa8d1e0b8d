package krdanta

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/dhatu"
	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/stretchr/testify/assert"
)

func prepare(t *testing.T, upadesha string, gana args.Gana, prefixes ...string) *prakriya.Prakriya {
	t.Helper()
	d, err := args.NewDhatu(upadesha, gana)
	assert.NoError(t, err)
	d = d.WithPrefixes(prefixes...)
	morphs, _, err := dhatu.Prepare(d)
	assert.NoError(t, err)
	return prakriya.New(morphs, true)
}

func TestAttachKtvaNoPrefix(t *testing.T) {
	p := prepare(t, "BU", args.Bhvadi)
	err := Attach(p, args.Ktva)
	assert.NoError(t, err)
	assert.Equal(t, "BUtvA", p.Text())
}

func TestAttachKtvaRejectsPrefixedRoot(t *testing.T) {
	p := prepare(t, "kf", args.Tanadi, "sam")
	err := Attach(p, args.Ktva)
	assert.ErrorIs(t, err, ErrKtvaWithPrefix)
}

func TestAttachLyapRequiresPrefix(t *testing.T) {
	p := prepare(t, "kf", args.Tanadi)
	err := Attach(p, args.Lyap)
	assert.ErrorIs(t, err, ErrLyapWithoutPrefix)
}

func TestAttachLyapWithPrefix(t *testing.T) {
	p := prepare(t, "kf", args.Tanadi, "sam")
	err := Attach(p, args.Lyap)
	assert.NoError(t, err)
	assert.Equal(t, "samkfya", p.Text())
}

func TestAttachGhanVrddhiAndKutva(t *testing.T) {
	p := prepare(t, `qupa\ca~^z`, args.Bhvadi)
	err := Attach(p, args.GaY)
	assert.NoError(t, err)
	assert.Equal(t, "pAka", p.Text())
}

func TestAttachUnsupportedKrt(t *testing.T) {
	p := prepare(t, "pac", args.Bhvadi)
	err := Attach(p, args.Krt(999))
	assert.ErrorIs(t, err, ErrUnsupportedKrt)
}
