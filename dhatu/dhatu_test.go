package dhatu

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/ambuda-org/vidyut-prakriya/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreparePac(t *testing.T) {
	d, err := args.NewDhatu(`qupa\ca~^z`, args.Bhvadi)
	require.NoError(t, err)

	morphs, globalTags, err := Prepare(d)
	require.NoError(t, err)
	require.Len(t, morphs, 1)
	assert.Equal(t, "pac", morphs[0].Text)
	assert.True(t, morphs[0].Tags.Has(tag.Dhatu))
	assert.True(t, morphs[0].Tags.Has(tag.Anga))
	assert.True(t, globalTags.Has(tag.Seti))
}

func TestPrepareAnitRoot(t *testing.T) {
	d, err := args.NewDhatu(`qukf\Y`, args.Tanadi)
	require.NoError(t, err)

	morphs, globalTags, err := Prepare(d)
	require.NoError(t, err)
	assert.Equal(t, "kf", morphs[0].Text)
	assert.True(t, morphs[0].Tags.Has(tag.Anit))
	assert.True(t, globalTags.Has(tag.Anit))
}

func TestPrepareWithPrefixesAndSanadi(t *testing.T) {
	d, err := args.NewDhatu(`qukf\Y`, args.Tanadi)
	require.NoError(t, err)
	d = d.WithPrefixes("pra")
	d, err = d.WithSanadi(args.Nic)
	require.NoError(t, err)

	morphs, _, err := Prepare(d)
	require.NoError(t, err)
	require.Len(t, morphs, 3)
	assert.Equal(t, "pra", morphs[0].Text)
	assert.True(t, morphs[0].Tags.Has(tag.Upasarga))
	assert.Equal(t, "kf", morphs[1].Text)
	assert.Equal(t, "i", morphs[2].Text)
	assert.True(t, morphs[2].Tags.Has(tag.Pratyaya))
}

func TestPrepareGanaMismatch(t *testing.T) {
	d, err := args.NewDhatu(`qupa\ca~^z`, args.Adadi)
	require.NoError(t, err)

	_, _, err = Prepare(d)
	assert.Error(t, err)
}

func TestPrepareEmptyAfterStrip(t *testing.T) {
	d := args.Dhatu{Upadesha: ""}
	_, _, err := Prepare(d)
	assert.ErrorIs(t, err, ErrEmptyDhatu)
}
