package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS(t *testing.T) {
	cases := []struct{ spec, want string }{
		{"ac", "aAiIuUfFxXeEoO"},
		{"iR", "iIuU"},
		{"iR2", "iIuUfFxXeEoOyrlvh"},
		{"yaR", "yrlv"},
		{"hal", "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"},
		{"Yam", "NYRnm"},
		{"Sar", "Szs"},
		{"a", "aA"},
		{"e", "e"},
		{"ku~", "kKgGN"},
		{"cu~", "cCjJY"},
		{"i cu~", "iIcCjJY"},
		{"a ku~ h H", "aAHkKgGNh"},
	}
	for _, c := range cases {
		set, err := S(c.spec)
		require.NoError(t, err, c.spec)
		assert.Equal(t, c.want, set.String(), "spec %q", c.spec)
	}
}

func TestPratyaharaInvalid(t *testing.T) {
	_, err := S("zz")
	assert.Error(t, err)
}

func TestBuildMapJhalJash(t *testing.T) {
	m, err := BuildMap("Jal", "jaS")
	require.NoError(t, err)

	want := map[byte]byte{
		'J': 'j', 'B': 'b', 'G': 'g', 'Q': 'q', 'D': 'd',
		'j': 'j', 'b': 'b', 'g': 'g', 'q': 'q', 'd': 'd',
		'K': 'g', 'P': 'b', 'C': 'j', 'W': 'q', 'T': 'd',
		'c': 'j', 'w': 'q', 't': 'd', 'k': 'g', 'p': 'b',
		'S': 'j', 'z': 'q', 's': 'd', 'h': 'g',
	}
	for k, v := range want {
		got, ok := m.Get(k)
		require.True(t, ok, "key %q", string(k))
		assert.Equal(t, string(v), string(got), "key %q", string(k))
	}
}

func TestGunaVrddhi(t *testing.T) {
	g, ok := ToGuna('i')
	require.True(t, ok)
	assert.Equal(t, "e", g)

	v, ok := ToVrddhi('i')
	require.True(t, ok)
	assert.Equal(t, "E", v)
}

func TestSavarna(t *testing.T) {
	assert.True(t, IsSavarna('k', 'K'))
	assert.False(t, IsSavarna('k', 'c'))
}
