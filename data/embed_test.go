package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupDhatuFound(t *testing.T) {
	e, ok := LookupDhatu(`qupa\ca~^z`)
	assert.True(t, ok)
	assert.Equal(t, 1, e.Gana)
	assert.Equal(t, "BvAdi", e.GanaName)
}

func TestLookupDhatuMissing(t *testing.T) {
	_, ok := LookupDhatu("nonsense")
	assert.False(t, ok)
}

func TestLookupDhatuSortedUnique(t *testing.T) {
	assert.True(t, len(dhatuEntries) > 10)
	for i := 1; i < len(dhatuUpadeshas); i++ {
		assert.True(t, dhatuUpadeshas[i-1] < dhatuUpadeshas[i])
	}
}
