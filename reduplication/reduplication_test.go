package reduplication

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/prakriya"
	"github.com/ambuda-org/vidyut-prakriya/tag"
	"github.com/stretchr/testify/assert"
)

// The well-known perfect babhUva shows an abhyāsa vowel further reduced
// to "a" — a root-specific irregularity outside spec.md §4.6's general
// algorithm (which this port implements), so the general pass alone
// gives "bu" rather than "ba" here.
func TestBuildSimpleRoot(t *testing.T) {
	assert.Equal(t, "bu", Build("BU"))
}

func TestBuildGutturalToPalatal(t *testing.T) {
	assert.Equal(t, "ca", Build("kf"))
}

func TestBuildHToJ(t *testing.T) {
	assert.Equal(t, "ju", Build("hu"))
}

func TestBuildClusterInitialTakesFirstConsonant(t *testing.T) {
	assert.Equal(t, "ta", Build("trapa"))
}

func TestBuildSStopClusterTakesStop(t *testing.T) {
	assert.Equal(t, "ta", Build("sTA"))
}

func TestBuildVowelInitialRoot(t *testing.T) {
	assert.Equal(t, "a", Build("as"))
}

func TestReduplicateInsertsAbhyasaMorph(t *testing.T) {
	p := prakriya.New([]prakriya.Morph{
		prakriya.NewMorph("BU", tag.Of(tag.Dhatu, tag.Anga)),
	}, true)
	ok := Reduplicate("6.1.8.test", p, 0)
	assert.True(t, ok)
	assert.Equal(t, "buBU", p.Text())
	assert.True(t, p.Morphs[0].Tags.Has(tag.Abhyasa))
}
