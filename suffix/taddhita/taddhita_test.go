package taddhita

import (
	"testing"

	"github.com/ambuda-org/vidyut-prakriya/args"
	"github.com/stretchr/testify/assert"
)

func TestAttachTyanUnderApatyartha(t *testing.T) {
	morphs, err := Attach("dasarata", args.Tyan, args.Apatyartha)
	assert.NoError(t, err)
	assert.Equal(t, "dAsarata", morphs[0].Text)
	assert.Equal(t, "a", morphs[1].Text)
}

func TestAttachRejectsWrongCondition(t *testing.T) {
	_, err := Attach("dasarata", args.Tyan, args.TenaProktam)
	assert.ErrorIs(t, err, ErrWrongCondition)
}

func TestAttachRejectsEmptyStem(t *testing.T) {
	_, err := Attach("", args.Tyan, args.Apatyartha)
	assert.ErrorIs(t, err, ErrEmptyPratipadika)
}

func TestAttachUnsupportedTaddhita(t *testing.T) {
	_, err := Attach("rAma", args.Taddhita(999), args.NoCondition)
	assert.ErrorIs(t, err, ErrUnsupportedTaddhita)
}
