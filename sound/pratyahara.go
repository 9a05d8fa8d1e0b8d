package sound

import (
	"fmt"
	"strings"
)

// InvalidPratyaharaError reports a malformed pratyāhāra specification.
type InvalidPratyaharaError struct {
	Spec string
}

func (e *InvalidPratyaharaError) Error() string {
	return fmt.Sprintf("sound: invalid pratyahara spec %q", e.Spec)
}

// sutra is one row of the fourteen Śiva-sūtras: a run of sounds terminated
// by an anubandha ("it") letter.
type sutra struct {
	sounds string
	it     byte
}

// shivaSutras is the fixed fourteen-row table the Aṣṭādhyāyī's pratyāhāra
// notation is built from.
var shivaSutras = []sutra{
	{"aiu", 'R'},
	{"fx", 'k'},
	{"eo", 'N'},
	{"EO", 'c'},
	{"hyvr", 'w'},
	{"l", 'R'},
	{"YmNRn", 'm'},
	{"JB", 'Y'},
	{"GQD", 'z'},
	{"jbgqd", 'S'},
	{"KPCWTcwt", 'v'},
	{"kp", 'y'},
	{"Szs", 'r'},
	{"h", 'l'},
}

var shortVowels = FromString("aiufx")

// ToDirgha returns the long counterpart of a short vowel, or 0 if c is not
// one of a/i/u/f/x.
func ToDirgha(c Sound) Sound {
	switch c {
	case 'a':
		return 'A'
	case 'i':
		return 'I'
	case 'u':
		return 'U'
	case 'f':
		return 'F'
	case 'x':
		return 'X'
	}
	return 0
}

// Pratyahara expands a compact pratyāhāra spelling such as "ac", "jhal", or
// "hal" into the Set of sounds it denotes, by walking shivaSutras from the
// first occurrence of the spec's initial letter up to and including the
// sūtra whose terminator matches the spec's final letter.
//
// The terminator "R" (ṇ) occurs twice in the Śiva-sūtras. A spec ending in
// a bare "R" selects the first occurrence; a spec ending in the literal
// suffix "R2" selects the second — see spec.md §9 for why this convention
// is preserved rather than redesigned.
func Pratyahara(spec string) (Set, error) {
	if spec == "" {
		return Set{}, &InvalidPratyaharaError{spec}
	}

	first := spec[0]
	useSecondR := strings.HasSuffix(spec, "R2")
	it := spec[len(spec)-1]
	if useSecondR {
		it = 'R'
	}

	started := false
	sawFirstR := false
	var res []byte

	for _, su := range shivaSutras {
		for i := 0; i < len(su.sounds); i++ {
			c := su.sounds[i]
			if first == c {
				started = true
			}
			if started {
				res = append(res, c)
				if shortVowels.Contains(c) {
					res = append(res, ToDirgha(c))
				}
			}
		}

		if started && it == su.it {
			if useSecondR && !sawFirstR {
				sawFirstR = true
			} else {
				if len(res) == 0 {
					return Set{}, &InvalidPratyaharaError{spec}
				}
				return FromString(string(res)), nil
			}
		}
	}

	return Set{}, &InvalidPratyaharaError{spec}
}
