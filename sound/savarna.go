package sound

import "strings"

// savarnaGroups maps each sound to the full group of sounds that are
// savarṇa (homorganic, same place+manner) with it, keyed by any member of
// the group. Mirrors the teacher's place-of-articulation tables
// (morph/phonology.go's backVowels/frontVowels groupings), but keyed by
// Pāṇinian savarṇa classes instead of Turkic vowel harmony classes.
var savarnaGroups = map[byte]string{
	'a': "aA", 'A': "aA",
	'i': "iI", 'I': "iI",
	'u': "uU", 'U': "uU",
	'f': "fFxX", 'F': "fFxX", 'x': "fFxX", 'X': "fFxX",
	'k': "kKgGN", 'K': "kKgGN", 'g': "kKgGN", 'G': "kKgGN", 'N': "kKgGN",
	'c': "cCjJY", 'C': "cCjJY", 'j': "cCjJY", 'J': "cCjJY", 'Y': "cCjJY",
	'w': "wWqQR", 'W': "wWqQR", 'q': "wWqQR", 'Q': "wWqQR", 'R': "wWqQR",
	't': "tTdDn", 'T': "tTdDn", 'd': "tTdDn", 'D': "tTdDn", 'n': "tTdDn",
	'p': "pPbBm", 'P': "pPbBm", 'b': "pPbBm", 'B': "pPbBm", 'm': "pPbBm",
}

// IsSavarna reports whether x and y belong to the same savarṇa class.
func IsSavarna(x, y Sound) bool {
	gx, okx := savarnaGroups[x]
	gy, oky := savarnaGroups[y]
	return okx && oky && gx == gy
}

// Savarna returns the Set of sounds savarṇa to c (including c itself), or
// the empty Set if c has no savarṇa class.
func Savarna(c Sound) Set {
	return FromString(savarnaGroups[c])
}

var akTerms = map[string]bool{"a": true, "A": true, "i": true, "I": true, "u": true, "U": true, "f": true, "F": true, "x": true, "X": true}

// S builds a Set from a whitespace-separated Pāṇinian term spec, e.g.
// "ac", "jhal", "ku~", "a ku~ h H". Each term is resolved independently
// and the resulting sets are unioned:
//
//   - a bare ak vowel ("a", "i", ...) or a term ending in "u~" expands to
//     its savarṇa class;
//   - a single-character term is taken literally;
//   - anything else is resolved as a pratyāhāra (see Pratyahara).
func S(spec string) (Set, error) {
	var out Set
	for _, term := range strings.Fields(spec) {
		switch {
		case strings.HasSuffix(term, "u~") || akTerms[term]:
			out = out.Union(Savarna(term[0]))
		case len(term) == 1:
			out = out.Union(FromString(term))
		default:
			set, err := Pratyahara(term)
			if err != nil {
				return Set{}, err
			}
			out = out.Union(set)
		}
	}
	return out, nil
}

// MustS is S but panics on error; intended for package-level var
// initialization from fixed, known-good specs (mirrors the teacher's
// lazily-built init()-time tables).
func MustS(spec string) Set {
	set, err := S(spec)
	if err != nil {
		panic(err)
	}
	return set
}
