package args

import "errors"

// ErrInvalidDhatu is returned when a Dhatu spec combination is
// grammatically impossible — spec.md §7, "filtered silently at spec
// construction time by the builder (returns a spec-construction error)".
var ErrInvalidDhatu = errors.New("args: invalid dhatu combination")

// ErrInvalidEncoding is returned when a spec's citation text contains a
// byte outside the SLP1 alphabet (spec.md §7).
var ErrInvalidEncoding = errors.New("args: invalid encoding")

// Dhatu is a verb-root specification: citation form, gaṇa class, optional
// sub-class, ordered prefixes, and an ordered sanādi (derivational
// suffix) stack.
type Dhatu struct {
	Upadesha   string
	Gana       Gana
	Antargana  string
	Prefixes   []string
	Sanadis    []Sanadi
}

// NewDhatu builds a mūla-dhātu spec, validating the citation's encoding.
func NewDhatu(upadesha string, gana Gana) (Dhatu, error) {
	if err := validateEncoding(upadesha); err != nil {
		return Dhatu{}, err
	}
	return Dhatu{Upadesha: upadesha, Gana: gana}, nil
}

// WithPrefixes returns a copy of d with the given upasargas prepended, in
// the order given (leftmost first, matching spec.md §4.3).
func (d Dhatu) WithPrefixes(prefixes ...string) Dhatu {
	d.Prefixes = append(append([]string(nil), d.Prefixes...), prefixes...)
	return d
}

// WithSanadi returns a copy of d with the given sanādi suffixes appended
// to its derivational stack, validating the yaṅ-eligibility constraint
// from spec.md §4.3 ("yaṅ is licensed only if the root begins with a
// consonant and contains exactly one vowel").
func (d Dhatu) WithSanadi(sanadis ...Sanadi) (Dhatu, error) {
	for _, s := range sanadis {
		if s == Yan || s == YanLuk {
			if err := validateYanEligible(d.Upadesha); err != nil {
				return Dhatu{}, err
			}
		}
	}
	d.Sanadis = append(append([]Sanadi(nil), d.Sanadis...), sanadis...)
	return d, nil
}

func validateYanEligible(upadesha string) error {
	if upadesha == "" {
		return ErrInvalidDhatu
	}
	vowels := 0
	for i := 0; i < len(upadesha); i++ {
		if isVowelByte(upadesha[i]) {
			vowels++
		}
	}
	// yaN is licensed only if the root begins with a consonant and
	// contains exactly one vowel (spec.md §4.3).
	if isVowelByte(upadesha[0]) || vowels != 1 {
		return ErrInvalidDhatu
	}
	return nil
}

func isVowelByte(c byte) bool {
	switch c {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}

const slp1Alphabet = "aAiIuUfFxXeEoOMHkKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh~\\^"

func validateEncoding(s string) error {
	for i := 0; i < len(s); i++ {
		found := false
		for j := 0; j < len(slp1Alphabet); j++ {
			if s[i] == slp1Alphabet[j] {
				found = true
				break
			}
		}
		if !found {
			return ErrInvalidEncoding
		}
	}
	if s == "" {
		return ErrInvalidEncoding
	}
	return nil
}

// Tinanta is a finite-verb specification.
type Tinanta struct {
	Dhatu    Dhatu
	Prayoga  Prayoga
	Lakara   Lakara
	Purusha  Purusha
	Vacana   Vacana
	Pada     Pada // override; PadaUnspecified lets the engine decide
}

// Krdanta is a primary-derivative (verb -> nominal) specification.
type Krdanta struct {
	Dhatu Dhatu
	Krt   Krt
}

// Pratipadika is a nominal stem: either a bare stored string or the
// output of a krdanta/taddhitanta/samasa derivation feeding back in as a
// stem for further derivation.
type Pratipadika struct {
	Text string
}

// Taddhitanta is a secondary-derivative specification.
type Taddhitanta struct {
	Pratipadika Pratipadika
	Taddhita    Taddhita
	Condition   SemanticCondition
}

// Subanta is a declined-noun specification.
type Subanta struct {
	Pratipadika Pratipadika
	Linga       Linga
	Vibhakti    Vibhakti
	Vacana      Vacana
}

// Samasa is a nominal-compound specification: an ordered list of
// constituent subantas plus the compound type.
type Samasa struct {
	Padas []Subanta
	Type  SamasaType
}

// Vakya is an ordered list of already-finished padas, used to drive
// cross-word (external) sandhi.
type Vakya struct {
	Padas []string
}
