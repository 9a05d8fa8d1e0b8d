// Package args defines the immutable input specifications for a requested
// derivation (spec.md §3, "Spec (arg) types"): Dhatu, Tinanta, Krdanta,
// Taddhitanta, Subanta, Samasa, and Vakya, plus the closed enumerations
// they're built from (Gana, Lakara, Purusha, Vacana, Prayoga, Linga,
// Vibhakti, Sanadi, and a representative Krt/Taddhita subset).
//
// Enum values and names are ported from
// bindings-python/src/prakriya/args.rs (the upstream Python-binding enum
// definitions), in the Go idiom the teacher uses for its own closed enum
// (morph.MorphTag): an int-based type with a name table and a String
// method, rather than Rust-style derive macros.
package args

import "fmt"

// Gana is one of the eleven verb-root classes.
type Gana int

const (
	Bhvadi Gana = iota + 1
	Adadi
	Juhotyadi
	Divadi
	Svadi
	Tudadi
	Rudhadi
	Tanadi
	Kryadi
	Curadi
	Kandvadi
)

var ganaNames = [...]string{"", "Bhvadi", "Adadi", "Juhotyadi", "Divadi", "Svadi", "Tudadi", "Rudhadi", "Tanadi", "Kryadi", "Curadi", "Kandvadi"}

func (g Gana) String() string {
	if int(g) >= 0 && int(g) < len(ganaNames) {
		return ganaNames[g]
	}
	return fmt.Sprintf("Gana(%d)", int(g))
}

// Lakara is one of the ten tense/mood placeholders.
type Lakara int

const (
	Lat Lakara = iota + 1 // present
	Lit                   // perfect
	Lut                   // periphrastic future
	Lrt                   // simple future
	Lot                   // imperative
	Lan                   // imperfect
	LinVidhi              // optative
	LinAshir              // benedictive
	Lun                   // aorist
	Lrn                   // conditional
)

var lakaraNames = [...]string{"", "Lat", "Lit", "Lut", "Lrt", "Lot", "Lan", "LinVidhi", "LinAshir", "Lun", "Lrn"}

func (l Lakara) String() string {
	if int(l) >= 0 && int(l) < len(lakaraNames) {
		return lakaraNames[l]
	}
	return fmt.Sprintf("Lakara(%d)", int(l))
}

// IsPast reports whether l takes the aṭ/āṭ augment (laṅ, luṅ, lṛṅ).
func (l Lakara) IsPast() bool {
	return l == Lan || l == Lun || l == Lrn
}

// Purusha is grammatical person.
type Purusha int

const (
	Prathama Purusha = iota + 1 // 3rd person
	Madhyama                    // 2nd person
	Uttama                      // 1st person
)

// Vacana is grammatical number.
type Vacana int

const (
	Eka Vacana = iota + 1
	Dvi
	Bahu
)

// Prayoga is voice.
type Prayoga int

const (
	Kartari Prayoga = iota + 1 // active
	Karmani                    // passive
	Bhave                      // impersonal
)

// Pada is the parasmaipada/ātmanepada distinction.
type Pada int

const (
	PadaUnspecified Pada = iota
	Parasmaipada
	Atmanepada
)

// Linga is grammatical gender.
type Linga int

const (
	Pum Linga = iota + 1
	Stri
	Napumsaka
)

// Vibhakti is nominal case (1st = nominative .. 8th = vocative per the
// traditional numbering vidyut-prakriya itself uses).
type Vibhakti int

const (
	V1 Vibhakti = iota + 1 // nominative (prathamā)
	V2                     // accusative (dvitīyā)
	V3                     // instrumental (tṛtīyā)
	V4                     // dative (caturthī)
	V5                     // ablative (pañcamī)
	V6                     // genitive (ṣaṣṭhī)
	V7                     // locative (saptamī)
	Sambodhana              // vocative
)

// Sanadi is a derivational suffix that forms a new root from an existing
// one (spec.md §4.3).
type Sanadi int

const (
	San Sanadi = iota + 1 // desiderative
	Nic                    // causative
	Yan                    // intensive/frequentative
	YanLuk                 // intensive without reduplication surfaced
	Kyac                    // denominal
	Kamyac
	Kyan
	Kvip
)

// Krt is the closed enumeration of primary (kṛt) suffixes this port
// supports — a documented subset of the ~140 kṛt identifiers in
// bindings-python/src/prakriya/args.rs's PyKrt enum, per spec.md §2's
// "coverage is pragmatic."
type Krt int

const (
	Ktva Krt = iota + 1 // -tvā (gerund, no prefix)
	Lyap                 // -ya (gerund, with prefix)
	Tumun                // -tum (infinitive)
	Kta                  // -ta (past passive participle)
	Ktavatu              // -tavat (past active participle)
	Shatr                // -at (present active participle, parasmaipada)
	Shanac               // -āna/-amāna (present participle, ātmanepada)
	GaY                  // -a with vṛddhi + root-final cu->ku (ghañ, action noun)
	Ap                   // -a (bare action/agent noun, no vṛddhi)
)

var krtNames = map[Krt]string{
	Ktva: "ktvā", Lyap: "lyap", Tumun: "tumun", Kta: "kta", Ktavatu: "ktavatu",
	Shatr: "śatr", Shanac: "śānac", GaY: "ghañ", Ap: "ap",
}

func (k Krt) String() string {
	if n, ok := krtNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Krt(%d)", int(k))
}

// Taddhita is a small documented subset of the ~180 secondary-suffix
// identifiers.
type Taddhita int

const (
	Tyan Taddhita = iota + 1 // apatya suffix family placeholder
	Yat
	Matup // -mat (possessive)
)

// SemanticCondition guards a semantically-conditioned taddhita rule
// (spec.md §4.4, "the caller passes a semantic-condition enum").
type SemanticCondition int

const (
	NoCondition SemanticCondition = iota
	Apatyartha                   // descendant-of
	TenaProktam                   // "taught/composed by"
	TatraBhava                    // "existing/born there"
)

// SamasaType is the kind of nominal compound to form.
type SamasaType int

const (
	Tatpurusha SamasaType = iota + 1
	Karmadharaya
	Dvandva
	Bahuvrihi
	Avyayibhava
)
