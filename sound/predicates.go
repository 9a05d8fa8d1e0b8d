package sound

// AC is the set of all vowels ("ac" pratyāhāra).
var AC = MustS("ac")

// HAL is the set of all consonants ("hal" pratyāhāra).
var HAL = MustS("hal")

// IsVowel reports whether c is a vowel.
func IsVowel(c Sound) bool { return AC.Contains(c) }

// IsConsonant reports whether c is a consonant.
func IsConsonant(c Sound) bool { return HAL.Contains(c) }

// IsShortVowel reports whether c is one of the five hrasva vowels.
func IsShortVowel(c Sound) bool {
	switch c {
	case 'a', 'i', 'u', 'f', 'x':
		return true
	}
	return false
}

// IsLongVowel reports whether c is dīrgha (long, including diphthongs).
func IsLongVowel(c Sound) bool {
	switch c {
	case 'A', 'I', 'U', 'F', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}

// IsGuna reports whether c is a guṇa-grade vowel (a, e, o).
func IsGuna(c Sound) bool {
	switch c {
	case 'a', 'e', 'o':
		return true
	}
	return false
}

// IsVrddhi reports whether c is a vṛddhi-grade vowel (A, E, O).
func IsVrddhi(c Sound) bool {
	switch c {
	case 'A', 'E', 'O':
		return true
	}
	return false
}

// IsVoiced reports whether c is articulated with voicing.
func IsVoiced(c Sound) bool {
	return MustS("ac haS M").Contains(c)
}

// ToGuna raises a short vowel one grade: i/I->e, u/U->o, f/F->ar, x->al,
// a/A stay a. Returns ("", false) for non-vowels.
func ToGuna(c Sound) (string, bool) {
	switch c {
	case 'a', 'A':
		return "a", true
	case 'i', 'I':
		return "e", true
	case 'u', 'U':
		return "o", true
	case 'f', 'F':
		return "ar", true
	case 'x':
		return "al", true
	}
	return "", false
}

// ToVrddhi raises a vowel to vṛddhi grade: a/A->A, i/I->E, u/U->O,
// f/F->Ar. Returns ("", false) for non-vowels.
func ToVrddhi(c Sound) (string, bool) {
	switch c {
	case 'a', 'A':
		return "A", true
	case 'i', 'I':
		return "E", true
	case 'u', 'U':
		return "O", true
	case 'f', 'F':
		return "Ar", true
	}
	return "", false
}

// ToShort returns the hrasva counterpart of a vowel.
func ToShort(c Sound) (Sound, bool) {
	switch c {
	case 'a', 'A':
		return 'a', true
	case 'i', 'I':
		return 'i', true
	case 'u', 'U':
		return 'u', true
	case 'f', 'F':
		return 'f', true
	case 'x', 'X':
		return 'x', true
	}
	return 0, false
}

// ToLong returns the dīrgha counterpart of a short vowel.
func ToLong(c Sound) (Sound, bool) {
	d := ToDirgha(c)
	if d == 0 {
		return 0, false
	}
	return d, true
}

// StartsWithCluster reports whether text begins with two or more
// consecutive consonants (samyogādi).
func StartsWithCluster(text string) bool {
	if len(text) < 2 {
		return false
	}
	return HAL.Contains(text[0]) && HAL.Contains(text[1])
}

// EndsWithCluster reports whether text ends with two or more consecutive
// consonants, or ends in "C" (samyoganta, with the upstream's same
// special-case for the it-marker C).
func EndsWithCluster(text string) bool {
	n := len(text)
	if n < 2 {
		return false
	}
	x, y := text[n-1], text[n-2]
	return (HAL.Contains(x) && HAL.Contains(y)) || x == 'C'
}
