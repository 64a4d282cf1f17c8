package aheui

// Syllable is one grid cell: an optional consonant-op and an optional
// vowel-direction, decoded from a precomposed Hangul character.
//
// Operand carries Push's pushed value, or Select/Move's target storage index.
type Syllable struct {
	Consonant Consonant
	Operand   int
	Vowel     Vowel
}

const (
	hangulBase = 0xAC00
	// hangulLast matches the Rust original's range (0xAC00..=0xD7AF), which
	// runs twelve code points past the last assigned lead consonant (18):
	// those decode to lead 19, an unmatched consonant (None), with vowel
	// still decoded normally.
	hangulLast = 0xD7AF
)

// strokeCount maps a trailing-jamo index (0..27) to the Push value an
// ordinary ㅂ syllable pushes, per the number of strokes in that jamo.
// Indices 21 (ScanDecimal) and 27 (ScanUnicode) are special-cased by the
// caller and never consulted here.
var strokeCount = [28]int{
	0,
	2, 4, 4, 2, 5, 5, 3, 5, 7, 9, 9, 7, 9, 9, 8, 4, 4,
	6, 2, 4,
	0, // 21: ScanDecimal, unused
	3, 4, 3, 4, 4,
	0, // 27: ScanUnicode, unused
}

var vowelTable = [21]Vowel{
	0:  VowelRight,
	2:  VowelRightTwo,
	4:  VowelLeft,
	6:  VowelLeftTwo,
	8:  VowelUp,
	12: VowelUpTwo,
	13: VowelDown,
	17: VowelDownTwo,
	18: VowelVerticalFlip,
	19: VowelFlip,
	20: VowelHorizontalFlip,
}

// Decode decomposes a Unicode code point into a Syllable. Code points
// outside U+AC00..U+D7AF decode to the empty Syllable (no-op cell).
func Decode(ch rune) Syllable {
	if ch < hangulBase || ch > hangulLast {
		return Syllable{}
	}
	x := int(ch) - hangulBase
	trail := x % 28
	x /= 28
	vowel := x % 21
	lead := x / 21

	s := Syllable{Vowel: vowelTable[vowel]}
	switch lead {
	case 2:
		s.Consonant = ConsonantDivide
	case 3:
		s.Consonant = ConsonantAdd
	case 4:
		s.Consonant = ConsonantMultiply
	case 5:
		s.Consonant = ConsonantRemainder
	case 6:
		switch trail {
		case 21:
			s.Consonant = ConsonantPrintDecimal
		case 27:
			s.Consonant = ConsonantPrintUnicode
		default:
			s.Consonant = ConsonantPop
		}
	case 7:
		switch trail {
		case 21:
			s.Consonant = ConsonantScanDecimal
		case 27:
			s.Consonant = ConsonantScanUnicode
		default:
			s.Consonant = ConsonantPush
			s.Operand = strokeCount[trail]
		}
	case 8:
		s.Consonant = ConsonantDuplicate
	case 9:
		s.Consonant = ConsonantSelect
		s.Operand = trail
	case 10:
		s.Consonant = ConsonantMove
		s.Operand = trail
	case 12:
		s.Consonant = ConsonantCompare
	case 14:
		s.Consonant = ConsonantBranch
	case 16:
		s.Consonant = ConsonantSubtract
	case 17:
		s.Consonant = ConsonantExchange
	case 18:
		s.Consonant = ConsonantHalt
	default:
		s.Consonant = ConsonantNone
	}
	return s
}
