package recognize

import (
	"fmt"
	"regexp"
	"strings"
)

// separators are the full-stop equivalents accepted between the words of a 3wa.
// This set is the only boundary between a valid 3wa and a typo.
var separators = []rune{
	'.', // . full stop
	'｡', // ｡ halfwidth ideographic full stop
	'。', // 。 ideographic full stop
	'･', // ･ halfwidth katakana middle dot
	'・', // ・ katakana middle dot
	'︒', // ︒ presentation form for vertical ideographic full stop
	'។', // ។ khmer sign khan
	'։', // ։ armenian full stop
	'။', // ။ myanmar sign section
	'۔', // ۔ arabic full stop (urdu)
	'።', // ። ethiopic full stop (amharic)
	'।', // । devanagari danda (bengali, hindi)
}

// nearMissSeparators are what people type instead of a separator.
// The valid separators are included so a dotted input also reads as a near miss.
var nearMissSeparators = []rune{
	'.', '｡', '。', '･', '・', '︒', '។', '।', '።',
	'။', '۔', '։',
	':', '^', '_', ' ', ',', '\\', '/', '+', '\'', '&', ';', '|', '-',
	'\u3000', // ideographic space
}

// wordDenylist holds the punctuation that can never appear inside a word.
const wordDenylist = "`~!@#$%^&*()+-_=[{]}\\|'<,.>?/\";:£§º©®"

// nearMissWordDenylist is wordDenylist without the underscore, which
// the near-miss pattern treats as a separator only.
const nearMissWordDenylist = "`~!@#$%^&*()+-=[{]}\\|'<>.,?/\";:£§º©®"

// whitespaceClass covers Unicode White_Space. RE2's \s is ASCII only.
const whitespaceClass = `\t\n\v\f\r\x{85}\p{Z}`

// subWordJoiners may join the tokens of one multi-token word group.
var subWordJoiners = []rune{' ', '\u00A0'}

// maxSubWords caps the tokens in one word group.
const maxSubWords = 4

var (
	word         = negatedClass("0-9"+whitespaceClass, wordDenylist)
	nearMissWord = negatedClass("0-9"+whitespaceClass, nearMissWordDenylist)
	separator    = charClass(separators)
	nearMissSep  = charClass(nearMissSeparators)
	wordGroup    = fmt.Sprintf(`%s+(?:%s%s+){0,%d}`, word, charClass(subWordJoiners), word, maxSubWords-1)
)

var (
	possibleRegex = regexp.MustCompile(
		`^/*` + wordGroup + separator + wordGroup + separator + wordGroup + `$`)

	didYouMeanRegex = regexp.MustCompile(
		`^/?` + nearMissWord + `+` + nearMissSep + `{1,2}` + nearMissWord + `+` + nearMissSep + `{1,2}` + nearMissWord + `+$`)

	findRegex = regexp.MustCompile(
		word + `+` + separator + word + `+` + separator + word + `+`)
)

// charClass renders runes as a bracket expression.
func charClass(runes []rune) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range runes {
		writeRune(&b, r)
	}
	b.WriteByte(']')
	return b.String()
}

// negatedClass renders a negated bracket expression from a raw regexp
// fragment plus literal characters.
func negatedClass(raw, literals string) string {
	var b strings.Builder
	b.WriteString("[^")
	b.WriteString(raw)
	for _, r := range literals {
		writeRune(&b, r)
	}
	b.WriteByte(']')
	return b.String()
}

func writeRune(b *strings.Builder, r rune) {
	switch {
	case r < 0x80 && isASCIIPunct(r):
		b.WriteByte('\\')
		b.WriteRune(r)
	case r < 0x80 && r > 0x20:
		b.WriteRune(r)
	default:
		fmt.Fprintf(b, `\x{%X}`, r)
	}
}

func isASCIIPunct(r rune) bool {
	return strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r)
}
