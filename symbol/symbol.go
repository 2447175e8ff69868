package symbol

import (
	"strconv"
	"strings"
)

// kind discriminates the two Symbol variants.
type kind uint8

const (
	kindInt kind = iota
	kindText
)

// Symbol is one element of a melodic sequence: either an integer pitch
// code (MIDI number) or an unresolved text token. The zero value is the
// pitch code 0.
//
// Symbol is comparable; equality is value-based across both fields, so
// Int(60) == Int(60), Text("x") == Text("x"), and Int(0) != Text("0").
type Symbol struct {
	kind kind
	code int
	text string
}

// Int returns the pitch-code variant carrying code.
func Int(code int) Symbol {
	return Symbol{kind: kindInt, code: code}
}

// Text returns the text-token variant carrying token.
func Text(token string) Symbol {
	return Symbol{kind: kindText, text: token}
}

// IsInt reports whether s is the pitch-code variant.
func (s Symbol) IsInt() bool { return s.kind == kindInt }

// Code returns the pitch code; 0 for text symbols.
func (s Symbol) Code() int { return s.code }

// Token returns the text token; "" for pitch symbols.
func (s Symbol) Token() string { return s.text }

// String renders the payload for display: the decimal code for pitch
// symbols, the raw token for text symbols.
func (s Symbol) String() string {
	if s.kind == kindInt {
		return strconv.Itoa(s.code)
	}
	return s.text
}

// appendKey writes a variant-prefixed encoding of s to b. The prefix keeps
// Int(0) and Text("0") distinct inside composite context keys.
func (s Symbol) appendKey(b *strings.Builder) {
	if s.kind == kindInt {
		b.WriteByte('i')
		b.WriteString(strconv.Itoa(s.code))
		return
	}
	b.WriteByte('t')
	b.WriteString(s.text)
}

// Join encodes seq into a single string key, suitable as a map key for a
// context of consecutive symbols. Every element carries its variant tag
// and is terminated by a unit separator, so tuples of equal length built
// from ordinary melody tokens never collide.
func Join(seq []Symbol) string {
	var b strings.Builder
	for _, s := range seq {
		s.appendKey(&b)
		b.WriteRune(sep)
	}
	return b.String()
}

// sep delimits elements inside a Join key. U+001F (unit separator) does
// not occur in decimal pitch codes or note-name tokens.
const sep = '\x1f'

// IntSeq converts plain pitch codes to a Symbol sequence.
func IntSeq(codes ...int) []Symbol {
	seq := make([]Symbol, len(codes))
	for i, c := range codes {
		seq[i] = Int(c)
	}
	return seq
}
