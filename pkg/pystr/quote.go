// Package pystr renders Python string literals.
package pystr

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidCodePoint is returned for text that does not decode to valid
// Unicode scalar values (bad UTF-8, lone surrogates).
var ErrInvalidCodePoint = errors.New("invalid code point")

var named = map[rune]string{
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
}

const hex = "0123456789abcdef"

// Quote returns s as a Python string literal including its quotes. The
// literal uses double quotes if s contains a single quote, otherwise single
// quotes. Everything outside printable ASCII is escaped, so the result is
// pure ASCII.
func Quote(s string) (string, error) {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') {
		q = '"'
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for i, w := 0, 0; i < len(s); i += w {
		var r rune
		r, w = utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && w <= 1 {
			return "", fmt.Errorf("%w at byte %d", ErrInvalidCodePoint, i)
		}
		writeRune(&b, r, q)
	}
	b.WriteByte(q)
	return b.String(), nil
}

// QuoteUTF16 is Quote for UTF-16 code units. Surrogate pairs are combined
// into full code points first; an unpaired surrogate is an error.
func QuoteUTF16(units []uint16) (string, error) {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if !utf16.IsSurrogate(u) {
			runes = append(runes, u)
			continue
		}
		if i+1 < len(units) {
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
				runes = append(runes, r)
				i++
				continue
			}
		}
		return "", fmt.Errorf("%w: unpaired surrogate %#04x at unit %d", ErrInvalidCodePoint, u, i)
	}
	return Quote(string(runes))
}

// MustQuote is like Quote but panics on error.
func MustQuote(s string) string {
	out, err := Quote(s)
	if err != nil {
		panic(err)
	}
	return out
}

func writeRune(b *strings.Builder, r rune, q byte) {
	switch {
	case r < 0x20:
		if esc, ok := named[r]; ok {
			b.WriteString(esc)
			return
		}
		writeHex(b, `\x`, r, 2)
	case r < 0x80:
		if byte(r) == q || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(byte(r))
	case r < 0x100:
		writeHex(b, `\x`, r, 2)
	case r < 0x10000:
		writeHex(b, `\u`, r, 4)
	default:
		writeHex(b, `\U`, r, 8)
	}
}

func writeHex(b *strings.Builder, prefix string, r rune, digits int) {
	b.WriteString(prefix)
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		b.WriteByte(hex[(r>>shift)&0xf])
	}
}
