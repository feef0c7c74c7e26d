package pystr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", `'hello'`},
		{"single quote picks double", "a'b", `"a'b"`},
		{"double quote kept in single", `say "hi"`, `'say "hi"'`},
		{"both quotes", `it's "x"`, `"it's \"x\""`},
		{"tab", "a\tb", `'a\tb'`},
		{"named escapes", "\a\b\f\n\r\v", `'\a\b\f\n\r\v'`},
		{"other control", "\x00\x1b", `'\x00\x1b'`},
		{"backslash", `a\b`, `'a\\b'`},
		{"delete is verbatim", "\x7f", "'\x7f'"},
		{"latin1", "é", `'\xe9'`},
		{"bmp", "€", `'\u20ac'`},
		{"astral", "😀", `'\U0001f600'`},
		{"empty", "", `''`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quote(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteInvalidUTF8(t *testing.T) {
	_, err := Quote("ok\xffbad")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCodePoint)
	assert.Contains(t, err.Error(), "byte 2")

	assert.Panics(t, func() { MustQuote("\xed\xa0\x80") }, "encoded surrogate must be rejected")
}

func TestQuoteUTF16(t *testing.T) {
	got, err := QuoteUTF16([]uint16{'a', 0xd83d, 0xde00})
	require.NoError(t, err)
	assert.Equal(t, `'a\U0001f600'`, got)

	_, err = QuoteUTF16([]uint16{'a', 0xd83d})
	assert.ErrorIs(t, err, ErrInvalidCodePoint)

	_, err = QuoteUTF16([]uint16{0xde00, 'a'})
	assert.ErrorIs(t, err, ErrInvalidCodePoint)
}
