package humanize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/format"
)

func TestEnsureStringPassesStringsThrough(t *testing.T) {
	s, err := EnsureString("héllo \xff", DefaultEncoding, format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "héllo \xff", s)
}

func TestEnsureStringDecodesUTF8(t *testing.T) {
	s, err := EnsureString([]byte("h\xc3\xa9llo"), DefaultEncoding, format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	s, err = EnsureString([]byte(nil), "UTF8", format.PolicyStrict)
	require.NoError(t, err)
	require.Empty(t, s)
}

func TestEnsureStringFallsBackToLatin1(t *testing.T) {
	// 0xe9 alone is invalid UTF-8 but 'é' in latin-1
	s, err := EnsureString([]byte("caf\xe9"), DefaultEncoding, format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "café", s)

	s, err = EnsureString([]byte("MZ\x90\x00"), DefaultEncoding, format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "MZ\u0090\u0000", s)
}

func TestEnsureStringUnknownEncodingFallsBack(t *testing.T) {
	s, err := EnsureString([]byte("\xe9t\xe9"), "no-such-encoding", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "été", s)
}

func TestEnsureStringPolicies(t *testing.T) {
	data := []byte("a\xffb")

	s, err := EnsureString(data, DefaultEncoding, format.PolicyReplace)
	require.NoError(t, err)
	require.Equal(t, "a�b", s)

	s, err = EnsureString(data, DefaultEncoding, format.PolicyIgnore)
	require.NoError(t, err)
	require.Equal(t, "ab", s)
}

func TestEnsureStringOtherEncodings(t *testing.T) {
	s, err := EnsureString([]byte("h\x00i\x00"), "UTF-16LE", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	s, err = EnsureString([]byte("\xe9"), "ISO-8859-1", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "é", s)
}

func TestEnsureStringUnsupportedType(t *testing.T) {
	for _, input := range []any{42, nil, []rune("x"), 3.5} {
		_, err := EnsureString(input, DefaultEncoding, format.PolicyStrict)
		require.ErrorIs(t, err, errs.ErrUnsupportedInput, "%T", input)
	}
}

func TestDecodeWithoutFallback(t *testing.T) {
	_, err := Decode([]byte("caf\xe9"), DefaultEncoding, format.PolicyStrict)
	require.ErrorIs(t, err, errs.ErrDecodeFailed)

	_, err = Decode([]byte("abc"), "no-such-encoding", format.PolicyStrict)
	require.ErrorIs(t, err, errs.ErrDecodeFailed)
}

func TestEnsureStringKeepsEncodedReplacementChar(t *testing.T) {
	// U+FFFD written as UTF-16LE is real data, not a decoder substitution
	s, err := EnsureString([]byte("a\x00\xfd\xff"), "UTF-16LE", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "a\ufffd", s)

	s, err = Decode([]byte("\xfd\xff"), "UTF-16LE", format.PolicyIgnore)
	require.NoError(t, err)
	require.Equal(t, "\ufffd", s)
}

func TestEnsureStringStrictRejectsSubstitution(t *testing.T) {
	// an unpaired surrogate decodes to U+FFFD, which encodes back differently
	data := []byte("a\x00\x00\xd8")

	_, err := Decode(data, "UTF-16LE", format.PolicyStrict)
	require.ErrorIs(t, err, errs.ErrDecodeFailed)

	s, err := Decode(data, "UTF-16LE", format.PolicyReplace)
	require.NoError(t, err)
	require.Equal(t, "a\ufffd", s)

	s, err = Decode(data, "UTF-16LE", format.PolicyIgnore)
	require.NoError(t, err)
	require.Equal(t, "a", s)

	s, err = EnsureString(data, "UTF-16LE", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "a\u0000\u0000\u00d8", s)
}

func TestApplyPolicy(t *testing.T) {
	latin1 := charmap.ISO8859_1
	utf16le := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

	s, err := applyPolicy("plain", []byte("plain"), latin1, "x", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "plain", s)

	// latin-1 cannot encode U+FFFD, so it must have been substituted
	_, err = applyPolicy("a\ufffdb", []byte("a?b"), latin1, "x", format.PolicyStrict)
	require.ErrorIs(t, err, errs.ErrDecodeFailed)

	s, err = applyPolicy("a\ufffdb", []byte("a?b"), latin1, "x", format.PolicyReplace)
	require.NoError(t, err)
	require.Equal(t, "a\ufffdb", s)

	s, err = applyPolicy("a\ufffdb", []byte("a?b"), latin1, "x", format.PolicyIgnore)
	require.NoError(t, err)
	require.Equal(t, "ab", s)

	s, err = applyPolicy("\ufffd", []byte("\xfd\xff"), utf16le, "x", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "\ufffd", s)
}
