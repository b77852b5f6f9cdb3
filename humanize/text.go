package humanize

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/format"
)

// DefaultEncoding is the encoding EnsureString callers normally pass.
const DefaultEncoding = "utf-8"

// EnsureString returns input as text.
//
// Strings are returned unchanged. Byte slices are decoded with the named
// encoding under policy; if the encoding is unknown or decoding fails, the
// bytes are decoded once more as ISO-8859-1 (latin-1), which maps every byte
// to a character. Any other input type yields ErrUnsupportedInput.
//
// Charset decoders substitute U+FFFD for input they cannot map instead of
// failing. When the decoded text holds U+FFFD, it is re-encoded and compared
// with the input: a match means the character was in the data, anything else
// means substitution happened, which fails under PolicyStrict. PolicyIgnore
// then drops every U+FFFD, including ones that were in the data.
func EnsureString(input any, encodingName string, policy format.ErrorPolicy) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case []byte:
		if s, err := Decode(v, encodingName, policy); err == nil {
			return s, nil
		}

		return decodeLatin1(v)
	default:
		return "", fmt.Errorf("%w: not expecting type %T", errs.ErrUnsupportedInput, input)
	}
}

// Decode decodes data with the named encoding under policy, without any fallback.
func Decode(data []byte, encodingName string, policy format.ErrorPolicy) (string, error) {
	if isUTF8(encodingName) {
		return decodeUTF8(data, policy)
	}

	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errs.ErrDecodeFailed, encodingName, err)
	}

	return applyPolicy(string(out), data, enc, encodingName, policy)
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}

func decodeUTF8(data []byte, policy format.ErrorPolicy) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	switch policy {
	case format.PolicyReplace:
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
	case format.PolicyIgnore:
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", fmt.Errorf("%w: utf-8: invalid byte sequence", errs.ErrDecodeFailed)
	}
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q: %w", errs.ErrDecodeFailed, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: unsupported encoding %q", errs.ErrDecodeFailed, name)
	}

	return enc, nil
}

func applyPolicy(s string, data []byte, enc encoding.Encoding, encodingName string, policy format.ErrorPolicy) (string, error) {
	if !strings.ContainsRune(s, utf8.RuneError) || roundTrips(s, data, enc) {
		return s, nil
	}

	switch policy {
	case format.PolicyReplace:
		return s, nil
	case format.PolicyIgnore:
		return strings.ReplaceAll(s, string(utf8.RuneError), ""), nil
	default:
		return "", fmt.Errorf("%w: %s: unmappable byte sequence", errs.ErrDecodeFailed, encodingName)
	}
}

// roundTrips reports whether s encodes back to exactly data.
func roundTrips(s string, data []byte, enc encoding.Encoding) bool {
	back, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return false
	}

	return bytes.Equal(back, data)
}

func decodeLatin1(data []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: latin-1: %w", errs.ErrDecodeFailed, err)
	}

	return string(out), nil
}
