package mojibake

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the label used when no encoding is configured.
const DefaultEncoding = "utf-8"

var (
	// ErrUnknownEncoding reports an encoding label htmlindex cannot resolve.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidText reports bytes that are not valid under the chosen encoding.
	ErrInvalidText = errors.New("invalid text for encoding")
	// ErrUnencodable reports text containing runes the chosen encoding cannot hold.
	ErrUnencodable = errors.New("text not representable in encoding")
)

// Garble returns the text a reader produces when it decodes the UTF-8 bytes
// of s as Windows-1252. Bytes undefined in Windows-1252 become the matching
// C1 control code points.
func Garble(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		r := charmap.Windows1252.DecodeByte(s[i])
		if r == utf8.RuneError {
			r = rune(s[i])
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsC1 reports whether r is a C1 control code point.
func IsC1(r rune) bool {
	return r >= 0x80 && r <= 0x9f
}

// Flatten drops C1 control code points and turns no-break spaces into plain
// spaces, matching garbled text that went through a lossy editor or clipboard.
func Flatten(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case IsC1(r):
			return -1
		case r == '\u00a0':
			return ' '
		default:
			return r
		}
	}, s)
}

// LookupEncoding resolves a WHATWG encoding label such as "utf-8" or
// "windows-1252". An empty label selects DefaultEncoding.
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}

// EncodingName returns the canonical label of enc, or "unknown".
func EncodingName(enc encoding.Encoding) string {
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "unknown"
	}
	return name
}

func isUTF8(enc encoding.Encoding) bool {
	return enc == nil || enc == unicode.UTF8 || EncodingName(enc) == "utf-8"
}

// Decode converts raw file bytes to text. Input is validated rather than
// repaired so a corrupt file fails before anything is rewritten. Bytes the
// encoding leaves undefined are rejected.
func Decode(enc encoding.Encoding, raw []byte) (string, error) {
	if isUTF8(enc) {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
			return "", fmt.Errorf("%w utf-8: %v", ErrInvalidText, err)
		}
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrInvalidText, EncodingName(enc), err)
	}
	if n := bytes.Count(out, replacementChar); n > 0 && n > encodedReplacements(enc, raw) {
		return "", fmt.Errorf("%w %s: undefined byte sequence", ErrInvalidText, EncodingName(enc))
	}
	return string(out), nil
}

var replacementChar = []byte(string(utf8.RuneError))

// encodedReplacements counts U+FFFD characters stored literally in raw.
func encodedReplacements(enc encoding.Encoding, raw []byte) int {
	rep, err := enc.NewEncoder().Bytes(replacementChar)
	if err != nil || len(rep) == 0 {
		return 0
	}
	return bytes.Count(raw, rep)
}

// Encode converts text back to file bytes under enc.
func Encode(enc encoding.Encoding, text string) ([]byte, error) {
	if isUTF8(enc) {
		return []byte(text), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnencodable, EncodingName(enc), err)
	}
	return out, nil
}
