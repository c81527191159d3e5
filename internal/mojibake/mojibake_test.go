package mojibake

import (
	"errors"
	"testing"
)

func TestGarbleReproducesWindows1252Misdecode(t *testing.T) {
	tests := []struct {
		glyph string
		want  string
	}{
		{glyph: "✅", want: "âœ…"},
		{glyph: "✓", want: "âœ“"},
		{glyph: "🧪", want: "ðŸ§ª"},
		{glyph: "╗", want: "â•—"},
		{glyph: "═", want: "â•\u0090"},
		{glyph: "❌", want: "â\u009dŒ"},
		{glyph: "⚠️", want: "âš\u00a0ï¸\u008f"},
		{glyph: "📝", want: "ðŸ“\u009d"},
		{glyph: "📍", want: "ðŸ“\u008d"},
		{glyph: "plain ascii", want: "plain ascii"},
	}
	for _, tt := range tests {
		if got := Garble(tt.glyph); got != tt.want {
			t.Errorf("Garble(%q) = %q, want %q", tt.glyph, got, tt.want)
		}
	}
}

func TestFlattenDropsControlsAndNoBreakSpaces(t *testing.T) {
	if got := Flatten("â\u009dŒ"); got != "âŒ" {
		t.Fatalf("Flatten(❌) = %q", got)
	}
	if got := Flatten("âš\u00a0ï¸\u008f"); got != "âš ï¸" {
		t.Fatalf("Flatten(⚠️) = %q", got)
	}
	if got := Flatten("clean text"); got != "clean text" {
		t.Fatalf("Flatten changed clean text: %q", got)
	}
}

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	if err != nil {
		t.Fatalf("LookupEncoding default: %v", err)
	}
	if name := EncodingName(enc); name != "utf-8" {
		t.Fatalf("default encoding = %q, want utf-8", name)
	}

	enc, err = LookupEncoding(" Latin1 ")
	if err != nil {
		t.Fatalf("LookupEncoding latin1: %v", err)
	}
	if name := EncodingName(enc); name != "windows-1252" {
		t.Fatalf("latin1 resolved to %q, want windows-1252", name)
	}

	if _, err := LookupEncoding("klingon"); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	enc, _ := LookupEncoding("utf-8")
	if _, err := Decode(enc, []byte{'o', 'k', 0xff, 0xfe}); !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
	text, err := Decode(enc, []byte("âœ… passed"))
	if err != nil {
		t.Fatalf("Decode valid utf-8: %v", err)
	}
	if text != "âœ… passed" {
		t.Fatalf("Decode altered text: %q", text)
	}
}

func TestDecodeRejectsUndefinedWindows1252Bytes(t *testing.T) {
	enc, err := LookupEncoding("windows-1252")
	if err != nil {
		t.Fatalf("LookupEncoding: %v", err)
	}
	for _, raw := range [][]byte{
		[]byte("plain \x90 text\n"),
		[]byte("plain \x81 end\n"),
	} {
		if _, err := Decode(enc, raw); !errors.Is(err, ErrInvalidText) {
			t.Fatalf("Decode(%q): expected ErrInvalidText, got %v", raw, err)
		}
	}

	text, err := Decode(enc, []byte("caf\xe9 \x93ok\x94"))
	if err != nil {
		t.Fatalf("Decode defined bytes: %v", err)
	}
	if text != "café “ok”" {
		t.Fatalf("Decode = %q", text)
	}
}

func TestDecodeKeepsLiteralReplacementCharacter(t *testing.T) {
	enc, err := LookupEncoding("utf-16le")
	if err != nil {
		t.Fatalf("LookupEncoding: %v", err)
	}
	raw, err := Encode(enc, "bad \ufffd stays")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text, err := Decode(enc, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "bad \ufffd stays" {
		t.Fatalf("Decode = %q", text)
	}
}

func TestEncodeRoundTripsSingleByteEncoding(t *testing.T) {
	enc, err := LookupEncoding("windows-1252")
	if err != nil {
		t.Fatalf("LookupEncoding: %v", err)
	}
	raw, err := Encode(enc, "€ [OK]")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if raw[0] != 0x80 {
		t.Fatalf("expected euro sign at 0x80, got %#x", raw[0])
	}
	text, err := Decode(enc, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "€ [OK]" {
		t.Fatalf("round trip = %q", text)
	}

	if _, err := Encode(enc, "🎉"); !errors.Is(err, ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
}
