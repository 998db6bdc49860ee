package jsontoken

import (
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, src *Source) []Token {
	t.Helper()
	var toks []Token
	for {
		tok, err := src.Next()
		if err == io.EOF {
			return toks
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		toks = append(toks, tok)
	}
}

func TestNext_KeyVersusStringValue(t *testing.T) {
	toks := drain(t, NewBytes([]byte(`{"a":"b","c":["d",{"e":"f"}]}`)))
	want := []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindString, String: "b"},
		{Kind: KindKey, String: "c"},
		{Kind: KindBeginArray},
		{Kind: KindString, String: "d"},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "e"},
		{Kind: KindString, String: "f"},
		{Kind: KindEndObject},
		{Kind: KindEndArray},
		{Kind: KindEndObject},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Kind != w.Kind || toks[i].String != w.String {
			t.Fatalf("token %d: expected %v %q, got %v %q", i, w.Kind, w.String, toks[i].Kind, toks[i].String)
		}
	}
}

func TestNext_NumberTextVerbatim(t *testing.T) {
	toks := drain(t, NewReader(strings.NewReader(`[0, 1.50, -2e3, 10497]`)))
	want := []string{"0", "1.50", "-2e3", "10497"}
	got := make([]string, 0, len(want))
	for _, tok := range toks {
		if tok.Kind == KindNumber {
			got = append(got, tok.Number)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d numbers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("number %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNext_ScalarsAndOffsets(t *testing.T) {
	src := NewBytes([]byte(`{"t":true,"n":null}`))
	if src.Offset() != -1 {
		t.Fatalf("expected -1 before first read, got %d", src.Offset())
	}
	toks := drain(t, src)
	if toks[2].Kind != KindBool || !toks[2].Bool {
		t.Fatalf("expected true token, got %+v", toks[2])
	}
	if toks[4].Kind != KindNull {
		t.Fatalf("expected null token, got %+v", toks[4])
	}
	last := int64(-1)
	for i, tok := range toks {
		if tok.Offset < last {
			t.Fatalf("offset went backwards at token %d: %d < %d", i, tok.Offset, last)
		}
		last = tok.Offset
	}
}

func TestNext_SyntaxError(t *testing.T) {
	// A clean io.EOF is reserved for end of input after a complete document;
	// running dry inside an open container must surface as an error.
	src := NewBytes([]byte(`{"a":`))
	var err error
	for err == nil {
		_, err = src.Next()
	}
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	for _, in := range []string{`[1,2`, `{"a":{"b":1}`} {
		src := NewBytes([]byte(in))
		err = nil
		for err == nil {
			_, err = src.Next()
		}
		if err == io.EOF {
			t.Fatalf("input %q: truncated input must not end with clean EOF", in)
		}
	}
}
