// Package jsontoken turns a JSON byte stream into a flat token sequence with
// byte offsets. Object member order is reported exactly as it appears in the
// input, which the value layer above relies on for round-trip fidelity.
package jsontoken

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// Kind enumerates JSON token kinds.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token is one lexical element of the input. Number text is kept verbatim;
// Offset records the decoder position after the token was read.
type Token struct {
	Kind   Kind
	String string // key/string tokens
	Number string // number tokens, as written
	Bool   bool
	Offset int64
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Source yields tokens from a single JSON document.
type Source struct {
	dec        *j.Decoder
	stack      []frame
	lastOffset int64
}

// NewBytes returns a Source over b.
func NewBytes(b []byte) *Source {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &Source{dec: dec, lastOffset: -1}
}

// NewReader returns a Source over r.
func NewReader(r io.Reader) *Source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &Source{dec: dec, lastOffset: -1}
}

// Offset reports the byte offset of the most recently read token, -1 before
// the first read.
func (s *Source) Offset() int64 { return s.lastOffset }

// valueSeen marks that the current object frame, if any, consumed a value and
// now expects a key again.
func (s *Source) valueSeen() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// Next returns the next token. io.EOF signals the end of input; any other
// error is a syntax error from the underlying decoder.
func (s *Source) Next() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			// EOF inside an open container is truncation, not end of input.
			if len(s.stack) > 0 {
				return Token{}, io.ErrUnexpectedEOF
			}
			return Token{}, io.EOF
		}
		return Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject, Offset: s.lastOffset}, nil
		case '}':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueSeen()
			return Token{Kind: KindEndObject, Offset: s.lastOffset}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray, Offset: s.lastOffset}, nil
		case ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueSeen()
			return Token{Kind: KindEndArray, Offset: s.lastOffset}, nil
		}
		return Token{}, io.ErrUnexpectedEOF
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v, Offset: s.lastOffset}, nil
			}
		}
		s.valueSeen()
		return Token{Kind: KindString, String: v, Offset: s.lastOffset}, nil
	case bool:
		s.valueSeen()
		return Token{Kind: KindBool, Bool: v, Offset: s.lastOffset}, nil
	case j.Number:
		s.valueSeen()
		return Token{Kind: KindNumber, Number: string(v), Offset: s.lastOffset}, nil
	case nil:
		s.valueSeen()
		return Token{Kind: KindNull, Offset: s.lastOffset}, nil
	}
	return Token{}, io.ErrUnexpectedEOF
}
