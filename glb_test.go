package gltfdoc_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	gltfdoc "github.com/lumel/gltfdoc"
)

func TestGLB_RoundTrip(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"buffers":[{"byteLength":4}]}`)
	bin := []byte{1, 2, 3, 4}

	data, err := gltfdoc.EncodeGLB(doc, bin)
	if err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	if !gltfdoc.IsGLB(data) {
		t.Fatalf("encoded container does not carry the magic number")
	}
	if got := binary.LittleEndian.Uint32(data[8:]); int(got) != len(data) {
		t.Fatalf("declared length %d, actual %d", got, len(data))
	}

	glb, err := gltfdoc.ParseGLB(data)
	if err != nil {
		t.Fatalf("ParseGLB failed: %v", err)
	}
	if glb.Version != 2 {
		t.Fatalf("expected version 2, got %d", glb.Version)
	}
	if !bytes.Equal(glb.Binary, bin) {
		t.Fatalf("binary chunk changed: %v", glb.Binary)
	}
	if glb.Document.Buffers[0].ByteLength != 4 {
		t.Fatalf("embedded document decoded wrong: %+v", glb.Document.Buffers)
	}
}

func TestGLB_PaddingAlignment(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"}}`)

	// BIN payloads are padded with zeros up to 4-byte alignment; the padding
	// stays inside the chunk, so it comes back attached. The real length
	// lives in buffers[0].byteLength.
	data, err := gltfdoc.EncodeGLB(doc, []byte{9, 9, 9})
	if err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	if len(data)%4 != 0 {
		t.Fatalf("container length %d not 4-aligned", len(data))
	}
	glb, err := gltfdoc.ParseGLB(data)
	if err != nil {
		t.Fatalf("ParseGLB failed: %v", err)
	}
	if !bytes.Equal(glb.Binary, []byte{9, 9, 9, 0}) {
		t.Fatalf("expected zero-padded binary chunk, got %v", glb.Binary)
	}
}

func TestGLB_NoBinaryChunk(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"}}`)
	data, err := gltfdoc.EncodeGLB(doc, nil)
	if err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	glb, err := gltfdoc.ParseGLB(data)
	if err != nil {
		t.Fatalf("ParseGLB failed: %v", err)
	}
	if glb.Binary != nil {
		t.Fatalf("expected no binary chunk, got %v", glb.Binary)
	}
}

func TestGLB_NotGLB(t *testing.T) {
	_, err := gltfdoc.ParseGLB([]byte(`{"asset":{"version":"2.0"}}`))
	if !errors.Is(err, gltfdoc.ErrNotGLB) {
		t.Fatalf("expected ErrNotGLB, got %v", err)
	}
	if gltfdoc.IsGLB([]byte(`{"asset"`)) {
		t.Fatalf("JSON input must not look like GLB")
	}
}

func TestGLB_Malformed(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"}}`)
	data, err := gltfdoc.EncodeGLB(doc, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}

	// Header shorter than 12 bytes.
	if _, err := gltfdoc.ParseGLB(data[:8]); !errors.Is(err, gltfdoc.ErrMalformedGLB) {
		t.Fatalf("expected ErrMalformedGLB for short header, got %v", err)
	}
	// Declared total length larger than the input.
	if _, err := gltfdoc.ParseGLB(data[:len(data)-4]); !errors.Is(err, gltfdoc.ErrMalformedGLB) {
		t.Fatalf("expected ErrMalformedGLB for truncated body, got %v", err)
	}
	// First chunk must be JSON.
	bad := append([]byte(nil), data...)
	binary.LittleEndian.PutUint32(bad[16:], 0xDEADBEEF)
	if _, err := gltfdoc.ParseGLB(bad); !errors.Is(err, gltfdoc.ErrMalformedGLB) {
		t.Fatalf("expected ErrMalformedGLB for wrong first chunk, got %v", err)
	}
}

func TestGLB_BadEmbeddedJSON(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"}}`)
	data, err := gltfdoc.EncodeGLB(doc, nil)
	if err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	// Corrupt one byte inside the JSON chunk; the codec's own error comes
	// through, not a framing error.
	bad := append([]byte(nil), data...)
	bad[20] = '!'
	_, err = gltfdoc.ParseGLB(bad)
	if err == nil || errors.Is(err, gltfdoc.ErrMalformedGLB) {
		t.Fatalf("expected a codec error, got %v", err)
	}
}
