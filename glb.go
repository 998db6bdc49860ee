package gltfdoc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// GLB container framing. The binary form wraps one JSON chunk and an optional
// binary chunk behind a 12-byte little-endian header.
const (
	glbMagic     = 0x46546C67 // "glTF"
	glbChunkJSON = 0x4E4F534A // "JSON"
	glbChunkBIN  = 0x004E4942 // "BIN\0"
	glbVersion   = 2
)

var (
	// ErrNotGLB means the input does not start with the GLB magic number and
	// is probably a plain JSON .gltf file.
	ErrNotGLB = errors.New("gltfdoc: not a GLB container")
	// ErrMalformedGLB means the container framing is truncated or
	// inconsistent.
	ErrMalformedGLB = errors.New("gltfdoc: malformed GLB container")
)

// GLB is a parsed binary container: the embedded document plus the optional
// binary chunk the document's first buffer implicitly refers to.
type GLB struct {
	Document *Document
	Version  uint32
	Binary   []byte // nil when the container has no BIN chunk
}

// IsGLB reports whether data starts with the GLB magic number.
func IsGLB(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data) == glbMagic
}

// ParseGLB unframes a GLB container and decodes its JSON chunk. Framing
// failures surface as ErrNotGLB/ErrMalformedGLB; failures inside the JSON
// chunk surface as the codec's own errors.
func ParseGLB(data []byte) (*GLB, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: header truncated at %d bytes", ErrMalformedGLB, len(data))
	}
	if !IsGLB(data) {
		return nil, ErrNotGLB
	}
	version := binary.LittleEndian.Uint32(data[4:])
	total := binary.LittleEndian.Uint32(data[8:])
	if int(total) > len(data) {
		return nil, fmt.Errorf("%w: declared length %d exceeds input size %d", ErrMalformedGLB, total, len(data))
	}

	jsonChunk, rest, typ, err := readChunk(data[12:])
	if err != nil {
		return nil, err
	}
	if typ != glbChunkJSON {
		return nil, fmt.Errorf("%w: first chunk type 0x%08X, want JSON", ErrMalformedGLB, typ)
	}
	doc, err := Unmarshal(jsonChunk)
	if err != nil {
		return nil, err
	}

	glb := &GLB{Document: doc, Version: version}
	if len(rest) > 0 {
		bin, _, typ, err := readChunk(rest)
		if err != nil {
			return nil, err
		}
		if typ != glbChunkBIN {
			return nil, fmt.Errorf("%w: second chunk type 0x%08X, want BIN", ErrMalformedGLB, typ)
		}
		glb.Binary = bin
	}
	return glb, nil
}

func readChunk(data []byte) (payload, rest []byte, typ uint32, err error) {
	if len(data) < 8 {
		return nil, nil, 0, fmt.Errorf("%w: chunk header truncated", ErrMalformedGLB)
	}
	length := binary.LittleEndian.Uint32(data)
	typ = binary.LittleEndian.Uint32(data[4:])
	if int(length) > len(data)-8 {
		return nil, nil, 0, fmt.Errorf("%w: chunk length %d exceeds remaining %d bytes", ErrMalformedGLB, length, len(data)-8)
	}
	return data[8 : 8+length], data[8+length:], typ, nil
}

// EncodeGLB frames a Document (and optional binary payload) as a GLB
// container. Chunks are padded to 4-byte alignment, the JSON chunk with
// spaces and the binary chunk with zeros, per the container rules.
func EncodeGLB(doc *Document, bin []byte, opts ...EncodeOptions) ([]byte, error) {
	jsonChunk, err := Marshal(doc, opts...)
	if err != nil {
		return nil, err
	}
	jsonPad := pad4(len(jsonChunk))
	binPad := pad4(len(bin))

	total := 12 + 8 + len(jsonChunk) + jsonPad
	if bin != nil {
		total += 8 + len(bin) + binPad
	}

	out := make([]byte, 0, total)
	out = appendU32(out, glbMagic)
	out = appendU32(out, glbVersion)
	out = appendU32(out, uint32(total))

	out = appendU32(out, uint32(len(jsonChunk)+jsonPad))
	out = appendU32(out, glbChunkJSON)
	out = append(out, jsonChunk...)
	for i := 0; i < jsonPad; i++ {
		out = append(out, ' ')
	}

	if bin != nil {
		out = appendU32(out, uint32(len(bin)+binPad))
		out = appendU32(out, glbChunkBIN)
		out = append(out, bin...)
		for i := 0; i < binPad; i++ {
			out = append(out, 0)
		}
	}
	return out, nil
}

func pad4(n int) int {
	if r := n % 4; r != 0 {
		return 4 - r
	}
	return 0
}

func appendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}
