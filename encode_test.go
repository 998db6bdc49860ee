package gltfdoc_test

import (
	"reflect"
	"testing"

	gltfdoc "github.com/lumel/gltfdoc"
)

func mustMarshal(t *testing.T, doc *gltfdoc.Document, opts ...gltfdoc.EncodeOptions) string {
	t.Helper()
	out, err := gltfdoc.Marshal(doc, opts...)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	return string(out)
}

func TestMarshal_Minimal(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"}}`)
	if got := mustMarshal(t, doc); got != `{"asset":{"version":"2.0"}}` {
		t.Fatalf("unexpected output: %s", got)
	}
}

func TestMarshal_DefaultsOmittedUnlessRequested(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"samplers":[{"wrapS":10497}]}`)

	// Canonical form: values equal to their default are dropped, whether the
	// input spelled them out or not.
	if got := mustMarshal(t, doc); got != `{"asset":{"version":"2.0"},"samplers":[{}]}` {
		t.Fatalf("unexpected canonical output: %s", got)
	}

	want := `{"asset":{"version":"2.0"},"samplers":[{"wrapS":10497,"wrapT":10497}]}`
	if got := mustMarshal(t, doc, gltfdoc.EncodeOptions{EmitDefaults: true}); got != want {
		t.Fatalf("unexpected emit-defaults output: %s", got)
	}

	// Last option wins.
	got := mustMarshal(t, doc, gltfdoc.EncodeOptions{EmitDefaults: true}, gltfdoc.EncodeOptions{})
	if got != `{"asset":{"version":"2.0"},"samplers":[{}]}` {
		t.Fatalf("expected last option to win, got: %s", got)
	}
}

func TestMarshal_OpenDataVerbatim(t *testing.T) {
	in := `{"asset":{"version":"2.0"},"extensions":{"X_vendor":{"k":"v"}},"extras":{"zeta":1.50,"alpha":[true,null]}}`
	doc := mustUnmarshal(t, in)
	// Extensions and extras come back byte for byte: member order and number
	// literals untouched.
	if got := mustMarshal(t, doc); got != in {
		t.Fatalf("open data changed:\n in:  %s\n out: %s", in, got)
	}
}

func TestMarshal_RoundTripIdempotent(t *testing.T) {
	in := `{
		"asset":{"version":"2.0","generator":"probe"},
		"extensionsUsed":["X_vendor"],
		"buffers":[{"byteLength":44,"uri":"data.bin"}],
		"bufferViews":[
			{"buffer":0,"byteLength":36,"target":34962},
			{"buffer":0,"byteOffset":36,"byteLength":6,"target":34963}
		],
		"accessors":[
			{"bufferView":0,"componentType":5126,"count":3,"type":"VEC3","min":[0,0,0],"max":[1,1,0]},
			{"bufferView":1,"componentType":5123,"count":3,"type":"SCALAR"}
		],
		"materials":[{"name":"red","pbrMetallicRoughness":{"baseColorFactor":[0.8,0.2,0.2,1],"roughnessFactor":0.25}}],
		"meshes":[{"primitives":[{"attributes":{"POSITION":0},"indices":1,"material":0}]}],
		"nodes":[{"mesh":0,"translation":[0,1,0],"extras":{"rig":"A"}}],
		"scenes":[{"nodes":[0]}],
		"scene":0
	}`
	doc1 := mustUnmarshal(t, in)
	once := mustMarshal(t, doc1)
	doc2, err := gltfdoc.Unmarshal([]byte(once))
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(doc1, doc2) {
		t.Fatalf("documents diverged after one encode cycle:\n%+v\n%+v", doc1, doc2)
	}
	if twice := mustMarshal(t, doc2); twice != once {
		t.Fatalf("encode not stable:\n once:  %s\n twice: %s", once, twice)
	}
}

func TestMarshal_NegativeIndexRejected(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"scenes":[{}]}`)
	bad := gltfdoc.Index(-1)
	doc.Scene = &bad
	_, err := gltfdoc.Marshal(doc)
	wantFieldError(t, err, gltfdoc.CodeInvalidIndex, "scene")

	doc = mustUnmarshal(t, `{"asset":{"version":"2.0"},"nodes":[{}]}`)
	doc.Nodes[0].Children = []gltfdoc.Index{0, -3}
	_, err = gltfdoc.Marshal(doc)
	wantFieldError(t, err, gltfdoc.CodeInvalidIndex, "nodes[0].children[1]")
}

func TestMarshal_EmptySectionSurvives(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"nodes":[]}`)
	if got := mustMarshal(t, doc); got != `{"asset":{"version":"2.0"},"nodes":[]}` {
		t.Fatalf("empty section dropped or invented: %s", got)
	}
}
