package gltfdoc_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	gltfdoc "github.com/lumel/gltfdoc"
)

func mustUnmarshal(t *testing.T, data string) *gltfdoc.Document {
	t.Helper()
	doc, err := gltfdoc.Unmarshal([]byte(data))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return doc
}

func wantFieldError(t *testing.T, err error, code, path string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q at %q, got nil", code, path)
	}
	fe, ok := gltfdoc.AsFieldError(err)
	if !ok {
		t.Fatalf("expected *FieldError, got %T: %v", err, err)
	}
	if fe.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, fe.Code, fe)
	}
	if fe.Path != path {
		t.Fatalf("expected path %q, got %q", path, fe.Path)
	}
}

func TestUnmarshal_Minimal(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"}}`)
	if doc.Asset.Version != "2.0" {
		t.Fatalf("expected version 2.0, got %q", doc.Asset.Version)
	}
	if doc.Scene != nil {
		t.Fatalf("expected no default scene")
	}
	if doc.Meshes != nil {
		t.Fatalf("expected absent meshes to stay nil, got %v", doc.Meshes)
	}
}

func TestUnmarshal_DanglingIndexDecodesCleanly(t *testing.T) {
	// The codec is purely structural: an attribute pointing past the
	// accessors array decodes fine and only Validate flags it.
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"meshes":[{"primitives":[{"attributes":{"POSITION":0}}]}]}`)
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("unexpected mesh shape: %+v", doc.Meshes)
	}
	p := doc.Meshes[0].Primitives[0]
	if got := p.Attributes["POSITION"]; got != 0 {
		t.Fatalf("expected POSITION accessor 0, got %d", got)
	}
	if p.Mode != gltfdoc.ModeTriangles {
		t.Fatalf("expected default mode triangles, got %d", p.Mode)
	}
	if doc.Accessors != nil {
		t.Fatalf("expected nil accessors")
	}

	fs := gltfdoc.Validate(doc)
	if len(fs) != 1 {
		t.Fatalf("expected exactly one finding, got %d: %v", len(fs), fs)
	}
	f := fs[0]
	if f.Code != gltfdoc.CodeIndexOutOfRange {
		t.Fatalf("expected index_out_of_range, got %q", f.Code)
	}
	if f.Path != "meshes[0].primitives[0].attributes.POSITION" {
		t.Fatalf("unexpected finding path %q", f.Path)
	}
	if f.Severity != gltfdoc.SeverityError {
		t.Fatalf("expected error severity, got %v", f.Severity)
	}
}

func TestUnmarshal_DefaultsMaterialized(t *testing.T) {
	doc := mustUnmarshal(t, `{
		"asset":{"version":"2.0"},
		"samplers":[{}],
		"materials":[{"pbrMetallicRoughness":{}}],
		"accessors":[{"componentType":5126,"count":3,"type":"VEC3"}],
		"animations":[{
			"channels":[{"sampler":0,"target":{"path":"translation"}}],
			"samplers":[{"input":0,"output":0}]
		}]
	}`)

	s := doc.Samplers[0]
	if s.WrapS != gltfdoc.WrapRepeat || s.WrapT != gltfdoc.WrapRepeat {
		t.Fatalf("expected repeat wrap modes, got %d/%d", s.WrapS, s.WrapT)
	}
	if s.MagFilter != nil || s.MinFilter != nil {
		t.Fatalf("expected absent filters to stay nil")
	}

	m := doc.Materials[0]
	if m.AlphaMode != gltfdoc.AlphaOpaque {
		t.Fatalf("expected OPAQUE, got %q", m.AlphaMode)
	}
	if m.AlphaCutoff != 0.5 {
		t.Fatalf("expected cutoff 0.5, got %v", m.AlphaCutoff)
	}
	if len(m.EmissiveFactor) != 3 || m.EmissiveFactor[0] != 0 {
		t.Fatalf("expected emissive [0,0,0], got %v", m.EmissiveFactor)
	}
	pbr := m.PBRMetallicRoughness
	if pbr.MetallicFactor != 1 || pbr.RoughnessFactor != 1 {
		t.Fatalf("expected metallic/roughness 1, got %v/%v", pbr.MetallicFactor, pbr.RoughnessFactor)
	}
	if len(pbr.BaseColorFactor) != 4 || pbr.BaseColorFactor[3] != 1 {
		t.Fatalf("expected base color [1,1,1,1], got %v", pbr.BaseColorFactor)
	}

	a := doc.Accessors[0]
	if a.ByteOffset != 0 || a.Normalized || a.BufferView != nil {
		t.Fatalf("unexpected accessor defaults: %+v", a)
	}

	as := doc.Animations[0].Samplers[0]
	if as.Interpolation != gltfdoc.InterpolationLinear {
		t.Fatalf("expected LINEAR, got %q", as.Interpolation)
	}
}

func TestUnmarshal_MaterializedDefaultsAreCallerOwned(t *testing.T) {
	const src = `{"asset":{"version":"2.0"},"materials":[{"pbrMetallicRoughness":{}}]}`
	doc1 := mustUnmarshal(t, src)

	// Documents are caller-owned: writing through one must not leak into
	// documents decoded later.
	doc1.Materials[0].EmissiveFactor[0] = 9
	doc1.Materials[0].PBRMetallicRoughness.BaseColorFactor[0] = 9

	doc2 := mustUnmarshal(t, src)
	if got := doc2.Materials[0].EmissiveFactor; got[0] != 0 {
		t.Fatalf("emissive default corrupted by earlier mutation: %v", got)
	}
	if got := doc2.Materials[0].PBRMetallicRoughness.BaseColorFactor; got[0] != 1 {
		t.Fatalf("base color default corrupted by earlier mutation: %v", got)
	}

	// The mutated values are real data now and must survive encoding.
	out := mustMarshal(t, doc1)
	if !strings.Contains(out, `"emissiveFactor":[9,0,0]`) {
		t.Fatalf("mutated emissive factor dropped on encode: %s", out)
	}
	if !strings.Contains(out, `"baseColorFactor":[9,1,1,1]`) {
		t.Fatalf("mutated base color factor dropped on encode: %s", out)
	}
}

func TestUnmarshal_MissingRequired(t *testing.T) {
	_, err := gltfdoc.Unmarshal([]byte(`{}`))
	wantFieldError(t, err, gltfdoc.CodeMissingRequiredField, "asset")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{}}`))
	wantFieldError(t, err, gltfdoc.CodeMissingRequiredField, "asset.version")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"buffers":[{}]}`))
	wantFieldError(t, err, gltfdoc.CodeMissingRequiredField, "buffers[0].byteLength")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"meshes":[{}]}`))
	wantFieldError(t, err, gltfdoc.CodeMissingRequiredField, "meshes[0].primitives")
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	_, err := gltfdoc.Unmarshal([]byte(`{"asset":{"version":2}}`))
	wantFieldError(t, err, gltfdoc.CodeTypeMismatch, "asset.version")

	// Float literals do not coerce into integer fields.
	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":10.5}]}`))
	wantFieldError(t, err, gltfdoc.CodeTypeMismatch, "buffers[0].byteLength")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"nodes":"oops"}`))
	wantFieldError(t, err, gltfdoc.CodeTypeMismatch, "nodes")
}

func TestUnmarshal_IntegerLiteralIntoFloatField(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"materials":[{"alphaCutoff":1}]}`)
	if doc.Materials[0].AlphaCutoff != 1 {
		t.Fatalf("expected cutoff 1, got %v", doc.Materials[0].AlphaCutoff)
	}
}

func TestUnmarshal_UnknownEnumValue(t *testing.T) {
	_, err := gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"samplers":[{"wrapS":9999}]}`))
	wantFieldError(t, err, gltfdoc.CodeUnknownEnumValue, "samplers[0].wrapS")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"materials":[{"alphaMode":"SOLID"}]}`))
	wantFieldError(t, err, gltfdoc.CodeUnknownEnumValue, "materials[0].alphaMode")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"accessors":[{"componentType":5124,"count":1,"type":"SCALAR"}]}`))
	wantFieldError(t, err, gltfdoc.CodeUnknownEnumValue, "accessors[0].componentType")
}

func TestUnmarshal_NegativeIndex(t *testing.T) {
	_, err := gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"scene":-1}`))
	wantFieldError(t, err, gltfdoc.CodeInvalidIndex, "scene")

	_, err = gltfdoc.Unmarshal([]byte(`{"asset":{"version":"2.0"},"textures":[{"source":-2}]}`))
	wantFieldError(t, err, gltfdoc.CodeInvalidIndex, "textures[0].source")
}

func TestUnmarshal_UnknownKeysIgnored(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0","vendorTag":true},"futureSection":[1,2,3]}`)
	if doc.Asset.Version != "2.0" {
		t.Fatalf("unexpected asset: %+v", doc.Asset)
	}
}

func TestUnmarshal_ExtensionsAndExtrasSurvive(t *testing.T) {
	doc := mustUnmarshal(t, `{
		"asset":{"version":"2.0"},
		"extensionsUsed":["KHR_lights_punctual"],
		"extensions":{"KHR_lights_punctual":{"lights":[{"type":"point","intensity":2.5}]}},
		"extras":{"zeta":1,"alpha":"first"}
	}`)
	if doc.Extensions == nil {
		t.Fatalf("expected extensions object")
	}
	ext, ok := doc.Extensions.Get("KHR_lights_punctual")
	if !ok || ext.Kind() != gltfdoc.KindObject {
		t.Fatalf("expected KHR_lights_punctual object, got %v", ext.Kind())
	}
	if doc.Extras == nil || doc.Extras.Kind() != gltfdoc.KindObject {
		t.Fatalf("expected extras object")
	}
	// Member order of the open-data regions is kept, not sorted.
	keys := doc.Extras.Object().Keys()
	if len(keys) != 2 || keys[0] != "zeta" || keys[1] != "alpha" {
		t.Fatalf("extras key order not preserved: %v", keys)
	}
}

func TestUnmarshal_EmptyVersusAbsentSections(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"nodes":[]}`)
	if doc.Nodes == nil || len(doc.Nodes) != 0 {
		t.Fatalf("expected empty non-nil nodes, got %v", doc.Nodes)
	}
	if doc.Scenes != nil {
		t.Fatalf("expected absent scenes to stay nil")
	}
}

func TestGetters_IndexOutOfRange(t *testing.T) {
	doc := mustUnmarshal(t, `{"asset":{"version":"2.0"},"nodes":[{"name":"root"}]}`)
	n, err := doc.GetNode(0)
	if err != nil || n.Name != "root" {
		t.Fatalf("GetNode(0) = %v, %v", n, err)
	}
	if _, err := doc.GetNode(1); !errors.Is(err, gltfdoc.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := doc.GetNode(-1); !errors.Is(err, gltfdoc.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for negative index, got %v", err)
	}
	// No designated default scene is not an error: both results are nil.
	if scene, err := doc.DefaultScene(); scene != nil || err != nil {
		t.Fatalf("DefaultScene without designation = %v, %v; want nil, nil", scene, err)
	}
	dangling := gltfdoc.Index(5)
	doc.Scene = &dangling
	if _, err := doc.DefaultScene(); !errors.Is(err, gltfdoc.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for dangling default scene, got %v", err)
	}
}

func TestUnmarshal_ConcurrentUse(t *testing.T) {
	data := []byte(`{"asset":{"version":"2.0"},"scenes":[{"nodes":[0]}],"nodes":[{}],"scene":0}`)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := gltfdoc.Unmarshal(data)
			if err != nil {
				t.Errorf("Unmarshal failed: %v", err)
				return
			}
			if fs := gltfdoc.Validate(doc); len(fs) != 0 {
				t.Errorf("unexpected findings: %v", fs)
			}
		}()
	}
	wg.Wait()
}
