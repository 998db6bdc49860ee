package gltfdoc_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	gltfdoc "github.com/lumel/gltfdoc"
)

func TestFixture_Box(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "box.gltf"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	doc, err := gltfdoc.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if fs := gltfdoc.Validate(doc); len(fs) != 0 {
		t.Fatalf("fixture should validate clean, got: %v", fs)
	}

	scene, err := doc.DefaultScene()
	if err != nil {
		t.Fatalf("DefaultScene failed: %v", err)
	}
	if scene.Name != "Scene" || len(scene.Nodes) != 1 {
		t.Fatalf("unexpected scene: %+v", scene)
	}
	node, err := doc.GetNode(scene.Nodes[0])
	if err != nil {
		t.Fatalf("GetNode failed: %v", err)
	}
	if node.Name != "Box" || node.Mesh == nil {
		t.Fatalf("unexpected node: %+v", node)
	}
	mesh, err := doc.GetMesh(*node.Mesh)
	if err != nil {
		t.Fatalf("GetMesh failed: %v", err)
	}
	p := mesh.Primitives[0]
	pos, err := doc.GetAccessor(p.Attributes["POSITION"])
	if err != nil {
		t.Fatalf("GetAccessor failed: %v", err)
	}
	if pos.Type != gltfdoc.AccessorVec3 || pos.ComponentType != gltfdoc.ComponentFloat {
		t.Fatalf("unexpected position accessor: %+v", pos)
	}
	if pos.ComponentType.ByteSize() != 4 || pos.Type.Components() != 3 {
		t.Fatalf("unexpected accessor geometry: %d %d", pos.ComponentType.ByteSize(), pos.Type.Components())
	}
	mat, err := doc.GetMaterial(*p.Material)
	if err != nil {
		t.Fatalf("GetMaterial failed: %v", err)
	}
	if !mat.DoubleSided || mat.PBRMetallicRoughness.MetallicFactor != 0 {
		t.Fatalf("unexpected material: %+v", mat)
	}
	if node.Extras == nil {
		t.Fatalf("node extras dropped")
	}
	src, ok := node.Extras.Object().Get("source")
	if !ok || src.String() != "fixture" {
		t.Fatalf("unexpected extras: %v", node.Extras)
	}

	// One full encode/decode cycle keeps the model intact.
	out, err := gltfdoc.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	doc2, err := gltfdoc.Unmarshal(out)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(doc, doc2) {
		t.Fatalf("document changed across a round trip")
	}
}
