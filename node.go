package gltfdoc

// Node is one element of the transform hierarchy. A node carries either a
// matrix or any combination of translation/rotation/scale; all four stay nil
// when absent, which consumers read as the identity transform.
type Node struct {
	Camera      *Index
	Children    []Index
	Skin        *Index
	Matrix      []float64 // column-major 4x4 when present
	Mesh        *Index
	Rotation    []float64 // quaternion (x, y, z, w)
	Scale       []float64
	Translation []float64
	Weights     []float64 // instantiated morph target weights
	Name        string
	Extensions  *Object
	Extras      *Value
}

func decodeNode(v Value, path string) (Node, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Node{}, err
	}
	var n Node
	if n.Camera, err = r.optIndex("camera"); err != nil {
		return Node{}, err
	}
	if n.Children, err = r.optIndexSlice("children"); err != nil {
		return Node{}, err
	}
	if n.Skin, err = r.optIndex("skin"); err != nil {
		return Node{}, err
	}
	if n.Matrix, err = r.optFloatSlice("matrix"); err != nil {
		return Node{}, err
	}
	if n.Mesh, err = r.optIndex("mesh"); err != nil {
		return Node{}, err
	}
	if n.Rotation, err = r.optFloatSlice("rotation"); err != nil {
		return Node{}, err
	}
	if n.Scale, err = r.optFloatSlice("scale"); err != nil {
		return Node{}, err
	}
	if n.Translation, err = r.optFloatSlice("translation"); err != nil {
		return Node{}, err
	}
	if n.Weights, err = r.optFloatSlice("weights"); err != nil {
		return Node{}, err
	}
	if n.Name, err = r.optString("name"); err != nil {
		return Node{}, err
	}
	if n.Extensions, err = r.extensions(); err != nil {
		return Node{}, err
	}
	n.Extras = r.extras()
	return n, nil
}

func encodeNode(n *Node, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putOptIndex("camera", n.Camera); err != nil {
		return Value{}, err
	}
	if err := w.putIndices("children", n.Children); err != nil {
		return Value{}, err
	}
	if err := w.putOptIndex("skin", n.Skin); err != nil {
		return Value{}, err
	}
	w.putFloats("matrix", n.Matrix)
	if err := w.putOptIndex("mesh", n.Mesh); err != nil {
		return Value{}, err
	}
	w.putFloats("rotation", n.Rotation)
	w.putFloats("scale", n.Scale)
	w.putFloats("translation", n.Translation)
	w.putFloats("weights", n.Weights)
	w.putOptString("name", n.Name)
	w.putExtensions(n.Extensions)
	w.putExtras(n.Extras)
	return w.value(), nil
}
