package gltfdoc

// Scene lists the root nodes of one renderable scene graph.
type Scene struct {
	Nodes      []Index
	Name       string
	Extensions *Object
	Extras     *Value
}

func decodeScene(v Value, path string) (Scene, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Scene{}, err
	}
	var s Scene
	if s.Nodes, err = r.optIndexSlice("nodes"); err != nil {
		return Scene{}, err
	}
	if s.Name, err = r.optString("name"); err != nil {
		return Scene{}, err
	}
	if s.Extensions, err = r.extensions(); err != nil {
		return Scene{}, err
	}
	s.Extras = r.extras()
	return s, nil
}

func encodeScene(s *Scene, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndices("nodes", s.Nodes); err != nil {
		return Value{}, err
	}
	w.putOptString("name", s.Name)
	w.putExtensions(s.Extensions)
	w.putExtras(s.Extras)
	return w.value(), nil
}
