package gltfdoc

// Skin binds skeleton joints to a mesh. When InverseBindMatrices is absent
// each matrix is the identity, meaning the inverse-bind transform was
// pre-applied.
type Skin struct {
	InverseBindMatrices *Index
	Skeleton            *Index
	Joints              []Index // required
	Name                string
	Extensions          *Object
	Extras              *Value
}

func decodeSkin(v Value, path string) (Skin, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Skin{}, err
	}
	var s Skin
	if s.InverseBindMatrices, err = r.optIndex("inverseBindMatrices"); err != nil {
		return Skin{}, err
	}
	if s.Skeleton, err = r.optIndex("skeleton"); err != nil {
		return Skin{}, err
	}
	if s.Joints, err = r.reqIndexSlice("joints"); err != nil {
		return Skin{}, err
	}
	if s.Name, err = r.optString("name"); err != nil {
		return Skin{}, err
	}
	if s.Extensions, err = r.extensions(); err != nil {
		return Skin{}, err
	}
	s.Extras = r.extras()
	return s, nil
}

func encodeSkin(s *Skin, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putOptIndex("inverseBindMatrices", s.InverseBindMatrices); err != nil {
		return Value{}, err
	}
	if err := w.putOptIndex("skeleton", s.Skeleton); err != nil {
		return Value{}, err
	}
	joints := s.Joints
	if joints == nil {
		joints = []Index{}
	}
	if err := w.putIndices("joints", joints); err != nil {
		return Value{}, err
	}
	w.putOptString("name", s.Name)
	w.putExtensions(s.Extensions)
	w.putExtras(s.Extras)
	return w.value(), nil
}
