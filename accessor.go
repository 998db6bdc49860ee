package gltfdoc

// Accessor is a typed view into a bufferView, describing how raw bytes are to
// be interpreted as scalar/vector/matrix elements. Interpreting the bytes
// themselves is a consumer concern; this model only carries the description.
type Accessor struct {
	BufferView    *Index
	ByteOffset    int64 // default 0
	ComponentType ComponentType // required
	Normalized    bool  // default false
	Count         int64 // required
	Type          AccessorType // required
	Max           []float64
	Min           []float64
	Sparse        *Sparse
	Name          string
	Extensions    *Object
	Extras        *Value
}

// Sparse stores deviations from an accessor's initialization value.
type Sparse struct {
	Count      int64 // required
	Indices    SparseIndices // required
	Values     SparseValues  // required
	Extensions *Object
	Extras     *Value
}

// SparseIndices locates the indices of the deviating elements.
type SparseIndices struct {
	BufferView    Index // required
	ByteOffset    int64 // default 0
	ComponentType SparseIndicesType // required
	Extensions    *Object
	Extras        *Value
}

// SparseValues locates the substituted element values.
type SparseValues struct {
	BufferView Index // required
	ByteOffset int64 // default 0
	Extensions *Object
	Extras     *Value
}

func decodeAccessor(v Value, path string) (Accessor, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Accessor{}, err
	}
	var a Accessor
	if a.BufferView, err = r.optIndex("bufferView"); err != nil {
		return Accessor{}, err
	}
	if a.ByteOffset, err = r.intOr("byteOffset", 0); err != nil {
		return Accessor{}, err
	}
	rawCT, err := r.reqInt("componentType")
	if err != nil {
		return Accessor{}, err
	}
	a.ComponentType = ComponentType(rawCT)
	if !a.ComponentType.Valid() {
		return Accessor{}, fieldErrf(r.at("componentType"), CodeUnknownEnumValue, "unknown component type %d", rawCT)
	}
	if a.Normalized, err = r.boolOr("normalized", false); err != nil {
		return Accessor{}, err
	}
	if a.Count, err = r.reqInt("count"); err != nil {
		return Accessor{}, err
	}
	rawType, err := r.reqString("type")
	if err != nil {
		return Accessor{}, err
	}
	a.Type = AccessorType(rawType)
	if !a.Type.Valid() {
		return Accessor{}, fieldErrf(r.at("type"), CodeUnknownEnumValue, "unknown accessor type %q", rawType)
	}
	if a.Max, err = r.optFloatSlice("max"); err != nil {
		return Accessor{}, err
	}
	if a.Min, err = r.optFloatSlice("min"); err != nil {
		return Accessor{}, err
	}
	if sv, ok := r.value("sparse"); ok {
		sparse, err := decodeSparse(sv, r.at("sparse"))
		if err != nil {
			return Accessor{}, err
		}
		a.Sparse = &sparse
	}
	if a.Name, err = r.optString("name"); err != nil {
		return Accessor{}, err
	}
	if a.Extensions, err = r.extensions(); err != nil {
		return Accessor{}, err
	}
	a.Extras = r.extras()
	return a, nil
}

func encodeAccessor(a *Accessor, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putOptIndex("bufferView", a.BufferView); err != nil {
		return Value{}, err
	}
	w.putIntDefault("byteOffset", a.ByteOffset, 0)
	w.putInt("componentType", int64(a.ComponentType))
	w.putBoolDefault("normalized", a.Normalized, false)
	w.putInt("count", a.Count)
	w.putString("type", string(a.Type))
	w.putFloats("max", a.Max)
	w.putFloats("min", a.Min)
	if a.Sparse != nil {
		sv, err := encodeSparse(a.Sparse, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "sparse")
		}
		w.obj.Set("sparse", sv)
	}
	w.putOptString("name", a.Name)
	w.putExtensions(a.Extensions)
	w.putExtras(a.Extras)
	return w.value(), nil
}

func decodeSparse(v Value, path string) (Sparse, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Sparse{}, err
	}
	var s Sparse
	if s.Count, err = r.reqInt("count"); err != nil {
		return Sparse{}, err
	}
	iv, err := r.require("indices")
	if err != nil {
		return Sparse{}, err
	}
	if s.Indices, err = decodeSparseIndices(iv, r.at("indices")); err != nil {
		return Sparse{}, err
	}
	vv, err := r.require("values")
	if err != nil {
		return Sparse{}, err
	}
	if s.Values, err = decodeSparseValues(vv, r.at("values")); err != nil {
		return Sparse{}, err
	}
	if s.Extensions, err = r.extensions(); err != nil {
		return Sparse{}, err
	}
	s.Extras = r.extras()
	return s, nil
}

func encodeSparse(s *Sparse, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	w.putInt("count", s.Count)
	iv, err := encodeSparseIndices(&s.Indices, enc)
	if err != nil {
		return Value{}, prefixFieldError(err, "indices")
	}
	w.obj.Set("indices", iv)
	vv, err := encodeSparseValues(&s.Values, enc)
	if err != nil {
		return Value{}, prefixFieldError(err, "values")
	}
	w.obj.Set("values", vv)
	w.putExtensions(s.Extensions)
	w.putExtras(s.Extras)
	return w.value(), nil
}

func decodeSparseIndices(v Value, path string) (SparseIndices, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return SparseIndices{}, err
	}
	var si SparseIndices
	if si.BufferView, err = r.reqIndex("bufferView"); err != nil {
		return SparseIndices{}, err
	}
	if si.ByteOffset, err = r.intOr("byteOffset", 0); err != nil {
		return SparseIndices{}, err
	}
	raw, err := r.reqInt("componentType")
	if err != nil {
		return SparseIndices{}, err
	}
	si.ComponentType = SparseIndicesType(raw)
	if !si.ComponentType.Valid() {
		return SparseIndices{}, fieldErrf(r.at("componentType"), CodeUnknownEnumValue, "unknown sparse indices component type %d", raw)
	}
	if si.Extensions, err = r.extensions(); err != nil {
		return SparseIndices{}, err
	}
	si.Extras = r.extras()
	return si, nil
}

func encodeSparseIndices(si *SparseIndices, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("bufferView", si.BufferView); err != nil {
		return Value{}, err
	}
	w.putIntDefault("byteOffset", si.ByteOffset, 0)
	w.putInt("componentType", int64(si.ComponentType))
	w.putExtensions(si.Extensions)
	w.putExtras(si.Extras)
	return w.value(), nil
}

func decodeSparseValues(v Value, path string) (SparseValues, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return SparseValues{}, err
	}
	var sv SparseValues
	if sv.BufferView, err = r.reqIndex("bufferView"); err != nil {
		return SparseValues{}, err
	}
	if sv.ByteOffset, err = r.intOr("byteOffset", 0); err != nil {
		return SparseValues{}, err
	}
	if sv.Extensions, err = r.extensions(); err != nil {
		return SparseValues{}, err
	}
	sv.Extras = r.extras()
	return sv, nil
}

func encodeSparseValues(sv *SparseValues, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("bufferView", sv.BufferView); err != nil {
		return Value{}, err
	}
	w.putIntDefault("byteOffset", sv.ByteOffset, 0)
	w.putExtensions(sv.Extensions)
	w.putExtras(sv.Extras)
	return w.value(), nil
}
