package gltfdoc

import "sort"

// Mesh is a set of primitives to be rendered under one node transform.
type Mesh struct {
	Primitives []Primitive // required
	Weights    []float64   // morph target weights
	Name       string
	Extensions *Object
	Extras     *Value
}

// Primitive is geometry rendered with one material. Attributes maps semantic
// names (POSITION, NORMAL, TEXCOORD_0, ...) to accessor indices; Targets
// holds morph target attribute dictionaries of the same shape.
type Primitive struct {
	Attributes map[string]Index // required
	Indices    *Index
	Material   *Index
	Mode       PrimitiveMode // default Triangles
	Targets    []map[string]Index
	Extensions *Object
	Extras     *Value
}

func decodeMesh(v Value, path string) (Mesh, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Mesh{}, err
	}
	var m Mesh
	pv, err := r.require("primitives")
	if err != nil {
		return Mesh{}, err
	}
	elems, err := valueArray(pv, r.at("primitives"))
	if err != nil {
		return Mesh{}, err
	}
	m.Primitives = make([]Primitive, len(elems))
	for i, e := range elems {
		p, err := decodePrimitive(e, indexPath(r.at("primitives"), i))
		if err != nil {
			return Mesh{}, err
		}
		m.Primitives[i] = p
	}
	if m.Weights, err = r.optFloatSlice("weights"); err != nil {
		return Mesh{}, err
	}
	if m.Name, err = r.optString("name"); err != nil {
		return Mesh{}, err
	}
	if m.Extensions, err = r.extensions(); err != nil {
		return Mesh{}, err
	}
	m.Extras = r.extras()
	return m, nil
}

func encodeMesh(m *Mesh, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	prims := make([]Value, len(m.Primitives))
	for i := range m.Primitives {
		pv, err := encodePrimitive(&m.Primitives[i], enc)
		if err != nil {
			return Value{}, prefixFieldError(err, indexPath("primitives", i))
		}
		prims[i] = pv
	}
	w.obj.Set("primitives", ArrayValue(prims))
	w.putFloats("weights", m.Weights)
	w.putOptString("name", m.Name)
	w.putExtensions(m.Extensions)
	w.putExtras(m.Extras)
	return w.value(), nil
}

func decodePrimitive(v Value, path string) (Primitive, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Primitive{}, err
	}
	var p Primitive
	av, err := r.require("attributes")
	if err != nil {
		return Primitive{}, err
	}
	if p.Attributes, err = attributeMap(av, r.at("attributes")); err != nil {
		return Primitive{}, err
	}
	if p.Indices, err = r.optIndex("indices"); err != nil {
		return Primitive{}, err
	}
	if p.Material, err = r.optIndex("material"); err != nil {
		return Primitive{}, err
	}
	p.Mode = ModeTriangles
	if mv, ok := r.value("mode"); ok {
		raw, err := valueInt(mv, r.at("mode"))
		if err != nil {
			return Primitive{}, err
		}
		p.Mode = PrimitiveMode(raw)
		if !p.Mode.Valid() {
			return Primitive{}, fieldErrf(r.at("mode"), CodeUnknownEnumValue, "unknown primitive mode %d", raw)
		}
	}
	if tv, ok := r.value("targets"); ok {
		elems, err := valueArray(tv, r.at("targets"))
		if err != nil {
			return Primitive{}, err
		}
		p.Targets = make([]map[string]Index, len(elems))
		for i, e := range elems {
			tgt, err := attributeMap(e, indexPath(r.at("targets"), i))
			if err != nil {
				return Primitive{}, err
			}
			p.Targets[i] = tgt
		}
	}
	if p.Extensions, err = r.extensions(); err != nil {
		return Primitive{}, err
	}
	p.Extras = r.extras()
	return p, nil
}

func encodePrimitive(p *Primitive, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	av, err := encodeAttributeMap(p.Attributes, "attributes")
	if err != nil {
		return Value{}, err
	}
	w.obj.Set("attributes", av)
	if err := w.putOptIndex("indices", p.Indices); err != nil {
		return Value{}, err
	}
	if err := w.putOptIndex("material", p.Material); err != nil {
		return Value{}, err
	}
	w.putIntDefault("mode", int64(p.Mode), int64(ModeTriangles))
	if p.Targets != nil {
		tgts := make([]Value, len(p.Targets))
		for i, t := range p.Targets {
			tv, err := encodeAttributeMap(t, indexPath("targets", i))
			if err != nil {
				return Value{}, err
			}
			tgts[i] = tv
		}
		w.obj.Set("targets", ArrayValue(tgts))
	}
	w.putExtensions(p.Extensions)
	w.putExtras(p.Extras)
	return w.value(), nil
}

// encodeAttributeMap writes semantic keys sorted so output is deterministic.
func encodeAttributeMap(attrs map[string]Index, path string) (Value, error) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	obj := NewObject()
	for _, k := range keys {
		idx := attrs[k]
		if idx < 0 {
			return Value{}, fieldErrf(joinPath(path, k), CodeInvalidIndex, "index must be non-negative, got %d", idx)
		}
		obj.Set(k, NumberValue(formatInt(int64(idx))))
	}
	return ObjectValue(obj), nil
}
