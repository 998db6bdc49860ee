package gltfdoc

// Material describes the appearance of a primitive using the metallic-
// roughness PBR model. All factor fields carry their format defaults when
// absent, so a decoded Material is always fully populated.
type Material struct {
	Name                 string
	PBRMetallicRoughness *PBRMetallicRoughness
	NormalTexture        *NormalTextureInfo
	OcclusionTexture     *OcclusionTextureInfo
	EmissiveTexture      *TextureInfo
	EmissiveFactor       []float64 // default [0,0,0]
	AlphaMode            AlphaMode // default Opaque
	AlphaCutoff          float64   // default 0.5
	DoubleSided          bool      // default false
	Extensions           *Object
	Extras               *Value
}

// PBRMetallicRoughness is the core parameter set of the PBR model.
type PBRMetallicRoughness struct {
	BaseColorFactor          []float64 // default [1,1,1,1]
	BaseColorTexture         *TextureInfo
	MetallicFactor           float64 // default 1
	RoughnessFactor          float64 // default 1
	MetallicRoughnessTexture *TextureInfo
	Extensions               *Object
	Extras                   *Value
}

var (
	defaultEmissiveFactor  = []float64{0, 0, 0}
	defaultBaseColorFactor = []float64{1, 1, 1, 1}
)

func decodeMaterial(v Value, path string) (Material, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Material{}, err
	}
	var m Material
	if m.Name, err = r.optString("name"); err != nil {
		return Material{}, err
	}
	if pv, ok := r.value("pbrMetallicRoughness"); ok {
		pbr, err := decodePBRMetallicRoughness(pv, r.at("pbrMetallicRoughness"))
		if err != nil {
			return Material{}, err
		}
		m.PBRMetallicRoughness = &pbr
	}
	if nv, ok := r.value("normalTexture"); ok {
		nt, err := decodeNormalTextureInfo(nv, r.at("normalTexture"))
		if err != nil {
			return Material{}, err
		}
		m.NormalTexture = &nt
	}
	if ov, ok := r.value("occlusionTexture"); ok {
		ot, err := decodeOcclusionTextureInfo(ov, r.at("occlusionTexture"))
		if err != nil {
			return Material{}, err
		}
		m.OcclusionTexture = &ot
	}
	if ev, ok := r.value("emissiveTexture"); ok {
		et, err := decodeTextureInfo(ev, r.at("emissiveTexture"))
		if err != nil {
			return Material{}, err
		}
		m.EmissiveTexture = &et
	}
	// Copy, never alias: documents are caller-owned and mutable.
	m.EmissiveFactor = append([]float64(nil), defaultEmissiveFactor...)
	if ef, err := r.optFloatSlice("emissiveFactor"); err != nil {
		return Material{}, err
	} else if ef != nil {
		m.EmissiveFactor = ef
	}
	m.AlphaMode = AlphaOpaque
	if av, ok := r.value("alphaMode"); ok {
		raw, err := valueString(av, r.at("alphaMode"))
		if err != nil {
			return Material{}, err
		}
		m.AlphaMode = AlphaMode(raw)
		if !m.AlphaMode.Valid() {
			return Material{}, fieldErrf(r.at("alphaMode"), CodeUnknownEnumValue, "unknown alpha mode %q", raw)
		}
	}
	if m.AlphaCutoff, err = r.floatOr("alphaCutoff", 0.5); err != nil {
		return Material{}, err
	}
	if m.DoubleSided, err = r.boolOr("doubleSided", false); err != nil {
		return Material{}, err
	}
	if m.Extensions, err = r.extensions(); err != nil {
		return Material{}, err
	}
	m.Extras = r.extras()
	return m, nil
}

func encodeMaterial(m *Material, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	w.putOptString("name", m.Name)
	if m.PBRMetallicRoughness != nil {
		pv, err := encodePBRMetallicRoughness(m.PBRMetallicRoughness, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "pbrMetallicRoughness")
		}
		w.obj.Set("pbrMetallicRoughness", pv)
	}
	if m.NormalTexture != nil {
		nv, err := encodeNormalTextureInfo(m.NormalTexture, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "normalTexture")
		}
		w.obj.Set("normalTexture", nv)
	}
	if m.OcclusionTexture != nil {
		ov, err := encodeOcclusionTextureInfo(m.OcclusionTexture, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "occlusionTexture")
		}
		w.obj.Set("occlusionTexture", ov)
	}
	if m.EmissiveTexture != nil {
		ev, err := encodeTextureInfo(m.EmissiveTexture, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "emissiveTexture")
		}
		w.obj.Set("emissiveTexture", ev)
	}
	w.putFloatsDefault("emissiveFactor", m.EmissiveFactor, defaultEmissiveFactor)
	if w.enc.EmitDefaults || m.AlphaMode != AlphaOpaque {
		w.putString("alphaMode", string(m.AlphaMode))
	}
	w.putFloatDefault("alphaCutoff", m.AlphaCutoff, 0.5)
	w.putBoolDefault("doubleSided", m.DoubleSided, false)
	w.putExtensions(m.Extensions)
	w.putExtras(m.Extras)
	return w.value(), nil
}

func decodePBRMetallicRoughness(v Value, path string) (PBRMetallicRoughness, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return PBRMetallicRoughness{}, err
	}
	var p PBRMetallicRoughness
	p.BaseColorFactor = append([]float64(nil), defaultBaseColorFactor...)
	if bcf, err := r.optFloatSlice("baseColorFactor"); err != nil {
		return PBRMetallicRoughness{}, err
	} else if bcf != nil {
		p.BaseColorFactor = bcf
	}
	if bv, ok := r.value("baseColorTexture"); ok {
		bt, err := decodeTextureInfo(bv, r.at("baseColorTexture"))
		if err != nil {
			return PBRMetallicRoughness{}, err
		}
		p.BaseColorTexture = &bt
	}
	if p.MetallicFactor, err = r.floatOr("metallicFactor", 1); err != nil {
		return PBRMetallicRoughness{}, err
	}
	if p.RoughnessFactor, err = r.floatOr("roughnessFactor", 1); err != nil {
		return PBRMetallicRoughness{}, err
	}
	if mv, ok := r.value("metallicRoughnessTexture"); ok {
		mt, err := decodeTextureInfo(mv, r.at("metallicRoughnessTexture"))
		if err != nil {
			return PBRMetallicRoughness{}, err
		}
		p.MetallicRoughnessTexture = &mt
	}
	if p.Extensions, err = r.extensions(); err != nil {
		return PBRMetallicRoughness{}, err
	}
	p.Extras = r.extras()
	return p, nil
}

func encodePBRMetallicRoughness(p *PBRMetallicRoughness, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	w.putFloatsDefault("baseColorFactor", p.BaseColorFactor, defaultBaseColorFactor)
	if p.BaseColorTexture != nil {
		bv, err := encodeTextureInfo(p.BaseColorTexture, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "baseColorTexture")
		}
		w.obj.Set("baseColorTexture", bv)
	}
	w.putFloatDefault("metallicFactor", p.MetallicFactor, 1)
	w.putFloatDefault("roughnessFactor", p.RoughnessFactor, 1)
	if p.MetallicRoughnessTexture != nil {
		mv, err := encodeTextureInfo(p.MetallicRoughnessTexture, enc)
		if err != nil {
			return Value{}, prefixFieldError(err, "metallicRoughnessTexture")
		}
		w.obj.Set("metallicRoughnessTexture", mv)
	}
	w.putExtensions(p.Extensions)
	w.putExtras(p.Extras)
	return w.value(), nil
}
