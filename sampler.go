package gltfdoc

// Sampler holds texture filtering and wrapping modes. The filters have no
// format default (auto filtering when absent); the wrap modes default to Repeat.
type Sampler struct {
	MagFilter  *MagFilter
	MinFilter  *MinFilter
	WrapS      WrapMode // default Repeat
	WrapT      WrapMode // default Repeat
	Name       string
	Extensions *Object
	Extras     *Value
}

func decodeSampler(v Value, path string) (Sampler, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Sampler{}, err
	}
	var s Sampler
	if mv, ok := r.value("magFilter"); ok {
		raw, err := valueInt(mv, r.at("magFilter"))
		if err != nil {
			return Sampler{}, err
		}
		f := MagFilter(raw)
		if !f.Valid() {
			return Sampler{}, fieldErrf(r.at("magFilter"), CodeUnknownEnumValue, "unknown mag filter %d", raw)
		}
		s.MagFilter = &f
	}
	if mv, ok := r.value("minFilter"); ok {
		raw, err := valueInt(mv, r.at("minFilter"))
		if err != nil {
			return Sampler{}, err
		}
		f := MinFilter(raw)
		if !f.Valid() {
			return Sampler{}, fieldErrf(r.at("minFilter"), CodeUnknownEnumValue, "unknown min filter %d", raw)
		}
		s.MinFilter = &f
	}
	s.WrapS = WrapRepeat
	if wv, ok := r.value("wrapS"); ok {
		raw, err := valueInt(wv, r.at("wrapS"))
		if err != nil {
			return Sampler{}, err
		}
		s.WrapS = WrapMode(raw)
		if !s.WrapS.Valid() {
			return Sampler{}, fieldErrf(r.at("wrapS"), CodeUnknownEnumValue, "unknown wrap mode %d", raw)
		}
	}
	s.WrapT = WrapRepeat
	if wv, ok := r.value("wrapT"); ok {
		raw, err := valueInt(wv, r.at("wrapT"))
		if err != nil {
			return Sampler{}, err
		}
		s.WrapT = WrapMode(raw)
		if !s.WrapT.Valid() {
			return Sampler{}, fieldErrf(r.at("wrapT"), CodeUnknownEnumValue, "unknown wrap mode %d", raw)
		}
	}
	if s.Name, err = r.optString("name"); err != nil {
		return Sampler{}, err
	}
	if s.Extensions, err = r.extensions(); err != nil {
		return Sampler{}, err
	}
	s.Extras = r.extras()
	return s, nil
}

func encodeSampler(s *Sampler, enc EncodeOptions) Value {
	w := newObjWriter(enc)
	if s.MagFilter != nil {
		w.putInt("magFilter", int64(*s.MagFilter))
	}
	if s.MinFilter != nil {
		w.putInt("minFilter", int64(*s.MinFilter))
	}
	w.putIntDefault("wrapS", int64(s.WrapS), int64(WrapRepeat))
	w.putIntDefault("wrapT", int64(s.WrapT), int64(WrapRepeat))
	w.putOptString("name", s.Name)
	w.putExtensions(s.Extensions)
	w.putExtras(s.Extras)
	return w.value()
}
