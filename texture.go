package gltfdoc

// Texture pairs an image source with a sampler.
type Texture struct {
	Sampler    *Index
	Source     *Index
	Name       string
	Extensions *Object
	Extras     *Value
}

// TextureInfo references a texture from a material slot.
type TextureInfo struct {
	Index      Index // required
	TexCoord   int64 // default 0; selects the TEXCOORD_<n> attribute set
	Extensions *Object
	Extras     *Value
}

// NormalTextureInfo is TextureInfo plus the normal-map scale multiplier.
type NormalTextureInfo struct {
	Index      Index   // required
	TexCoord   int64   // default 0
	Scale      float64 // default 1
	Extensions *Object
	Extras     *Value
}

// OcclusionTextureInfo is TextureInfo plus the occlusion strength multiplier.
type OcclusionTextureInfo struct {
	Index      Index   // required
	TexCoord   int64   // default 0
	Strength   float64 // default 1
	Extensions *Object
	Extras     *Value
}

func decodeTexture(v Value, path string) (Texture, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Texture{}, err
	}
	var t Texture
	if t.Sampler, err = r.optIndex("sampler"); err != nil {
		return Texture{}, err
	}
	if t.Source, err = r.optIndex("source"); err != nil {
		return Texture{}, err
	}
	if t.Name, err = r.optString("name"); err != nil {
		return Texture{}, err
	}
	if t.Extensions, err = r.extensions(); err != nil {
		return Texture{}, err
	}
	t.Extras = r.extras()
	return t, nil
}

func encodeTexture(t *Texture, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putOptIndex("sampler", t.Sampler); err != nil {
		return Value{}, err
	}
	if err := w.putOptIndex("source", t.Source); err != nil {
		return Value{}, err
	}
	w.putOptString("name", t.Name)
	w.putExtensions(t.Extensions)
	w.putExtras(t.Extras)
	return w.value(), nil
}

func decodeTextureInfo(v Value, path string) (TextureInfo, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return TextureInfo{}, err
	}
	var ti TextureInfo
	if ti.Index, err = r.reqIndex("index"); err != nil {
		return TextureInfo{}, err
	}
	if ti.TexCoord, err = r.intOr("texCoord", 0); err != nil {
		return TextureInfo{}, err
	}
	if ti.Extensions, err = r.extensions(); err != nil {
		return TextureInfo{}, err
	}
	ti.Extras = r.extras()
	return ti, nil
}

func encodeTextureInfo(ti *TextureInfo, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("index", ti.Index); err != nil {
		return Value{}, err
	}
	w.putIntDefault("texCoord", ti.TexCoord, 0)
	w.putExtensions(ti.Extensions)
	w.putExtras(ti.Extras)
	return w.value(), nil
}

func decodeNormalTextureInfo(v Value, path string) (NormalTextureInfo, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return NormalTextureInfo{}, err
	}
	var ti NormalTextureInfo
	if ti.Index, err = r.reqIndex("index"); err != nil {
		return NormalTextureInfo{}, err
	}
	if ti.TexCoord, err = r.intOr("texCoord", 0); err != nil {
		return NormalTextureInfo{}, err
	}
	if ti.Scale, err = r.floatOr("scale", 1); err != nil {
		return NormalTextureInfo{}, err
	}
	if ti.Extensions, err = r.extensions(); err != nil {
		return NormalTextureInfo{}, err
	}
	ti.Extras = r.extras()
	return ti, nil
}

func encodeNormalTextureInfo(ti *NormalTextureInfo, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("index", ti.Index); err != nil {
		return Value{}, err
	}
	w.putIntDefault("texCoord", ti.TexCoord, 0)
	w.putFloatDefault("scale", ti.Scale, 1)
	w.putExtensions(ti.Extensions)
	w.putExtras(ti.Extras)
	return w.value(), nil
}

func decodeOcclusionTextureInfo(v Value, path string) (OcclusionTextureInfo, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return OcclusionTextureInfo{}, err
	}
	var ti OcclusionTextureInfo
	if ti.Index, err = r.reqIndex("index"); err != nil {
		return OcclusionTextureInfo{}, err
	}
	if ti.TexCoord, err = r.intOr("texCoord", 0); err != nil {
		return OcclusionTextureInfo{}, err
	}
	if ti.Strength, err = r.floatOr("strength", 1); err != nil {
		return OcclusionTextureInfo{}, err
	}
	if ti.Extensions, err = r.extensions(); err != nil {
		return OcclusionTextureInfo{}, err
	}
	ti.Extras = r.extras()
	return ti, nil
}

func encodeOcclusionTextureInfo(ti *OcclusionTextureInfo, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("index", ti.Index); err != nil {
		return Value{}, err
	}
	w.putIntDefault("texCoord", ti.TexCoord, 0)
	w.putFloatDefault("strength", ti.Strength, 1)
	w.putExtensions(ti.Extensions)
	w.putExtras(ti.Extras)
	return w.value(), nil
}
