package gltfdoc

// Buffer points at binary geometry, animation or skin data, either by URI or,
// for GLB assets, implicitly at the container's binary chunk (no URI).
type Buffer struct {
	URI        string
	ByteLength int64 // required
	Name       string
	Extensions *Object
	Extras     *Value
}

// BufferView is a contiguous slice of a buffer.
type BufferView struct {
	Buffer     Index // required
	ByteOffset int64 // default 0
	ByteLength int64 // required
	ByteStride *int64
	Target     *BufferViewTarget
	Name       string
	Extensions *Object
	Extras     *Value
}

func decodeBuffer(v Value, path string) (Buffer, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Buffer{}, err
	}
	var b Buffer
	if b.URI, err = r.optString("uri"); err != nil {
		return Buffer{}, err
	}
	if b.ByteLength, err = r.reqInt("byteLength"); err != nil {
		return Buffer{}, err
	}
	if b.Name, err = r.optString("name"); err != nil {
		return Buffer{}, err
	}
	if b.Extensions, err = r.extensions(); err != nil {
		return Buffer{}, err
	}
	b.Extras = r.extras()
	return b, nil
}

func encodeBuffer(b *Buffer, enc EncodeOptions) Value {
	w := newObjWriter(enc)
	w.putOptString("uri", b.URI)
	w.putInt("byteLength", b.ByteLength)
	w.putOptString("name", b.Name)
	w.putExtensions(b.Extensions)
	w.putExtras(b.Extras)
	return w.value()
}

func decodeBufferView(v Value, path string) (BufferView, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return BufferView{}, err
	}
	var bv BufferView
	if bv.Buffer, err = r.reqIndex("buffer"); err != nil {
		return BufferView{}, err
	}
	if bv.ByteOffset, err = r.intOr("byteOffset", 0); err != nil {
		return BufferView{}, err
	}
	if bv.ByteLength, err = r.reqInt("byteLength"); err != nil {
		return BufferView{}, err
	}
	if sv, ok := r.value("byteStride"); ok {
		stride, err := valueInt(sv, r.at("byteStride"))
		if err != nil {
			return BufferView{}, err
		}
		bv.ByteStride = &stride
	}
	if tv, ok := r.value("target"); ok {
		raw, err := valueInt(tv, r.at("target"))
		if err != nil {
			return BufferView{}, err
		}
		t := BufferViewTarget(raw)
		if !t.Valid() {
			return BufferView{}, fieldErrf(r.at("target"), CodeUnknownEnumValue, "unknown bufferView target %d", raw)
		}
		bv.Target = &t
	}
	if bv.Name, err = r.optString("name"); err != nil {
		return BufferView{}, err
	}
	if bv.Extensions, err = r.extensions(); err != nil {
		return BufferView{}, err
	}
	bv.Extras = r.extras()
	return bv, nil
}

func encodeBufferView(bv *BufferView, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("buffer", bv.Buffer); err != nil {
		return Value{}, err
	}
	w.putIntDefault("byteOffset", bv.ByteOffset, 0)
	w.putInt("byteLength", bv.ByteLength)
	if bv.ByteStride != nil {
		w.putInt("byteStride", *bv.ByteStride)
	}
	if bv.Target != nil {
		w.putInt("target", int64(*bv.Target))
	}
	w.putOptString("name", bv.Name)
	w.putExtensions(bv.Extensions)
	w.putExtras(bv.Extras)
	return w.value(), nil
}
