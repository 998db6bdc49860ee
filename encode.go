package gltfdoc

// EncodeOptions controls the wire form produced by Marshal.
type EncodeOptions struct {
	// EmitDefaults re-emits Optional-with-default fields whose stored value
	// equals its format default. When false (the default) such fields are
	// omitted, producing the smaller canonical form. Either way the decoded
	// result is identical, since absent defaulted fields materialize their
	// defaults on read.
	EmitDefaults bool
}

// Marshal serializes a Document to glTF JSON. Encoding is total for any
// well-formed Document; the only failure mode is a negative Index, reported
// as a *FieldError with code invalid_index. When multiple options are given,
// the last wins.
func Marshal(doc *Document, opts ...EncodeOptions) ([]byte, error) {
	var opt EncodeOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := DocumentToValue(doc, opt)
	if err != nil {
		return nil, err
	}
	return v.AppendJSON(nil)
}

// MarshalJSON implements json.Marshaler using default options.
func (d *Document) MarshalJSON() ([]byte, error) { return Marshal(d) }

// DocumentToValue encodes a Document into a Value tree. Top-level keys are
// written in the order the glTF specification lists them; extension and
// extras content keeps its stored member order.
func DocumentToValue(doc *Document, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)

	w.putStrings("extensionsUsed", doc.ExtensionsUsed)
	w.putStrings("extensionsRequired", doc.ExtensionsRequired)

	if err := encodeSection(w, "accessors", doc.Accessors, enc, encodeAccessor); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "animations", doc.Animations, enc, encodeAnimation); err != nil {
		return Value{}, err
	}
	w.obj.Set("asset", encodeAsset(&doc.Asset, enc))
	if err := encodeSection(w, "buffers", doc.Buffers, enc, infallible(encodeBuffer)); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "bufferViews", doc.BufferViews, enc, encodeBufferView); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "cameras", doc.Cameras, enc, infallible(encodeCamera)); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "images", doc.Images, enc, encodeImage); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "materials", doc.Materials, enc, encodeMaterial); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "meshes", doc.Meshes, enc, encodeMesh); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "nodes", doc.Nodes, enc, encodeNode); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "samplers", doc.Samplers, enc, infallible(encodeSampler)); err != nil {
		return Value{}, err
	}
	if err := w.putOptIndex("scene", doc.Scene); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "scenes", doc.Scenes, enc, encodeScene); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "skins", doc.Skins, enc, encodeSkin); err != nil {
		return Value{}, err
	}
	if err := encodeSection(w, "textures", doc.Textures, enc, encodeTexture); err != nil {
		return Value{}, err
	}

	w.putExtensions(doc.Extensions)
	w.putExtras(doc.Extras)
	return w.value(), nil
}

// encodeSection writes one top-level object array; a nil slice is omitted.
func encodeSection[T any](w *objWriter, key string, objs []T, enc EncodeOptions, encFn func(*T, EncodeOptions) (Value, error)) error {
	if objs == nil {
		return nil
	}
	elems := make([]Value, len(objs))
	for i := range objs {
		v, err := encFn(&objs[i], enc)
		if err != nil {
			return prefixFieldError(err, indexPath(key, i))
		}
		elems[i] = v
	}
	w.obj.Set(key, ArrayValue(elems))
	return nil
}

// infallible adapts the encoders that cannot fail to the section signature.
func infallible[T any](fn func(*T, EncodeOptions) Value) func(*T, EncodeOptions) (Value, error) {
	return func(t *T, enc EncodeOptions) (Value, error) { return fn(t, enc), nil }
}
