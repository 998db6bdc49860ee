package gltfdoc

// Unmarshal parses a glTF JSON document. The walk is purely structural:
// required fields, wire types and enum membership are enforced, index ranges
// are not (see Validate). The first failure aborts and is returned as a
// *FieldError carrying the full field path; malformed input surfaces as a
// *FieldError with code syntax_error and a byte offset.
func Unmarshal(data []byte) (*Document, error) {
	v, err := ParseValue(data)
	if err != nil {
		return nil, err
	}
	return DocumentFromValue(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// DocumentFromValue decodes an already-parsed Value tree into a Document.
func DocumentFromValue(v Value) (*Document, error) {
	r, err := newObjReader(v, "")
	if err != nil {
		return nil, err
	}
	var d Document

	if d.ExtensionsUsed, err = r.optStringSlice("extensionsUsed"); err != nil {
		return nil, err
	}
	if d.ExtensionsRequired, err = r.optStringSlice("extensionsRequired"); err != nil {
		return nil, err
	}

	av, err := r.require("asset")
	if err != nil {
		return nil, err
	}
	if d.Asset, err = decodeAsset(av, "asset"); err != nil {
		return nil, err
	}

	if d.Accessors, err = decodeSection(r, "accessors", decodeAccessor); err != nil {
		return nil, err
	}
	if d.Animations, err = decodeSection(r, "animations", decodeAnimation); err != nil {
		return nil, err
	}
	if d.Buffers, err = decodeSection(r, "buffers", decodeBuffer); err != nil {
		return nil, err
	}
	if d.BufferViews, err = decodeSection(r, "bufferViews", decodeBufferView); err != nil {
		return nil, err
	}
	if d.Cameras, err = decodeSection(r, "cameras", decodeCamera); err != nil {
		return nil, err
	}
	if d.Images, err = decodeSection(r, "images", decodeImage); err != nil {
		return nil, err
	}
	if d.Materials, err = decodeSection(r, "materials", decodeMaterial); err != nil {
		return nil, err
	}
	if d.Meshes, err = decodeSection(r, "meshes", decodeMesh); err != nil {
		return nil, err
	}
	if d.Nodes, err = decodeSection(r, "nodes", decodeNode); err != nil {
		return nil, err
	}
	if d.Samplers, err = decodeSection(r, "samplers", decodeSampler); err != nil {
		return nil, err
	}
	if d.Scene, err = r.optIndex("scene"); err != nil {
		return nil, err
	}
	if d.Scenes, err = decodeSection(r, "scenes", decodeScene); err != nil {
		return nil, err
	}
	if d.Skins, err = decodeSection(r, "skins", decodeSkin); err != nil {
		return nil, err
	}
	if d.Textures, err = decodeSection(r, "textures", decodeTexture); err != nil {
		return nil, err
	}

	if d.Extensions, err = r.extensions(); err != nil {
		return nil, err
	}
	d.Extras = r.extras()
	return &d, nil
}

// decodeSection decodes one top-level object array. An absent key yields a
// nil slice, keeping "no array" distinguishable from "empty array".
func decodeSection[T any](r objReader, key string, dec func(Value, string) (T, error)) ([]T, error) {
	v, ok := r.value(key)
	if !ok {
		return nil, nil
	}
	elems, err := valueArray(v, key)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(elems))
	for i, e := range elems {
		obj, err := dec(e, indexPath(key, i))
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}
