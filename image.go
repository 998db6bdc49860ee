package gltfdoc

// Image data for a texture, referenced by URI or by bufferView. MimeType is
// required alongside BufferView; the Validator enforces that pairing.
type Image struct {
	URI        string
	MimeType   *MimeType
	BufferView *Index
	Name       string
	Extensions *Object
	Extras     *Value
}

func decodeImage(v Value, path string) (Image, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Image{}, err
	}
	var img Image
	if img.URI, err = r.optString("uri"); err != nil {
		return Image{}, err
	}
	if mv, ok := r.value("mimeType"); ok {
		raw, err := valueString(mv, r.at("mimeType"))
		if err != nil {
			return Image{}, err
		}
		mt := MimeType(raw)
		if !mt.Valid() {
			return Image{}, fieldErrf(r.at("mimeType"), CodeUnknownEnumValue, "unknown image MIME type %q", raw)
		}
		img.MimeType = &mt
	}
	if img.BufferView, err = r.optIndex("bufferView"); err != nil {
		return Image{}, err
	}
	if img.Name, err = r.optString("name"); err != nil {
		return Image{}, err
	}
	if img.Extensions, err = r.extensions(); err != nil {
		return Image{}, err
	}
	img.Extras = r.extras()
	return img, nil
}

func encodeImage(img *Image, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	w.putOptString("uri", img.URI)
	if img.MimeType != nil {
		w.putString("mimeType", string(*img.MimeType))
	}
	if err := w.putOptIndex("bufferView", img.BufferView); err != nil {
		return Value{}, err
	}
	w.putOptString("name", img.Name)
	w.putExtensions(img.Extensions)
	w.putExtras(img.Extras)
	return w.value(), nil
}
