package gltfdoc

// Asset is the metadata block every glTF document must carry. Version is the
// only required field in the entire format besides the containing asset
// object itself.
type Asset struct {
	Copyright  string
	Generator  string
	Version    string // required
	MinVersion string
	Extensions *Object
	Extras     *Value
}

func decodeAsset(v Value, path string) (Asset, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Asset{}, err
	}
	var a Asset
	if a.Copyright, err = r.optString("copyright"); err != nil {
		return Asset{}, err
	}
	if a.Generator, err = r.optString("generator"); err != nil {
		return Asset{}, err
	}
	if a.Version, err = r.reqString("version"); err != nil {
		return Asset{}, err
	}
	if a.MinVersion, err = r.optString("minVersion"); err != nil {
		return Asset{}, err
	}
	if a.Extensions, err = r.extensions(); err != nil {
		return Asset{}, err
	}
	a.Extras = r.extras()
	return a, nil
}

func encodeAsset(a *Asset, enc EncodeOptions) Value {
	w := newObjWriter(enc)
	w.putOptString("copyright", a.Copyright)
	w.putOptString("generator", a.Generator)
	w.putString("version", a.Version)
	w.putOptString("minVersion", a.MinVersion)
	w.putExtensions(a.Extensions)
	w.putExtras(a.Extras)
	return w.value()
}
