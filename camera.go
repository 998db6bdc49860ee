package gltfdoc

// Camera selects one of two projection kinds. Type is required and the
// Validator checks that the matching projection object is populated.
type Camera struct {
	Orthographic *CameraOrthographic
	Perspective  *CameraPerspective
	Type         CameraType // required
	Name         string
	Extensions   *Object
	Extras       *Value
}

// CameraPerspective holds the parameters of a perspective projection matrix.
// AspectRatio and Zfar are optional; absent means viewport-derived aspect and
// an infinite projection respectively.
type CameraPerspective struct {
	AspectRatio *float64
	Yfov        float64 // required
	Zfar        *float64
	Znear       float64 // required
	Extensions  *Object
	Extras      *Value
}

// CameraOrthographic holds the parameters of an orthographic projection
// matrix. All four are required.
type CameraOrthographic struct {
	Xmag       float64
	Ymag       float64
	Zfar       float64
	Znear      float64
	Extensions *Object
	Extras     *Value
}

func decodeCamera(v Value, path string) (Camera, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Camera{}, err
	}
	var c Camera
	if ov, ok := r.value("orthographic"); ok {
		o, err := decodeCameraOrthographic(ov, r.at("orthographic"))
		if err != nil {
			return Camera{}, err
		}
		c.Orthographic = &o
	}
	if pv, ok := r.value("perspective"); ok {
		p, err := decodeCameraPerspective(pv, r.at("perspective"))
		if err != nil {
			return Camera{}, err
		}
		c.Perspective = &p
	}
	rawType, err := r.reqString("type")
	if err != nil {
		return Camera{}, err
	}
	c.Type = CameraType(rawType)
	if !c.Type.Valid() {
		return Camera{}, fieldErrf(r.at("type"), CodeUnknownEnumValue, "unknown camera type %q", rawType)
	}
	if c.Name, err = r.optString("name"); err != nil {
		return Camera{}, err
	}
	if c.Extensions, err = r.extensions(); err != nil {
		return Camera{}, err
	}
	c.Extras = r.extras()
	return c, nil
}

func encodeCamera(c *Camera, enc EncodeOptions) Value {
	w := newObjWriter(enc)
	if c.Orthographic != nil {
		w.obj.Set("orthographic", encodeCameraOrthographic(c.Orthographic, enc))
	}
	if c.Perspective != nil {
		w.obj.Set("perspective", encodeCameraPerspective(c.Perspective, enc))
	}
	w.putString("type", string(c.Type))
	w.putOptString("name", c.Name)
	w.putExtensions(c.Extensions)
	w.putExtras(c.Extras)
	return w.value()
}

func decodeCameraPerspective(v Value, path string) (CameraPerspective, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return CameraPerspective{}, err
	}
	var p CameraPerspective
	if p.AspectRatio, err = r.optFloat("aspectRatio"); err != nil {
		return CameraPerspective{}, err
	}
	if p.Yfov, err = r.reqFloat("yfov"); err != nil {
		return CameraPerspective{}, err
	}
	if p.Zfar, err = r.optFloat("zfar"); err != nil {
		return CameraPerspective{}, err
	}
	if p.Znear, err = r.reqFloat("znear"); err != nil {
		return CameraPerspective{}, err
	}
	if p.Extensions, err = r.extensions(); err != nil {
		return CameraPerspective{}, err
	}
	p.Extras = r.extras()
	return p, nil
}

func encodeCameraPerspective(p *CameraPerspective, enc EncodeOptions) Value {
	w := newObjWriter(enc)
	w.putOptFloat("aspectRatio", p.AspectRatio)
	w.putFloat("yfov", p.Yfov)
	w.putOptFloat("zfar", p.Zfar)
	w.putFloat("znear", p.Znear)
	w.putExtensions(p.Extensions)
	w.putExtras(p.Extras)
	return w.value()
}

func decodeCameraOrthographic(v Value, path string) (CameraOrthographic, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return CameraOrthographic{}, err
	}
	var o CameraOrthographic
	if o.Xmag, err = r.reqFloat("xmag"); err != nil {
		return CameraOrthographic{}, err
	}
	if o.Ymag, err = r.reqFloat("ymag"); err != nil {
		return CameraOrthographic{}, err
	}
	if o.Zfar, err = r.reqFloat("zfar"); err != nil {
		return CameraOrthographic{}, err
	}
	if o.Znear, err = r.reqFloat("znear"); err != nil {
		return CameraOrthographic{}, err
	}
	if o.Extensions, err = r.extensions(); err != nil {
		return CameraOrthographic{}, err
	}
	o.Extras = r.extras()
	return o, nil
}

func encodeCameraOrthographic(o *CameraOrthographic, enc EncodeOptions) Value {
	w := newObjWriter(enc)
	w.putFloat("xmag", o.Xmag)
	w.putFloat("ymag", o.Ymag)
	w.putFloat("zfar", o.Zfar)
	w.putFloat("znear", o.Znear)
	w.putExtensions(o.Extensions)
	w.putExtras(o.Extras)
	return w.value()
}
