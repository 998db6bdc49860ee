package gltfdoc

// Animation is a keyframe animation: channels target node properties,
// samplers pair input/output accessors with an interpolation algorithm.
type Animation struct {
	Channels   []AnimationChannel // required
	Samplers   []AnimationSampler // required
	Name       string
	Extensions *Object
	Extras     *Value
}

// AnimationChannel routes one sampler of this animation at one target.
type AnimationChannel struct {
	Sampler    Index         // required, indexes this animation's samplers
	Target     ChannelTarget // required
	Extensions *Object
	Extras     *Value
}

// ChannelTarget names the node property a channel drives. Node may be absent
// when an extension supplies the target.
type ChannelTarget struct {
	Node       *Index
	Path       TargetPath // required
	Extensions *Object
	Extras     *Value
}

// AnimationSampler is a keyframe curve: Input indexes the time accessor,
// Output the value accessor.
type AnimationSampler struct {
	Input         Index         // required
	Interpolation Interpolation // default Linear
	Output        Index         // required
	Extensions    *Object
	Extras        *Value
}

func decodeAnimation(v Value, path string) (Animation, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return Animation{}, err
	}
	var a Animation
	cv, err := r.require("channels")
	if err != nil {
		return Animation{}, err
	}
	celems, err := valueArray(cv, r.at("channels"))
	if err != nil {
		return Animation{}, err
	}
	a.Channels = make([]AnimationChannel, len(celems))
	for i, e := range celems {
		ch, err := decodeAnimationChannel(e, indexPath(r.at("channels"), i))
		if err != nil {
			return Animation{}, err
		}
		a.Channels[i] = ch
	}
	sv, err := r.require("samplers")
	if err != nil {
		return Animation{}, err
	}
	selems, err := valueArray(sv, r.at("samplers"))
	if err != nil {
		return Animation{}, err
	}
	a.Samplers = make([]AnimationSampler, len(selems))
	for i, e := range selems {
		sp, err := decodeAnimationSampler(e, indexPath(r.at("samplers"), i))
		if err != nil {
			return Animation{}, err
		}
		a.Samplers[i] = sp
	}
	if a.Name, err = r.optString("name"); err != nil {
		return Animation{}, err
	}
	if a.Extensions, err = r.extensions(); err != nil {
		return Animation{}, err
	}
	a.Extras = r.extras()
	return a, nil
}

func encodeAnimation(a *Animation, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	chans := make([]Value, len(a.Channels))
	for i := range a.Channels {
		cv, err := encodeAnimationChannel(&a.Channels[i], enc)
		if err != nil {
			return Value{}, prefixFieldError(err, indexPath("channels", i))
		}
		chans[i] = cv
	}
	w.obj.Set("channels", ArrayValue(chans))
	samps := make([]Value, len(a.Samplers))
	for i := range a.Samplers {
		sv, err := encodeAnimationSampler(&a.Samplers[i], enc)
		if err != nil {
			return Value{}, prefixFieldError(err, indexPath("samplers", i))
		}
		samps[i] = sv
	}
	w.obj.Set("samplers", ArrayValue(samps))
	w.putOptString("name", a.Name)
	w.putExtensions(a.Extensions)
	w.putExtras(a.Extras)
	return w.value(), nil
}

func decodeAnimationChannel(v Value, path string) (AnimationChannel, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return AnimationChannel{}, err
	}
	var ch AnimationChannel
	if ch.Sampler, err = r.reqIndex("sampler"); err != nil {
		return AnimationChannel{}, err
	}
	tv, err := r.require("target")
	if err != nil {
		return AnimationChannel{}, err
	}
	if ch.Target, err = decodeChannelTarget(tv, r.at("target")); err != nil {
		return AnimationChannel{}, err
	}
	if ch.Extensions, err = r.extensions(); err != nil {
		return AnimationChannel{}, err
	}
	ch.Extras = r.extras()
	return ch, nil
}

func encodeAnimationChannel(ch *AnimationChannel, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("sampler", ch.Sampler); err != nil {
		return Value{}, err
	}
	tv, err := encodeChannelTarget(&ch.Target, enc)
	if err != nil {
		return Value{}, prefixFieldError(err, "target")
	}
	w.obj.Set("target", tv)
	w.putExtensions(ch.Extensions)
	w.putExtras(ch.Extras)
	return w.value(), nil
}

func decodeChannelTarget(v Value, path string) (ChannelTarget, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return ChannelTarget{}, err
	}
	var t ChannelTarget
	if t.Node, err = r.optIndex("node"); err != nil {
		return ChannelTarget{}, err
	}
	rawPath, err := r.reqString("path")
	if err != nil {
		return ChannelTarget{}, err
	}
	t.Path = TargetPath(rawPath)
	if !t.Path.Valid() {
		return ChannelTarget{}, fieldErrf(r.at("path"), CodeUnknownEnumValue, "unknown target path %q", rawPath)
	}
	if t.Extensions, err = r.extensions(); err != nil {
		return ChannelTarget{}, err
	}
	t.Extras = r.extras()
	return t, nil
}

func encodeChannelTarget(t *ChannelTarget, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putOptIndex("node", t.Node); err != nil {
		return Value{}, err
	}
	w.putString("path", string(t.Path))
	w.putExtensions(t.Extensions)
	w.putExtras(t.Extras)
	return w.value(), nil
}

func decodeAnimationSampler(v Value, path string) (AnimationSampler, error) {
	r, err := newObjReader(v, path)
	if err != nil {
		return AnimationSampler{}, err
	}
	var s AnimationSampler
	if s.Input, err = r.reqIndex("input"); err != nil {
		return AnimationSampler{}, err
	}
	s.Interpolation = InterpolationLinear
	if iv, ok := r.value("interpolation"); ok {
		raw, err := valueString(iv, r.at("interpolation"))
		if err != nil {
			return AnimationSampler{}, err
		}
		s.Interpolation = Interpolation(raw)
		if !s.Interpolation.Valid() {
			return AnimationSampler{}, fieldErrf(r.at("interpolation"), CodeUnknownEnumValue, "unknown interpolation %q", raw)
		}
	}
	if s.Output, err = r.reqIndex("output"); err != nil {
		return AnimationSampler{}, err
	}
	if s.Extensions, err = r.extensions(); err != nil {
		return AnimationSampler{}, err
	}
	s.Extras = r.extras()
	return s, nil
}

func encodeAnimationSampler(s *AnimationSampler, enc EncodeOptions) (Value, error) {
	w := newObjWriter(enc)
	if err := w.putIndex("input", s.Input); err != nil {
		return Value{}, err
	}
	if w.enc.EmitDefaults || s.Interpolation != InterpolationLinear {
		w.putString("interpolation", string(s.Interpolation))
	}
	if err := w.putIndex("output", s.Output); err != nil {
		return Value{}, err
	}
	w.putExtensions(s.Extensions)
	w.putExtras(s.Extras)
	return w.value(), nil
}
