package gltfdoc

import (
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// Field paths use the dotted/bracketed form reported in diagnostics, e.g.
// meshes[2].primitives[0].attributes.POSITION.

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// numberIsFloat reports whether a wire number literal belongs to the floating
// family. Fractions and exponents are floating; everything else is integral.
func numberIsFloat(n j.Number) bool {
	return strings.ContainsAny(string(n), ".eE")
}

func formatFloat(f float64) j.Number {
	return j.Number(strconv.FormatFloat(f, 'g', -1, 64))
}

func formatInt(v int64) j.Number {
	return j.Number(strconv.FormatInt(v, 10))
}

// objReader walks one JSON object node during decode, producing FieldErrors
// addressed relative to its path.
type objReader struct {
	obj  *Object
	path string
}

func newObjReader(v Value, path string) (objReader, error) {
	if v.Kind() != KindObject {
		return objReader{}, fieldErrf(path, CodeTypeMismatch, "expected object, got %s", v.Kind())
	}
	return objReader{obj: v.Object(), path: path}, nil
}

func (r objReader) at(key string) string { return joinPath(r.path, key) }

func (r objReader) value(key string) (Value, bool) {
	return r.obj.Get(key)
}

func (r objReader) require(key string) (Value, error) {
	v, ok := r.obj.Get(key)
	if !ok {
		return Value{}, fieldErrf(r.at(key), CodeMissingRequiredField, "required field is missing")
	}
	return v, nil
}

// ---- scalar extraction ----

func valueString(v Value, path string) (string, error) {
	if v.Kind() != KindString {
		return "", fieldErrf(path, CodeTypeMismatch, "expected string, got %s", v.Kind())
	}
	return v.String(), nil
}

func valueBool(v Value, path string) (bool, error) {
	if v.Kind() != KindBool {
		return false, fieldErrf(path, CodeTypeMismatch, "expected bool, got %s", v.Kind())
	}
	return v.Bool(), nil
}

func valueInt(v Value, path string) (int64, error) {
	if v.Kind() != KindNumber {
		return 0, fieldErrf(path, CodeTypeMismatch, "expected integer, got %s", v.Kind())
	}
	n := v.Number()
	if numberIsFloat(n) {
		return 0, fieldErrf(path, CodeTypeMismatch, "expected integer, got floating-point %s", n)
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fieldErrf(path, CodeTypeMismatch, "invalid integer %s", n)
	}
	return i, nil
}

func valueFloat(v Value, path string) (float64, error) {
	if v.Kind() != KindNumber {
		return 0, fieldErrf(path, CodeTypeMismatch, "expected number, got %s", v.Kind())
	}
	f, err := v.Number().Float64()
	if err != nil {
		return 0, fieldErrf(path, CodeTypeMismatch, "invalid number %s", v.Number())
	}
	return f, nil
}

func valueIndex(v Value, path string) (Index, error) {
	i, err := valueInt(v, path)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fieldErrf(path, CodeInvalidIndex, "index must be non-negative, got %d", i)
	}
	return Index(i), nil
}

// ---- optional / required field accessors ----

func (r objReader) optString(key string) (string, error) {
	v, ok := r.value(key)
	if !ok {
		return "", nil
	}
	return valueString(v, r.at(key))
}

func (r objReader) reqString(key string) (string, error) {
	v, err := r.require(key)
	if err != nil {
		return "", err
	}
	return valueString(v, r.at(key))
}

func (r objReader) boolOr(key string, def bool) (bool, error) {
	v, ok := r.value(key)
	if !ok {
		return def, nil
	}
	return valueBool(v, r.at(key))
}

func (r objReader) intOr(key string, def int64) (int64, error) {
	v, ok := r.value(key)
	if !ok {
		return def, nil
	}
	return valueInt(v, r.at(key))
}

func (r objReader) reqInt(key string) (int64, error) {
	v, err := r.require(key)
	if err != nil {
		return 0, err
	}
	return valueInt(v, r.at(key))
}

func (r objReader) optFloat(key string) (*float64, error) {
	v, ok := r.value(key)
	if !ok {
		return nil, nil
	}
	f, err := valueFloat(v, r.at(key))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r objReader) floatOr(key string, def float64) (float64, error) {
	v, ok := r.value(key)
	if !ok {
		return def, nil
	}
	return valueFloat(v, r.at(key))
}

func (r objReader) reqFloat(key string) (float64, error) {
	v, err := r.require(key)
	if err != nil {
		return 0, err
	}
	return valueFloat(v, r.at(key))
}

func (r objReader) optIndex(key string) (*Index, error) {
	v, ok := r.value(key)
	if !ok {
		return nil, nil
	}
	i, err := valueIndex(v, r.at(key))
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r objReader) reqIndex(key string) (Index, error) {
	v, err := r.require(key)
	if err != nil {
		return 0, err
	}
	return valueIndex(v, r.at(key))
}

// ---- array field accessors ----

func valueArray(v Value, path string) ([]Value, error) {
	if v.Kind() != KindArray {
		return nil, fieldErrf(path, CodeTypeMismatch, "expected array, got %s", v.Kind())
	}
	return v.Array(), nil
}

func (r objReader) optFloatSlice(key string) ([]float64, error) {
	v, ok := r.value(key)
	if !ok {
		return nil, nil
	}
	elems, err := valueArray(v, r.at(key))
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		f, err := valueFloat(e, indexPath(r.at(key), i))
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func (r objReader) optIndexSlice(key string) ([]Index, error) {
	v, ok := r.value(key)
	if !ok {
		return nil, nil
	}
	return decodeIndexSlice(v, r.at(key))
}

func (r objReader) reqIndexSlice(key string) ([]Index, error) {
	v, err := r.require(key)
	if err != nil {
		return nil, err
	}
	return decodeIndexSlice(v, r.at(key))
}

func decodeIndexSlice(v Value, path string) ([]Index, error) {
	elems, err := valueArray(v, path)
	if err != nil {
		return nil, err
	}
	out := make([]Index, len(elems))
	for i, e := range elems {
		idx, err := valueIndex(e, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

func (r objReader) optStringSlice(key string) ([]string, error) {
	v, ok := r.value(key)
	if !ok {
		return nil, nil
	}
	elems, err := valueArray(v, r.at(key))
	if err != nil {
		return nil, err
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		s, err := valueString(e, indexPath(r.at(key), i))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// attributeMap decodes a semantic-name -> accessor-index dictionary.
func attributeMap(v Value, path string) (map[string]Index, error) {
	if v.Kind() != KindObject {
		return nil, fieldErrf(path, CodeTypeMismatch, "expected object, got %s", v.Kind())
	}
	out := make(map[string]Index, v.Object().Len())
	for _, m := range v.Object().Members() {
		idx, err := valueIndex(m.Value, joinPath(path, m.Key))
		if err != nil {
			return nil, err
		}
		out[m.Key] = idx
	}
	return out, nil
}

// ---- extensions / extras ----

func (r objReader) extensions() (*Object, error) {
	v, ok := r.value("extensions")
	if !ok {
		return nil, nil
	}
	if v.Kind() != KindObject {
		return nil, fieldErrf(r.at("extensions"), CodeTypeMismatch, "expected object, got %s", v.Kind())
	}
	return v.Object(), nil
}

func (r objReader) extras() *Value {
	v, ok := r.value("extras")
	if !ok {
		return nil
	}
	return &v
}

// objWriter builds one JSON object node during encode. Writes happen in call
// order, which fixes the member order of the output.
type objWriter struct {
	obj *Object
	enc EncodeOptions
}

func newObjWriter(enc EncodeOptions) *objWriter {
	return &objWriter{obj: NewObject(), enc: enc}
}

func (w *objWriter) value() Value { return ObjectValue(w.obj) }

func (w *objWriter) putString(key, s string) {
	w.obj.Set(key, StringValue(s))
}

// putOptString omits empty strings, the unset form of optional string fields.
func (w *objWriter) putOptString(key, s string) {
	if s != "" {
		w.obj.Set(key, StringValue(s))
	}
}

func (w *objWriter) putBool(key string, b bool) {
	w.obj.Set(key, BoolValue(b))
}

func (w *objWriter) putBoolDefault(key string, b, def bool) {
	if w.enc.EmitDefaults || b != def {
		w.putBool(key, b)
	}
}

func (w *objWriter) putInt(key string, v int64) {
	w.obj.Set(key, NumberValue(formatInt(v)))
}

func (w *objWriter) putIntDefault(key string, v, def int64) {
	if w.enc.EmitDefaults || v != def {
		w.putInt(key, v)
	}
}

func (w *objWriter) putFloat(key string, f float64) {
	w.obj.Set(key, NumberValue(formatFloat(f)))
}

func (w *objWriter) putOptFloat(key string, f *float64) {
	if f != nil {
		w.putFloat(key, *f)
	}
}

func (w *objWriter) putFloatDefault(key string, f, def float64) {
	if w.enc.EmitDefaults || f != def {
		w.putFloat(key, f)
	}
}

func (w *objWriter) putIndex(key string, i Index) error {
	if i < 0 {
		return fieldErrf(key, CodeInvalidIndex, "index must be non-negative, got %d", i)
	}
	w.obj.Set(key, NumberValue(formatInt(int64(i))))
	return nil
}

func (w *objWriter) putOptIndex(key string, i *Index) error {
	if i == nil {
		return nil
	}
	return w.putIndex(key, *i)
}

func (w *objWriter) putFloats(key string, fs []float64) {
	if fs == nil {
		return
	}
	elems := make([]Value, len(fs))
	for i, f := range fs {
		elems[i] = NumberValue(formatFloat(f))
	}
	w.obj.Set(key, ArrayValue(elems))
}

// putFloatsDefault treats fs equal to def as the defaulted form.
func (w *objWriter) putFloatsDefault(key string, fs, def []float64) {
	if !w.enc.EmitDefaults && floatsEqual(fs, def) {
		return
	}
	w.putFloats(key, fs)
}

func (w *objWriter) putIndices(key string, is []Index) error {
	if is == nil {
		return nil
	}
	elems := make([]Value, len(is))
	for i, idx := range is {
		if idx < 0 {
			return fieldErrf(indexPath(key, i), CodeInvalidIndex, "index must be non-negative, got %d", idx)
		}
		elems[i] = NumberValue(formatInt(int64(idx)))
	}
	w.obj.Set(key, ArrayValue(elems))
	return nil
}

func (w *objWriter) putStrings(key string, ss []string) {
	if ss == nil {
		return
	}
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = StringValue(s)
	}
	w.obj.Set(key, ArrayValue(elems))
}

func (w *objWriter) putExtensions(o *Object) {
	if o.Len() > 0 {
		w.obj.Set("extensions", ObjectValue(o))
	}
}

func (w *objWriter) putExtras(v *Value) {
	if v != nil {
		w.obj.Set("extras", *v)
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
