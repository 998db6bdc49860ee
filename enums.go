package gltfdoc

// The enum types below mirror the closed value sets of the glTF 2.0
// specification. Integer-backed enums carry their GL constants directly so a
// decoded value compares against the wire form without a translation table;
// string-backed enums carry the wire spelling. Valid reports membership and
// the codec rejects anything outside the set with unknown_enum_value.

// ComponentType is the datatype of components in an accessor.
type ComponentType int64

const (
	ComponentByte          ComponentType = 5120
	ComponentUnsignedByte  ComponentType = 5121
	ComponentShort         ComponentType = 5122
	ComponentUnsignedShort ComponentType = 5123
	ComponentUnsignedInt   ComponentType = 5125
	ComponentFloat         ComponentType = 5126
)

func (c ComponentType) Valid() bool {
	switch c {
	case ComponentByte, ComponentUnsignedByte, ComponentShort,
		ComponentUnsignedShort, ComponentUnsignedInt, ComponentFloat:
		return true
	}
	return false
}

// ByteSize reports the width of one component in bytes, 0 when invalid.
func (c ComponentType) ByteSize() int64 {
	switch c {
	case ComponentByte, ComponentUnsignedByte:
		return 1
	case ComponentShort, ComponentUnsignedShort:
		return 2
	case ComponentUnsignedInt, ComponentFloat:
		return 4
	}
	return 0
}

func (c ComponentType) String() string {
	switch c {
	case ComponentByte:
		return "BYTE"
	case ComponentUnsignedByte:
		return "UNSIGNED_BYTE"
	case ComponentShort:
		return "SHORT"
	case ComponentUnsignedShort:
		return "UNSIGNED_SHORT"
	case ComponentUnsignedInt:
		return "UNSIGNED_INT"
	case ComponentFloat:
		return "FLOAT"
	}
	return "UNKNOWN"
}

// AccessorType states whether an accessor yields scalars, vectors or matrices.
type AccessorType string

const (
	AccessorScalar AccessorType = "SCALAR"
	AccessorVec2   AccessorType = "VEC2"
	AccessorVec3   AccessorType = "VEC3"
	AccessorVec4   AccessorType = "VEC4"
	AccessorMat2   AccessorType = "MAT2"
	AccessorMat3   AccessorType = "MAT3"
	AccessorMat4   AccessorType = "MAT4"
)

func (t AccessorType) Valid() bool { return t.Components() != 0 }

// Components reports the component count per element, 0 when invalid.
func (t AccessorType) Components() int {
	switch t {
	case AccessorScalar:
		return 1
	case AccessorVec2:
		return 2
	case AccessorVec3:
		return 3
	case AccessorVec4:
		return 4
	case AccessorMat2:
		return 4
	case AccessorMat3:
		return 9
	case AccessorMat4:
		return 16
	}
	return 0
}

// SparseIndicesType is the unsigned subset of ComponentType legal for sparse
// accessor indices.
type SparseIndicesType int64

const (
	SparseIndicesUnsignedByte  SparseIndicesType = 5121
	SparseIndicesUnsignedShort SparseIndicesType = 5123
	SparseIndicesUnsignedInt   SparseIndicesType = 5125
)

func (t SparseIndicesType) Valid() bool {
	switch t {
	case SparseIndicesUnsignedByte, SparseIndicesUnsignedShort, SparseIndicesUnsignedInt:
		return true
	}
	return false
}

// PrimitiveMode is the topology a mesh primitive renders with.
type PrimitiveMode int64

const (
	ModePoints        PrimitiveMode = 0
	ModeLines         PrimitiveMode = 1
	ModeLineLoop      PrimitiveMode = 2
	ModeLineStrip     PrimitiveMode = 3
	ModeTriangles     PrimitiveMode = 4
	ModeTriangleStrip PrimitiveMode = 5
	ModeTriangleFan   PrimitiveMode = 6
)

func (m PrimitiveMode) Valid() bool { return m >= ModePoints && m <= ModeTriangleFan }

// MagFilter is a sampler magnification filter.
type MagFilter int64

const (
	MagNearest MagFilter = 9728
	MagLinear  MagFilter = 9729
)

func (f MagFilter) Valid() bool { return f == MagNearest || f == MagLinear }

// MinFilter is a sampler minification filter.
type MinFilter int64

const (
	MinNearest              MinFilter = 9728
	MinLinear               MinFilter = 9729
	MinNearestMipmapNearest MinFilter = 9984
	MinLinearMipmapNearest  MinFilter = 9985
	MinNearestMipmapLinear  MinFilter = 9986
	MinLinearMipmapLinear   MinFilter = 9987
)

func (f MinFilter) Valid() bool {
	switch f {
	case MinNearest, MinLinear, MinNearestMipmapNearest,
		MinLinearMipmapNearest, MinNearestMipmapLinear, MinLinearMipmapLinear:
		return true
	}
	return false
}

// WrapMode is a sampler texture wrapping mode. The format default is Repeat.
type WrapMode int64

const (
	WrapClampToEdge    WrapMode = 33071
	WrapMirroredRepeat WrapMode = 33648
	WrapRepeat         WrapMode = 10497
)

func (w WrapMode) Valid() bool {
	switch w {
	case WrapClampToEdge, WrapMirroredRepeat, WrapRepeat:
		return true
	}
	return false
}

// BufferViewTarget is the GPU binding target hint of a bufferView.
type BufferViewTarget int64

const (
	TargetArrayBuffer        BufferViewTarget = 34962
	TargetElementArrayBuffer BufferViewTarget = 34963
)

func (t BufferViewTarget) Valid() bool {
	return t == TargetArrayBuffer || t == TargetElementArrayBuffer
}

// AlphaMode is a material's alpha rendering mode. The format default is Opaque.
type AlphaMode string

const (
	AlphaOpaque AlphaMode = "OPAQUE"
	AlphaMask   AlphaMode = "MASK"
	AlphaBlend  AlphaMode = "BLEND"
)

func (m AlphaMode) Valid() bool {
	return m == AlphaOpaque || m == AlphaMask || m == AlphaBlend
}

// CameraType selects between the two projection kinds.
type CameraType string

const (
	CameraPerspectiveType  CameraType = "perspective"
	CameraOrthographicType CameraType = "orthographic"
)

func (t CameraType) Valid() bool {
	return t == CameraPerspectiveType || t == CameraOrthographicType
}

// Interpolation is an animation sampler's keyframe interpolation algorithm.
// The format default is Linear.
type Interpolation string

const (
	InterpolationLinear      Interpolation = "LINEAR"
	InterpolationStep        Interpolation = "STEP"
	InterpolationCubicSpline Interpolation = "CUBICSPLINE"
)

func (i Interpolation) Valid() bool {
	return i == InterpolationLinear || i == InterpolationStep || i == InterpolationCubicSpline
}

// TargetPath names the node property an animation channel drives.
type TargetPath string

const (
	PathTranslation TargetPath = "translation"
	PathRotation    TargetPath = "rotation"
	PathScale       TargetPath = "scale"
	PathWeights     TargetPath = "weights"
)

func (p TargetPath) Valid() bool {
	switch p {
	case PathTranslation, PathRotation, PathScale, PathWeights:
		return true
	}
	return false
}

// MimeType is an embedded image's media type.
type MimeType string

const (
	MimeJPEG MimeType = "image/jpeg"
	MimePNG  MimeType = "image/png"
)

func (m MimeType) Valid() bool { return m == MimeJPEG || m == MimePNG }
