package gltfdoc

import "fmt"

// Index references a position in one of a Document's top-level arrays. The
// codec only checks that indices are non-negative; whether an Index actually
// dereferences within bounds is the Validator's concern, and the only runtime
// dereference point is the Document's bounds-checked accessors below.
type Index int64

// Document is the aggregate root mirroring one glTF JSON file. A nil slice
// means the corresponding array was absent from the wire form; objects
// reference each other exclusively through Index values into these slices.
type Document struct {
	Asset              Asset
	ExtensionsUsed     []string
	ExtensionsRequired []string

	Accessors   []Accessor
	Animations  []Animation
	Buffers     []Buffer
	BufferViews []BufferView
	Cameras     []Camera
	Images      []Image
	Materials   []Material
	Meshes      []Mesh
	Nodes       []Node
	Samplers    []Sampler
	Scenes      []Scene
	Skins       []Skin
	Textures    []Texture

	// Scene is the index of the default scene; nil when the asset does not
	// designate one.
	Scene *Index

	Extensions *Object
	Extras     *Value
}

func deref[T any](kind string, s []T, i Index) (*T, error) {
	if i < 0 || int64(i) >= int64(len(s)) {
		return nil, fmt.Errorf("%w: %s[%d] with length %d", ErrIndexOutOfRange, kind, i, len(s))
	}
	return &s[i], nil
}

// GetAccessor returns accessors[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetAccessor(i Index) (*Accessor, error) {
	return deref("accessors", d.Accessors, i)
}

// GetAnimation returns animations[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetAnimation(i Index) (*Animation, error) {
	return deref("animations", d.Animations, i)
}

// GetBuffer returns buffers[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetBuffer(i Index) (*Buffer, error) {
	return deref("buffers", d.Buffers, i)
}

// GetBufferView returns bufferViews[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetBufferView(i Index) (*BufferView, error) {
	return deref("bufferViews", d.BufferViews, i)
}

// GetCamera returns cameras[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetCamera(i Index) (*Camera, error) {
	return deref("cameras", d.Cameras, i)
}

// GetImage returns images[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetImage(i Index) (*Image, error) {
	return deref("images", d.Images, i)
}

// GetMaterial returns materials[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetMaterial(i Index) (*Material, error) {
	return deref("materials", d.Materials, i)
}

// GetMesh returns meshes[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetMesh(i Index) (*Mesh, error) {
	return deref("meshes", d.Meshes, i)
}

// GetNode returns nodes[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetNode(i Index) (*Node, error) {
	return deref("nodes", d.Nodes, i)
}

// GetSampler returns samplers[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetSampler(i Index) (*Sampler, error) {
	return deref("samplers", d.Samplers, i)
}

// GetScene returns scenes[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetScene(i Index) (*Scene, error) {
	return deref("scenes", d.Scenes, i)
}

// GetSkin returns skins[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetSkin(i Index) (*Skin, error) {
	return deref("skins", d.Skins, i)
}

// GetTexture returns textures[i], or an error wrapping ErrIndexOutOfRange.
func (d *Document) GetTexture(i Index) (*Texture, error) {
	return deref("textures", d.Textures, i)
}

// DefaultScene resolves the default scene when one is designated.
func (d *Document) DefaultScene() (*Scene, error) {
	if d.Scene == nil {
		return nil, nil
	}
	return d.GetScene(*d.Scene)
}
