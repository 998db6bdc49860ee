package gltfdoc

import "sort"

// Validate runs the cross-object invariant pass over an already-decoded
// Document: index bounds, extension declaration consistency, array-length
// constraints and enum consistency across object boundaries. The walk is
// read-only, never aborts, and returns every finding in document order.
// Findings are non-fatal; callers decide strictness (Findings.Err,
// Findings.HasErrors).
func Validate(doc *Document) Findings {
	v := &validator{doc: doc}
	v.document()
	return v.findings
}

type validator struct {
	doc      *Document
	findings Findings
}

func (v *validator) errf(path, code, format string, args ...any) {
	v.findings = appendFinding(v.findings, path, SeverityError, code, format, args...)
}

func (v *validator) warnf(path, code, format string, args ...any) {
	v.findings = appendFinding(v.findings, path, SeverityWarning, code, format, args...)
}

// index checks one Index against the length of its target array.
func (v *validator) index(path string, i Index, kind string, n int) {
	if i < 0 || int(i) >= n {
		v.errf(path, CodeIndexOutOfRange, "%s index %d out of range (length %d)", kind, i, n)
	}
}

func (v *validator) optIndex(path string, i *Index, kind string, n int) {
	if i != nil {
		v.index(path, *i, kind, n)
	}
}

func (v *validator) document() {
	d := v.doc
	v.extensionDeclarations()
	v.optIndex("scene", d.Scene, "scenes", len(d.Scenes))

	for i := range d.Scenes {
		base := indexPath("scenes", i)
		for j, n := range d.Scenes[i].Nodes {
			v.index(indexPath(joinPath(base, "nodes"), j), n, "nodes", len(d.Nodes))
		}
	}
	for i := range d.Nodes {
		v.node(indexPath("nodes", i), &d.Nodes[i])
	}
	for i := range d.Meshes {
		v.mesh(indexPath("meshes", i), &d.Meshes[i])
	}
	for i := range d.Accessors {
		v.accessor(indexPath("accessors", i), &d.Accessors[i])
	}
	for i := range d.BufferViews {
		v.bufferView(indexPath("bufferViews", i), &d.BufferViews[i])
	}
	for i := range d.Buffers {
		if d.Buffers[i].ByteLength < 1 {
			v.errf(joinPath(indexPath("buffers", i), "byteLength"), CodeConstraintViolation,
				"byteLength must be at least 1, got %d", d.Buffers[i].ByteLength)
		}
	}
	for i := range d.Images {
		v.image(indexPath("images", i), &d.Images[i])
	}
	for i := range d.Textures {
		base := indexPath("textures", i)
		v.optIndex(joinPath(base, "sampler"), d.Textures[i].Sampler, "samplers", len(d.Samplers))
		v.optIndex(joinPath(base, "source"), d.Textures[i].Source, "images", len(d.Images))
	}
	for i := range d.Materials {
		v.material(indexPath("materials", i), &d.Materials[i])
	}
	for i := range d.Cameras {
		v.camera(indexPath("cameras", i), &d.Cameras[i])
	}
	for i := range d.Skins {
		v.skin(indexPath("skins", i), &d.Skins[i])
	}
	for i := range d.Animations {
		v.animation(indexPath("animations", i), &d.Animations[i])
	}
}

func (v *validator) extensionDeclarations() {
	used := make(map[string]bool, len(v.doc.ExtensionsUsed))
	for _, name := range v.doc.ExtensionsUsed {
		used[name] = true
	}
	for i, name := range v.doc.ExtensionsRequired {
		if !used[name] {
			v.errf(indexPath("extensionsRequired", i), CodeInconsistentExtensionDeclaration,
				"required extension %q is not listed in extensionsUsed", name)
		}
	}
	seen := make(map[string]bool, len(v.doc.ExtensionsUsed))
	for i, name := range v.doc.ExtensionsUsed {
		if seen[name] {
			v.warnf(indexPath("extensionsUsed", i), CodeInconsistentExtensionDeclaration,
				"extension %q is declared more than once", name)
		}
		seen[name] = true
	}
}

func (v *validator) node(base string, n *Node) {
	d := v.doc
	v.optIndex(joinPath(base, "camera"), n.Camera, "cameras", len(d.Cameras))
	v.optIndex(joinPath(base, "skin"), n.Skin, "skins", len(d.Skins))
	v.optIndex(joinPath(base, "mesh"), n.Mesh, "meshes", len(d.Meshes))
	for j, c := range n.Children {
		v.index(indexPath(joinPath(base, "children"), j), c, "nodes", len(d.Nodes))
	}
	v.fixedLen(joinPath(base, "matrix"), n.Matrix, 16)
	v.fixedLen(joinPath(base, "rotation"), n.Rotation, 4)
	v.fixedLen(joinPath(base, "scale"), n.Scale, 3)
	v.fixedLen(joinPath(base, "translation"), n.Translation, 3)
	if n.Matrix != nil && (n.Rotation != nil || n.Scale != nil || n.Translation != nil) {
		v.errf(joinPath(base, "matrix"), CodeConstraintViolation,
			"matrix must not be combined with translation/rotation/scale")
	}
	if len(n.Weights) > 0 && n.Mesh != nil && int(*n.Mesh) < len(d.Meshes) && *n.Mesh >= 0 {
		mesh := &d.Meshes[*n.Mesh]
		if len(mesh.Primitives) > 0 {
			if targets := len(mesh.Primitives[0].Targets); targets != len(n.Weights) {
				v.errf(joinPath(base, "weights"), CodeConstraintViolation,
					"weights count %d does not match mesh morph target count %d", len(n.Weights), targets)
			}
		}
	}
}

// fixedLen flags a present array whose length differs from want.
func (v *validator) fixedLen(path string, vals []float64, want int) {
	if vals != nil && len(vals) != want {
		v.errf(path, CodeConstraintViolation, "expected %d elements, got %d", want, len(vals))
	}
}

func (v *validator) mesh(base string, m *Mesh) {
	d := v.doc
	if len(m.Primitives) == 0 {
		v.errf(joinPath(base, "primitives"), CodeConstraintViolation, "mesh must have at least one primitive")
	}
	for i := range m.Primitives {
		p := &m.Primitives[i]
		pbase := indexPath(joinPath(base, "primitives"), i)
		if len(p.Attributes) == 0 {
			v.errf(joinPath(pbase, "attributes"), CodeConstraintViolation, "primitive must have at least one attribute")
		}
		for _, sem := range sortedAttributeKeys(p.Attributes) {
			v.index(joinPath(joinPath(pbase, "attributes"), sem), p.Attributes[sem], "accessors", len(d.Accessors))
		}
		v.optIndex(joinPath(pbase, "indices"), p.Indices, "accessors", len(d.Accessors))
		v.optIndex(joinPath(pbase, "material"), p.Material, "materials", len(d.Materials))
		for j, target := range p.Targets {
			tbase := indexPath(joinPath(pbase, "targets"), j)
			for _, sem := range sortedAttributeKeys(target) {
				v.index(joinPath(tbase, sem), target[sem], "accessors", len(d.Accessors))
			}
		}
	}
	if len(m.Weights) > 0 && len(m.Primitives) > 0 {
		if targets := len(m.Primitives[0].Targets); targets != len(m.Weights) {
			v.errf(joinPath(base, "weights"), CodeConstraintViolation,
				"weights count %d does not match morph target count %d", len(m.Weights), targets)
		}
	}
}

func (v *validator) accessor(base string, a *Accessor) {
	d := v.doc
	v.optIndex(joinPath(base, "bufferView"), a.BufferView, "bufferViews", len(d.BufferViews))
	if a.Count < 1 {
		v.errf(joinPath(base, "count"), CodeConstraintViolation, "count must be at least 1, got %d", a.Count)
	}
	if comps := a.Type.Components(); comps > 0 {
		if a.Max != nil && len(a.Max) != comps {
			v.errf(joinPath(base, "max"), CodeConstraintViolation,
				"max length %d does not match %s component count %d", len(a.Max), a.Type, comps)
		}
		if a.Min != nil && len(a.Min) != comps {
			v.errf(joinPath(base, "min"), CodeConstraintViolation,
				"min length %d does not match %s component count %d", len(a.Min), a.Type, comps)
		}
	}
	if s := a.Sparse; s != nil {
		sbase := joinPath(base, "sparse")
		if s.Count < 1 {
			v.errf(joinPath(sbase, "count"), CodeConstraintViolation, "count must be at least 1, got %d", s.Count)
		}
		v.index(joinPath(sbase, "indices.bufferView"), s.Indices.BufferView, "bufferViews", len(d.BufferViews))
		v.index(joinPath(sbase, "values.bufferView"), s.Values.BufferView, "bufferViews", len(d.BufferViews))
		v.sparseViewTarget(joinPath(sbase, "indices.bufferView"), s.Indices.BufferView)
		v.sparseViewTarget(joinPath(sbase, "values.bufferView"), s.Values.BufferView)
	}
}

// sparseViewTarget flags sparse storage referencing a bufferView with a GPU
// binding target, which the format forbids.
func (v *validator) sparseViewTarget(path string, i Index) {
	if i < 0 || int(i) >= len(v.doc.BufferViews) {
		return
	}
	if bv := &v.doc.BufferViews[i]; bv.Target != nil {
		v.errf(path, CodeConstraintViolation,
			"sparse storage must not reference a bufferView with target %d", *bv.Target)
	}
}

func (v *validator) bufferView(base string, bv *BufferView) {
	v.index(joinPath(base, "buffer"), bv.Buffer, "buffers", len(v.doc.Buffers))
	if bv.ByteLength < 1 {
		v.errf(joinPath(base, "byteLength"), CodeConstraintViolation,
			"byteLength must be at least 1, got %d", bv.ByteLength)
	}
	if s := bv.ByteStride; s != nil {
		if *s < 4 || *s > 252 || *s%4 != 0 {
			v.errf(joinPath(base, "byteStride"), CodeConstraintViolation,
				"byteStride must be a multiple of 4 in [4, 252], got %d", *s)
		}
	}
	if int(bv.Buffer) < len(v.doc.Buffers) && bv.Buffer >= 0 {
		buf := &v.doc.Buffers[bv.Buffer]
		if bv.ByteOffset+bv.ByteLength > buf.ByteLength {
			v.errf(joinPath(base, "byteLength"), CodeConstraintViolation,
				"view [%d, %d) exceeds buffer length %d", bv.ByteOffset, bv.ByteOffset+bv.ByteLength, buf.ByteLength)
		}
	}
}

func (v *validator) image(base string, img *Image) {
	v.optIndex(joinPath(base, "bufferView"), img.BufferView, "bufferViews", len(v.doc.BufferViews))
	if img.BufferView != nil && img.MimeType == nil {
		v.errf(joinPath(base, "mimeType"), CodeConstraintViolation,
			"mimeType is required when bufferView is defined")
	}
}

func (v *validator) material(base string, m *Material) {
	n := len(v.doc.Textures)
	if p := m.PBRMetallicRoughness; p != nil {
		pbase := joinPath(base, "pbrMetallicRoughness")
		if p.BaseColorFactor != nil && len(p.BaseColorFactor) != 4 {
			v.errf(joinPath(pbase, "baseColorFactor"), CodeConstraintViolation,
				"expected 4 elements, got %d", len(p.BaseColorFactor))
		}
		if p.BaseColorTexture != nil {
			v.index(joinPath(pbase, "baseColorTexture.index"), p.BaseColorTexture.Index, "textures", n)
		}
		if p.MetallicRoughnessTexture != nil {
			v.index(joinPath(pbase, "metallicRoughnessTexture.index"), p.MetallicRoughnessTexture.Index, "textures", n)
		}
	}
	if m.NormalTexture != nil {
		v.index(joinPath(base, "normalTexture.index"), m.NormalTexture.Index, "textures", n)
	}
	if m.OcclusionTexture != nil {
		v.index(joinPath(base, "occlusionTexture.index"), m.OcclusionTexture.Index, "textures", n)
	}
	if m.EmissiveTexture != nil {
		v.index(joinPath(base, "emissiveTexture.index"), m.EmissiveTexture.Index, "textures", n)
	}
	if m.EmissiveFactor != nil && len(m.EmissiveFactor) != 3 {
		v.errf(joinPath(base, "emissiveFactor"), CodeConstraintViolation,
			"expected 3 elements, got %d", len(m.EmissiveFactor))
	}
	if m.AlphaMode != AlphaMask && m.AlphaCutoff != 0.5 {
		v.warnf(joinPath(base, "alphaCutoff"), CodeConstraintViolation,
			"alphaCutoff has no effect when alphaMode is %s", m.AlphaMode)
	}
}

func (v *validator) camera(base string, c *Camera) {
	switch c.Type {
	case CameraPerspectiveType:
		if c.Perspective == nil {
			v.errf(joinPath(base, "perspective"), CodeConstraintViolation,
				"camera type is perspective but perspective properties are missing")
		}
	case CameraOrthographicType:
		if c.Orthographic == nil {
			v.errf(joinPath(base, "orthographic"), CodeConstraintViolation,
				"camera type is orthographic but orthographic properties are missing")
		}
	}
}

func (v *validator) skin(base string, s *Skin) {
	d := v.doc
	v.optIndex(joinPath(base, "inverseBindMatrices"), s.InverseBindMatrices, "accessors", len(d.Accessors))
	v.optIndex(joinPath(base, "skeleton"), s.Skeleton, "nodes", len(d.Nodes))
	if len(s.Joints) == 0 {
		v.errf(joinPath(base, "joints"), CodeConstraintViolation, "skin must have at least one joint")
	}
	for j, joint := range s.Joints {
		v.index(indexPath(joinPath(base, "joints"), j), joint, "nodes", len(d.Nodes))
	}
	if s.InverseBindMatrices != nil && int(*s.InverseBindMatrices) < len(d.Accessors) && *s.InverseBindMatrices >= 0 {
		acc := &d.Accessors[*s.InverseBindMatrices]
		if acc.Type != AccessorMat4 || acc.ComponentType != ComponentFloat {
			v.errf(joinPath(base, "inverseBindMatrices"), CodeConstraintViolation,
				"inverse bind matrices accessor must be MAT4 of FLOAT, got %s of %s", acc.Type, acc.ComponentType)
		}
	}
}

func (v *validator) animation(base string, a *Animation) {
	d := v.doc
	if len(a.Channels) == 0 {
		v.errf(joinPath(base, "channels"), CodeConstraintViolation, "animation must have at least one channel")
	}
	if len(a.Samplers) == 0 {
		v.errf(joinPath(base, "samplers"), CodeConstraintViolation, "animation must have at least one sampler")
	}
	for i := range a.Samplers {
		s := &a.Samplers[i]
		sbase := indexPath(joinPath(base, "samplers"), i)
		v.index(joinPath(sbase, "input"), s.Input, "accessors", len(d.Accessors))
		v.index(joinPath(sbase, "output"), s.Output, "accessors", len(d.Accessors))
		if int(s.Input) < len(d.Accessors) && s.Input >= 0 {
			in := &d.Accessors[s.Input]
			if in.Type != AccessorScalar || in.ComponentType != ComponentFloat {
				v.errf(joinPath(sbase, "input"), CodeConstraintViolation,
					"keyframe input accessor must be SCALAR of FLOAT, got %s of %s", in.Type, in.ComponentType)
			}
			if s.Interpolation == InterpolationCubicSpline && in.Count < 2 {
				v.errf(joinPath(sbase, "input"), CodeConstraintViolation,
					"CUBICSPLINE interpolation requires at least 2 keyframes, got %d", in.Count)
			}
		}
	}
	for i := range a.Channels {
		ch := &a.Channels[i]
		cbase := indexPath(joinPath(base, "channels"), i)
		v.index(joinPath(cbase, "sampler"), ch.Sampler, "animation samplers", len(a.Samplers))
		v.optIndex(joinPath(cbase, "target.node"), ch.Target.Node, "nodes", len(d.Nodes))
		if int(ch.Sampler) < len(a.Samplers) && ch.Sampler >= 0 {
			v.channelOutputType(cbase, ch, &a.Samplers[ch.Sampler])
		}
	}
}

// channelOutputType checks that a channel's target path agrees with the
// element type of its sampler's output accessor.
func (v *validator) channelOutputType(cbase string, ch *AnimationChannel, s *AnimationSampler) {
	if int(s.Output) >= len(v.doc.Accessors) || s.Output < 0 {
		return
	}
	out := &v.doc.Accessors[s.Output]
	var want AccessorType
	switch ch.Target.Path {
	case PathTranslation, PathScale:
		want = AccessorVec3
	case PathRotation:
		want = AccessorVec4
	case PathWeights:
		want = AccessorScalar
	default:
		return
	}
	if out.Type != want {
		v.errf(joinPath(cbase, "target.path"), CodeConstraintViolation,
			"path %q expects %s output, sampler output accessor is %s", ch.Target.Path, want, out.Type)
	}
}

func sortedAttributeKeys(attrs map[string]Index) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	// document order is lost in the map; sort for stable finding order
	sort.Strings(keys)
	return keys
}
