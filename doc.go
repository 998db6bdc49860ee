// Package gltfdoc provides:
//
// - A strongly-typed in-memory model of a glTF 2.0 document (Document and its
//   object kinds, cross-referenced by Index values into flat top-level arrays)
// - A lossless JSON codec (Unmarshal/Marshal) with a stable error model via
//   FieldError (field path, code, message)
// - A non-fatal cross-object Validator producing Findings (index bounds,
//   extension declarations, array-length and enum-consistency constraints)
// - GLB binary container framing (ParseGLB/EncodeGLB)
//
// Design policy:
// - Keep only public APIs in the root package; put the JSON token layer under
//   internal/jsontoken and the CLI under cmd/gltfdoc.
// - The codec is purely structural: index ranges and length constraints are the
//   Validator's job, so a structurally well-formed file always decodes.
// - Unknown extensions and extras round-trip verbatim, member order included.
//
// Typical usage:
//
//	doc, err := gltfdoc.Unmarshal(data)
//	if findings := gltfdoc.Validate(doc); findings.HasErrors() { ... }
//
//	out, err := gltfdoc.Marshal(doc, gltfdoc.EncodeOptions{EmitDefaults: true})
package gltfdoc
