// Package translation converts resource files between their nested and flat forms.
//
// A resource file is a nested object whose leaves are strings. Internally it
// is handled as a flat Map keyed by dot-separated paths:
//
//	{"enum": {"Color": {"RED": "Red"}}}  ⇄  enum.Color.RED = "Red"
//
// Flatten and Unflatten convert between the two. Both reject ambiguous
// trees, where one path would be a leaf and a parent at the same time, with
// ErrPathCollision instead of silently overwriting a value.
//
// Encode and Decode handle the persisted JSON and YAML formats. Keys are
// always emitted in sorted order, so writing the same Map twice yields
// byte-identical files regardless of insertion order.
package translation
