package schema

import "strings"

// Kind identifies the structural kind of a schema unit.
type Kind int

const (
	// KindNone marks a unit without a translatable shape.
	KindNone Kind = iota
	// KindEnum is a closed choice of named options.
	KindEnum
	// KindOneOf is a tagged union of named properties.
	KindOneOf
	// KindInterface is a polymorphic interface with named member types.
	KindInterface
)

// String returns the lower-camel name used in config files and paths.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindOneOf:
		return "oneOf"
	case KindInterface:
		return "interface"
	default:
		return "none"
	}
}

// ParseKind converts a kind name back to a Kind.
// Matching is case-insensitive; "one_of" and "one-of" are accepted as aliases of "oneOf".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(s)) {
	case "enum":
		return KindEnum, nil
	case "oneof":
		return KindOneOf, nil
	case "interface":
		return KindInterface, nil
	case "none", "":
		return KindNone, nil
	}
	return KindNone, ErrUnknownKind
}

// Shape is the kind-specific part of a schema unit.
// The set of implementations is closed: Enum, OneOf and Interface.
type Shape interface {
	shape()
}

// Enum is a closed-choice unit.
type Enum struct {
	Options []string
}

// OneOf is a tagged-union unit.
type OneOf struct {
	Properties []string
}

// Interface is a polymorphic-interface unit.
type Interface struct {
	Members []string
}

func (Enum) shape()      {}
func (OneOf) shape()     {}
func (Interface) shape() {}

// Package describes the generated package owning a unit.
type Package struct {
	Name string
	Path string
}

// Unit is one named, structurally typed element of the API schema.
type Unit struct {
	// Shape is nil for units without a translatable kind.
	Shape   Shape
	Package *Package
	ID      string
	Name    string
	// Unassigned marks units not bound to any specific generated file.
	Unassigned bool
}

// Kind reports the structural kind of the unit.
func (u Unit) Kind() Kind {
	switch u.Shape.(type) {
	case Enum, *Enum:
		return KindEnum
	case OneOf, *OneOf:
		return KindOneOf
	case Interface, *Interface:
		return KindInterface
	default:
		return KindNone
	}
}

// Members returns the member names of the unit: enum options,
// one-of property names or interface member identifiers.
func (u Unit) Members() []string {
	switch s := u.Shape.(type) {
	case Enum:
		return s.Options
	case *Enum:
		return s.Options
	case OneOf:
		return s.Properties
	case *OneOf:
		return s.Properties
	case Interface:
		return s.Members
	case *Interface:
		return s.Members
	default:
		return nil
	}
}

// QualifiedName returns "<package>.<name>" when the unit has an owning package.
func (u Unit) QualifiedName() string {
	if u.Package == nil || u.Package.Name == "" {
		return u.Name
	}
	return u.Package.Name + "." + u.Name
}
