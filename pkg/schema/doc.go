// Package schema models the typed API schema consumed by the translation generator.
//
// A schema is a Set of Units. Each unit carries a generated display name, an
// optional owning Package and a Shape describing its structural kind:
//
//	schema.Enum{Options: []string{"RED", "GREEN"}}     // closed choice
//	schema.OneOf{Properties: []string{"card", "iban"}} // tagged union
//	schema.Interface{Members: []string{"Dog", "Cat"}}  // polymorphic interface
//
// The Shape interface is sealed, so consumers dispatch with an exhaustive
// type switch (or Unit.Kind) instead of inspecting ad hoc fields.
//
// Schemas are normally produced by an upstream parser and handed over as a
// YAML or JSON document:
//
//	set, err := schema.LoadFile(os.DirFS("."), "schema.yaml")
package schema
