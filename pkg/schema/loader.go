package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk schema format produced by the upstream schema parser.
//
//	units:
//	  - id: "#/components/schemas/Color"
//	    name: Color
//	    kind: enum
//	    package: { name: models, path: ./models }
//	    options: [RED, GREEN]
type document struct {
	Units []unitDoc `json:"units" yaml:"units"`
}

type unitDoc struct {
	Package    *Package `json:"package,omitempty" yaml:"package,omitempty"`
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Kind       string   `json:"kind" yaml:"kind"`
	Options    []string `json:"options,omitempty" yaml:"options,omitempty"`
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Members    []string `json:"members,omitempty" yaml:"members,omitempty"`
	Unassigned bool     `json:"unassigned,omitempty" yaml:"unassigned,omitempty"`
}

// Load parses a schema document. ext selects the decoder
// (".json", or ".yaml"/".yml"); anything else is treated as YAML.
func Load(data []byte, ext string) (*Set, error) {
	var doc document
	var err error
	if strings.EqualFold(ext, ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	set := NewSet()
	for i, ud := range doc.Units {
		u, err := ud.unit()
		if err != nil {
			return nil, fmt.Errorf("unit #%d (%s): %w", i, ud.Name, err)
		}
		if _, exists := set.Get(u.ID); exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUnit, u.ID)
		}
		set.Add(u)
	}
	return set, nil
}

// LoadFile reads and parses a schema document from fsys.
func LoadFile(fsys fs.FS, name string) (*Set, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return Load(data, path.Ext(name))
}

func (d unitDoc) unit() (Unit, error) {
	if d.Name == "" {
		return Unit{}, fmt.Errorf("%w: unit name is required", ErrInvalidDocument)
	}
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: %q", err, d.Kind)
	}

	u := Unit{
		ID:         d.ID,
		Name:       d.Name,
		Package:    d.Package,
		Unassigned: d.Unassigned,
	}
	switch kind {
	case KindEnum:
		u.Shape = Enum{Options: d.Options}
	case KindOneOf:
		u.Shape = OneOf{Properties: d.Properties}
	case KindInterface:
		u.Shape = Interface{Members: d.Members}
	case KindNone:
	}
	if slices.Contains(u.Members(), "") {
		return Unit{}, fmt.Errorf("%w: %s has an empty member name", ErrInvalidDocument, d.Name)
	}
	if u.ID == "" {
		u.ID = u.QualifiedName()
	}
	return u, nil
}
