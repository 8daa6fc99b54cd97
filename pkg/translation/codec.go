package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a persisted resource file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName infers the format from a file name extension.
// Unknown extensions default to JSON.
func FormatFromName(name string) Format {
	// Case-insensitive: .YAML and .yml are both YAML
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes tree as an indented document. Mapping keys are emitted in
// sorted order, so equal trees always produce identical bytes.
func Encode(tree Tree, format Format) ([]byte, error) {
	if tree == nil {
		tree = Tree{}
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(tree)); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
	case FormatJSON, "":
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any(tree)); err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}

// Decode parses a persisted document. Blank input yields an empty tree.
// Syntax errors and non-object documents are reported as ErrMalformed.
func Decode(data []byte, format Format) (Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Tree{}, nil
	}

	var tree map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &tree)
	case FormatJSON, "":
		err = decodeJSON(data, &tree)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if tree == nil {
		return Tree{}, nil
	}
	return Tree(tree), nil
}

// decodeJSON keeps numbers as written, so large integers survive a rewrite.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// Read decodes and flattens persisted content.
func Read(data []byte, format Format) (Map, error) {
	tree, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Flatten(tree)
}

// Write rebuilds the nested tree from m and encodes it.
func Write(m Map, format Format) ([]byte, error) {
	tree, err := Unflatten(m)
	if err != nil {
		return nil, err
	}
	return Encode(tree, format)
}
