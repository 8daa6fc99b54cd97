package translation

import (
	"fmt"
	"slices"
	"strings"
)

// Tree is the nested form of a resource file. Leaves are strings and
// internal nodes are map[string]any.
type Tree map[string]any

// Flatten walks tree depth-first and returns one Translation per leaf.
// A node is a leaf unless it is a mapping. Non-string scalars are rendered
// with fmt.Sprint and null leaves become empty strings.
//
// Flatten rejects trees where a path is produced twice (through dotted keys)
// or where a leaf path is a strict prefix of another path, and keys with an
// empty segment ("a.", ".a", "a..b") with ErrInvalidPath.
func Flatten(tree Tree) (Map, error) {
	out := make(Map)
	if err := flattenInto(out, map[string]any(tree), ""); err != nil {
		return nil, err
	}
	if err := checkPrefixes(out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out Map, node map[string]any, prefix string) error {
	for key, value := range node {
		if slices.Contains(strings.Split(key, Separator), "") {
			return fmt.Errorf("%w: empty segment in %q under %q", ErrInvalidPath, key, prefix)
		}
		fullKey := key
		if prefix != "" {
			fullKey = prefix + Separator + key
		}

		var err error
		switch v := value.(type) {
		case map[string]any:
			err = flattenInto(out, v, fullKey)
		case Tree:
			err = flattenInto(out, v, fullKey)
		case map[string]string:
			nested := make(map[string]any, len(v))
			for k, s := range v {
				nested[k] = s
			}
			err = flattenInto(out, nested, fullKey)
		case map[any]any:
			nested := make(map[string]any, len(v))
			for k, s := range v {
				nested[fmt.Sprint(k)] = s
			}
			err = flattenInto(out, nested, fullKey)
		default:
			err = addLeaf(out, fullKey, leafValue(v))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func addLeaf(out Map, key, value string) error {
	if _, exists := out[key]; exists {
		return fmt.Errorf("%w: %q is defined twice", ErrPathCollision, key)
	}
	out[key] = Translation{Key: key, Value: value}
	return nil
}

func leafValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// checkPrefixes reports a collision when one path is a strict prefix of another.
func checkPrefixes(m Map) error {
	for key := range m {
		for i := range len(key) {
			if key[i] != Separator[0] {
				continue
			}
			if _, exists := m[key[:i]]; exists {
				return fmt.Errorf("%w: %q is both a leaf and a parent of %q", ErrPathCollision, key[:i], key)
			}
		}
	}
	return nil
}

// Unflatten rebuilds the nested tree from flat paths. Paths are processed
// in ascending order; shared prefixes reuse the same node. A path that is
// both a leaf and an internal node fails with ErrPathCollision.
func Unflatten(m Map) (Tree, error) {
	root := Tree{}
	for _, key := range Keys(m) {
		if err := setPath(root, key, m[key].Value); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func setPath(root Tree, key, value string) error {
	segments := strings.Split(key, Separator)
	node := map[string]any(root)

	for i, seg := range segments {
		if seg == "" {
			return fmt.Errorf("%w: %q", ErrInvalidPath, key)
		}
		last := i == len(segments)-1
		existing, exists := node[seg]

		if last {
			if exists {
				return fmt.Errorf("%w: %q is already a parent node", ErrPathCollision, key)
			}
			node[seg] = value
			return nil
		}

		if !exists {
			child := map[string]any{}
			node[seg] = child
			node = child
			continue
		}

		child, ok := existing.(map[string]any)
		if !ok {
			parent := strings.Join(segments[:i+1], Separator)
			return fmt.Errorf("%w: %q is a leaf and cannot hold %q", ErrPathCollision, parent, key)
		}
		node = child
	}
	return nil
}
