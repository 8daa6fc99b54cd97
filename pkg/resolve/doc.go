// Package resolve maps schema units to translation paths and candidate values.
//
// Every output file pairs a PathGetter with a Writer. The defaults place a
// unit under its kind and name and emit one title-cased value per member:
//
//	enum Color{RED, GREEN}  →  enum.Color.RED = "Red", enum.Color.GREEN = "Green"
//
// Both are pluggable per file. The Namespace variants serve the catch-all
// file of each language, which holds units not bound to any specific file.
package resolve
