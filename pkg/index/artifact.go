package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

// DefaultRuntime is the localization runtime imported by the index.
const DefaultRuntime = "i18next"

// Import is a module import. Default imports render as
// `import Name from 'From'`, named ones as `import { Name } from 'From'`.
type Import struct {
	Name    string `yaml:"name"`
	From    string `yaml:"from"`
	Default bool   `yaml:"default"`
}

// Config configures the index file.
type Config struct {
	// Path is the storage name of the index file, e.g. "src/i18n.ts".
	Path string
	// Runtime is the runtime module specifier. Default: "i18next".
	Runtime string
	// Static holds resources the caller maintains by hand.
	Static Table
	// Imports are extra imports needed by static resource expressions.
	Imports []Import
	// Middlewares are registered with .use() in order.
	Middlewares []Import
	// InitOptions is passed through to the init call.
	InitOptions map[string]any
	// DefaultNamespace is injected as "defaultNS" into the init options
	// when not empty.
	DefaultNamespace string
}

// Artifact is the assembled index, ready to render.
type Artifact struct {
	Runtime     string
	Imports     []Import
	Resources   []Import
	Middlewares []Import
	Table       Table
	// Options is the JSON encoded init options, empty when there are none.
	Options string
}

// Assemble builds the artifact for the generated files.
// Resource imports are relative to the directory of cfg.Path.
func Assemble(cfg Config, files []File) (Artifact, error) {
	if cfg.Path == "" {
		return Artifact{}, ErrMissingPath
	}
	runtime := cfg.Runtime
	if runtime == "" {
		runtime = DefaultRuntime
	}

	a := Artifact{
		Runtime:     runtime,
		Imports:     slices.Clone(cfg.Imports),
		Middlewares: slices.Clone(cfg.Middlewares),
		Table:       Build(files, cfg.Static),
	}
	for _, m := range slices.Concat(a.Imports, a.Middlewares) {
		if !isIdentifier(m.Name) || m.From == "" {
			return Artifact{}, fmt.Errorf("%w: %q from %q", ErrInvalidImport, m.Name, m.From)
		}
	}

	seen := make(map[string]string, len(files))
	for _, f := range files {
		id := Identifier(f.Language, Namespace(f))
		if !isIdentifier(id) {
			return Artifact{}, fmt.Errorf("%w: %q for %s", ErrInvalidIdentifier, id, f.Path)
		}
		if prev, ok := seen[id]; ok {
			return Artifact{}, fmt.Errorf("%w: %s and %s both map to %q", ErrDuplicateNamespace, prev, f.Path, id)
		}
		seen[id] = f.Path

		from, err := relativeImport(cfg.Path, f.Path)
		if err != nil {
			return Artifact{}, err
		}
		a.Resources = append(a.Resources, Import{Name: id, From: from, Default: true})
	}
	slices.SortFunc(a.Resources, func(x, y Import) int { return strings.Compare(x.Name, y.Name) })

	opts := maps.Clone(cfg.InitOptions)
	if cfg.DefaultNamespace != "" {
		if opts == nil {
			opts = make(map[string]any, 1)
		}
		opts["defaultNS"] = cfg.DefaultNamespace
	}
	if len(opts) > 0 {
		data, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			return Artifact{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
		a.Options = string(data)
	}

	return a, nil
}

// relativeImport returns the import specifier of target as seen from the
// index file: "./locales/en/common.json" or "../public/en/common.json".
func relativeImport(indexPath, target string) (string, error) {
	dir := path.Dir(filepath.ToSlash(indexPath))
	rel, err := filepath.Rel(filepath.FromSlash(dir), filepath.FromSlash(target))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel, nil
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func isIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// propertyKey renders s as an object key, quoting it when needed.
func propertyKey(s string) string {
	if isIdentifier(s) {
		return s
	}
	return strconv.Quote(s)
}

var funcs = template.FuncMap{
	"key":   propertyKey,
	"quote": func(s string) string { return "'" + strings.ReplaceAll(s, "'", "\\'") + "'" },
}

var indexTemplate = template.Must(
	template.New("index").
		Funcs(funcs).
		Parse(`// Code generated by i18nsync. DO NOT EDIT.

import i18next from {{quote .Runtime}};
{{- range .Middlewares}}
{{template "import" .}}
{{- end}}
{{- range .Imports}}
{{template "import" .}}
{{- end}}
{{- if .Resources}}
{{range .Resources}}
{{template "import" .}}
{{- end}}
{{- end}}
{{- if .Middlewares}}

i18next
{{- range .Middlewares}}
  .use({{.Name}})
{{- end}};
{{- end}}

export const resources = {
{{- $table := .Table}}
{{- range $lang := $table.Languages}}
  {{key $lang}}: {
{{- range $ns := $table.Namespaces $lang}}
    {{key $ns}}: {{index $table $lang $ns}},
{{- end}}
  },
{{- end}}
} as const;
{{- if .Options}}

export const initOptions = {{.Options}} as const;
{{- end}}

export type Namespace = {
  [L in keyof typeof resources]: keyof (typeof resources)[L];
}[keyof typeof resources];

i18next.init({ {{- if .Options}} ...initOptions,{{end}} resources });

export default i18next;
{{define "import"}}import {{if .Default}}{{.Name}}{{else}}{ {{.Name}} }{{end}} from {{quote .From}};{{end}}`))

// Render returns the TypeScript source of a. Output only depends on the
// content of a, never on map iteration order.
func Render(a Artifact) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}
