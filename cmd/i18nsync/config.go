package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nsync"
	"github.com/dmitrymomot/i18nsync/pkg/index"
	"github.com/dmitrymomot/i18nsync/pkg/naming"
	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/storage"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// langPlaceholder is replaced by the language tag in file dirs and names.
const langPlaceholder = "{lang}"

var (
	errInvalidConfig = errors.New("invalid config")
	errUnknownDriver = errors.New("unknown storage driver")
	errUnknownFormat = errors.New("unknown file format")
)

// Config is the project file, i18nsync.yaml by default.
// ${VAR} references are expanded from the environment before parsing.
// Schema and Root (the dir driver's directory) are relative to the
// config file.
type Config struct {
	Schema           string           `yaml:"schema"`
	Root             string           `yaml:"root"`
	Storage          StorageConfig    `yaml:"storage"`
	Files            []FileConfig     `yaml:"files"`
	DefaultNamespace *NamespaceConfig `yaml:"default_namespace"`
	Index            *IndexConfig     `yaml:"index"`
	Casing           CasingConfig     `yaml:"casing"`
	Audit            AuditConfig      `yaml:"audit"`

	dir string
}

type StorageConfig struct {
	// Driver is "dir" (default) or "s3".
	Driver string         `yaml:"driver"`
	S3     storage.Config `yaml:"s3"`
}

// FileConfig describes one file, or one file per language when Languages
// is set and Dir or Name contain "{lang}".
type FileConfig struct {
	Dir       string   `yaml:"dir"`
	Name      string   `yaml:"name"`
	Language  string   `yaml:"language"`
	Languages []string `yaml:"languages"`
	Namespace string   `yaml:"namespace"`
	BasePath  string   `yaml:"base_path"`
	// Kinds restricts the file to units of these kinds. Empty accepts all.
	Kinds     []string `yaml:"kinds"`
	Unmatched string   `yaml:"unmatched"`
	Format    string   `yaml:"format"`
}

type NamespaceConfig struct {
	Name      string   `yaml:"name"`
	Dir       string   `yaml:"dir"`
	FileName  string   `yaml:"file_name"`
	Languages []string `yaml:"languages"`
	Unmatched string   `yaml:"unmatched"`
}

type IndexConfig struct {
	Path        string                       `yaml:"path"`
	Runtime     string                       `yaml:"runtime"`
	Static      map[string]map[string]string `yaml:"static"`
	Imports     []index.Import               `yaml:"imports"`
	Middlewares []index.Import               `yaml:"middlewares"`
	InitOptions map[string]any               `yaml:"init_options"`
}

type CasingConfig struct {
	MinorWords []string          `yaml:"minor_words"`
	Overrides  map[string]string `yaml:"overrides"`
}

type AuditConfig struct {
	RedisURL string        `yaml:"redis_url"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(raw))))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errInvalidConfig, path, err)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Schema == "" {
		return fmt.Errorf("%w: schema is required", errInvalidConfig)
	}
	if len(c.Files) == 0 && c.DefaultNamespace == nil {
		return fmt.Errorf("%w: no files configured", errInvalidConfig)
	}
	for i, f := range c.Files {
		if f.Name == "" {
			return fmt.Errorf("%w: files[%d]: name is required", errInvalidConfig, i)
		}
		if f.Language == "" && len(f.Languages) == 0 {
			return fmt.Errorf("%w: files[%d]: language or languages is required", errInvalidConfig, i)
		}
		if len(f.Languages) > 0 && !strings.Contains(f.Dir+f.Name, langPlaceholder) {
			return fmt.Errorf("%w: files[%d]: languages needs %s in dir or name", errInvalidConfig, i, langPlaceholder)
		}
		if _, err := reconcile.ParseUnmatched(f.Unmatched); err != nil {
			return fmt.Errorf("%w: files[%d]: %w", errInvalidConfig, i, err)
		}
		if _, err := parseFormat(f.Format); err != nil {
			return fmt.Errorf("%w: files[%d]: %w", errInvalidConfig, i, err)
		}
		for _, k := range f.Kinds {
			if _, err := schema.ParseKind(k); err != nil {
				return fmt.Errorf("%w: files[%d]: %w", errInvalidConfig, i, err)
			}
		}
	}
	if dn := c.DefaultNamespace; dn != nil {
		if _, err := reconcile.ParseUnmatched(dn.Unmatched); err != nil {
			return fmt.Errorf("%w: default_namespace: %w", errInvalidConfig, err)
		}
	}
	switch c.Storage.Driver {
	case "", "dir", "s3":
	default:
		return fmt.Errorf("%w: %q", errUnknownDriver, c.Storage.Driver)
	}
	return nil
}

// SchemaPath returns the schema path resolved against the config directory.
func (c *Config) SchemaPath() string {
	return c.resolve(c.Schema)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, p)
}

// OpenStorage returns the configured storage.
func (c *Config) OpenStorage() (storage.Storage, error) {
	if c.Storage.Driver == "s3" {
		s, err := storage.NewS3(c.Storage.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return storage.NewDir(c.resolve(c.Root)), nil
}

// Targets expands the file configs against the schema. It is used as the
// generator's FileFunc, so targets are rebuilt on every run.
func (c *Config) Targets(_ *schema.Set) ([]i18nsync.FileTarget, error) {
	var out []i18nsync.FileTarget
	for _, f := range c.Files {
		unmatched, err := reconcile.ParseUnmatched(f.Unmatched)
		if err != nil {
			return nil, err
		}
		filter, err := kindFilter(f.Kinds)
		if err != nil {
			return nil, err
		}
		format, err := parseFormat(f.Format)
		if err != nil {
			return nil, err
		}

		langs := f.Languages
		if len(langs) == 0 {
			langs = []string{f.Language}
		}
		for _, lang := range langs {
			out = append(out, i18nsync.FileTarget{
				Dir:       strings.ReplaceAll(f.Dir, langPlaceholder, lang),
				Name:      strings.ReplaceAll(f.Name, langPlaceholder, lang),
				Language:  lang,
				Namespace: f.Namespace,
				BasePath:  f.BasePath,
				Filter:    filter,
				Unmatched: unmatched,
				Format:    format,
			})
		}
	}
	return out, nil
}

// Options translates the config into generator options.
func (c *Config) Options() ([]i18nsync.Option, error) {
	store, err := c.OpenStorage()
	if err != nil {
		return nil, err
	}

	opts := []i18nsync.Option{
		i18nsync.WithStorage(store),
		i18nsync.WithFileFunc(c.Targets),
	}

	if len(c.Casing.MinorWords) > 0 || len(c.Casing.Overrides) > 0 {
		var copts []naming.Option
		if len(c.Casing.MinorWords) > 0 {
			copts = append(copts, naming.WithMinorWords(c.Casing.MinorWords...))
		}
		if len(c.Casing.Overrides) > 0 {
			copts = append(copts, naming.WithOverrides(c.Casing.Overrides))
		}
		opts = append(opts, i18nsync.WithCaser(naming.New(copts...)))
	}

	if dn := c.DefaultNamespace; dn != nil {
		unmatched, err := reconcile.ParseUnmatched(dn.Unmatched)
		if err != nil {
			return nil, err
		}
		opts = append(opts, i18nsync.WithDefaultNamespace(i18nsync.DefaultNamespace{
			Name:      dn.Name,
			Dir:       dn.Dir,
			FileName:  dn.FileName,
			Languages: slices.Clone(dn.Languages),
			Unmatched: unmatched,
		}))
	}

	if ix := c.Index; ix != nil {
		static := make(index.Table, len(ix.Static))
		for lang, ns := range ix.Static {
			for name, expr := range ns {
				static.Set(lang, name, expr)
			}
		}
		opts = append(opts, i18nsync.WithIndex(index.Config{
			Path:        ix.Path,
			Runtime:     ix.Runtime,
			Static:      static,
			Imports:     ix.Imports,
			Middlewares: ix.Middlewares,
			InitOptions: ix.InitOptions,
		}))
	}

	return opts, nil
}

// parseFormat accepts "", "json", "yaml" and "yml". Empty infers the
// format from the file name.
func parseFormat(s string) (translation.Format, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "json":
		return translation.FormatJSON, nil
	case "yaml", "yml":
		return translation.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, s)
	}
}

func kindFilter(kinds []string) (func(schema.Unit) bool, error) {
	if len(kinds) == 0 {
		return nil, nil
	}
	accept := make(map[schema.Kind]bool, len(kinds))
	for _, k := range kinds {
		kind, err := schema.ParseKind(k)
		if err != nil {
			return nil, err
		}
		accept[kind] = true
	}
	return func(u schema.Unit) bool {
		return !u.Unassigned && accept[u.Kind()]
	}, nil
}
