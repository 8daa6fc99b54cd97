package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMinorWords are kept lower case inside titles unless they start the title.
var DefaultMinorWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "for", "from", "in", "into",
	"nor", "of", "on", "or", "per", "the", "to", "via", "vs", "with",
}

// DefaultOverrides force the casing of well-known abbreviations.
var DefaultOverrides = map[string]string{
	"api":  "API",
	"id":   "ID",
	"ids":  "IDs",
	"url":  "URL",
	"uri":  "URI",
	"uuid": "UUID",
	"http": "HTTP",
	"json": "JSON",
	"ip":   "IP",
}

// Caser converts identifiers into human-friendly titles.
// It is immutable after creation and safe for concurrent use.
type Caser struct {
	minor     map[string]struct{}
	overrides map[string]string
	tag       language.Tag
}

// Option configures a Caser.
type Option func(*Caser)

// WithMinorWords replaces the list of minor words.
func WithMinorWords(words ...string) Option {
	return func(c *Caser) {
		c.minor = make(map[string]struct{}, len(words))
		for _, w := range words {
			c.minor[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithOverrides adds forced casings. Keys are matched case-insensitively.
func WithOverrides(overrides map[string]string) Option {
	return func(c *Caser) {
		for k, v := range overrides {
			c.overrides[strings.ToLower(k)] = v
		}
	}
}

// WithLanguage sets the language whose casing rules are applied.
// Defaults to language.Und.
func WithLanguage(tag language.Tag) Option {
	return func(c *Caser) {
		c.tag = tag
	}
}

// New creates a Caser with the default minor words and overrides.
func New(opts ...Option) *Caser {
	c := &Caser{
		minor:     make(map[string]struct{}, len(DefaultMinorWords)),
		overrides: make(map[string]string, len(DefaultOverrides)),
		tag:       language.Und,
	}
	for _, w := range DefaultMinorWords {
		c.minor[w] = struct{}{}
	}
	for k, v := range DefaultOverrides {
		c.overrides[k] = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Title splits s into words and capitalizes each of them, e.g.
// "CREDIT_CARD" → "Credit Card", "apiKeyOf" → "API Key of".
func (c *Caser) Title(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	// cases.Caser is stateful, one per call.
	title := cases.Title(c.tag)
	lower := cases.Lower(c.tag)

	out := make([]string, len(words))
	for i, w := range words {
		lw := lower.String(w)
		if forced, ok := c.overrides[lw]; ok {
			out[i] = forced
			continue
		}
		if _, ok := c.minor[lw]; ok && i > 0 {
			out[i] = lw
			continue
		}
		out[i] = title.String(lw)
	}
	return strings.Join(out, " ")
}

// Camel returns the lowerCamelCase form of s: "enum-labels" → "enumLabels".
func Camel(s string) string {
	return joinCamel(Words(s), false)
}

// Pascal returns the UpperCamelCase form of s: "enum-labels" → "EnumLabels".
func Pascal(s string) string {
	return joinCamel(Words(s), true)
}

func joinCamel(words []string, upperFirst bool) string {
	var b strings.Builder
	for i, w := range words {
		lw := strings.ToLower(w)
		if i == 0 && !upperFirst {
			b.WriteString(lw)
			continue
		}
		r := []rune(lw)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Words splits an identifier into words. Boundaries are non-alphanumeric
// runes, lower-to-upper transitions ("createdAt") and the end of an
// upper-case run followed by a lower-case rune ("HTTPServer").
func Words(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
