package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// LanguageSummary reports translation coverage for one language.
type LanguageSummary struct {
	Language string `json:"language"`
	// Total is the number of written keys.
	Total int `json:"total"`
	// Generated counts keys backed by a schema unit.
	Generated int `json:"generated"`
	// Pending counts generated keys whose value still equals the generated default.
	Pending int `json:"pending"`
	// Orphaned counts keys no schema unit produced in this run.
	Orphaned int `json:"orphaned"`
}

// Summarize groups s by language, sorted by language tag.
func Summarize(s State) []LanguageSummary {
	byLang := make(map[string]*LanguageSummary)
	for _, e := range s {
		ls, ok := byLang[e.Language]
		if !ok {
			ls = &LanguageSummary{Language: e.Language}
			byLang[e.Language] = ls
		}
		ls.Total++
		if e.Generated == nil {
			ls.Orphaned++
			continue
		}
		ls.Generated++
		if *e.Generated == e.Value {
			ls.Pending++
		}
	}

	out := make([]LanguageSummary, 0, len(byLang))
	for _, ls := range byLang {
		out = append(out, *ls)
	}
	slices.SortFunc(out, func(a, b LanguageSummary) int { return strings.Compare(a.Language, b.Language) })
	return out
}

// WriteJSON writes s as an indented JSON object keyed by fully-qualified key.
func WriteJSON(w io.Writer, s State) error {
	if s == nil {
		s = State{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// ReadJSON parses a state previously written by WriteJSON.
func ReadJSON(r io.Reader) (State, error) {
	var s State
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	if s == nil {
		s = State{}
	}
	return s, nil
}
