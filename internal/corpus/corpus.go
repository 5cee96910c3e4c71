// Package corpus holds the read-only excuse database used when the remote
// generation service is unavailable.
package corpus

import (
	"errors"
	"fmt"
	"strings"

	"excuses/internal/config"
)

var (
	ErrEmptyPool     = errors.New("excuse pool is empty")
	ErrNoKeywords    = errors.New("category has no keywords")
	ErrDuplicateName = errors.New("duplicate category name")
	ErrDuplicateKey  = errors.New("duplicate situation phrase")
	ErrEmptyName     = errors.New("name is empty")
)

// Category is a named excuse pool together with the keywords that select it.
type Category struct {
	Name     string
	Keywords []string
	Excuses  []string
}

// Phrase maps a specific situation phrase to its excuse pool.
type Phrase struct {
	Key     string
	Excuses []string
}

// Corpus is the full static set of excuse pools and keyword tables.
// Slice order is significant: phrases are matched in order and keyword
// ties go to the category declared first.
type Corpus struct {
	Categories []Category
	Specific   []Phrase
	Generic    []string
}

// Validate checks that every pool is non-empty and names are unique.
func (c *Corpus) Validate() error {
	if len(c.Generic) == 0 {
		return fmt.Errorf("generic: %w", ErrEmptyPool)
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category: %w", ErrEmptyName)
		}
		if seen[cat.Name] {
			return fmt.Errorf("category %q: %w", cat.Name, ErrDuplicateName)
		}
		seen[cat.Name] = true
		if len(cat.Excuses) == 0 {
			return fmt.Errorf("category %q: %w", cat.Name, ErrEmptyPool)
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q: %w", cat.Name, ErrNoKeywords)
		}
	}

	seen = make(map[string]bool, len(c.Specific))
	for _, p := range c.Specific {
		if p.Key == "" {
			return fmt.Errorf("phrase: %w", ErrEmptyName)
		}
		if seen[p.Key] {
			return fmt.Errorf("phrase %q: %w", p.Key, ErrDuplicateKey)
		}
		seen[p.Key] = true
		if len(p.Excuses) == 0 {
			return fmt.Errorf("phrase %q: %w", p.Key, ErrEmptyPool)
		}
	}

	return nil
}

// CategoryExcuses returns the pool for a category name.
func (c *Corpus) CategoryExcuses(name string) ([]string, bool) {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return c.Categories[i].Excuses, true
		}
	}
	return nil, false
}

// SpecificExcuses returns the pool for a specific situation phrase.
func (c *Corpus) SpecificExcuses(key string) ([]string, bool) {
	for i := range c.Specific {
		if c.Specific[i].Key == key {
			return c.Specific[i].Excuses, true
		}
	}
	return nil, false
}

// FromFile builds a corpus from a parsed YAML corpus file.
// A nil file yields the built-in corpus. Keywords and phrase keys are
// lowercased, matching the lowercased situation they are compared against.
func FromFile(cf *config.CorpusFile) (*Corpus, error) {
	if cf == nil {
		return Default(), nil
	}

	c := &Corpus{Generic: append([]string(nil), cf.Generic...)}
	for _, cat := range cf.Categories {
		c.Categories = append(c.Categories, Category{
			Name:     cat.Name,
			Keywords: lowerAll(cat.Keywords),
			Excuses:  append([]string(nil), cat.Excuses...),
		})
	}
	for _, p := range cf.Specific {
		c.Specific = append(c.Specific, Phrase{
			Key:     strings.ToLower(strings.TrimSpace(p.Phrase)),
			Excuses: append([]string(nil), p.Excuses...),
		})
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus: %w", err)
	}
	return c, nil
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, strings.ToLower(strings.TrimSpace(w)))
	}
	return out
}

// Load reads the optional corpus file at path, falling back to the built-in corpus.
func Load(path string) (*Corpus, error) {
	cf, err := config.LoadCorpusFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return FromFile(cf)
}
