// Package engine picks an excuse from the local corpus: a keyword classifier
// maps the situation to a pool and a hash-with-jitter selector picks from it.
package engine

import (
	"strings"

	"excuses/internal/corpus"
)

// Kind is the variant of a Classification.
type Kind string

const (
	KindSpecific Kind = "specific"
	KindCategory Kind = "category"
	KindGeneric  Kind = "generic"
)

// Classification is the outcome of classifying one situation.
// Key holds the phrase or category name and is empty for KindGeneric.
type Classification struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key,omitempty"`
}

// String returns "kind" or "kind:key".
func (c Classification) String() string {
	if c.Key == "" {
		return string(c.Kind)
	}
	return string(c.Kind) + ":" + c.Key
}

// Generic is the classification used when nothing matches.
var Generic = Classification{Kind: KindGeneric}

// Classify maps a situation to a specific phrase, a category or generic.
// The first specific phrase contained in the situation wins. Otherwise the
// category with the most keyword hits wins, ties going to the earlier category.
func Classify(c *corpus.Corpus, situation string) Classification {
	s := strings.ToLower(situation)

	for _, p := range c.Specific {
		if strings.Contains(s, p.Key) {
			return Classification{Kind: KindSpecific, Key: p.Key}
		}
	}

	best := ""
	highest := 0
	for _, cat := range c.Categories {
		matches := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(s, kw) {
				matches++
			}
		}
		if matches > highest {
			highest = matches
			best = cat.Name
		}
	}

	if highest > 0 {
		return Classification{Kind: KindCategory, Key: best}
	}
	return Generic
}

// Pool returns the excuse pool a classification refers to.
// Unknown keys resolve to the generic pool so the result is never empty.
func Pool(c *corpus.Corpus, cl Classification) []string {
	switch cl.Kind {
	case KindSpecific:
		if pool, ok := c.SpecificExcuses(cl.Key); ok {
			return pool
		}
	case KindCategory:
		if pool, ok := c.CategoryExcuses(cl.Key); ok {
			return pool
		}
	}
	return c.Generic
}
