package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CorpusFile represents the structure of an excuse corpus YAML file.
// Sequences keep declaration order, which decides classifier ties.
type CorpusFile struct {
	Categories []CategoryConfig `yaml:"categories"`
	Specific   []PhraseConfig   `yaml:"specific"`
	Generic    []string         `yaml:"generic"`
}

// CategoryConfig defines one excuse category and the keywords that select it.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Excuses  []string `yaml:"excuses"`
}

// PhraseConfig defines excuses for a specific situation phrase.
type PhraseConfig struct {
	Phrase  string   `yaml:"phrase"`
	Excuses []string `yaml:"excuses"`
}

// LoadCorpusFile loads an excuse corpus from a YAML file.
// Returns nil without error if the file doesn't exist.
func LoadCorpusFile(path string) (*CorpusFile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Corpus file is optional
			return nil, nil
		}
		return nil, err
	}

	var cf CorpusFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// GetCategoryByName finds a category by its name.
func (c *CorpusFile) GetCategoryByName(name string) *CategoryConfig {
	if c == nil {
		return nil
	}
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i]
		}
	}
	return nil
}

// GetPhrase finds a specific-situation entry by its phrase.
func (c *CorpusFile) GetPhrase(phrase string) *PhraseConfig {
	if c == nil {
		return nil
	}
	for i := range c.Specific {
		if c.Specific[i].Phrase == phrase {
			return &c.Specific[i]
		}
	}
	return nil
}
