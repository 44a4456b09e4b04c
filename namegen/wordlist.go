package namegen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const WordListVersion = "1"

// WordList is a custom set of pools read from a YAML file.
//
// A nil list leaves the generator's pool untouched, an empty one clears it.
type WordList struct {
	Version    string
	Adjectives []string
	Nouns      []string
}

func ReadWordList(file string) (list WordList, err error) {
	var buf []byte
	if buf, err = os.ReadFile(file); err != nil {
		return WordList{}, fmt.Errorf("read file: %w", err)
	}

	if err = yaml.Unmarshal(buf, &list); err != nil {
		return WordList{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err = list.Validate(); err != nil {
		return WordList{}, fmt.Errorf("validate: %w", err)
	}

	return list, nil
}

func (list WordList) Validate() error {
	if list.Version != WordListVersion {
		return fmt.Errorf("unsupported version '%s'", list.Version)
	}

	for i, word := range list.Adjectives {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("adjectives[%d] must not be empty", i)
		}
	}

	for i, word := range list.Nouns {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("nouns[%d] must not be empty", i)
		}
	}

	return nil
}

// WithWords returns a copy of g using the pools defined in list.
func (g Generator) WithWords(list WordList) Generator {
	if list.Adjectives != nil {
		g.Adjectives = list.Adjectives
	}
	if list.Nouns != nil {
		g.Nouns = list.Nouns
	}
	return g
}
