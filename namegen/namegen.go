package namegen

import (
	"strings"

	"github.com/samber/lo"
)

// HexChars is the token alphabet used when Generator.TokenHex is set.
const HexChars = "0123456789abcdef"

// Generator holds the settings used by Generate.
//
// The zero value is valid and generates empty names. Use Default for the
// usual adjective-noun-1234 shape.
type Generator struct {
	Adjectives []string
	Nouns      []string
	Delimiter  string
	// Number of token characters, zero or less omits the token
	TokenLength int
	// Overrides TokenChars with HexChars
	TokenHex bool
	// Token alphabet, indexed by rune
	TokenChars string
	// Randomness source, nil means the process-wide source
	Source Source
}

// Default returns a generator using the built-in word lists, "-" as the
// delimiter and a 4 digit token.
func Default() Generator {
	return Generator{
		Adjectives:  DefaultAdjectives,
		Nouns:       DefaultNouns,
		Delimiter:   "-",
		TokenLength: 4,
		TokenHex:    false,
		TokenChars:  "0123456789",
	}
}

// Alphabet returns the runes tokens are drawn from.
func (g Generator) Alphabet() []rune {
	if g.TokenHex {
		return []rune(HexChars)
	}
	return []rune(g.TokenChars)
}

// Generate returns a random name such as "autumn-waterfall-1337".
//
// Empty pools, an empty alphabet or a token length of zero drop the matching
// part, without leaving an empty segment behind.
func (g Generator) Generate() string {
	source := g.source()

	parts := []string{
		pick(source, g.Adjectives),
		pick(source, g.Nouns),
		g.token(source),
	}

	return strings.Join(lo.Compact(parts), g.Delimiter)
}

func (g Generator) source() Source {
	if g.Source == nil {
		return defaultSource
	}
	return g.Source
}

func (g Generator) token(source Source) string {
	alphabet := g.Alphabet()
	if g.TokenLength <= 0 || len(alphabet) == 0 {
		return ""
	}

	var token strings.Builder
	token.Grow(g.TokenLength)
	for range g.TokenLength {
		token.WriteRune(alphabet[source.IntN(len(alphabet))])
	}
	return token.String()
}

// pick returns a uniformly chosen item, or "" for an empty pool.
func pick(source Source, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[source.IntN(len(pool))]
}

var std = Default()

// ID is a generated name used to label jobs and resources.
type ID string

// Get returns a new name from the default generator.
func Get() ID {
	return ID(std.Generate())
}

func (id ID) String() string {
	return string(id)
}
