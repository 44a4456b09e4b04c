package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueNilTaken(t *testing.T) {
	name, err := Default().GenerateUnique(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestGenerateUniqueSkipsTakenNames(t *testing.T) {
	g := Generator{Adjectives: []string{"flying", "bubbly"}}

	name, err := g.GenerateUnique(func(name string) bool { return name == "flying" })
	require.NoError(t, err)
	assert.Equal(t, "bubbly", name)
}

func TestGenerateUniqueExhausted(t *testing.T) {
	calls := 0
	_, err := Default().GenerateUnique(func(string) bool {
		calls++
		return true
	})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.EqualError(t, err, "failed to generate a non-clashing name after 10 attempts: no free name left")
	assert.Equal(t, MaxAttempts, calls)
}

func TestGenerateN(t *testing.T) {
	names, err := Default().GenerateN(25, false)
	require.NoError(t, err)
	assert.Len(t, names, 25)
}

func TestGenerateNZero(t *testing.T) {
	names, err := Default().GenerateN(0, true)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGenerateNUnique(t *testing.T) {
	g := Generator{
		Adjectives:  []string{"flying", "bubbly"},
		Nouns:       []string{"bat", "soda"},
		Delimiter:   "-",
		TokenLength: 1,
		TokenChars:  "ab",
		Source:      NewSource(3),
	}

	names, err := g.GenerateN(4, true)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestGenerateNUniqueExhausted(t *testing.T) {
	g := Generator{Adjectives: []string{"only"}}

	_, err := g.GenerateN(2, true)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.ErrorContains(t, err, "name 2/2")
}
