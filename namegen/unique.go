package namegen

import (
	"errors"
	"fmt"
)

// MaxAttempts is how many names GenerateUnique tries before giving up.
const MaxAttempts = 10

var ErrExhausted = errors.New("no free name left")

// GenerateUnique generates names until taken reports one as free.
// A nil taken accepts the first name.
func (g Generator) GenerateUnique(taken func(name string) bool) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		name := g.Generate()
		if taken == nil || !taken(name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("failed to generate a non-clashing name after %d attempts: %w", MaxAttempts, ErrExhausted)
}

// GenerateN returns n names. When unique is set, no name appears twice in the
// result.
func (g Generator) GenerateN(n int, unique bool) ([]string, error) {
	names := make([]string, 0, max(n, 0))
	seen := make(map[string]bool, max(n, 0))

	for i := 0; i < n; i++ {
		if !unique {
			names = append(names, g.Generate())
			continue
		}

		name, err := g.GenerateUnique(func(name string) bool { return seen[name] })
		if err != nil {
			return nil, fmt.Errorf("name %d/%d: %w", i+1, n, err)
		}
		seen[name] = true
		names = append(names, name)
	}

	return names, nil
}
