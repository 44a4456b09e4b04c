package main

import (
	"fmt"

	"github.com/gammadia/haikunator/cli/flags"
	"github.com/gammadia/haikunator/cli/log"
	"github.com/gammadia/haikunator/namegen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate random names",
	Args:    cobra.NoArgs,

	RunE: runGenerate,
}

func init() {
	flags.RegisterGenerate(generateCmd.Flags())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count := viper.GetInt(flags.Count)
	if count < 1 {
		return fmt.Errorf("%s must be greater than 0", flags.Count)
	}

	render, err := newRenderer(
		viper.GetString(flags.Format),
		viper.GetString(flags.Template),
		viper.GetString(flags.Var),
	)
	if err != nil {
		return err
	}

	generator, err := generatorFromConfig()
	if err != nil {
		return err
	}

	names, err := generator.GenerateN(count, viper.GetBool(flags.Unique))
	if err != nil {
		return fmt.Errorf("failed to generate names: %w", err)
	}
	log.Debug("generated names", "count", len(names), "alphabet", string(generator.Alphabet()))

	return render(cmd.OutOrStdout(), names)
}

// generatorFromConfig builds a generator from the flags, environment and
// configuration file bound in viper.
func generatorFromConfig() (namegen.Generator, error) {
	generator := namegen.Default()

	adjectives, nouns, err := wordPools()
	if err != nil {
		return namegen.Generator{}, err
	}
	generator.Adjectives = adjectives
	generator.Nouns = nouns

	generator.Delimiter = viper.GetString(flags.Delimiter)
	generator.TokenHex = viper.GetBool(flags.TokenHex)
	generator.TokenChars = viper.GetString(flags.TokenChars)
	generator.TokenLength = viper.GetInt(flags.TokenLength)
	if generator.TokenLength < 0 {
		return namegen.Generator{}, fmt.Errorf("%s must be greater than or equal to 0", flags.TokenLength)
	}

	if seed := viper.GetUint64(flags.Seed); seed != 0 {
		generator.Source = namegen.NewSource(seed)
	}

	return generator, nil
}

// wordPools returns the default pools, overridden by the word list file if
// one is configured.
func wordPools() (adjectives []string, nouns []string, err error) {
	generator := namegen.Default()

	if file := viper.GetString(flags.Words); file != "" {
		list, err := namegen.ReadWordList(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read word list from '%s': %w", file, err)
		}
		log.Info("using custom word list", "file", file, "adjectives", len(list.Adjectives), "nouns", len(list.Nouns))
		generator = generator.WithWords(list)
	}

	return generator.Adjectives, generator.Nouns, nil
}
