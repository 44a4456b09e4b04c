package flags

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	Config    = "config"
	LogFormat = "log-format"
	LogLevel  = "log-level"
	Words     = "words"

	Count       = "count"
	Delimiter   = "delimiter"
	Format      = "format"
	Seed        = "seed"
	Template    = "template"
	TokenChars  = "token-chars"
	TokenHex    = "token-hex"
	TokenLength = "token-length"
	Unique      = "unique"
	Var         = "var"
)

const EnvPrefix = "haikunator"

// RegisterGlobal defines the flags shared by every command.
func RegisterGlobal(flags *flag.FlagSet) {
	flags.String(Config, "", "configuration file (yaml)")
	flags.String(LogFormat, "text", "log format (json, text)")
	flags.String(LogLevel, "WARN", "minimum log level")
	flags.String(Words, "", "word list file (yaml)")
}

// RegisterGenerate defines the flags of the generate command.
func RegisterGenerate(flags *flag.FlagSet) {
	flags.IntP(Count, "n", 1, "number of names to generate")
	flags.StringP(Delimiter, "d", "-", "delimiter between name parts")
	flags.IntP(TokenLength, "l", 4, "number of token characters, 0 to omit the token")
	flags.Bool(TokenHex, false, "use hexadecimal token characters")
	flags.String(TokenChars, "0123456789", "token characters")
	flags.Bool(Unique, false, "never repeat a name within a batch")
	flags.Uint64(Seed, 0, "seed for reproducible names, 0 for a random seed")
	flags.StringP(Format, "o", "plain", "output format (plain, json, shell, template)")
	flags.String(Template, "", "go template used by the template format")
	flags.String(Var, "NAME", "variable name used by the shell format")
}

// Bind layers flags, HAIKUNATOR_* environment variables and the optional
// configuration file into viper.
func Bind(flags *flag.FlagSet) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := viper.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := viper.GetString(Config); file != "" {
		viper.SetConfigFile(file)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read configuration '%s': %w", file, err)
		}
	}

	return nil
}
