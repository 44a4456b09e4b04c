package log

import (
	"testing"

	"github.com/gammadia/haikunator/cli/flags"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T, level string, format string) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(flags.LogLevel, level)
	viper.Set(flags.LogFormat, format)
}

func TestInit(t *testing.T) {
	for _, format := range []string{"json", "text"} {
		setup(t, "DEBUG", format)
		assert.NoError(t, Init())
		assert.NotNil(t, With("format", format))
	}
}

func TestInitUnknownFormat(t *testing.T) {
	setup(t, "INFO", "xml")
	assert.EqualError(t, Init(), "unknown log format 'xml'")
}

func TestInitInvalidLevel(t *testing.T) {
	setup(t, "LOUD", "text")
	assert.ErrorContains(t, Init(), "failed to parse log level: ")
}
