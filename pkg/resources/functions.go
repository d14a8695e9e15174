package resources

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CreateLogger builds the console logger for the CLI. --verbose wins over
// --quiet when both are set.
func CreateLogger(verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel

	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// CreateConfig binds the command-line flags into viper and layers PALAEO_*
// environment variables underneath them. Precedence: flag > env > default.
func CreateConfig(flags *pflag.FlagSet) error {
	viper.SetEnvPrefix("PALAEO")
	viper.SetEnvKeyReplacer(envKeyReplacer())
	viper.AutomaticEnv()

	viper.SetDefault("timeout", 10*time.Second)

	return viper.BindPFlags(flags)
}

func envKeyReplacer() *strings.Replacer {
	return strings.NewReplacer("-", "_")
}
