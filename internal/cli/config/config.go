// Package config merges the textfile CLI's configuration sources (defaults,
// optional config file, environment, flags) into validated run settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hakan-ronngren/textfile/pkg/textfile"
)

const (
	// EnvPrefix is the prefix for environment variable overrides, e.g.
	// TEXTFILE_EOL=LF.
	EnvPrefix = "TEXTFILE"
	// DefaultConfigName is the base name of the config file searched in the
	// working directory and under $HOME/.config/textfile/.
	DefaultConfigName = "textfile"
)

// OutputFormat selects how the run summary is printed.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// RunConfig is everything the CLI run loop needs.
type RunConfig struct {
	Options      textfile.Options
	Files        []string
	Check        bool
	OutputFormat OutputFormat
}

// keys bound between viper and the flag set. Flag names use hyphens, viper
// keys use underscores to match the Options mapstructure tags.
var flagKeys = map[string]string{
	"eol":               "eol",
	"end_eol":           "end-eol",
	"bom":               "bom",
	"encoding":          "encoding",
	"original_encoding": "original-encoding",
	"encoding_errors":   "encoding-errors",
	"check":             "check",
	"output_format":     "output-format",
}

// Load builds the run configuration from defaults, the config file (explicit
// path or standard search locations), TEXTFILE_* environment variables, and
// command-line flags, in increasing order of precedence. It also constructs
// the process logger. Enum violations surface as
// textfile.ErrUnsupportedOption.
func Load(cfgFile string, verbose bool, flags *pflag.FlagSet, args []string) (RunConfig, *slog.Logger, error) {
	logger := newLogger(verbose)
	var cfg RunConfig

	v := viper.New()
	setDefaults(v)

	for key, flagName := range flagKeys {
		f := flags.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return cfg, logger, fmt.Errorf("binding flag %q: %w", flagName, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			logger.Debug("no configuration file found, using defaults/env/flags")
		} else {
			return cfg, logger, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		logger.Debug("using configuration file", slog.String("path", v.ConfigFileUsed()))
	}

	if err := v.Unmarshal(&cfg.Options); err != nil {
		return cfg, logger, fmt.Errorf("decoding configuration: %w", err)
	}
	normalize(&cfg.Options)
	cfg.Options.Logger = logger.Handler()

	if err := cfg.Options.Validate(); err != nil {
		return cfg, logger, err
	}

	cfg.Check = v.GetBool("check")
	cfg.OutputFormat = OutputFormat(strings.ToLower(v.GetString("output_format")))
	switch cfg.OutputFormat {
	case OutputFormatText, OutputFormatJSON:
	default:
		return cfg, logger, fmt.Errorf("%w: output_format=%q",
			textfile.ErrUnsupportedOption, string(cfg.OutputFormat))
	}

	if len(args) == 0 {
		return cfg, logger, errors.New("no input files given")
	}
	cfg.Files = args
	return cfg, logger, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("end_eol", string(textfile.DefaultEndOfLine))
	v.SetDefault("bom", string(textfile.DefaultBom))
	v.SetDefault("encoding", textfile.DefaultEncoding)
	v.SetDefault("original_encoding", textfile.DefaultOriginalEncoding)
	v.SetDefault("encoding_errors", string(textfile.DefaultEncodingErrors))
	v.SetDefault("check", false)
	v.SetDefault("output_format", string(OutputFormatText))
}

// normalize folds user spelling to the canonical enum forms: the eol style
// is uppercase, every other enum lowercase.
func normalize(o *textfile.Options) {
	o.EOL = textfile.LineEnding(strings.ToUpper(string(o.EOL)))
	o.EndOfLine = textfile.EndOfLineMode(strings.ToLower(string(o.EndOfLine)))
	o.Bom = textfile.BomMode(strings.ToLower(string(o.Bom)))
	o.EncodingErrors = textfile.ErrorMode(strings.ToLower(string(o.EncodingErrors)))
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
