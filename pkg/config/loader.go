package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SystemConfigPath is the machine-wide configuration file
const SystemConfigPath = "/Library/Preferences/javaswitch.toml"

// EnvPrefix prefixes environment variable overrides
const EnvPrefix = "JAVASWITCH_"

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// SystemFile is read when it exists. Defaults to SystemConfigPath.
	SystemFile string
	// File is an explicit configuration file. It must exist when set.
	File string
	// Overrides are dotted keys applied last, typically from flags
	Overrides map[string]interface{}
}

// Load builds the configuration from every layer and validates it
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the system file if it exists
	systemFile := opts.SystemFile
	if systemFile == "" {
		systemFile = SystemConfigPath
	}
	if _, err := os.Stat(systemFile); err == nil {
		if err := k.Load(file.Provider(systemFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", systemFile)
		}
	}

	// 3. Load the explicit file
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.File)
		}
		if err := k.Load(file.Provider(opts.File), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.File)
		}
	}

	// 4. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Apply flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal over the built-in values so keys absent from every layer keep them
	cfg := Default()
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps JAVASWITCH_DIALOG__TEXT__OK_LABEL to dialog.text.ok_label
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
