package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/javaswitch/pkg/dialog"
	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/switcher"
)

// Config is the complete javaswitch configuration
type Config struct {
	Paths  switcher.Layout `koanf:"paths"`
	Dialog Dialog          `koanf:"dialog"`
	Log    Log             `koanf:"log"`
}

// Dialog configures how the user is asked
type Dialog struct {
	Helper     string        `koanf:"helper"`
	WindowType string        `koanf:"window_type"`
	Timeout    time.Duration `koanf:"timeout"`
	// Console forces the terminal prompt instead of the helper
	Console bool         `koanf:"console"`
	Text    dialog.Texts `koanf:"text"`
}

// Log configures the diagnostic log
type Log struct {
	File string `koanf:"file"`
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	return &Config{
		Paths: switcher.DefaultLayout(),
		Dialog: Dialog{
			Helper:     dialog.DefaultJamfHelperPath,
			WindowType: "utility",
			Timeout:    10 * time.Minute,
			Text:       dialog.DefaultTexts(),
		},
	}
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if err := c.Paths.Validate(); err != nil {
		return err
	}
	if !filepath.IsAbs(c.Dialog.Helper) {
		return errors.Newf(errors.ErrConfigValid, "dialog.helper must be an absolute path, got %q", c.Dialog.Helper)
	}
	if c.Dialog.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "dialog.timeout must not be negative, got %v", c.Dialog.Timeout)
	}
	if strings.Count(c.Dialog.Text.DescriptionFormat, "%s") != 2 {
		return errors.New(errors.ErrConfigValid, "dialog.text.description must contain exactly two %s placeholders (old and new vendor)")
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		return errors.Newf(errors.ErrConfigValid, "log.file must be an absolute path, got %q", c.Log.File)
	}
	return nil
}
