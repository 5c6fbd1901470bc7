package switcher

import (
	"path/filepath"

	"github.com/arthur-debert/javaswitch/pkg/errors"
)

// Default locations on macOS
const (
	DefaultPluginsDir         = "/Library/Internet Plug-Ins"
	DefaultPluginName         = "JavaAppletPlugin.plugin"
	DefaultSystemPlugin       = "/System/Library/Java/Support/Deploy.bundle/Contents/Resources/JavaPlugin2_NPAPI.plugin"
	DefaultJavawsPath         = "/usr/bin/javaws"
	DefaultJavawsAppleTarget  = "/System/Library/Frameworks/JavaVM.framework/Commands/javaws"
	DefaultJavawsOracleTarget = "/System/Library/Frameworks/JavaVM.framework/Versions/Current/Commands/javaws"

	// DisabledDirName is the directory under PluginsDir where inactive bundles are parked
	DisabledDirName = "disabled"
)

// Layout names every path the switcher reads or writes
type Layout struct {
	PluginsDir   string `koanf:"plugins_dir"`
	DisabledDir  string `koanf:"disabled_dir"`
	PluginName   string `koanf:"plugin_name"`
	SystemPlugin string `koanf:"system_plugin"`

	// Java Web Start launcher link and the targets used for each vendor
	JavawsPath         string `koanf:"javaws"`
	JavawsAppleTarget  string `koanf:"javaws_apple"`
	JavawsOracleTarget string `koanf:"javaws_oracle"`
}

// DefaultLayout returns the stock macOS layout
func DefaultLayout() Layout {
	return Layout{
		PluginsDir:         DefaultPluginsDir,
		DisabledDir:        filepath.Join(DefaultPluginsDir, DisabledDirName),
		PluginName:         DefaultPluginName,
		SystemPlugin:       DefaultSystemPlugin,
		JavawsPath:         DefaultJavawsPath,
		JavawsAppleTarget:  DefaultJavawsAppleTarget,
		JavawsOracleTarget: DefaultJavawsOracleTarget,
	}
}

// PluginPath is the active plug-in location
func (l Layout) PluginPath() string {
	return filepath.Join(l.PluginsDir, l.PluginName)
}

// DisabledRoot is the parking directory, defaulting to PluginsDir/disabled
func (l Layout) DisabledRoot() string {
	if l.DisabledDir != "" {
		return l.DisabledDir
	}
	return filepath.Join(l.PluginsDir, DisabledDirName)
}

// DisabledPluginPath is where the inactive Oracle bundle is parked
func (l Layout) DisabledPluginPath() string {
	return filepath.Join(l.DisabledRoot(), l.PluginName)
}

// InfoPlistPath returns the Info.plist inside a resolved bundle directory
func InfoPlistPath(bundle string) string {
	return filepath.Join(bundle, "Contents", "Info.plist")
}

// Validate checks that every configured path is usable
func (l Layout) Validate() error {
	if l.PluginName == "" || filepath.Base(l.PluginName) != l.PluginName {
		return errors.Newf(errors.ErrConfigValid, "plug-in name %q must be a single path component", l.PluginName)
	}

	paths := map[string]string{
		"plugins_dir":   l.PluginsDir,
		"system_plugin": l.SystemPlugin,
		"javaws":        l.JavawsPath,
		"javaws_apple":  l.JavawsAppleTarget,
		"javaws_oracle": l.JavawsOracleTarget,
	}
	if l.DisabledDir != "" {
		paths["disabled_dir"] = l.DisabledDir
	}
	for key, value := range paths {
		if !filepath.IsAbs(value) {
			return errors.Newf(errors.ErrConfigValid, "paths.%s must be an absolute path, got %q", key, value).
				WithDetail("key", key)
		}
	}
	return nil
}
