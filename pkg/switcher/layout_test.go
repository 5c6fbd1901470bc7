package switcher

import (
	"testing"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, "/Library/Internet Plug-Ins/JavaAppletPlugin.plugin", l.PluginPath())
	assert.Equal(t, "/Library/Internet Plug-Ins/disabled/JavaAppletPlugin.plugin", l.DisabledPluginPath())
	assert.Equal(t, "/usr/bin/javaws", l.JavawsPath)
	assert.NoError(t, l.Validate())
}

func TestLayoutDisabledRootFallback(t *testing.T) {
	l := DefaultLayout()
	l.DisabledDir = ""
	assert.Equal(t, "/Library/Internet Plug-Ins/disabled", l.DisabledRoot())

	l.DisabledDir = "/Library/Internet Plug-Ins (Disabled)"
	assert.Equal(t, "/Library/Internet Plug-Ins (Disabled)/JavaAppletPlugin.plugin", l.DisabledPluginPath())
}

func TestInfoPlistPath(t *testing.T) {
	assert.Equal(t, "/a/B.plugin/Contents/Info.plist", InfoPlistPath("/a/B.plugin"))
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"relative plugins dir", func(l *Layout) { l.PluginsDir = "Internet Plug-Ins" }},
		{"relative disabled dir", func(l *Layout) { l.DisabledDir = "disabled" }},
		{"relative javaws", func(l *Layout) { l.JavawsPath = "javaws" }},
		{"empty system plugin", func(l *Layout) { l.SystemPlugin = "" }},
		{"plugin name with separator", func(l *Layout) { l.PluginName = "sub/JavaAppletPlugin.plugin" }},
		{"empty plugin name", func(l *Layout) { l.PluginName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			err := l.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}
