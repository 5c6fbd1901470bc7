package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/javaswitch/pkg/filesystem"
	"github.com/arthur-debert/javaswitch/pkg/switcher"
	"github.com/stretchr/testify/require"
)

// Bundle identifiers of the two plug-ins
const (
	OracleBundleID = "com.oracle.java.JavaAppletPlugin"
	AppleBundleID  = "com.apple.java.JavaAppletPlugin"
)

const infoPlistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>%s</string>
	<key>CFBundleShortVersionString</key>
	<string>%s</string>
</dict>
</plist>
`

// PluginEnv is an isolated plug-in directory tree
type PluginEnv struct {
	Root   string
	Layout switcher.Layout
	FS     filesystem.FS

	t *testing.T
}

// NewPluginEnv creates an empty tree mirroring the macOS layout under a temp dir
func NewPluginEnv(t *testing.T) *PluginEnv {
	t.Helper()

	root := t.TempDir()
	// Resolve the temp dir itself so paths compare equal to EvalSymlinks output
	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	root = resolved

	pluginsDir := filepath.Join(root, "Library", "Internet Plug-Ins")
	layout := switcher.Layout{
		PluginsDir:         pluginsDir,
		DisabledDir:        filepath.Join(pluginsDir, switcher.DisabledDirName),
		PluginName:         switcher.DefaultPluginName,
		SystemPlugin:       filepath.Join(root, "System", "Library", "Java", "Support", "Deploy.bundle", "Contents", "Resources", "JavaPlugin2_NPAPI.plugin"),
		JavawsPath:         filepath.Join(root, "usr", "bin", "javaws"),
		JavawsAppleTarget:  filepath.Join(root, "System", "Library", "Frameworks", "JavaVM.framework", "Commands", "javaws"),
		JavawsOracleTarget: filepath.Join(root, "System", "Library", "Frameworks", "JavaVM.framework", "Versions", "Current", "Commands", "javaws"),
	}

	env := &PluginEnv{Root: root, Layout: layout, FS: filesystem.NewOS(), t: t}
	env.mkdir(pluginsDir)
	env.mkdir(filepath.Dir(layout.JavawsPath))
	env.WriteBundle(layout.SystemPlugin, AppleBundleID, "Java 6")
	return env
}

// WriteBundle creates a plug-in bundle directory with an Info.plist
func (e *PluginEnv) WriteBundle(dir, bundleID, version string) {
	e.t.Helper()
	e.WriteInfoPlist(dir, fmt.Sprintf(infoPlistTemplate, bundleID, version))
}

// WriteInfoPlist creates a bundle directory with raw Info.plist content
func (e *PluginEnv) WriteInfoPlist(dir, content string) {
	e.t.Helper()
	plistPath := switcher.InfoPlistPath(dir)
	e.mkdir(filepath.Dir(plistPath))
	require.NoError(e.t, os.WriteFile(plistPath, []byte(content), 0644))
}

// InstallOracle puts an Oracle bundle at the active plug-in path
func (e *PluginEnv) InstallOracle() *PluginEnv {
	e.t.Helper()
	e.WriteBundle(e.Layout.PluginPath(), OracleBundleID, "Java 7 Update 45")
	return e
}

// InstallAppleLink makes the active plug-in path a symlink to the system plug-in
func (e *PluginEnv) InstallAppleLink() *PluginEnv {
	e.t.Helper()
	require.NoError(e.t, os.Symlink(e.Layout.SystemPlugin, e.Layout.PluginPath()))
	return e
}

// ParkOracle puts an Oracle bundle in the disabled directory
func (e *PluginEnv) ParkOracle() *PluginEnv {
	e.t.Helper()
	e.WriteBundle(e.Layout.DisabledPluginPath(), OracleBundleID, "Java 7 Update 45")
	return e
}

// LinkJavaws points the Web Start launcher at target
func (e *PluginEnv) LinkJavaws(target string) *PluginEnv {
	e.t.Helper()
	require.NoError(e.t, os.Symlink(target, e.Layout.JavawsPath))
	return e
}

// Snapshot lists every entry under Root with its type and link target.
// Two equal snapshots mean nothing was changed.
func (e *PluginEnv) Snapshot() string {
	e.t.Helper()
	var lines []string
	err := filepath.Walk(e.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(e.Root, path)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, _ := os.Readlink(path)
			lines = append(lines, fmt.Sprintf("L %s -> %s", rel, target))
		case info.IsDir():
			lines = append(lines, "D "+rel)
		default:
			lines = append(lines, fmt.Sprintf("F %s %d", rel, info.Size()))
		}
		return nil
	})
	require.NoError(e.t, err)
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func (e *PluginEnv) mkdir(dir string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(dir, 0755))
}

// PathsTOML renders the layout as a [paths] configuration section
func (e *PluginEnv) PathsTOML() string {
	l := e.Layout
	return fmt.Sprintf(`[paths]
plugins_dir = %q
disabled_dir = %q
plugin_name = %q
system_plugin = %q
javaws = %q
javaws_apple = %q
javaws_oracle = %q
`, l.PluginsDir, l.DisabledDir, l.PluginName, l.SystemPlugin, l.JavawsPath, l.JavawsAppleTarget, l.JavawsOracleTarget)
}
