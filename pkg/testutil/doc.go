// Package testutil provides utilities for testing javaswitch components.
//
// Key components:
//   - PluginEnv: a plug-in directory tree under t.TempDir() with a Layout
//     pointing into it, plus builders for the Oracle and Apple states
//   - MockConfirmer: a testify mock for dialog.Confirmer
//
// Usage guidelines:
//   - Switch tests run against the real filesystem in a temp directory,
//     since symlinks are the thing under test
//   - All test data is defined inline, not in external files
//   - Each test builds its own environment; nothing is shared
package testutil
