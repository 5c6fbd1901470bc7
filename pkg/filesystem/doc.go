// Package filesystem provides the filesystem used by javaswitch.
//
// All access goes through the FS interface so the switch logic can run against
// a temporary directory in tests. Implementations are backed by afero: NewOS
// wraps the real OS filesystem, NewAfero accepts any afero.Fs and reports
// ErrNoSymlink when the backend has no symlink support.
package filesystem
