// Package version holds build metadata injected at link time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/javaswitch/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/javaswitch/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/javaswitch/internal/version.Date={{.Date}}
)
