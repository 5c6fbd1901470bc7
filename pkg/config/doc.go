// Package config handles configuration management for javaswitch.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the system file, /Library/Preferences/javaswitch.toml, when present
//  3. a file given with --config
//  4. JAVASWITCH_* environment variables, "__" separating sections
//     (JAVASWITCH_PATHS__PLUGINS_DIR sets paths.plugins_dir)
//  5. command-line flag overrides
package config
