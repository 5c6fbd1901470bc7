// Package switcher swaps the active Java web plug-in between Oracle's bundle
// and the one Apple ships with the OS.
//
// A run is a short linear procedure:
//
//  1. Detect: locate the plug-in bundle and read its vendor from Info.plist.
//  2. Confirm: ask the console user through a dialog.Confirmer.
//  3. Plan: turn the detected state into a list of Operations.
//  4. Execute: apply the operations in order, stopping at the first failure.
//
// Only a missing plug-in bundle, a dialog that cannot be shown and a
// cancelled dialog are returned as errors. Everything that goes wrong while
// touching the filesystem is logged and reported in the Result, so the
// process can still exit cleanly.
package switcher
