// Package version exposes build version information.
//
// Version, git commit, and build time can be set at compile time via
// -ldflags; anything not set is recovered from the binary's embedded
// build info when available.
package version
