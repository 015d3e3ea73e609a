// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Rig catalog (TOML profiles), share-link query round-trip, ASIAIR export
// 0.2.0 - Interactive framing adjuster TUI, footprint preview, JNow readout
// 0.1.0 - Initial release: spherical/gnomonic mosaic layout, N.I.N.A. CSV export
