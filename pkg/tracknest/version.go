// Package tracknest holds project-wide metadata.
package tracknest

// Version is the current Tracknest release.
const Version = "v0.1.0"
