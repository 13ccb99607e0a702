// Package audiograms holds build metadata for the audiogram-admin tool.
package audiograms

// Version is the release reported by `audiogram-admin version`.
const Version = "v0.1.0"
