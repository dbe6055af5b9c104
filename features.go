//go:build !edn_no_sets

package edn

// setsEnabled mirrors the original crate's Cargo `sets` feature as a Go
// build tag: by default `#{...}` parses as a Set. Build with
// `-tags edn_no_sets` to disable it, at which point `#{` is a parse error
// (CodeNoFeatureSets) regardless of the rest of the input.
const setsEnabled = true
