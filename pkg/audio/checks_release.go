//go:build wavecorerelease

// ABOUTME: Release-build invariant checking switch
// ABOUTME: Compiles pipeline contract assertions out of the hot path
package audio

// DebugChecks is off in release builds; see checks.go.
const DebugChecks = false
