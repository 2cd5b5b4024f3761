//go:build !wavecorerelease

// ABOUTME: Debug-build invariant checking switch
// ABOUTME: Enables pipeline contract assertions outside release builds
package audio

// DebugChecks gates the contract assertions of the decode pipeline.
// Violations are programming errors, not runtime conditions; release builds
// (built with the wavecorerelease tag) trust the caller and compile the
// checks out.
const DebugChecks = true
