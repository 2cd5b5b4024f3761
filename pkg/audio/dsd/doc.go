// ABOUTME: DSD-over-PCM packing package
// ABOUTME: Repacks 1-bit DSD sample bytes into marker-framed 24-bit PCM words
// Package dsd packs raw 1-bit DSD sample data into DSD-over-PCM (DoP) words
// for pass-through transport to DACs that accept DSD inside a PCM stream,
// following the open standard proposed by dCS and others.
//
// Example:
//
//	var packer dsd.Packer
//	words := packer.Pack(2, dsdBytes)
package dsd
