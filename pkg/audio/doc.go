// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Chunk, Pool, Tag and sample conversion functions
// Package audio provides the fundamental types of the decode pipeline.
//
// This package defines the types shared between the decode stage and the
// playback stage:
//   - Format: sample rate, channel count and bit depth of a PCM stream
//   - Chunk: a fixed-capacity, frame-aligned slice of decoded audio
//   - Pool: the bounded free list chunks are drawn from and returned to
//   - Tag: a small metadata snapshot a chunk can carry downstream
//
// It also provides utilities for converting between sample formats:
//   - 16-bit ↔ 24-bit conversions
//   - int32 ↔ packed byte conversions
//
// Example:
//
//	format, err := audio.CheckFormat(44100, 16, 2)
//	pool := audio.NewPool(32)
//	chunk, err := pool.Acquire(nil)
package audio
