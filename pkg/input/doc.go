// ABOUTME: Input stream abstraction for decode sources
// ABOUTME: Provides Stream interface, file/memory implementations and a ReadSeeker adapter
// Package input abstracts the byte sources decoding backends consume: a
// seekable stream with a known or unknown total size.
//
// FileStream serves local files, MemoryStream serves in-memory data (and
// doubles as a stand-in for buffered network sources). Reader adapts a Stream
// to the io.ReadSeeker contract that decoding libraries expect, forcing full
// reads because those libraries cannot tolerate short ones.
package input
