// ABOUTME: Stream interface definition
// ABOUTME: Common contract for all decode byte sources
package input

// SizeUnknown is returned by Stream.Size when the total length of the source
// cannot be determined, e.g. a live network stream.
const SizeUnknown int64 = -1

// Stream is a byte source a decoding backend reads from. Implementations are
// used by a single decode worker at a time.
type Stream interface {
	// Read reads up to len(p) bytes; short reads are permitted
	Read(p []byte) (int, error)

	// URI identifies the source for log messages
	URI() string

	// Offset returns the current read position
	Offset() int64

	// Size returns the total size in bytes, or SizeUnknown
	Size() int64

	// Seekable reports whether SeekTo may be used
	Seekable() bool

	// SeekTo repositions the stream at an absolute offset
	SeekTo(offset int64) error
}
