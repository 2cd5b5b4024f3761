// ABOUTME: In-memory input stream
// ABOUTME: Serves byte slices with controllable seekability, size and read granularity
package input

import (
	"errors"
	"io"
)

// MemoryStream serves a byte slice as a Stream. The zero-value knobs make it
// behave like a local file; HideSize, NoSeek and MaxRead let it stand in for
// the less convenient sources (live streams, chunky network reads) that
// backends must cope with.
type MemoryStream struct {
	// HideSize makes Size report SizeUnknown
	HideSize bool

	// NoSeek makes Seekable report false and SeekTo fail
	NoSeek bool

	// MaxRead caps the byte count of a single Read; 0 means no cap
	MaxRead int

	data   []byte
	uri    string
	offset int64
}

// NewMemoryStream creates a stream over data
func NewMemoryStream(data []byte) *MemoryStream {
	return &MemoryStream{data: data, uri: "memory:"}
}

func (s *MemoryStream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	rest := s.data[s.offset:]
	if s.MaxRead > 0 && len(rest) > s.MaxRead {
		rest = rest[:s.MaxRead]
	}
	n := copy(p, rest)
	s.offset += int64(n)
	return n, nil
}

func (s *MemoryStream) URI() string { return s.uri }

func (s *MemoryStream) Offset() int64 { return s.offset }

func (s *MemoryStream) Size() int64 {
	if s.HideSize {
		return SizeUnknown
	}
	return int64(len(s.data))
}

func (s *MemoryStream) Seekable() bool { return !s.NoSeek }

func (s *MemoryStream) SeekTo(offset int64) error {
	if s.NoSeek {
		return errors.New("stream is not seekable")
	}
	if offset < 0 || offset > int64(len(s.data)) {
		return errors.New("seek out of range")
	}
	s.offset = offset
	return nil
}
