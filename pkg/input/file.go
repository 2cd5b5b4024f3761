// ABOUTME: File-backed input stream
// ABOUTME: Wraps os.File with offset and size tracking for decode backends
package input

import (
	"fmt"
	"io"
	"os"
)

// FileStream serves a local file as a seekable Stream with a known size
type FileStream struct {
	f      *os.File
	uri    string
	size   int64
	offset int64
}

// OpenFile opens path as a Stream
func OpenFile(path string) (*FileStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return &FileStream{
		f:    f,
		uri:  path,
		size: st.Size(),
	}, nil
}

func (s *FileStream) Read(p []byte) (int, error) {
	n, err := s.f.Read(p)
	s.offset += int64(n)
	return n, err
}

func (s *FileStream) URI() string    { return s.uri }
func (s *FileStream) Offset() int64  { return s.offset }
func (s *FileStream) Size() int64    { return s.size }
func (s *FileStream) Seekable() bool { return true }

func (s *FileStream) SeekTo(offset int64) error {
	if _, err := s.f.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek failed: %w", err)
	}
	s.offset = offset
	return nil
}

// Close closes the underlying file
func (s *FileStream) Close() error {
	return s.f.Close()
}
