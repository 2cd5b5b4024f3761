// ABOUTME: io.ReadSeeker adapter over a Stream
// ABOUTME: Forces full reads and translates relative seeks for decoding libraries
package input

import (
	"errors"
	"fmt"
	"io"
)

// Reader adapts a Stream to the io.ReadSeeker contract decoding libraries
// consume. The wrapped libraries choke on partial reads, so Read retries
// internally until the buffer is full or the source is exhausted. Relative
// and end-anchored seeks are translated into absolute offsets using the
// stream's current offset and size; seeking from the end of a source with
// unknown size fails.
type Reader struct {
	src Stream
}

// NewReader wraps src
func NewReader(src Stream) *Reader {
	return &Reader{src: src}
}

// Read fills p completely unless the source runs out. A partial final read
// returns its byte count with a nil error; the next call reports io.EOF.
func (r *Reader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := r.src.Read(p[total:])
		total += n
		if err != nil {
			if total > 0 {
				return total, nil
			}
			return 0, err
		}
	}
	return total, nil
}

// Seek implements io.Seeker on top of the stream's absolute SeekTo
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += r.src.Offset()
	case io.SeekEnd:
		size := r.src.Size()
		if size == SizeUnknown {
			return 0, errors.New("cannot seek from end: stream size unknown")
		}
		offset += size
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}

	if err := r.src.SeekTo(offset); err != nil {
		return 0, err
	}

	return r.src.Offset(), nil
}

// Write always fails: decode sources are read-only
func (r *Reader) Write(p []byte) (int, error) {
	return 0, errors.New("stream is read-only")
}
