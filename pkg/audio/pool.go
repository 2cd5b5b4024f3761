// ABOUTME: Bounded chunk pool shared between decode and playback stages
// ABOUTME: Chunks are acquired when empty and released back once drained
package audio

import "errors"

// ErrAcquireCanceled is returned by Pool.Acquire when the cancel channel
// fires before a chunk becomes available.
var ErrAcquireCanceled = errors.New("audio: chunk acquire canceled")

// Pool is the fixed set of chunks a pipeline cycles through. It is the only
// structure shared across workers; hand-off happens through a buffered
// channel so acquisition blocks when the playback stage is behind.
type Pool struct {
	free chan *Chunk
	size int
}

// NewPool creates a pool holding n chunks
func NewPool(n int) *Pool {
	p := &Pool{
		free: make(chan *Chunk, n),
		size: n,
	}
	for i := 0; i < n; i++ {
		p.free <- &Chunk{}
	}
	return p
}

// Size returns the number of chunks the pool was created with
func (p *Pool) Size() int {
	return p.size
}

// Acquire obtains an empty chunk, blocking until one is released or cancel
// fires. A nil cancel channel blocks indefinitely.
func (p *Pool) Acquire(cancel <-chan struct{}) (*Chunk, error) {
	select {
	case c := <-p.free:
		return c, nil
	default:
	}

	select {
	case c := <-p.free:
		return c, nil
	case <-cancel:
		return nil, ErrAcquireCanceled
	}
}

// Release resets a drained chunk and returns it to the pool
func (p *Pool) Release(c *Chunk) {
	c.Reset()
	select {
	case p.free <- c:
	default:
		// releasing more chunks than the pool holds is a programming error
		if DebugChecks {
			panic("audio: pool release overflow")
		}
	}
}
