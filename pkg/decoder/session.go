// ABOUTME: Decode session shared state and controller-side API
// ABOUTME: Command register, chunk channel and seek handshake between workers
package decoder

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/wavecore/pkg/audio"
)

// Command is the controller's instruction to the decode loop, delivered as
// the return value of each chunk submission
type Command int

const (
	CmdNone Command = iota
	CmdStop
	CmdSeek
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdStop:
		return "stop"
	case CmdSeek:
		return "seek"
	default:
		return "invalid"
	}
}

var (
	// ErrNotStarted is returned by Seek before the decode loop has
	// announced the stream
	ErrNotStarted = errors.New("decoder: session not started")

	// ErrNotSeekable is returned by Seek when the source does not
	// support seeking
	ErrNotSeekable = errors.New("decoder: source is not seekable")

	// ErrSeekFailed is returned by Seek when the backend could not
	// reposition; the session keeps streaming from its actual position
	ErrSeekFailed = errors.New("decoder: seek failed")

	// ErrFinished is returned by Seek when the session has ended
	ErrFinished = errors.New("decoder: session finished")

	// ErrBusy is returned by Seek while another command is pending
	ErrBusy = errors.New("decoder: command already pending")
)

// session phases: starting until the announce, then streaming with seeking
// excursions, finished exactly once
type phase int

const (
	phaseStarting phase = iota
	phaseStreaming
	phaseSeeking
	phaseFinished
)

// Session is the shared state of one decode run: the decode worker fills and
// submits chunks on one side, the controller consumes chunks and issues
// commands on the other. Ownership of a chunk transfers atomically at
// submission; the command register is only read by the decode loop at
// submission boundaries, so cancellation latency is bounded by one chunk
// fill.
type Session struct {
	// ID names the session in log messages
	ID string

	pool   *audio.Pool
	chunks chan *audio.Chunk

	announced chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	wake      chan struct{}
	stopOnce  sync.Once

	mu          sync.Mutex
	cond        *sync.Cond
	phase       phase
	isAnnounced bool
	format      audio.Format
	seekable    bool
	duration    float64
	command     Command
	seekFrame   int64
	seekDone    bool
	seekErr     error
}

// NewSession creates a session drawing chunks from pool and queueing up to
// depth submitted chunks. depth should be smaller than the pool size so the
// decode worker blocks on submission (where commands can wake it) rather
// than on chunk acquisition.
func NewSession(pool *audio.Pool, depth int) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		pool:      pool,
		chunks:    make(chan *audio.Chunk, depth),
		announced: make(chan struct{}),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
		wake:      make(chan struct{}, 1),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Chunks returns the channel of submitted chunks, closed when the session
// finishes. The consumer must release each chunk back to the pool once
// drained.
func (s *Session) Chunks() <-chan *audio.Chunk {
	return s.chunks
}

// Pool returns the pool chunks must be released to
func (s *Session) Pool() *audio.Pool {
	return s.pool
}

// Announced is closed once the decode loop has announced the stream; after
// that Format, Seekable and Duration are valid
func (s *Session) Announced() <-chan struct{} {
	return s.announced
}

// Done is closed when the session reaches its final state
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Format returns the announced audio format
func (s *Session) Format() audio.Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	if audio.DebugChecks && !s.isAnnounced {
		panic("decoder: format queried before announce")
	}
	return s.format
}

// Seekable reports whether the announced source supports seeking
func (s *Session) Seekable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seekable
}

// Duration returns the announced total duration in seconds, 0 if unknown
func (s *Session) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Seek asks the decode loop to reposition at the given frame and blocks
// until the backend acknowledges or reports failure. On ErrSeekFailed the
// session keeps streaming from wherever the backend ended up; chunk
// timestamps reflect the actual position.
func (s *Session) Seek(frame int64) error {
	s.mu.Lock()
	if s.phase == phaseFinished {
		s.mu.Unlock()
		return ErrFinished
	}
	if !s.isAnnounced {
		s.mu.Unlock()
		return ErrNotStarted
	}
	if !s.seekable {
		s.mu.Unlock()
		return ErrNotSeekable
	}
	if s.command != CmdNone {
		s.mu.Unlock()
		return ErrBusy
	}
	s.command = CmdSeek
	s.seekFrame = frame
	s.seekDone = false
	s.seekErr = nil
	s.phase = phaseSeeking
	s.mu.Unlock()

	s.poke()

	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.seekDone && s.phase != phaseFinished {
		s.cond.Wait()
	}
	if !s.seekDone {
		return ErrFinished
	}
	return s.seekErr
}

// Stop asks the decode loop to end the session. Cooperative: the loop
// observes it at the next submission boundary. Idempotent.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopped)
		s.mu.Lock()
		s.command = CmdStop
		s.mu.Unlock()
		s.poke()
	})
}

// poke wakes a decode worker blocked on chunk submission
func (s *Session) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pending returns the current command register
func (s *Session) pending() Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.command
}

// finish moves the session to its final state, releases seek waiters and
// closes the chunk channel. Called exactly once by the decode runner.
func (s *Session) finish() {
	s.mu.Lock()
	if s.phase == phaseFinished {
		s.mu.Unlock()
		return
	}
	s.phase = phaseFinished
	s.mu.Unlock()

	s.cond.Broadcast()
	close(s.chunks)
	close(s.done)
}
