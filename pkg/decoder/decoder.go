// ABOUTME: Decode-loop side of the session protocol
// ABOUTME: Announce, frame-aligned chunk filling, command delivery and seek acks
package decoder

import (
	"log"

	"github.com/harperreed/wavecore/pkg/audio"
)

// Decoder is the handle a codec backend drives: it announces the stream,
// pushes decoded bytes through the chunk pipeline and reacts to the commands
// each submission returns. One Decoder belongs to one Session and is used by
// the single decode worker only.
type Decoder struct {
	session    *Session
	chunk      *audio.Chunk
	pendingTag *audio.Tag
	time       float64
	announced  bool
}

// Announce reports the resolved stream parameters to the controller. Must be
// called exactly once, before any Data.
func (d *Decoder) Announce(format audio.Format, seekable bool, totalSeconds float64) {
	if audio.DebugChecks {
		if d.announced {
			panic("decoder: announce called twice")
		}
		if !format.Valid() {
			panic("decoder: announce with invalid format")
		}
	}
	d.announced = true

	s := d.session
	s.mu.Lock()
	s.format = format
	s.seekable = seekable
	s.duration = totalSeconds
	s.isAnnounced = true
	s.phase = phaseStreaming
	s.mu.Unlock()
	close(s.announced)

	log.Printf("session %s: %s, seekable=%v, %.1fs", s.ID, format, seekable, totalSeconds)
}

// Command returns the pending command without submitting anything, for
// backends that want to poll between expensive library calls
func (d *Decoder) Command() Command {
	return d.session.pending()
}

// Tag hands a metadata snapshot to the pipeline; it rides on the next chunk
// the decoder starts filling
func (d *Decoder) Tag(t *audio.Tag) {
	d.pendingTag = t
}

// Data pushes decoded bytes into the chunk pipeline and returns the pending
// command. p must hold whole frames of the announced format. Chunks are
// submitted as they fill; a partial chunk stays buffered for the next call,
// so commands are observed at chunk granularity.
func (d *Decoder) Data(p []byte, bitRateKbps uint16) Command {
	s := d.session
	format := s.format
	frameSize := format.FrameSize()

	if audio.DebugChecks {
		if !d.announced {
			panic("decoder: data before announce")
		}
		if len(p)%frameSize != 0 {
			panic("decoder: data is not a whole number of frames")
		}
	}

	if cmd := s.pending(); cmd != CmdNone {
		return cmd
	}

	for len(p) > 0 {
		if d.chunk == nil {
			c, err := s.pool.Acquire(s.stopped)
			if err != nil {
				return CmdStop
			}
			d.chunk = c
			if d.pendingTag != nil {
				c.AttachTag(d.pendingTag)
				d.pendingTag = nil
			}
		}

		w := d.chunk.Write(format, d.time, bitRateKbps)
		if w == nil {
			// no room for a whole frame; push the chunk downstream
			if cmd := d.submit(); cmd != CmdNone {
				return cmd
			}
			continue
		}

		n := copy(w, p)
		full := d.chunk.Expand(format, n)
		p = p[n:]
		d.time += float64(n/frameSize) / float64(format.SampleRate)

		if full {
			if cmd := d.submit(); cmd != CmdNone {
				return cmd
			}
		}
	}

	return CmdNone
}

// submit transfers the current chunk to the controller and reads the command
// register. May block until the consuming stage has room; a command arriving
// meanwhile wakes it, and the undelivered chunk goes back to the pool since
// a stop or seek invalidates its contents.
func (d *Decoder) submit() Command {
	s := d.session
	c := d.chunk
	d.chunk = nil

	if c.Empty() {
		s.pool.Release(c)
		return s.pending()
	}

	for {
		select {
		case s.chunks <- c:
			return s.pending()
		case <-s.wake:
			if cmd := s.pending(); cmd != CmdNone {
				s.pool.Release(c)
				return cmd
			}
			// stale wakeup from an already-handled command
		}
	}
}

// SeekFrame returns the seek target, valid only while a seek command is
// pending
func (d *Decoder) SeekFrame() int64 {
	s := d.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if audio.DebugChecks && s.command != CmdSeek {
		panic("decoder: seek target queried without pending seek")
	}
	return s.seekFrame
}

// SeekTime returns the seek target as seconds from track start
func (d *Decoder) SeekTime() float64 {
	return float64(d.SeekFrame()) / float64(d.session.format.SampleRate)
}

// AckSeek confirms a successful backend seek. newTime is recomputed from the
// frame the backend actually landed on, which may differ from the request.
// The command register clears and streaming resumes; the chunk being filled
// is dropped since its contents predate the seek.
func (d *Decoder) AckSeek(newTime float64) {
	s := d.session
	s.mu.Lock()
	if audio.DebugChecks && s.command != CmdSeek {
		panic("decoder: seek ack without pending seek")
	}
	s.command = CmdNone
	s.seekDone = true
	s.seekErr = nil
	if s.phase == phaseSeeking {
		s.phase = phaseStreaming
	}
	s.mu.Unlock()
	s.cond.Broadcast()

	d.time = newTime
	if d.chunk != nil {
		s.pool.Release(d.chunk)
		d.chunk = nil
	}
}

// SeekError reports a failed backend seek. Recoverable: the command register
// clears and streaming resumes from wherever the backend's position ended
// up; the controller sees ErrSeekFailed.
func (d *Decoder) SeekError() {
	s := d.session
	s.mu.Lock()
	if audio.DebugChecks && s.command != CmdSeek {
		panic("decoder: seek error without pending seek")
	}
	s.command = CmdNone
	s.seekDone = true
	s.seekErr = ErrSeekFailed
	if s.phase == phaseSeeking {
		s.phase = phaseStreaming
	}
	s.mu.Unlock()
	s.cond.Broadcast()
}

// finish flushes the trailing partial chunk and ends the session
func (d *Decoder) finish() {
	if d.chunk != nil {
		if d.chunk.Empty() || d.session.pending() == CmdStop {
			d.session.pool.Release(d.chunk)
			d.chunk = nil
		} else {
			d.submit()
		}
	}
	d.session.finish()
}
