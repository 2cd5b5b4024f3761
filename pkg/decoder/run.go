// ABOUTME: Decode session runners
// ABOUTME: Drive one backend against one source on the calling worker
package decoder

import (
	"fmt"
	"log"

	"github.com/harperreed/wavecore/pkg/input"
)

// RunFile drives the backend's file-decode entry point on the calling
// goroutine and finishes the session when it returns. Intended to run on a
// dedicated decode worker.
func (s *Session) RunFile(p FileDecoder, path string) {
	d := &Decoder{session: s}
	p.DecodeFile(d, path)
	d.finish()
	log.Printf("session %s: finished %s", s.ID, path)
}

// RunStream drives the backend's stream-decode entry point on the calling
// goroutine and finishes the session when it returns
func (s *Session) RunStream(p StreamDecoder, src input.Stream) {
	d := &Decoder{session: s}
	p.DecodeStream(d, src)
	d.finish()
	log.Printf("session %s: finished %s", s.ID, src.URI())
}

// RunPath decodes a local file with whichever decode capability the backend
// has, preferring the direct-file variant. The session finishes even when no
// capability matches or the source cannot be opened.
func (s *Session) RunPath(p Plugin, path string) error {
	if fd, ok := p.(FileDecoder); ok {
		s.RunFile(fd, path)
		return nil
	}

	if sd, ok := p.(StreamDecoder); ok {
		src, err := input.OpenFile(path)
		if err != nil {
			log.Printf("session %s: %v", s.ID, err)
			s.finish()
			return err
		}
		defer src.Close()
		s.RunStream(sd, src)
		return nil
	}

	s.finish()
	return fmt.Errorf("plugin %q has no decode entry point", p.Name())
}
