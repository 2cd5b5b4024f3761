// ABOUTME: Codec backend contract and plugin registry
// ABOUTME: Capability interfaces plus suffix/MIME dispatch with init/finish lifecycle
package decoder

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/harperreed/wavecore/pkg/input"
)

// Plugin is the identity every codec backend carries. Decode and scan entry
// points are optional capabilities declared by also implementing FileDecoder,
// StreamDecoder, FileScanner, StreamScanner or Lifecycle.
type Plugin interface {
	// Name identifies the backend in logs and for explicit selection
	Name() string

	// Suffixes lists recognized filename suffixes, without the dot.
	// May be empty; the backend is then only reachable by name.
	Suffixes() []string

	// MimeTypes lists recognized MIME types. May be empty.
	MimeTypes() []string
}

// Lifecycle is implemented by backends whose library needs process-wide
// setup. Init and Finish are each called at most once, bracketing all uses.
type Lifecycle interface {
	Init() error
	Finish()
}

// FileDecoder decodes from a filesystem path, for libraries that require
// direct file handles for internal seeking
type FileDecoder interface {
	DecodeFile(d *Decoder, path string)
}

// StreamDecoder decodes from an abstract byte source
type StreamDecoder interface {
	DecodeStream(d *Decoder, src input.Stream)
}

// FileScanner extracts duration and tags from a path without decoding audio
type FileScanner interface {
	ScanFile(path string, sink TagSink) error
}

// StreamScanner extracts duration and tags from a byte source without
// decoding audio
type StreamScanner interface {
	ScanStream(src input.Stream, sink TagSink) error
}

// Registry holds the enabled codec backends in registration order and owns
// their process-wide lifecycle: Init hooks run once during construction,
// Finish hooks once on Close. Decode and scan entry points must not be used
// outside that window.
type Registry struct {
	plugins   []Plugin
	closeOnce sync.Once
}

// NewRegistry runs the Init hook of each plugin and keeps the ones that
// succeed. A failed Init disables that backend with a logged warning; the
// rest stay usable.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{}
	for _, p := range plugins {
		if lc, ok := p.(Lifecycle); ok {
			if err := lc.Init(); err != nil {
				log.Printf("decoder: plugin %q disabled: %v", p.Name(), err)
				continue
			}
		}
		r.plugins = append(r.plugins, p)
	}
	return r
}

// Close runs the Finish hooks. Safe to call more than once.
func (r *Registry) Close() {
	r.closeOnce.Do(func() {
		for _, p := range r.plugins {
			if lc, ok := p.(Lifecycle); ok {
				lc.Finish()
			}
		}
	})
}

// Plugins returns the enabled backends in registration order
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// ByName returns the backend with the given name, or nil
func (r *Registry) ByName(name string) Plugin {
	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// BySuffix returns the first backend recognizing the filename suffix
// (without the dot, case-insensitive), or nil
func (r *Registry) BySuffix(suffix string) Plugin {
	for _, p := range r.plugins {
		for _, s := range p.Suffixes() {
			if strings.EqualFold(s, suffix) {
				return p
			}
		}
	}
	return nil
}

// ByMime returns the first backend recognizing the MIME type, or nil
func (r *Registry) ByMime(mimeType string) Plugin {
	for _, p := range r.plugins {
		for _, m := range p.MimeTypes() {
			if strings.EqualFold(m, mimeType) {
				return p
			}
		}
	}
	return nil
}

// ForPath dispatches on the filename extension of path, or nil
func (r *Registry) ForPath(path string) Plugin {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil
	}
	return r.BySuffix(ext)
}

// Scan runs the backend's scan entry point on path, preferring the file
// variant when both exist
func Scan(p Plugin, path string, sink TagSink) error {
	if fs, ok := p.(FileScanner); ok {
		return fs.ScanFile(path, sink)
	}
	if ss, ok := p.(StreamScanner); ok {
		src, err := input.OpenFile(path)
		if err != nil {
			return err
		}
		defer src.Close()
		return ss.ScanStream(src, sink)
	}
	return fmt.Errorf("plugin %q has no scan entry point", p.Name())
}
