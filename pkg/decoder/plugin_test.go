// ABOUTME: Tests for the plugin registry
// ABOUTME: Covers suffix/MIME dispatch, init failure handling and lifecycle bracketing
package decoder

import (
	"errors"
	"testing"
)

type fakePlugin struct {
	name     string
	suffixes []string
	mimes    []string
	initErr  error
	inits    int
	finishes int
}

func (p *fakePlugin) Name() string        { return p.name }
func (p *fakePlugin) Suffixes() []string  { return p.suffixes }
func (p *fakePlugin) MimeTypes() []string { return p.mimes }

func (p *fakePlugin) Init() error {
	p.inits++
	return p.initErr
}

func (p *fakePlugin) Finish() {
	p.finishes++
}

func TestRegistryDispatch(t *testing.T) {
	first := &fakePlugin{name: "first", suffixes: []string{"wav", "aiff"}, mimes: []string{"audio/x-wav"}}
	second := &fakePlugin{name: "second", suffixes: []string{"wav"}}
	r := NewRegistry(first, second)
	defer r.Close()

	if got := r.BySuffix("wav"); got != first {
		t.Error("expected first registered plugin to win")
	}
	if got := r.BySuffix("WAV"); got != first {
		t.Error("expected case-insensitive suffix match")
	}
	if got := r.BySuffix("aiff"); got != first {
		t.Error("expected match on secondary suffix")
	}
	if got := r.BySuffix("ogg"); got != nil {
		t.Errorf("expected nil for unknown suffix, got %v", got)
	}

	if got := r.ByMime("audio/x-wav"); got != first {
		t.Error("expected MIME match")
	}
	if got := r.ByMime("audio/ogg"); got != nil {
		t.Errorf("expected nil for unknown MIME type, got %v", got)
	}

	if got := r.ByName("second"); got != second {
		t.Error("expected lookup by name")
	}

	if got := r.ForPath("/music/track.Wav"); got != first {
		t.Error("expected dispatch on file extension")
	}
	if got := r.ForPath("/music/noext"); got != nil {
		t.Error("expected nil for path without extension")
	}
}

func TestRegistryRealPlugins(t *testing.T) {
	r := NewRegistry(NewMP3Plugin(), NewFLACPlugin())
	defer r.Close()

	if p := r.ForPath("/music/a.mp3"); p == nil || p.Name() != "mp3" {
		t.Errorf("expected mp3 plugin, got %v", p)
	}
	if p := r.ForPath("/music/A.FLAC"); p == nil || p.Name() != "flac" {
		t.Errorf("expected flac plugin, got %v", p)
	}
	if p := r.ByMime("audio/flac"); p == nil || p.Name() != "flac" {
		t.Errorf("expected flac plugin by MIME, got %v", p)
	}
}

func TestRegistryInitFailureDisables(t *testing.T) {
	broken := &fakePlugin{name: "broken", initErr: errors.New("library unavailable")}
	working := &fakePlugin{name: "working", suffixes: []string{"wav"}}

	r := NewRegistry(broken, working)

	if len(r.Plugins()) != 1 {
		t.Fatalf("expected 1 enabled plugin, got %d", len(r.Plugins()))
	}
	if r.ByName("broken") != nil {
		t.Error("expected failed plugin to be disabled")
	}
	if r.ByName("working") == nil {
		t.Error("expected working plugin to stay enabled")
	}

	r.Close()
	if broken.finishes != 0 {
		t.Error("expected no finish hook on disabled plugin")
	}
	if working.finishes != 1 {
		t.Errorf("expected 1 finish call, got %d", working.finishes)
	}
}

func TestRegistryLifecycleOnce(t *testing.T) {
	p := &fakePlugin{name: "once"}
	r := NewRegistry(p)

	r.Close()
	r.Close()

	if p.inits != 1 {
		t.Errorf("expected 1 init call, got %d", p.inits)
	}
	if p.finishes != 1 {
		t.Errorf("expected 1 finish call, got %d", p.finishes)
	}
}

func TestScanWithoutCapability(t *testing.T) {
	p := &fakePlugin{name: "mute"}
	if err := Scan(p, "/music/a.wav", NewTagCollector()); err == nil {
		t.Error("expected error scanning with a plugin lacking scan entry points")
	}
}
