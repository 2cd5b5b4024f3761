// ABOUTME: Tests for the MP3 codec backend
// ABOUTME: Covers descriptor metadata and failure paths on unreadable sources
package decoder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/wavecore/pkg/audio"
)

func TestMP3PluginDescriptor(t *testing.T) {
	p := NewMP3Plugin()
	if p.Name() != "mp3" {
		t.Errorf("unexpected name %q", p.Name())
	}
	if len(p.Suffixes()) != 1 || p.Suffixes()[0] != "mp3" {
		t.Errorf("unexpected suffixes %v", p.Suffixes())
	}
	if len(p.MimeTypes()) != 1 || p.MimeTypes()[0] != "audio/mpeg" {
		t.Errorf("unexpected MIME types %v", p.MimeTypes())
	}
}

func TestMP3DecodeMissingFile(t *testing.T) {
	pool := audio.NewPool(2)
	s := NewSession(pool, 1)
	s.RunFile(NewMP3Plugin(), filepath.Join(t.TempDir(), "missing.mp3"))

	select {
	case <-s.Announced():
		t.Error("unexpected announce for missing file")
	default:
	}
	if _, total := drain(s); total != 0 {
		t.Errorf("expected no bytes, got %d", total)
	}
}

func TestMP3DecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.mp3")
	if err := os.WriteFile(path, []byte("this is not an mpeg stream at all"), 0644); err != nil {
		t.Fatal(err)
	}

	pool := audio.NewPool(2)
	s := NewSession(pool, 1)
	s.RunFile(NewMP3Plugin(), path)

	select {
	case <-s.Announced():
		t.Error("unexpected announce for garbage file")
	default:
	}
	if _, total := drain(s); total != 0 {
		t.Errorf("expected no bytes, got %d", total)
	}
}

func TestMP3ScanMissingFile(t *testing.T) {
	p := NewMP3Plugin()
	if err := p.ScanFile(filepath.Join(t.TempDir(), "missing.mp3"), NewTagCollector()); err == nil {
		t.Error("expected error scanning missing file")
	}
}
