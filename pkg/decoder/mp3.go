// ABOUTME: MP3 codec backend
// ABOUTME: Direct-file decode and scan over hajimehoshi/go-mp3
package decoder

import (
	"fmt"
	"io"
	"log"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/harperreed/wavecore/pkg/audio"
)

// go-mp3 always emits 16-bit stereo, 4 bytes per frame
const mp3FrameSize = 4

// MP3Plugin decodes MPEG audio files. It is a direct-file backend: the
// library seeks within the decoded byte stream, which needs a real file
// handle underneath to be efficient.
type MP3Plugin struct{}

// NewMP3Plugin creates the mp3 backend
func NewMP3Plugin() *MP3Plugin {
	return &MP3Plugin{}
}

func (*MP3Plugin) Name() string        { return "mp3" }
func (*MP3Plugin) Suffixes() []string  { return []string{"mp3"} }
func (*MP3Plugin) MimeTypes() []string { return []string{"audio/mpeg"} }

// mp3Open opens path and probes the stream parameters. On error the track is
// abandoned; the caller logs and moves on.
func mp3Open(path string) (*os.File, *mp3.Decoder, audio.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, audio.Format{}, fmt.Errorf("failed to open %s: %w", path, err)
	}

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, nil, audio.Format{}, fmt.Errorf("failed to probe %s: %w", path, err)
	}

	format, err := audio.CheckFormat(dec.SampleRate(), 16, 2)
	if err != nil {
		f.Close()
		return nil, nil, audio.Format{}, err
	}

	return f, dec, format, nil
}

// DecodeFile runs the decode loop on path
func (*MP3Plugin) DecodeFile(d *Decoder, path string) {
	f, dec, format, err := mp3Open(path)
	if err != nil {
		log.Printf("mp3: %v", err)
		return
	}
	defer f.Close()

	numFrames := dec.Length() / mp3FrameSize
	d.Announce(format, true, float64(numFrames)/float64(format.SampleRate))

	// one constant-rate estimate from the file size; the library exposes
	// no per-frame rate information
	var kbps uint16
	if st, err := f.Stat(); err == nil && numFrames > 0 {
		seconds := float64(numFrames) / float64(format.SampleRate)
		kbps = uint16(float64(st.Size()) * 8 / seconds / 1000)
	}

	buf := make([]byte, 8192)
	for {
		n, err := io.ReadFull(dec, buf)
		if n == 0 {
			if err != io.EOF {
				log.Printf("mp3: read failed in %s: %v", path, err)
			}
			break
		}

		cmd := d.Data(buf[:n-n%mp3FrameSize], kbps)

		if cmd == CmdSeek {
			target := d.SeekFrame() * mp3FrameSize
			pos, serr := dec.Seek(target, io.SeekStart)
			if serr != nil {
				d.SeekError()
			} else {
				d.AckSeek(float64(pos/mp3FrameSize) / float64(format.SampleRate))
			}
			cmd = CmdNone
		}

		if cmd != CmdNone {
			break
		}
	}
}

// ScanFile probes path for its duration without decoding audio. ID3 tag
// extraction belongs to the metadata layer, not this backend.
func (*MP3Plugin) ScanFile(path string, sink TagSink) error {
	f, dec, format, err := mp3Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	numFrames := dec.Length() / mp3FrameSize
	if numFrames <= 0 {
		return fmt.Errorf("cannot determine length of %s", path)
	}

	sink.EmitDuration(float64(numFrames) / float64(format.SampleRate))
	return nil
}
