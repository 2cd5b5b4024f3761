// ABOUTME: FLAC codec backend
// ABOUTME: Stream decode and vorbis-comment scan over mewkiz/flac
package decoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/meta"

	"github.com/harperreed/wavecore/pkg/audio"
	"github.com/harperreed/wavecore/pkg/input"
)

// FLACPlugin decodes FLAC streams. It is a stream backend: the library
// consumes an io.ReadSeeker, adapted from the generic byte source.
type FLACPlugin struct{}

// NewFLACPlugin creates the flac backend
func NewFLACPlugin() *FLACPlugin {
	return &FLACPlugin{}
}

func (*FLACPlugin) Name() string       { return "flac" }
func (*FLACPlugin) Suffixes() []string { return []string{"flac", "fla"} }
func (*FLACPlugin) MimeTypes() []string {
	return []string{"audio/flac", "audio/x-flac"}
}

// DecodeStream runs the decode loop on src
func (*FLACPlugin) DecodeStream(d *Decoder, src input.Stream) {
	r := input.NewReader(src)

	var stream *flac.Stream
	var err error
	if src.Seekable() {
		stream, err = flac.NewSeek(r)
	} else {
		stream, err = flac.New(r)
	}
	if err != nil {
		log.Printf("flac: failed to open %s: %v", src.URI(), err)
		return
	}
	defer stream.Close()

	info := stream.Info
	bps := int(info.BitsPerSample)
	if bps != 16 && bps != 24 {
		// an expected occasional condition, not an error
		log.Printf("flac: unsupported bit depth %d in %s", bps, src.URI())
		return
	}

	format, err := audio.CheckFormat(int(info.SampleRate), bps, int(info.NChannels))
	if err != nil {
		log.Printf("flac: %v", err)
		return
	}

	d.Announce(format, src.Seekable(),
		float64(info.NSamples)/float64(format.SampleRate))

	frameSize := format.FrameSize()
	sampleSize := format.BytesPerSample()
	var buf []byte
	lastOffset := src.Offset()

	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if err != io.EOF {
				log.Printf("flac: read failed in %s: %v", src.URI(), err)
			}
			break
		}

		n := int(frame.BlockSize)
		need := n * frameSize
		if cap(buf) < need {
			buf = make([]byte, need)
		}
		out := buf[:need]

		for i := 0; i < n; i++ {
			for ch := 0; ch < format.Channels; ch++ {
				sample := frame.Subframes[ch].Samples[i]
				o := (i*format.Channels + ch) * sampleSize
				if sampleSize == 2 {
					binary.LittleEndian.PutUint16(out[o:], uint16(int16(sample)))
				} else {
					// 24-bit samples ride padded in a 32-bit container
					binary.LittleEndian.PutUint32(out[o:], uint32(sample))
				}
			}
		}

		// FLAC is variable bit rate; recompute from bytes consumed
		var kbps uint16
		if offset := src.Offset(); offset > lastOffset && n > 0 {
			bits := float64(offset-lastOffset) * 8
			seconds := float64(n) / float64(format.SampleRate)
			kbps = uint16(bits / seconds / 1000)
			lastOffset = offset
		}

		cmd := d.Data(out, kbps)

		if cmd == CmdSeek {
			pos, serr := stream.Seek(uint64(d.SeekFrame()))
			if serr != nil {
				d.SeekError()
			} else {
				// the library lands on a frame boundary at or
				// before the target
				d.AckSeek(float64(pos) / float64(format.SampleRate))
				lastOffset = src.Offset()
			}
			cmd = CmdNone
		}

		if cmd != CmdNone {
			break
		}
	}
}

// flacTagMap translates vorbis comment names to tag fields
var flacTagMap = map[string]audio.TagField{
	"title":       audio.TagTitle,
	"artist":      audio.TagArtist,
	"album":       audio.TagAlbum,
	"comment":     audio.TagComment,
	"description": audio.TagComment,
	"date":        audio.TagDate,
	"tracknumber": audio.TagTrack,
	"genre":       audio.TagGenre,
}

// ScanStream reads the metadata blocks of src without decoding audio,
// emitting the duration and any recognized vorbis comments
func (*FLACPlugin) ScanStream(src input.Stream, sink TagSink) error {
	stream, err := flac.Parse(input.NewReader(src))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", src.URI(), err)
	}
	defer stream.Close()

	info := stream.Info
	if info.NSamples == 0 || info.SampleRate == 0 {
		return fmt.Errorf("cannot determine duration of %s", src.URI())
	}
	sink.EmitDuration(float64(info.NSamples) / float64(info.SampleRate))

	for _, block := range stream.Blocks {
		vc, ok := block.Body.(*meta.VorbisComment)
		if !ok {
			continue
		}
		for _, tag := range vc.Tags {
			if field, ok := flacTagMap[strings.ToLower(tag[0])]; ok {
				sink.Emit(field, tag[1])
			}
		}
	}

	return nil
}
