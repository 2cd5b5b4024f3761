// ABOUTME: Entry point for the wavecore demo player
// ABOUTME: Decodes a local file through the chunk pipeline into oto output
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ebitengine/oto/v3"

	"github.com/harperreed/wavecore/pkg/audio"
	"github.com/harperreed/wavecore/pkg/decoder"
)

var (
	scan    = flag.Bool("scan", false, "Print duration and tags instead of playing")
	seekTo  = flag.Float64("seek", 0, "Seek to this position in seconds once playback starts")
	logFile = flag.String("log-file", "", "Log file path (default: stderr)")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <audio file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	registry := decoder.NewRegistry(decoder.NewMP3Plugin(), decoder.NewFLACPlugin())
	defer registry.Close()

	plugin := registry.ForPath(path)
	if plugin == nil {
		log.Fatalf("no decoder for %s", path)
	}

	if *scan {
		scanTrack(plugin, path)
		return
	}

	play(plugin, path)
}

// scanTrack prints the duration and tags of path
func scanTrack(plugin decoder.Plugin, path string) {
	collector := decoder.NewTagCollector()
	if err := decoder.Scan(plugin, path, collector); err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	if seconds, ok := collector.Duration(); ok {
		fmt.Printf("duration: %.1fs\n", seconds)
	}
	collector.Tag().Each(func(f audio.TagField, value string) {
		fmt.Printf("%s: %s\n", f, value)
	})
}

// play decodes path on a worker goroutine and feeds the chunks to the
// default audio device
func play(plugin decoder.Plugin, path string) {
	pool := audio.NewPool(32)
	session := decoder.NewSession(pool, 16)

	go func() {
		if err := session.RunPath(plugin, path); err != nil {
			log.Printf("decode failed: %v", err)
		}
	}()

	select {
	case <-session.Announced():
	case <-session.Done():
		log.Fatalf("could not decode %s", path)
	}

	format := session.Format()
	log.Printf("playing %s: %s, %.1fs", path, format, session.Duration())

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		log.Fatalf("failed to create oto context: %v", err)
	}
	<-ready

	pr, pw := io.Pipe()
	player := otoCtx.NewPlayer(pr)
	player.Play()
	defer player.Close()

	if *seekTo > 0 {
		go func() {
			frame := int64(*seekTo * float64(format.SampleRate))
			if err := session.Seek(frame); err != nil {
				log.Printf("seek failed: %v", err)
			}
		}()
	}

	for chunk := range session.Chunks() {
		if _, err := pw.Write(toInt16LE(chunk, format)); err != nil {
			session.Stop()
		}
		pool.Release(chunk)
	}
	pw.Close()
}

// toInt16LE converts a chunk's payload to the 16-bit layout oto plays;
// 24/32-bit samples are narrowed with the shared sample helpers
func toInt16LE(chunk *audio.Chunk, format audio.Format) []byte {
	data := chunk.Bytes()
	if format.BytesPerSample() == 2 {
		return data
	}

	numSamples := len(data) / 4
	out := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		sample := int32(binary.LittleEndian.Uint32(data[i*4:]))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(audio.SampleToInt16(sample)))
	}
	return out
}
