// ABOUTME: DSD-over-PCM packer with reusable scratch buffer
// ABOUTME: Carries marker parity across calls to keep DoP framing consistent
package dsd

import (
	"encoding/binary"

	"github.com/harperreed/wavecore/pkg/audio"
)

// DoP marker bytes. Each 24-bit output sample carries 16 DSD bits plus one
// marker byte; the marker alternates between consecutive output frames so the
// receiver can verify framing.
const (
	marker1 = 0x05
	marker2 = 0xFA
)

// Packer converts 1-bit DSD sample bytes into DoP words. The scratch buffer
// is reused across calls and never shrinks, and the marker parity counter
// spans call boundaries: splitting a stream into differently sized Pack calls
// yields the same word sequence as one large call.
//
// A Packer must not be shared between concurrent decode workers.
type Packer struct {
	buf []byte
	odd bool
}

// Pack packs src, interleaved DSD sample bytes for the given channel count,
// into little-endian 32-bit DoP words of the form 0xFF mm aa bb, where aa and
// bb are two consecutive DSD bytes of one channel and mm is the alternating
// marker. Bits of the same channel stay grouped within each output frame and
// channel order is preserved.
//
// The returned slice points into the scratch buffer and is valid until the
// next call. len(src) must be a whole multiple of channels. A trailing odd
// source frame (one byte per channel) is discarded, so callers should feed an
// even number of source frames per call.
func (p *Packer) Pack(channels int, src []byte) []byte {
	if audio.DebugChecks {
		if channels < 1 || channels > audio.MaxChannels {
			panic("dsd: invalid channel count")
		}
		if len(src)%channels != 0 {
			panic("dsd: source not a whole number of frames")
		}
	}

	srcFrames := len(src) / channels
	outFrames := srcFrames / 2
	need := outFrames * channels * 4

	if cap(p.buf) < need {
		p.buf = make([]byte, need)
	}
	dst := p.buf[:need]

	o := 0
	for i := 0; i < outFrames; i++ {
		marker := uint32(marker1)
		if p.odd {
			marker = marker2
		}
		base := i * 2 * channels
		for c := 0; c < channels; c++ {
			// two DSD bytes of the same channel per 24-bit sample
			word := uint32(0xFF)<<24 | marker<<16 |
				uint32(src[base+c])<<8 | uint32(src[base+channels+c])
			binary.LittleEndian.PutUint32(dst[o:], word)
			o += 4
		}
		p.odd = !p.odd
	}

	return dst
}

// PackedSize returns the number of bytes Pack will produce for a source of
// srcLen bytes with the given channel count
func PackedSize(channels, srcLen int) int {
	return (srcLen / channels / 2) * channels * 4
}
