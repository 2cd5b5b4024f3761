// ABOUTME: Audio format type definitions
// ABOUTME: Defines Format with frame-size math and sample conversion helpers
package audio

import "fmt"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23

	// MaxSampleRate bounds what CheckFormat accepts (4x 192kHz hi-res)
	MaxSampleRate = 768000

	// MaxChannels bounds what CheckFormat accepts (7.1 surround)
	MaxChannels = 8
)

// Format describes the PCM layout of a decoded audio stream
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int // bits per sample: 8, 16, 24 or 32
}

// BytesPerSample returns the storage size of one sample.
// 24-bit samples are carried padded in a 32-bit container.
func (f Format) BytesPerSample() int {
	switch f.BitDepth {
	case 8:
		return 1
	case 16:
		return 2
	case 24, 32:
		return 4
	default:
		return 0
	}
}

// FrameSize returns the size in bytes of one frame (one sample per channel)
func (f Format) FrameSize() int {
	return f.Channels * f.BytesPerSample()
}

// Valid reports whether the format is usable by the decode pipeline
func (f Format) Valid() bool {
	return f.SampleRate > 0 && f.SampleRate <= MaxSampleRate &&
		f.Channels > 0 && f.Channels <= MaxChannels &&
		f.BytesPerSample() > 0
}

// String formats as "rate:bits:channels", e.g. "44100:16:2"
func (f Format) String() string {
	return fmt.Sprintf("%d:%d:%d", f.SampleRate, f.BitDepth, f.Channels)
}

// CheckFormat builds a Format and validates it, for use at the point where a
// backend library reports its resolved stream parameters
func CheckFormat(sampleRate, bitDepth, channels int) (Format, error) {
	f := Format{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
	}
	if !f.Valid() {
		return Format{}, fmt.Errorf("invalid audio format %s", f)
	}
	return f, nil
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit playback)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit (or 16-bit) to 16-bit range
	return int16(sample >> 8)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	// Left-shift to position 16-bit value in upper bits
	return int32(sample) << 8
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	// Take lower 24 bits, pack little-endian
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	// Reconstruct 24-bit value and sign-extend to 32-bit
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF // Set upper 8 bits to 1 for negative values
	}
	return val
}
