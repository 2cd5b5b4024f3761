// ABOUTME: Tests for audio format and sample helpers
// ABOUTME: Covers frame-size math, format validation and sample conversions
package audio

import "testing"

func TestFormatFrameSize(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		expected int
	}{
		{"cd quality", Format{44100, 2, 16}, 4},
		{"hi-res stereo", Format{192000, 2, 24}, 8},
		{"mono 8-bit", Format{8000, 1, 8}, 1},
		{"5.1 32-bit", Format{48000, 6, 32}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.FrameSize(); got != tt.expected {
				t.Errorf("expected frame size %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCheckFormat(t *testing.T) {
	format, err := CheckFormat(44100, 16, 2)
	if err != nil {
		t.Fatalf("expected valid format: %v", err)
	}
	if format.SampleRate != 44100 || format.Channels != 2 || format.BitDepth != 16 {
		t.Errorf("unexpected format %s", format)
	}
}

func TestCheckFormatInvalid(t *testing.T) {
	tests := []struct {
		name                     string
		rate, bitDepth, channels int
	}{
		{"zero rate", 0, 16, 2},
		{"rate too high", MaxSampleRate + 1, 16, 2},
		{"zero channels", 44100, 16, 0},
		{"too many channels", 44100, 16, MaxChannels + 1},
		{"odd bit depth", 44100, 12, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CheckFormat(tt.rate, tt.bitDepth, tt.channels); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	f := Format{SampleRate: 44100, Channels: 2, BitDepth: 16}
	if got := f.String(); got != "44100:16:2" {
		t.Errorf("expected 44100:16:2, got %s", got)
	}
}

func TestSampleFromInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int16
		expected int32
	}{
		{"zero", 0, 0},
		{"positive", 100, 100 << 8},
		{"negative", -100, -100 << 8},
		{"max", 32767, 32767 << 8},
		{"min", -32768, -32768 << 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleToInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected int16
	}{
		{"zero", 0, 0},
		{"positive", 100 << 8, 100},
		{"negative", -100 << 8, -100},
		{"24bit positive", 1000000, 3906},
		{"24bit negative", -1000000, -3907},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleToInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSample24BitRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input int32
	}{
		{"zero", 0},
		{"positive", 123456},
		{"negative", -123456},
		{"max", Max24Bit},
		{"min", Min24Bit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := SampleTo24Bit(tt.input)
			result := SampleFrom24Bit(packed)
			if result != tt.input {
				t.Errorf("expected %d, got %d", tt.input, result)
			}
		})
	}
}
