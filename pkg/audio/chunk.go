// ABOUTME: Fixed-capacity frame-aligned chunk of decoded audio
// ABOUTME: The unit of transfer between the decode stage and the playback stage
package audio

// ChunkCapacity is the fixed payload size of a chunk in bytes, enough for
// roughly 1/8 second of CD-quality audio.
const ChunkCapacity = 22050

// Chunk holds one homogeneous-format slice of decoded PCM plus the timestamp,
// bitrate and optional tag snapshot of its first frame. A chunk is written by
// exactly one decode worker until full, handed to the playback stage, drained,
// and recycled through a Pool; it is never written and read concurrently.
type Chunk struct {
	data    [ChunkCapacity]byte
	length  int
	format  Format
	time    float64
	bitRate uint16
	tag     *Tag
}

// checkFormat reports whether writing data of the given format into the chunk
// would keep its contents homogeneous
func (c *Chunk) checkFormat(f Format) bool {
	return c.length == 0 || c.format == f
}

// Write returns a writable region sized to the largest whole number of frames
// that still fit, or nil if less than one frame of capacity remains (the
// caller should flush the chunk and obtain a fresh one). The first write into
// an empty chunk latches time and bitRate; later writes never change them.
// The chunk must be empty or already hold the same format.
func (c *Chunk) Write(f Format, time float64, bitRate uint16) []byte {
	if DebugChecks {
		if !f.Valid() {
			panic("audio: chunk write with invalid format")
		}
		if !c.checkFormat(f) {
			panic("audio: chunk format changed mid-chunk")
		}
	}

	if c.length == 0 {
		// nobody has set bitRate and time yet
		c.bitRate = bitRate
		c.time = time
		c.format = f
	}

	frameSize := f.FrameSize()
	numFrames := (ChunkCapacity - c.length) / frameSize
	if numFrames == 0 {
		return nil
	}

	return c.data[c.length : c.length+numFrames*frameSize]
}

// Expand commits n bytes previously obtained from Write and reports whether
// the chunk should now be treated as full, i.e. less than one more frame
// fits. n must be a whole multiple of the frame size.
func (c *Chunk) Expand(f Format, n int) bool {
	frameSize := f.FrameSize()

	if DebugChecks {
		if c.length+n > ChunkCapacity {
			panic("audio: chunk expand past capacity")
		}
		if c.format != f {
			panic("audio: chunk expand with mismatching format")
		}
		if n%frameSize != 0 {
			panic("audio: chunk expand with partial frame")
		}
	}

	c.length += n

	return c.length+frameSize > ChunkCapacity
}

// Bytes returns the committed payload
func (c *Chunk) Bytes() []byte {
	return c.data[:c.length]
}

// Len returns the number of committed bytes
func (c *Chunk) Len() int {
	return c.length
}

// Empty reports whether nothing has been committed yet
func (c *Chunk) Empty() bool {
	return c.length == 0
}

// Format returns the format of the committed payload; undefined while the
// chunk is empty
func (c *Chunk) Format() Format {
	return c.format
}

// Time returns the playback timestamp in seconds of the chunk's first frame
func (c *Chunk) Time() float64 {
	return c.time
}

// BitRate returns the source bit rate in kbit/s when the first frame was
// decoded
func (c *Chunk) BitRate() uint16 {
	return c.bitRate
}

// Tag returns the attached metadata snapshot, or nil
func (c *Chunk) Tag() *Tag {
	return c.tag
}

// AttachTag hands ownership of a metadata snapshot to the chunk. At most one
// tag per chunk.
func (c *Chunk) AttachTag(t *Tag) {
	if DebugChecks && c.tag != nil {
		panic("audio: chunk already carries a tag")
	}
	c.tag = t
}

// Reset drains the chunk: length back to zero, format cleared, tag released
func (c *Chunk) Reset() {
	c.length = 0
	c.format = Format{}
	c.time = 0
	c.bitRate = 0
	c.tag = nil
}
