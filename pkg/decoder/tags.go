// ABOUTME: Tag sink contract for scan entry points
// ABOUTME: TagCollector gathers emitted fields and duration into an audio.Tag
package decoder

import "github.com/harperreed/wavecore/pkg/audio"

// TagSink receives the metadata a scan entry point discovers. Emit may be
// called zero or more times; EmitDuration is called exactly once before a
// successful scan returns. Absent fields are simply never emitted.
type TagSink interface {
	Emit(field audio.TagField, value string)
	EmitDuration(seconds float64)
}

// TagCollector is the standard TagSink, collecting fields into a Tag
type TagCollector struct {
	tag         *audio.Tag
	duration    float64
	hasDuration bool
}

// NewTagCollector creates an empty collector
func NewTagCollector() *TagCollector {
	return &TagCollector{tag: audio.NewTag()}
}

func (c *TagCollector) Emit(field audio.TagField, value string) {
	c.tag.Set(field, value)
}

func (c *TagCollector) EmitDuration(seconds float64) {
	c.duration = seconds
	c.hasDuration = true
}

// Tag returns the collected fields
func (c *TagCollector) Tag() *audio.Tag {
	return c.tag
}

// Duration returns the emitted duration and whether one was emitted
func (c *TagCollector) Duration() (float64, bool) {
	return c.duration, c.hasDuration
}
