// ABOUTME: Metadata tag snapshot carried by chunks
// ABOUTME: Defines TagField enum and the Tag container scanners emit into
package audio

// TagField identifies one metadata field of a track
type TagField int

const (
	TagTitle TagField = iota
	TagArtist
	TagAlbum
	TagComment
	TagDate
	TagTrack
	TagGenre
	numTagFields
)

var tagFieldNames = [numTagFields]string{
	"title",
	"artist",
	"album",
	"comment",
	"date",
	"track",
	"genre",
}

func (f TagField) String() string {
	if f < 0 || f >= numTagFields {
		return "unknown"
	}
	return tagFieldNames[f]
}

// Tag is a snapshot of track metadata. A chunk owns at most one Tag; it is
// attached when metadata changes mid-stream and released when the chunk is
// recycled.
type Tag struct {
	fields map[TagField]string
}

// NewTag creates an empty tag
func NewTag() *Tag {
	return &Tag{fields: make(map[TagField]string)}
}

// Set records a field value, replacing any previous value
func (t *Tag) Set(f TagField, value string) {
	t.fields[f] = value
}

// Get returns a field value and whether it was set
func (t *Tag) Get(f TagField) (string, bool) {
	v, ok := t.fields[f]
	return v, ok
}

// Len returns the number of fields set
func (t *Tag) Len() int {
	return len(t.fields)
}

// Each visits the set fields in declaration order
func (t *Tag) Each(fn func(f TagField, value string)) {
	for f := TagField(0); f < numTagFields; f++ {
		if v, ok := t.fields[f]; ok {
			fn(f, v)
		}
	}
}
