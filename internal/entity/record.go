package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdelacruz-io/campus-records/constants"
)

// Record is the normalized output of one extraction: flat metadata, the
// structured domain payload, and the rendered report text. A Record is
// immutable once built and is handed to the storage sink as-is.
type Record struct {
	ID            uuid.UUID         `json:"id" bson:"_id"`
	Kind          constants.DocKind `json:"kind" bson:"kind"`
	Collection    string            `json:"collection" bson:"-"`
	SourcePath    string            `json:"source_path" bson:"source_path"`
	ContentHash   string            `json:"content_hash,omitempty" bson:"content_hash,omitempty"`
	Metadata      map[string]string `json:"metadata" bson:"metadata"`
	Payload       any               `json:"payload" bson:"payload"`
	FormattedText string            `json:"formatted_text" bson:"formatted_text"`
	ExtractedAt   time.Time         `json:"extracted_at" bson:"extracted_at"`
}

// NewRecord stamps identity and timestamps on a freshly extracted payload.
func NewRecord(kind constants.DocKind, sourcePath string, payload any) *Record {
	return &Record{
		ID:          uuid.New(),
		Kind:        kind,
		Collection:  kind.Collection(),
		SourcePath:  sourcePath,
		Metadata:    make(map[string]string),
		Payload:     payload,
		ExtractedAt: time.Now().UTC(),
	}
}
