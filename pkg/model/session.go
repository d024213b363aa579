package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionID string

// NewSessionID generates a new unique SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// ImageRef is an inline binary image with its MIME type.
// Data is base64-encoded when the session is serialized.
type ImageRef struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// Session is the unit of persistence: one topic, its discovery result, and
// the artifacts later stages attach to it.
//
// Result is set at creation and never mutated afterwards. TimelineImage and
// LiteratureReview start empty and are replaced outright on each
// regeneration.
type Session struct {
	ID        SessionID        `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Topic     string           `json:"topic"`
	Result    *DiscoveryResult `json:"result"`

	TimelineImage    *ImageRef `json:"timelineImage,omitempty"`
	LiteratureReview string    `json:"literatureReview,omitempty"`

	Config GenerationConfig `json:"config"`
}
