package model

import (
	"time"

	"motion/internal/domain/entity"
)

// SampleDoc is the `locations/{id}` document.
type SampleDoc struct {
	UserID    string    `firestore:"user_id"`
	Latitude  float64   `firestore:"latitude"`
	Longitude float64   `firestore:"longitude"`
	Timestamp time.Time `firestore:"timestamp"`
	Accuracy  float64   `firestore:"accuracy"`
}

// ToEntity converts the document back to the domain sample.
func (d *SampleDoc) ToEntity(id string) *entity.LocationSample {
	return &entity.LocationSample{
		ID:         id,
		IdentityID: d.UserID,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
		Timestamp:  d.Timestamp,
		Accuracy:   d.Accuracy,
	}
}

// NewSampleDoc builds the document for a sample.
func NewSampleDoc(sample *entity.LocationSample) *SampleDoc {
	return &SampleDoc{
		UserID:    sample.IdentityID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Timestamp: sample.Timestamp,
		Accuracy:  sample.Accuracy,
	}
}
