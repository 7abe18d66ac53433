package domain

import "github.com/google/uuid"

// Place is a geographic point of interest attached to a trip.
// Lat and Lng are decimal degrees. The JSON tag is "lng" (not "lon") to match
// the persisted snapshot layout.
type Place struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Lat   float64   `json:"lat"`
	Lng   float64   `json:"lng"`
	Notes *string   `json:"notes,omitempty"`
}
