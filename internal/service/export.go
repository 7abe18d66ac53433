package service

import (
	"context"
	"fmt"

	"github.com/karthik2365/Travel-diaries/internal/domain"
)

// ExportRow is one flattened line of the full export: trip fields repeated
// per place. Trips with no places contribute one row with empty place fields.
type ExportRow struct {
	TripID      string   `json:"tripId"`
	TripName    string   `json:"tripName"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	TotalBudget float64  `json:"totalBudget"`
	Spent       float64  `json:"spent"`
	Currency    string   `json:"currency"`
	PlaceName   string   `json:"placeName,omitempty"`
	PlaceLat    *float64 `json:"placeLat,omitempty"`
	PlaceLng    *float64 `json:"placeLng,omitempty"`
}

// ExportService assembles a full flat export of all trips and their places.
type ExportService struct {
	trips TripCollection
}

// NewExportService constructs an ExportService backed by the provided
// collection.
func NewExportService(trips TripCollection) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per place across all trips, in trip creation
// order and place insertion order.
func (s *ExportService) Export(ctx context.Context) ([]ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]ExportRow, 0, len(trips))
	for _, t := range trips {
		if len(t.Places) == 0 {
			rows = append(rows, tripRow(t))
			continue
		}
		for _, p := range t.Places {
			row := tripRow(t)
			row.PlaceName = p.Name
			lat, lng := p.Lat, p.Lng
			row.PlaceLat = &lat
			row.PlaceLng = &lng
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func tripRow(t domain.Trip) ExportRow {
	return ExportRow{
		TripID:      t.ID.String(),
		TripName:    t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		TotalBudget: t.TotalBudget,
		Spent:       t.Spent(),
		Currency:    t.Currency,
	}
}
