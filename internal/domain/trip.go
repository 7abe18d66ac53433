// Package domain contains the core data types for the Travel Diaries
// application. This package has no dependencies beyond uuid and is imported
// by every other internal package (store, service, handler).
//
// JSON tags match the persisted snapshot layout exactly: the snapshot written
// by the store must round-trip the original camelCase field names, so this
// package uses camelCase rather than snake_case.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level itinerary record. A trip owns its places and budget
// items: they are created through the trip and destroyed with it.
//
// StartDate and EndDate are opaque calendar-date strings ("2006-01-02") taken
// from user input. End-before-start is deliberately not enforced.
type Trip struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Destination string       `json:"destination"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	CoverImage  *string      `json:"coverImage,omitempty"`
	Description *string      `json:"description,omitempty"`
	Places      []Place      `json:"places"`
	Budget      []BudgetItem `json:"budget"`
	TotalBudget float64      `json:"totalBudget"`
	Currency    string       `json:"currency"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Spent returns the sum of all budget item amounts. It is recomputed on every
// call and never cached, so it cannot drift from the budget list.
func (t Trip) Spent() float64 {
	var total float64
	for _, item := range t.Budget {
		total += item.Amount
	}
	return total
}

// Remaining returns the unspent portion of the total budget.
// It may be negative when the trip is over budget.
func (t Trip) Remaining() float64 {
	return t.TotalBudget - t.Spent()
}

// TripPatch carries a partial update for a trip. Nil fields are left
// unchanged. Places and budget items are managed through their own
// operations and cannot be patched here.
type TripPatch struct {
	Name        *string  `json:"name,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"`
	EndDate     *string  `json:"endDate,omitempty"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	Description *string  `json:"description,omitempty"`
	TotalBudget *float64 `json:"totalBudget,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
}
