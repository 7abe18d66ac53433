package domain

import "github.com/google/uuid"

// Category classifies a budget item. The set is closed; ValidCategory gates
// anything arriving from the outside.
type Category string

const (
	CategoryAccommodation Category = "accommodation"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryActivities    Category = "activities"
	CategoryOther         Category = "other"
)

// ValidCategory reports whether c is one of the five known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryAccommodation, CategoryTransport, CategoryFood,
		CategoryActivities, CategoryOther:
		return true
	}
	return false
}

// BudgetItem is one categorized expense entry within a trip's budget.
// Currency is copied from the trip at creation time and is not re-validated
// against the trip currency afterwards.
type BudgetItem struct {
	ID          uuid.UUID `json:"id"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
}
