// Package planner derives mock hotel and activity recommendations from a
// trip's total budget. Both generators are deterministic pure functions of
// the budget value: same input, same sequence, same order, same prices.
package planner

import "math"

// accommodationShare and activityShare split the total budget between the
// two recommendation lists. The split is fixed, not configurable.
const (
	accommodationShare = 0.4
	activityShare      = 0.6
)

// Hotel is one generated accommodation recommendation.
type Hotel struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Price    int      `json:"price"`
	Image    string   `json:"image"`
	Distance string   `json:"distance"`
	Features []string `json:"features"`
}

// Activity is one generated activity recommendation.
type Activity struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Price    int     `json:"price"`
	Image    string  `json:"image"`
	Duration string  `json:"duration"`
}

// Hotels returns three hotel recommendations priced as fixed fractions
// (80%, 60%, 40%) of the accommodation budget, which is 40% of totalBudget.
// Prices are floored to whole units.
func Hotels(totalBudget float64) []Hotel {
	accommodationBudget := totalBudget * accommodationShare

	return []Hotel{
		{
			ID:       1,
			Name:     "Grand Horizon Hotel",
			Rating:   4.8,
			Price:    floor(accommodationBudget * 0.8),
			Image:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=2070&auto=format&fit=crop",
			Distance: "2.5 km from center",
			Features: []string{"Spa", "Pool", "Wifi"},
		},
		{
			ID:       2,
			Name:     "Urban Retreat",
			Rating:   4.5,
			Price:    floor(accommodationBudget * 0.6),
			Image:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=2070&auto=format&fit=crop",
			Distance: "0.5 km from center",
			Features: []string{"Bar", "Gym", "View"},
		},
		{
			ID:       3,
			Name:     "Cozy Corner BnB",
			Rating:   4.2,
			Price:    floor(accommodationBudget * 0.4),
			Image:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?q=80&w=2070&auto=format&fit=crop",
			Distance: "1.2 km from center",
			Features: []string{"Breakfast", "Wifi"},
		},
	}
}

// Activities returns four activity recommendations priced as fixed fractions
// (15%, 25%, 10%, 5%) of the activity budget, which is 60% of totalBudget.
// Prices are floored to whole units.
func Activities(totalBudget float64) []Activity {
	activityBudget := totalBudget * activityShare

	return []Activity{
		{
			ID:       1,
			Name:     "Iconic City Tour",
			Rating:   4.9,
			Price:    floor(activityBudget * 0.15),
			Image:    "https://images.unsplash.com/photo-1499856871940-a09e3f92f49e?q=80&w=2070&auto=format&fit=crop",
			Duration: "3 hours",
		},
		{
			ID:       2,
			Name:     "Mountain Adventure",
			Rating:   4.7,
			Price:    floor(activityBudget * 0.25),
			Image:    "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=2070&auto=format&fit=crop",
			Duration: "5 hours",
		},
		{
			ID:       3,
			Name:     "Local Food Tasting",
			Rating:   4.8,
			Price:    floor(activityBudget * 0.1),
			Image:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?q=80&w=2070&auto=format&fit=crop",
			Duration: "2 hours",
		},
		{
			ID:       4,
			Name:     "Historical Museum",
			Rating:   4.6,
			Price:    floor(activityBudget * 0.05),
			Image:    "https://images.unsplash.com/photo-1566127444979-b3d2b654e3d7?q=80&w=2070&auto=format&fit=crop",
			Duration: "4 hours",
		},
	}
}

func floor(v float64) int {
	return int(math.Floor(v))
}
