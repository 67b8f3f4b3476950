package recommend

// Nutrients holds macro totals in grams.
type Nutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// SuggestedItem is a menu item reduced to what the storefront shows.
// The ranking score stays internal.
type SuggestedItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Price   float64 `json:"price"`
}

// Result is the recommendation response bundle.
type Result struct {
	PreviousNutrients Nutrients       `json:"previous_nutrients"`
	RemainingTarget   Nutrients       `json:"remaining_target"`
	SuggestedItems    []SuggestedItem `json:"suggested_items"`
}
