package menu

// Item is a catalog entry. Macro values are grams per serving.
// The catalog is maintained out of band; everything here reads it.
type Item struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}
