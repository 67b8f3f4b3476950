package menu

// Catalog is the café's launch menu, used to seed the store on first boot.
// Order matters: it is the tie-break order for recommendation scoring.
var Catalog = []Item{
	// Snacks
	{ID: "uzhunnu-vada", Name: "Uzhunnu Vada", Price: 10, Protein: 6, Carbs: 20, Fat: 12},
	{ID: "cutlet", Name: "Cutlet", Price: 15, Protein: 8, Carbs: 18, Fat: 10},
	{ID: "cream-bun", Name: "Cream Bun", Price: 20, Protein: 5, Carbs: 35, Fat: 9},
	{ID: "chicken-puff", Name: "Chicken Puffs", Price: 25, Protein: 10, Carbs: 28, Fat: 16},
	{ID: "lays-red", Name: "Lays (Red)", Price: 20, Protein: 2, Carbs: 15, Fat: 10},
	{ID: "dark-fantasy", Name: "Dark Fantasy", Price: 10, Protein: 1.5, Carbs: 14, Fat: 5},

	// Beverages
	{ID: "mango-lassi", Name: "Amul Mango Lassi", Price: 30, Protein: 6, Carbs: 30, Fat: 4},
	{ID: "tea", Name: "Tea", Price: 10, Protein: 1, Carbs: 7, Fat: 1.5},
	{ID: "coffee", Name: "Coffee", Price: 15, Protein: 2, Carbs: 8, Fat: 2},
	{ID: "black-tea", Name: "Black Tea", Price: 10, Protein: 0, Carbs: 4, Fat: 0},
	{ID: "smoodh-caramel", Name: "Smoodh Caramel", Price: 25, Protein: 5.5, Carbs: 18, Fat: 4.5},
	{ID: "smoodh-hazelnut", Name: "Smoodh Hazelnut", Price: 25, Protein: 5.5, Carbs: 18, Fat: 4.5},
}
