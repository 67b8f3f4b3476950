package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Suj93s/campus-cafe-craft/internal/menu"
	"github.com/Suj93s/campus-cafe-craft/internal/order"
)

// DailyTargets are the fixed per-nutrient consumption goals (grams/day)
// that scoring measures against.
var DailyTargets = Nutrients{
	Protein: 50,
	Carbs:   250,
	Fat:     70,
}

const maxSuggestions = 3

var ErrStoreUnavailable = errors.New("failed to fetch store data")

// OrderReader is the slice of order storage the engine needs.
type OrderReader interface {
	MostRecentForUser(ctx context.Context, userID string) (*order.Order, error)
}

type Service struct {
	menuRepo menu.Repository
	orders   OrderReader
}

func NewService(menuRepo menu.Repository, orders OrderReader) *Service {
	return &Service{
		menuRepo: menuRepo,
		orders:   orders,
	}
}

// Recommend ranks the current menu by how well each item closes the gap
// between the caller's last order and the daily macro targets, and returns
// the top three. Menu and order data are read fresh on every call; catalog
// prices change and this trades latency for correctness.
func (s *Service) Recommend(ctx context.Context, userID string) (*Result, error) {
	previous := Nutrients{}

	last, err := s.orders.MostRecentForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if last != nil {
		previous = Nutrients{
			Protein: last.TotalProtein,
			Carbs:   last.TotalCarbs,
			Fat:     last.TotalFat,
		}
	}

	remaining := Nutrients{
		Protein: remainingOf(DailyTargets.Protein, previous.Protein),
		Carbs:   remainingOf(DailyTargets.Carbs, previous.Carbs),
		Fat:     remainingOf(DailyTargets.Fat, previous.Fat),
	}

	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	scores := make([]float64, len(items))
	for i, it := range items {
		scores[i] = scoreItem(it, previous, remaining)
	}

	// Stable sort keeps catalog order as the tie-break, so results are
	// deterministic for identical inputs.
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	n := maxSuggestions
	if len(idx) < n {
		n = len(idx)
	}

	suggested := make([]SuggestedItem, 0, n)
	for _, i := range idx[:n] {
		it := items[i]
		suggested = append(suggested, SuggestedItem{
			ID:      it.ID,
			Name:    it.Name,
			Protein: it.Protein,
			Carbs:   it.Carbs,
			Fat:     it.Fat,
			Price:   it.Price,
		})
	}

	return &Result{
		PreviousNutrients: previous,
		RemainingTarget:   remaining,
		SuggestedItems:    suggested,
	}, nil
}

// remainingOf floors at zero: once a target is met, remaining demand for
// that nutrient is zero, never negative.
func remainingOf(target, previous float64) float64 {
	if r := target - previous; r > 0 {
		return r
	}
	return 0
}

// scoreItem measures how well one serving fills the remaining macro gap.
// Protein fit carries double weight. Once the protein or fat target has
// already been exceeded, heavy items in that nutrient are dampened by a
// multiplicative penalty; carbs overage is never penalized.
func scoreItem(it menu.Item, previous, remaining Nutrients) float64 {
	proteinFit := fitOf(it.Protein, remaining.Protein)
	carbsFit := fitOf(it.Carbs, remaining.Carbs)
	fatFit := fitOf(it.Fat, remaining.Fat)

	proteinPenalty := 1.0
	if previous.Protein > DailyTargets.Protein {
		proteinPenalty = clampFloor(1 - it.Protein/10)
	}

	fatPenalty := 1.0
	if previous.Fat > DailyTargets.Fat {
		fatPenalty = clampFloor(1 - it.Fat/5)
	}

	return (proteinFit*2 + carbsFit + fatFit) * proteinPenalty * fatPenalty
}

// fitOf is min(amount/remaining, 1), or 0 when nothing remains.
func fitOf(amount, remaining float64) float64 {
	if remaining <= 0 {
		return 0
	}
	fit := amount / remaining
	if fit > 1 {
		return 1
	}
	return fit
}

func clampFloor(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
