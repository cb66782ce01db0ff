package menu

import (
	"time"

	"github.com/google/uuid"
)

// ComputeDelta computes the difference between a base and head catalog,
// diffing dishes by name. Output order is deterministic: added dishes in
// head order, removed dishes in base order, changed dishes in head order.
func ComputeDelta(base, head Catalog) *Delta {
	delta := &Delta{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	baseByName := make(map[string]Dish, len(base.Dishes))
	for _, d := range base.Dishes {
		baseByName[d.Name] = d
	}
	headByName := make(map[string]Dish, len(head.Dishes))
	for _, d := range head.Dishes {
		headByName[d.Name] = d
	}

	for _, d := range head.Dishes {
		prev, exists := baseByName[d.Name]
		if !exists {
			delta.AddedDishes = append(delta.AddedDishes, d.Name)
		} else if !d.Equal(prev) {
			delta.ChangedDishes = append(delta.ChangedDishes, d.Name)
		}
	}
	for _, d := range base.Dishes {
		if _, exists := headByName[d.Name]; !exists {
			delta.RemovedDishes = append(delta.RemovedDishes, d.Name)
		}
	}

	delta.Stats = DeltaStats{
		AddedCount:   len(delta.AddedDishes),
		RemovedCount: len(delta.RemovedDishes),
		ChangedCount: len(delta.ChangedDishes),
	}

	return delta
}
