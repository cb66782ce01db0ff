// Package menu defines the core catalog data model for MealScope.
// These types are the shared vocabulary across all modules: a catalog of
// dishes, each with a popularity score, total nutrition facts, and an
// ordered ingredient list. Catalog order is significant; it drives ranking
// tie-breaks and first-appearance ordering downstream.
package menu

import (
	"encoding/json"
	"fmt"
	"time"
)

// NutritionFacts holds the five nutrient fields shared by a dish's totals
// and by individual ingredients. All five are required on decode; a missing
// field is a hard error, never a silent zero.
type NutritionFacts struct {
	Protein      float64 `json:"protein"`
	DietaryFiber float64 `json:"dietaryFiber"`
	SaturatedFat float64 `json:"saturatedFat"`
	Sodium       float64 `json:"sodium"`
	AddedSugar   float64 `json:"addedSugar"`
}

// nutritionWire mirrors NutritionFacts with pointer fields so absent keys
// are distinguishable from explicit zeros.
type nutritionWire struct {
	Protein      *float64 `json:"protein"`
	DietaryFiber *float64 `json:"dietaryFiber"`
	SaturatedFat *float64 `json:"saturatedFat"`
	Sodium       *float64 `json:"sodium"`
	AddedSugar   *float64 `json:"addedSugar"`
}

func (w nutritionWire) missingField() string {
	switch {
	case w.Protein == nil:
		return "protein"
	case w.DietaryFiber == nil:
		return "dietaryFiber"
	case w.SaturatedFat == nil:
		return "saturatedFat"
	case w.Sodium == nil:
		return "sodium"
	case w.AddedSugar == nil:
		return "addedSugar"
	}
	return ""
}

// UnmarshalJSON decodes nutrition facts, requiring all five fields.
func (n *NutritionFacts) UnmarshalJSON(data []byte) error {
	var w nutritionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if f := w.missingField(); f != "" {
		return fmt.Errorf("missing nutrition field %q", f)
	}
	*n = NutritionFacts{
		Protein:      *w.Protein,
		DietaryFiber: *w.DietaryFiber,
		SaturatedFat: *w.SaturatedFat,
		Sodium:       *w.Sodium,
		AddedSugar:   *w.AddedSugar,
	}
	return nil
}

// Ingredient is a sub-record of a Dish. Its nutrition fields sit at the same
// JSON level as its name, so an ingredient is scoreable by the same index
// formula as a dish.
type Ingredient struct {
	Name      string
	Nutrition NutritionFacts
}

// UnmarshalJSON decodes an ingredient's name plus its inline nutrition
// fields, requiring all five.
func (ing *Ingredient) UnmarshalJSON(data []byte) error {
	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}
	var facts NutritionFacts
	if err := json.Unmarshal(data, &facts); err != nil {
		return fmt.Errorf("ingredient %q: %w", named.Name, err)
	}
	ing.Name = named.Name
	ing.Nutrition = facts
	return nil
}

// MarshalJSON emits the ingredient in its wire layout: name alongside the
// five nutrition fields.
func (ing Ingredient) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name         string  `json:"name"`
		Protein      float64 `json:"protein"`
		DietaryFiber float64 `json:"dietaryFiber"`
		SaturatedFat float64 `json:"saturatedFat"`
		Sodium       float64 `json:"sodium"`
		AddedSugar   float64 `json:"addedSugar"`
	}{
		Name:         ing.Name,
		Protein:      ing.Nutrition.Protein,
		DietaryFiber: ing.Nutrition.DietaryFiber,
		SaturatedFat: ing.Nutrition.SaturatedFat,
		Sodium:       ing.Nutrition.Sodium,
		AddedSugar:   ing.Nutrition.AddedSugar,
	})
}

// Dish represents one menu item. Names are unique by convention within a
// catalog; uniqueness is not enforced. PopularityScore is documented as
// 0-10 and not validated.
type Dish struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	PopularityScore float64        `json:"popularity_score"`
	TotalNutrition  NutritionFacts `json:"total_nutrition"`
	Ingredients     []Ingredient   `json:"ingredients"`
}

type dishWire struct {
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	PopularityScore float64           `json:"popularity_score"`
	TotalNutrition  json.RawMessage   `json:"total_nutrition"`
	Ingredients     []json.RawMessage `json:"ingredients"`
}

// UnmarshalJSON decodes a dish, attaching the dish name to any nutrition
// error so failures point at the offending record.
func (d *Dish) UnmarshalJSON(data []byte) error {
	var w dishWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.TotalNutrition) == 0 {
		return fmt.Errorf("dish %q: missing total_nutrition", w.Name)
	}

	var total NutritionFacts
	if err := json.Unmarshal(w.TotalNutrition, &total); err != nil {
		return fmt.Errorf("dish %q: total_nutrition: %w", w.Name, err)
	}

	ingredients := make([]Ingredient, 0, len(w.Ingredients))
	for _, raw := range w.Ingredients {
		var ing Ingredient
		if err := json.Unmarshal(raw, &ing); err != nil {
			return fmt.Errorf("dish %q: %w", w.Name, err)
		}
		ingredients = append(ingredients, ing)
	}

	*d = Dish{
		Name:            w.Name,
		Category:        w.Category,
		PopularityScore: w.PopularityScore,
		TotalNutrition:  total,
		Ingredients:     ingredients,
	}
	return nil
}

// Equal reports whether two dishes carry identical data, ingredient order
// included.
func (d Dish) Equal(other Dish) bool {
	if d.Name != other.Name || d.Category != other.Category {
		return false
	}
	if d.PopularityScore != other.PopularityScore {
		return false
	}
	if d.TotalNutrition != other.TotalNutrition {
		return false
	}
	if len(d.Ingredients) != len(other.Ingredients) {
		return false
	}
	for i := range d.Ingredients {
		if d.Ingredients[i] != other.Ingredients[i] {
			return false
		}
	}
	return true
}

// Catalog is the top-level record: an ordered sequence of dishes.
type Catalog struct {
	Dishes []Dish `json:"dishes"`
}

// Clone returns a deep copy of the catalog. Mutating the copy never touches
// the original.
func (c Catalog) Clone() Catalog {
	dishes := make([]Dish, len(c.Dishes))
	for i, d := range c.Dishes {
		dishes[i] = d
		dishes[i].Ingredients = make([]Ingredient, len(d.Ingredients))
		copy(dishes[i].Ingredients, d.Ingredients)
	}
	return Catalog{Dishes: dishes}
}

// IngredientEntries counts ingredient entries across all dishes, per
// occurrence.
func (c Catalog) IngredientEntries() int {
	total := 0
	for _, d := range c.Dishes {
		total += len(d.Ingredients)
	}
	return total
}

// Categories returns the set of distinct categories in the catalog.
func (c Catalog) Categories() map[string]bool {
	cats := make(map[string]bool)
	for _, d := range c.Dishes {
		if d.Category != "" {
			cats[d.Category] = true
		}
	}
	return cats
}

// Delta represents the difference between two catalog revisions, diffed by
// dish name. Deltas are immutable once computed.
type Delta struct {
	ID            string     `json:"id"`
	GeneratedAt   time.Time  `json:"generated_at"`
	AddedDishes   []string   `json:"added_dishes"`
	RemovedDishes []string   `json:"removed_dishes"`
	ChangedDishes []string   `json:"changed_dishes"`
	Stats         DeltaStats `json:"stats"`
}

// DeltaStats holds summary statistics for a delta.
type DeltaStats struct {
	AddedCount   int `json:"added_count"`
	RemovedCount int `json:"removed_count"`
	ChangedCount int `json:"changed_count"`
}

// Empty reports whether the delta records no differences.
func (d *Delta) Empty() bool {
	return len(d.AddedDishes) == 0 && len(d.RemovedDishes) == 0 && len(d.ChangedDishes) == 0
}
