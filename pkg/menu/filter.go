package menu

// Filter selects dishes for listing queries. The zero value matches every
// dish; set fields are combined with AND.
type Filter struct {
	Category      string
	MinPopularity float64
}

// Matches reports whether a dish satisfies the filter.
func (f Filter) Matches(d Dish) bool {
	if f.Category != "" && d.Category != f.Category {
		return false
	}
	if d.PopularityScore < f.MinPopularity {
		return false
	}
	return true
}

// Select returns the dishes matching the filter, in catalog order.
func (c Catalog) Select(f Filter) []Dish {
	var out []Dish
	for _, d := range c.Dishes {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
