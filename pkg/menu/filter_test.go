package menu

import "testing"

func TestFilterMatches(t *testing.T) {
	dish := Dish{Name: "宫保鸡丁", Category: "鸡肉类", PopularityScore: 9.2}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter", Filter{}, true},
		{"category match", Filter{Category: "鸡肉类"}, true},
		{"category mismatch", Filter{Category: "猪肉类"}, false},
		{"popularity above floor", Filter{MinPopularity: 9}, true},
		{"popularity below floor", Filter{MinPopularity: 9.5}, false},
		{"both set and matching", Filter{Category: "鸡肉类", MinPopularity: 9}, true},
		{"category right, popularity low", Filter{Category: "鸡肉类", MinPopularity: 9.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(dish); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogSelect(t *testing.T) {
	cat := loadFixtureCatalog(t)

	all := cat.Select(Filter{})
	if len(all) != len(cat.Dishes) {
		t.Errorf("empty filter selected %d of %d dishes", len(all), len(cat.Dishes))
	}

	pork := cat.Select(Filter{Category: "猪肉类"})
	if len(pork) != 1 || pork[0].Name != "红烧肉" {
		t.Errorf("category filter = %v, want [红烧肉]", dishNames(pork))
	}

	popular := cat.Select(Filter{MinPopularity: 8.8})
	for _, d := range popular {
		if d.PopularityScore < 8.8 {
			t.Errorf("dish %s below popularity floor: %v", d.Name, d.PopularityScore)
		}
	}
	if len(popular) != 3 {
		t.Errorf("popularity filter selected %d dishes, want 3", len(popular))
	}
}

func dishNames(dishes []Dish) []string {
	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name
	}
	return names
}
