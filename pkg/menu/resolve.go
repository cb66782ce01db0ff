package menu

// MainIngredientPlaceholder is the generic ingredient name that stands in
// for a dish's representative food until resolution.
const MainIngredientPlaceholder = "主料"

// UnknownIngredientName is the sentinel used when a dish's category has no
// entry in the resolution table.
const UnknownIngredientName = "未知食材"

// DefaultIngredientNames maps a dish category to the concrete food name
// substituted for the main-ingredient placeholder.
func DefaultIngredientNames() map[string]string {
	return map[string]string{
		"猪肉类":  "猪肉",
		"鸡肉类":  "鸡肉",
		"牛肉类":  "牛肉",
		"羊肉类":  "羊肉",
		"水产类":  "鱼肉",
		"蔬菜类":  "青菜",
		"豆制品类": "豆腐",
		"汤品类":  "汤底",
		"主食类":  "米饭",
		"饮品":   "饮品基底",
		"小吃油炸": "油炸制品",
		"西式快餐": "鸡排",
		"台式便当": "便当主料",
		"风味快餐": "烤肉",
		"西式简餐": "芝士",
	}
}

// ResolveMainIngredients returns a copy of the catalog in which every
// ingredient named exactly MainIngredientPlaceholder is renamed to the
// concrete food for its dish's category, per the names table. Categories
// absent from the table resolve to UnknownIngredientName. The input catalog
// is not mutated, and resolving an already-resolved catalog changes
// nothing, since only the exact placeholder text matches.
//
// A nil names map means DefaultIngredientNames.
func ResolveMainIngredients(cat Catalog, names map[string]string) Catalog {
	if names == nil {
		names = DefaultIngredientNames()
	}

	resolved := cat.Clone()
	for di := range resolved.Dishes {
		dish := &resolved.Dishes[di]
		concrete, ok := names[dish.Category]
		if !ok {
			concrete = UnknownIngredientName
		}
		for ii := range dish.Ingredients {
			if dish.Ingredients[ii].Name == MainIngredientPlaceholder {
				dish.Ingredients[ii].Name = concrete
			}
		}
	}
	return resolved
}
