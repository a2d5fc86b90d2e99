package services

import (
	"github.com/Hsharma41126/new-restorant/entity"
)

// Category names counted as pure food / pure beverage. Anything outside, or
// a mix of the two, tags the ticket Mixed.
var (
	foodCategories     = map[string]bool{"Food": true}
	beverageCategories = map[string]bool{"Beverages": true, "Drinks": true}
)

// ClassifyCategoryNames tags a ticket from the distinct category names of its
// items. Deterministic and order-insensitive: duplicates collapse via set
// semantics before this is called.
func ClassifyCategoryNames(names []string) entity.TicketCategory {
	if len(names) == 0 {
		return entity.CategoryMixed
	}
	allFood, allBeverage := true, true
	for _, name := range names {
		if !foodCategories[name] {
			allFood = false
		}
		if !beverageCategories[name] {
			allBeverage = false
		}
	}
	switch {
	case allFood:
		return entity.CategoryFood
	case allBeverage:
		return entity.CategoryBeverages
	default:
		return entity.CategoryMixed
	}
}
