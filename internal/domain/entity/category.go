// Package entity contains the core business objects of the project.
package entity

// Category is the fixed set of listing categories. The values are
// invariant keys; localized display labels live in the i18n layer.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
	CategoryVehicles    Category = "vehicles"
	CategoryRealEstate  Category = "real_estate"
	CategoryServices    Category = "services"
	CategoryOther       Category = "other"
)

// CategoryAll is the facet sentinel that matches every category.
// It is not itself a valid listing category.
const CategoryAll = "all"

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFurniture,
		CategoryClothing,
		CategoryBooks,
		CategorySports,
		CategoryVehicles,
		CategoryRealEstate,
		CategoryServices,
		CategoryOther,
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryClothing, CategoryBooks,
		CategorySports, CategoryVehicles, CategoryRealEstate, CategoryServices, CategoryOther:
		return true
	default:
		return false
	}
}
