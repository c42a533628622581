package enums

// ProductCategory mirrors the category postgres enum.
type ProductCategory string

const (
	CategoryJewellery ProductCategory = "Jewellery"
	CategoryMale      ProductCategory = "Male"
	CategoryFemale    ProductCategory = "Female"
	CategoryBouquets  ProductCategory = "Bouquets"
	CategoryCandle    ProductCategory = "Candle"
)

// ProductCategories lists every valid category in display order.
var ProductCategories = []ProductCategory{
	CategoryJewellery,
	CategoryMale,
	CategoryFemale,
	CategoryBouquets,
	CategoryCandle,
}

func (c ProductCategory) String() string { return string(c) }

// IsValid reports whether the value matches a known category.
func (c ProductCategory) IsValid() bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ProductOccasion mirrors the occasion postgres enum.
type ProductOccasion string

const (
	OccasionBirthday     ProductOccasion = "Birthday"
	OccasionAnniversary  ProductOccasion = "Anniversary"
	OccasionChristmas    ProductOccasion = "Christmas"
	OccasionCelebrations ProductOccasion = "Celebrations"
)

// ProductOccasions lists every valid occasion in display order.
var ProductOccasions = []ProductOccasion{
	OccasionBirthday,
	OccasionAnniversary,
	OccasionChristmas,
	OccasionCelebrations,
}

func (o ProductOccasion) String() string { return string(o) }

// IsValid reports whether the value matches a known occasion.
func (o ProductOccasion) IsValid() bool {
	for _, known := range ProductOccasions {
		if o == known {
			return true
		}
	}
	return false
}
