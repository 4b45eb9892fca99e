package model

// Category classifies a video. The set is closed; unknown input falls back
// to CategoryEntertainment.
type Category string

const (
	CategoryEntertainment Category = "Entertainment"
	CategoryMusic         Category = "Music"
	CategorySports        Category = "Sports"
	CategoryGaming        Category = "Gaming"
	CategoryEducation     Category = "Education"
	CategoryScienceTech   Category = "Science & Technology"
	CategoryTravel        Category = "Travel"
	CategoryNews          Category = "News"
	CategoryComedy        Category = "Comedy"
	CategoryVlogs         Category = "Vlogs"
	CategoryDocumentaries Category = "Documentaries"
	CategoryFood          Category = "Food"
	CategoryFashion       Category = "Fashion"
	CategoryBeauty        Category = "Beauty"
	CategoryPetsAnimals   Category = "Pets & Animals"
)

// DefaultCategory is applied when a video is created or updated without a
// valid category.
const DefaultCategory = CategoryEntertainment

var allCategories = map[Category]struct{}{
	CategoryEntertainment: {},
	CategoryMusic:         {},
	CategorySports:        {},
	CategoryGaming:        {},
	CategoryEducation:     {},
	CategoryScienceTech:   {},
	CategoryTravel:        {},
	CategoryNews:          {},
	CategoryComedy:        {},
	CategoryVlogs:         {},
	CategoryDocumentaries: {},
	CategoryFood:          {},
	CategoryFashion:       {},
	CategoryBeauty:        {},
	CategoryPetsAnimals:   {},
}

func (c Category) IsValid() bool {
	_, ok := allCategories[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory maps raw input to a Category, falling back to
// DefaultCategory for empty or unknown values.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.IsValid() {
		return DefaultCategory
	}
	return c
}
