package data

import "time"

// Category defines a category as returned by the remote API.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StaticCategory is an entry of the built-in category registry used for
// filters and name lookups without a network round trip.
type StaticCategory struct {
	ID          int64
	Name        string
	Description string
}

// The registry is not kept in sync with the remote API; the API's list is
// what books are validated against on submission.
var staticCategories = [...]StaticCategory{
	{ID: 1, Name: "Terror", Description: "Libros de terror y suspenso"},
	{ID: 2, Name: "Acción", Description: "Libros de acción y aventura"},
	{ID: 3, Name: "Romance", Description: "Libros de romance y amor"},
	{ID: 4, Name: "Ciencia Ficción", Description: "Libros de ciencia ficción"},
	{ID: 5, Name: "Fantasía", Description: "Libros de fantasía y mundos mágicos"},
	{ID: 6, Name: "Misterio", Description: "Libros de misterio y detectives"},
	{ID: 7, Name: "Historia", Description: "Libros históricos"},
	{ID: 8, Name: "Biografía", Description: "Biografías y memorias"},
	{ID: 9, Name: "Tecnología", Description: "Libros sobre tecnología e informática"},
	{ID: 10, Name: "Autoayuda", Description: "Libros de desarrollo personal"},
}

// StaticCategories returns a copy of the built-in registry in display order.
func StaticCategories() []StaticCategory {
	out := make([]StaticCategory, len(staticCategories))
	copy(out, staticCategories[:])
	return out
}

// LookupStaticCategory finds a built-in category by id.
func LookupStaticCategory(id int64) (StaticCategory, bool) {
	for _, c := range staticCategories {
		if c.ID == id {
			return c, true
		}
	}
	return StaticCategory{}, false
}
