package dto

import (
	"net/url"
	"strconv"
)

// CategoryRequestBody defines the request body for creating and updating a category.
type CategoryRequestBody struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// QsListCategories defines the query strings used for listing categories.
type QsListCategories struct {
	Page  int
	Limit int
}

// Values encodes the non-zero fields as a URL query.
func (qs QsListCategories) Values() url.Values {
	v := url.Values{}
	if qs.Page > 0 {
		v.Set("page", strconv.Itoa(qs.Page))
	}
	if qs.Limit > 0 {
		v.Set("limit", strconv.Itoa(qs.Limit))
	}
	return v
}
