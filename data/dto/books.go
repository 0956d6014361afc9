package dto

import (
	"net/url"
	"strconv"
)

// BookRequestBody defines the request body for creating and updating a book.
// Optional fields are pointers so that an empty form input is sent as absent
// rather than as an empty string.
type BookRequestBody struct {
	Title         string  `json:"title"`
	Author        *string `json:"author,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	Description   *string `json:"description,omitempty"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
	Publisher     *string `json:"publisher,omitempty"`
	Pages         *int    `json:"pages,omitempty"`
	Language      string  `json:"language"`
	CoverImage    *string `json:"coverImage,omitempty"`
	Available     bool    `json:"available"`
	CategoryID    int64   `json:"categoryId"`
}

// QsListBooks defines the query strings used for listing books.
type QsListBooks struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int64
}

// Values encodes the non-zero fields as a URL query.
func (qs QsListBooks) Values() url.Values {
	v := url.Values{}
	if qs.Page > 0 {
		v.Set("page", strconv.Itoa(qs.Page))
	}
	if qs.Limit > 0 {
		v.Set("limit", strconv.Itoa(qs.Limit))
	}
	if qs.Search != "" {
		v.Set("search", qs.Search)
	}
	if qs.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(qs.CategoryID, 10))
	}
	return v
}
