package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
)

// CategoryAPI groups the category endpoints.
type CategoryAPI struct {
	c *Client
}

// Categories returns the category endpoints.
func (c *Client) Categories() CategoryAPI {
	return CategoryAPI{c: c}
}

func categoryPath(id int64) string {
	return "/categories/" + strconv.FormatInt(id, 10)
}

// List returns a page of categories.
func (a CategoryAPI) List(ctx context.Context, qs dto.QsListCategories) (*Response[[]data.Category], error) {
	return Do[[]data.Category](ctx, a.c, Request{Method: http.MethodGet, Path: "/categories", Query: qs.Values()})
}

// Get returns a single category.
func (a CategoryAPI) Get(ctx context.Context, id int64) (*Response[data.Category], error) {
	return Do[data.Category](ctx, a.c, Request{Method: http.MethodGet, Path: categoryPath(id)})
}

// Create adds a category. The remote API restricts this to administrators.
func (a CategoryAPI) Create(ctx context.Context, body dto.CategoryRequestBody) (*Response[data.Category], error) {
	return Do[data.Category](ctx, a.c, Request{Method: http.MethodPost, Path: "/categories", Body: body, RequiresAuth: true})
}

// Update replaces a category's name and description.
func (a CategoryAPI) Update(ctx context.Context, id int64, body dto.CategoryRequestBody) (*Response[data.Category], error) {
	return Do[data.Category](ctx, a.c, Request{Method: http.MethodPut, Path: categoryPath(id), Body: body, RequiresAuth: true})
}

// Delete removes a category.
func (a CategoryAPI) Delete(ctx context.Context, id int64) (*Response[json.RawMessage], error) {
	return Do[json.RawMessage](ctx, a.c, Request{Method: http.MethodDelete, Path: categoryPath(id), RequiresAuth: true})
}
