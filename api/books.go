package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
)

// BookAPI groups the book endpoints.
type BookAPI struct {
	c *Client
}

// Books returns the book endpoints.
func (c *Client) Books() BookAPI {
	return BookAPI{c: c}
}

func bookPath(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}

// List returns a page of all books, optionally filtered by search text and category.
func (b BookAPI) List(ctx context.Context, qs dto.QsListBooks) (*Response[[]data.Book], error) {
	return Do[[]data.Book](ctx, b.c, Request{Method: http.MethodGet, Path: "/books", Query: qs.Values()})
}

// Get returns a single book.
func (b BookAPI) Get(ctx context.Context, id int64) (*Response[data.Book], error) {
	return Do[data.Book](ctx, b.c, Request{Method: http.MethodGet, Path: bookPath(id)})
}

// Mine returns a page of the authenticated user's books.
func (b BookAPI) Mine(ctx context.Context, qs dto.QsListBooks) (*Response[[]data.Book], error) {
	return Do[[]data.Book](ctx, b.c, Request{Method: http.MethodGet, Path: "/books/my/books", Query: qs.Values(), RequiresAuth: true})
}

// Create adds a book owned by the authenticated user.
func (b BookAPI) Create(ctx context.Context, body dto.BookRequestBody) (*Response[data.Book], error) {
	return Do[data.Book](ctx, b.c, Request{Method: http.MethodPost, Path: "/books", Body: body, RequiresAuth: true})
}

// Update replaces the editable fields of a book.
func (b BookAPI) Update(ctx context.Context, id int64, body dto.BookRequestBody) (*Response[data.Book], error) {
	return Do[data.Book](ctx, b.c, Request{Method: http.MethodPut, Path: bookPath(id), Body: body, RequiresAuth: true})
}

// Delete removes a book.
func (b BookAPI) Delete(ctx context.Context, id int64) (*Response[json.RawMessage], error) {
	return Do[json.RawMessage](ctx, b.c, Request{Method: http.MethodDelete, Path: bookPath(id), RequiresAuth: true})
}
