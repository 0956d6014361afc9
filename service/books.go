package service

import (
	"context"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
)

// PageSize is the number of books in a grid page.
const PageSize = 12

type books interface {
	ListBooks(ctx context.Context, params BookListParams) (*BookPage, error)
	CategoryBooks(ctx context.Context, categoryID int64, page int) (*CategoryPage, error)
	GetBook(ctx context.Context, bookID int64) (*data.Book, error)
	EditableBook(ctx context.Context, bookID int64, user *data.User) (*data.Book, error)
	DeleteBook(ctx context.Context, bookID int64, confirmed bool) error
}

// BookListParams selects a page of the books grid. Mine switches to the
// current user's books, for which Search and CategoryID are ignored.
type BookListParams struct {
	Page       int
	Search     string
	CategoryID int64
	Mine       bool
}

// BookPage is one page of the books grid together with the parameters that produced it.
type BookPage struct {
	Params     BookListParams
	Books      []data.Book
	Pagination data.Pagination
}

// CategoryPage is one page of the books of a static category.
type CategoryPage struct {
	Category   data.StaticCategory
	Books      []data.Book
	Pagination data.Pagination
}

// pagination falls back to a single page when the API omits the envelope.
func pagination(p *data.Pagination, page, count int) data.Pagination {
	if p != nil {
		return *p
	}
	return data.Pagination{Page: page, Limit: PageSize, Total: count, Pages: 1}
}

// ListBooks service retrieves a page of all books, or of the current user's books.
func (s *service) ListBooks(ctx context.Context, params BookListParams) (*BookPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Mine {
		params.Search = ""
		params.CategoryID = 0
	}
	qs := dto.QsListBooks{
		Page:       params.Page,
		Limit:      PageSize,
		Search:     params.Search,
		CategoryID: params.CategoryID,
	}
	list := s.api.Books().List
	if params.Mine {
		list = s.api.Books().Mine
	}
	res, err := list(ctx, qs)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		s.logger.PrintError(err, map[string]string{
			"screen": "books",
			"page":   qs.Values().Encode(),
		})
		return nil, err
	}
	return &BookPage{
		Params:     params,
		Books:      res.Data,
		Pagination: pagination(res.Pagination, params.Page, len(res.Data)),
	}, nil
}

// CategoryBooks service retrieves a page of books for one of the static categories.
func (s *service) CategoryBooks(ctx context.Context, categoryID int64, page int) (*CategoryPage, error) {
	category, ok := data.LookupStaticCategory(categoryID)
	if !ok {
		return nil, ErrRecordNotFound
	}
	if page < 1 {
		page = 1
	}
	res, err := s.api.Books().List(ctx, dto.QsListBooks{Page: page, Limit: PageSize, CategoryID: categoryID})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		s.logger.PrintError(err, map[string]string{
			"screen":   "category",
			"category": category.Name,
		})
		return nil, err
	}
	return &CategoryPage{
		Category:   category,
		Books:      res.Data,
		Pagination: pagination(res.Pagination, page, len(res.Data)),
	}, nil
}

// GetBook service retrieves a book record.
func (s *service) GetBook(ctx context.Context, bookID int64) (*data.Book, error) {
	res, err := s.api.Books().Get(ctx, bookID)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, translate(err)
	}
	return &res.Data, nil
}

// EditableBook service retrieves a book the user is allowed to change.
func (s *service) EditableBook(ctx context.Context, bookID int64, user *data.User) (*data.Book, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !book.EditableBy(user) {
		return nil, ErrNotPermitted
	}
	return book, nil
}

// DeleteBook service deletes a book. Nothing is sent unless the deletion was confirmed.
func (s *service) DeleteBook(ctx context.Context, bookID int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	_, err := s.api.Books().Delete(ctx, bookID)
	return translate(err)
}
