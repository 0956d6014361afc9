package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
	"github.com/emzola/bookmanager/internal/validator"
)

// DefaultLanguage is preselected on the create form.
const DefaultLanguage = "Spanish"

type bookForms interface {
	ValidateBook(form BookForm) error
	SaveBook(ctx context.Context, form BookForm) (*data.Book, error)
	UploadCover(ctx context.Context, filename string, content []byte) (string, error)
}

// BookForm holds the book form inputs as typed by the user. ID is zero when
// creating a book.
type BookForm struct {
	ID            int64
	Title         string
	Author        string
	ISBN          string
	Description   string
	PublishedYear string
	Publisher     string
	Pages         string
	Language      string
	CoverImage    string
	CategoryID    string
	Available     bool
}

// NewBookForm returns the empty create form.
func NewBookForm() BookForm {
	return BookForm{Language: DefaultLanguage, Available: true}
}

// FormFromBook prefills the edit form from an existing book. Absent values
// become empty inputs.
func FormFromBook(b *data.Book) BookForm {
	form := BookForm{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		Publisher:   b.Publisher,
		Language:    b.Language,
		CoverImage:  b.CoverImage,
		Available:   b.Available,
	}
	if b.PublishedYear != 0 {
		form.PublishedYear = strconv.Itoa(b.PublishedYear)
	}
	if b.Pages != 0 {
		form.Pages = strconv.Itoa(b.Pages)
	}
	if b.CategoryID != 0 {
		form.CategoryID = strconv.FormatInt(b.CategoryID, 10)
	}
	if form.Language == "" {
		form.Language = DefaultLanguage
	}
	return form
}

// IsEdit reports whether the form updates an existing book.
func (f BookForm) IsEdit() bool {
	return f.ID != 0
}

// Validate checks the form inputs. now bounds the publication year.
func (f BookForm) Validate(v *validator.Validator, now time.Time) {
	v.Check(strings.TrimSpace(f.Title) != "", "title", "El título es obligatorio")
	v.Check(len(f.Title) <= 500, "title", "El título no puede superar los 500 caracteres")

	categoryID, err := strconv.ParseInt(strings.TrimSpace(f.CategoryID), 10, 64)
	v.Check(err == nil && categoryID > 0, "categoryId", "La categoría es obligatoria")

	if isbn := strings.TrimSpace(f.ISBN); isbn != "" {
		v.Check(validator.Matches(isbn, validator.ISBNRX), "isbn", "El ISBN debe tener 10 o 13 dígitos")
	}
	if year := strings.TrimSpace(f.PublishedYear); year != "" {
		maxYear := now.Year() + 1
		n, err := strconv.Atoi(year)
		v.Check(err == nil && n >= 1000 && n <= maxYear, "publishedYear", fmt.Sprintf("El año debe estar entre 1000 y %d", maxYear))
	}
	if pages := strings.TrimSpace(f.Pages); pages != "" {
		n, err := strconv.Atoi(pages)
		v.Check(err == nil && n > 0, "pages", "Las páginas deben ser un número entero positivo")
	}
}

// RequestBody converts a validated form into the API payload. Empty optional
// inputs are left absent.
func (f BookForm) RequestBody() dto.BookRequestBody {
	body := dto.BookRequestBody{
		Title:       strings.TrimSpace(f.Title),
		Author:      optional(f.Author),
		ISBN:        optional(f.ISBN),
		Description: optional(f.Description),
		Publisher:   optional(f.Publisher),
		Language:    strings.TrimSpace(f.Language),
		CoverImage:  optional(f.CoverImage),
		Available:   f.Available,
	}
	if body.Language == "" {
		body.Language = DefaultLanguage
	}
	body.CategoryID, _ = strconv.ParseInt(strings.TrimSpace(f.CategoryID), 10, 64)
	if n, err := strconv.Atoi(strings.TrimSpace(f.PublishedYear)); err == nil {
		body.PublishedYear = &n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Pages)); err == nil {
		body.Pages = &n
	}
	return body
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ValidateBook service checks the form inputs without touching the network.
// Callers run it before any upload the submission carries.
func (s *service) ValidateBook(form BookForm) error {
	v := validator.New()
	if form.Validate(v, time.Now()); !v.Valid() {
		return failedValidation(v.Errors)
	}
	return nil
}

// SaveBook service validates the form and creates or updates the book. No
// request is made when validation fails.
func (s *service) SaveBook(ctx context.Context, form BookForm) (*data.Book, error) {
	if err := s.ValidateBook(form); err != nil {
		return nil, err
	}
	body := form.RequestBody()
	var (
		res *api.Response[data.Book]
		err error
	)
	if form.IsEdit() {
		res, err = s.api.Books().Update(ctx, form.ID, body)
	} else {
		res, err = s.api.Books().Create(ctx, body)
	}
	if err != nil {
		return nil, translate(err)
	}
	return &res.Data, nil
}
