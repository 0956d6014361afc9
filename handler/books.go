package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/internal/validator"
	"github.com/emzola/bookmanager/service"
	"github.com/julienschmidt/httprouter"
)

// maxFormBytes bounds a book form submission including its cover image.
const maxFormBytes = service.MaxCoverSize + 1<<20

func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	qs := r.URL.Query()
	params := service.BookListParams{
		Page:   h.readInt(qs, "page", 1, v),
		Search: h.readString(qs, "search", ""),
	}
	if id := h.readInt(qs, "categoryId", 0, v); id > 0 {
		params.CategoryID = int64(id)
	}
	if !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}
	h.renderBookList(w, r, params)
}

func (h *Handler) listMyBooksHandler(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	params := service.BookListParams{
		Page: h.readInt(r.URL.Query(), "page", 1, v),
		Mine: true,
	}
	if !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}
	h.renderBookList(w, r, params)
}

// renderBookList renders the books grid. A failed fetch is shown as an error
// message, distinct from the empty-result message.
func (h *Handler) renderBookList(w http.ResponseWriter, r *http.Request, params service.BookListParams) {
	res, err := h.service.ListBooks(r.Context(), params)
	if h.canceled(r) {
		return
	}
	td := h.newTemplateData(r)
	td.Params = params
	td.StaticCategories = data.StaticCategories()
	td.Title = "Libros"
	if params.Mine {
		td.Title = "Mis libros"
	}
	if err != nil {
		td.ListError = failureMessage(err)
		h.render(w, r, failureStatus(err), "books.html", td)
		return
	}
	td.Params = res.Params
	td.Books = res.Books
	td.Pager = newPager(res.Pagination, r.URL.Path, r.URL.Query())
	h.render(w, r, http.StatusOK, "books.html", td)
}

func (h *Handler) showCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil {
		h.errorResponse(w, r, http.StatusNotFound, "Categoría no encontrada")
		return
	}
	v := validator.New()
	page := h.readInt(r.URL.Query(), "page", 1, v)
	if !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}
	res, err := h.service.CategoryBooks(r.Context(), categoryID, page)
	if h.canceled(r) {
		return
	}
	if errors.Is(err, service.ErrRecordNotFound) {
		h.errorResponse(w, r, http.StatusNotFound, "Categoría no encontrada")
		return
	}
	td := h.newTemplateData(r)
	if err != nil {
		if c, ok := data.LookupStaticCategory(categoryID); ok {
			td.Category = c
			td.Title = c.Name
		}
		td.ListError = failureMessage(err)
		h.render(w, r, failureStatus(err), "category.html", td)
		return
	}
	td.Title = res.Category.Name
	td.Category = res.Category
	td.Books = res.Books
	td.Pager = newPager(res.Pagination, r.URL.Path, r.URL.Query())
	h.render(w, r, http.StatusOK, "category.html", td)
}

func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	if httprouter.ParamsFromContext(r.Context()).ByName("id") == "new" {
		h.requireAuthenticatedUser(h.newBookHandler)(w, r)
		return
	}
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.GetBook(r.Context(), bookID)
	if h.canceled(r) {
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.recordNotFoundResponse(w, r, err)
		default:
			h.upstreamErrorResponse(w, r, err)
		}
		return
	}
	td := h.newTemplateData(r)
	td.Title = book.Title
	td.Book = book
	td.Editable = book.EditableBy(td.CurrentUser)
	h.render(w, r, http.StatusOK, "book.html", td)
}

func (h *Handler) newBookHandler(w http.ResponseWriter, r *http.Request) {
	h.renderBookForm(w, r, http.StatusOK, service.NewBookForm(), nil)
}

// editableBook loads the book named by the id parameter and checks that the
// current user may change it, writing the error response if not.
func (h *Handler) editableBook(w http.ResponseWriter, r *http.Request) (*data.Book, bool) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return nil, false
	}
	book, err := h.service.EditableBook(r.Context(), bookID, h.contextGetUser(r))
	if h.canceled(r) {
		return nil, false
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.recordNotFoundResponse(w, r, err)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		default:
			h.upstreamErrorResponse(w, r, err)
		}
		return nil, false
	}
	return book, true
}

func (h *Handler) editBookHandler(w http.ResponseWriter, r *http.Request) {
	book, ok := h.editableBook(w, r)
	if !ok {
		return
	}
	h.renderBookForm(w, r, http.StatusOK, service.FormFromBook(book), nil)
}

func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	h.saveBook(w, r, 0)
}

func (h *Handler) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	h.saveBook(w, r, bookID)
}

// saveBook handles both form submissions. Any failure re-renders the form
// with the user's input and the failure message.
func (h *Handler) saveBook(w http.ResponseWriter, r *http.Request, bookID int64) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := parseForm(r); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	form := readBookForm(r)
	form.ID = bookID

	// The cover is only stored once the rest of the form is acceptable.
	if err := h.service.ValidateBook(form); err != nil {
		h.renderBookForm(w, r, failureStatus(err), form, err)
		return
	}
	if file, header, err := r.FormFile("cover"); err == nil {
		defer file.Close()
		content, err := io.ReadAll(file)
		if err == nil && len(content) > 0 {
			url, err := h.service.UploadCover(r.Context(), header.Filename, content)
			if err != nil {
				h.renderBookForm(w, r, failureStatus(err), form, err)
				return
			}
			form.CoverImage = url
		}
	}

	_, err := h.service.SaveBook(r.Context(), form)
	if h.canceled(r) {
		return
	}
	if err != nil {
		h.renderBookForm(w, r, failureStatus(err), form, err)
		return
	}
	if form.IsEdit() {
		h.flash(r, "Libro actualizado correctamente")
	} else {
		h.flash(r, "Libro creado correctamente")
	}
	h.redirect(w, r, "/books")
}

// renderBookForm renders the create/edit form. Validation failures are shown
// next to their fields, anything else as a message above the form.
func (h *Handler) renderBookForm(w http.ResponseWriter, r *http.Request, status int, form service.BookForm, err error) {
	td := h.newTemplateData(r)
	td.Title = "Nuevo libro"
	if form.IsEdit() {
		td.Title = "Editar libro"
	}
	td.Form = form
	td.StaticCategories = data.StaticCategories()
	var verr *service.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		td.Errors = verr.Errors
	default:
		if status >= 500 {
			h.logError(r, err)
		}
		td.Message = failureMessage(err)
	}
	h.render(w, r, status, "book_form.html", td)
}

func (h *Handler) confirmDeleteBookHandler(w http.ResponseWriter, r *http.Request) {
	book, ok := h.editableBook(w, r)
	if !ok {
		return
	}
	td := h.newTemplateData(r)
	td.Title = "Eliminar libro"
	td.Book = book
	h.render(w, r, http.StatusOK, "book_delete.html", td)
}

// deleteBookHandler only deletes when the confirmation form was answered
// affirmatively; any other answer goes back to the book.
func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "id")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	confirmed := r.PostForm.Get("confirm") == "yes"
	err = h.service.DeleteBook(r.Context(), bookID, confirmed)
	if h.canceled(r) {
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfirmed):
			h.redirect(w, r, "/books/"+strconv.FormatInt(bookID, 10))
		case errors.Is(err, service.ErrRecordNotFound):
			h.recordNotFoundResponse(w, r, err)
		default:
			h.upstreamErrorResponse(w, r, err)
		}
		return
	}
	h.flash(r, "Libro eliminado correctamente")
	h.redirect(w, r, "/books")
}

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormBytes)
	}
	return r.ParseForm()
}

func readBookForm(r *http.Request) service.BookForm {
	f := r.PostForm
	return service.BookForm{
		Title:         f.Get("title"),
		Author:        f.Get("author"),
		ISBN:          f.Get("isbn"),
		Description:   f.Get("description"),
		PublishedYear: f.Get("publishedYear"),
		Publisher:     f.Get("publisher"),
		Pages:         f.Get("pages"),
		Language:      f.Get("language"),
		CoverImage:    f.Get("coverImage"),
		CategoryID:    f.Get("categoryId"),
		Available:     f.Get("available") != "",
	}
}
