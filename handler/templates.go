package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/service"
)

//go:embed web/templates
var templateFS embed.FS

//go:embed web/static
var staticFS embed.FS

// templateData holds everything a page may render. Pages only read the
// fields they need.
type templateData struct {
	CurrentYear int
	CurrentUser *data.User
	Flash       string
	RequestID   string
	Title       string
	Message     string

	Shelves          []service.Shelf
	Books            []data.Book
	Book             *data.Book
	Editable         bool
	Pager            pager
	Params           service.BookListParams
	Category         data.StaticCategory
	Categories       []data.Category
	StaticCategories []data.StaticCategory
	ListError        string

	Form     any
	Errors   map[string]string
	Redirect string
}

func (h *Handler) newTemplateData(r *http.Request) *templateData {
	td := &templateData{
		CurrentYear: time.Now().Year(),
		CurrentUser: h.contextGetUser(r),
		RequestID:   h.contextGetRequestID(r),
		Errors:      map[string]string{},
	}
	if c := h.contextGetCookie(r); c != nil {
		td.Flash = c.popFlash()
	}
	return td
}

var functions = template.FuncMap{
	"humanDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02/01/2006")
	},
	"itoa": func(id int64) string {
		return strconv.FormatInt(id, 10)
	},
	"failure": failureMessage,
}

// newTemplateCache parses every page together with the base layout and partials.
func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}
	pages, err := fs.Glob(templateFS, "web/templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		name := filepath.Base(page)
		ts, err := template.New(name).Funcs(functions).ParseFS(templateFS,
			"web/templates/base.html",
			"web/templates/partials/*.html",
			page,
		)
		if err != nil {
			return nil, err
		}
		cache[name] = ts
	}
	return cache, nil
}

// render executes a page into a buffer first so that a template error still
// yields a clean 500, then saves the session cookie and writes the page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, td *templateData) {
	ts, ok := h.templates[page]
	if !ok {
		h.logError(r, fmt.Errorf("the template %s does not exist", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", td); err != nil {
		h.logError(r, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := h.saveCookie(w, r); err != nil {
		h.logError(r, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
