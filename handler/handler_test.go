package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/bookmanager/config"
	"github.com/emzola/bookmanager/internal/apitest"
	"github.com/emzola/bookmanager/internal/jsonlog"
	"github.com/emzola/bookmanager/internal/storage"
	"github.com/emzola/bookmanager/service"
	"github.com/emzola/bookmanager/session"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookJSON = `{"id":5,"title":"Drácula","author":"Bram Stoker","publishedYear":1897,"pages":418,"language":"English","available":true,"categoryId":1,"userId":7}`

type testApp struct {
	handler *Handler
	fake    *apitest.Server
	server  *httptest.Server
	client  *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithUploader(t, nil)
}

// newTestAppWithUploader enables cover uploads when uploader is not nil.
func newTestAppWithUploader(t *testing.T, uploader service.Uploader) *testApp {
	t.Helper()
	fake := apitest.New(t)
	var cfg config.Config
	if uploader != nil {
		cfg.S3.Bucket = "covers"
		cfg.S3.Region = "eu-west-1"
	}
	cfg.Server.Env = "testing"
	cfg.Session.Name = "bookmanager"
	cfg.BasicAuth.Username = "admin"
	cfg.BasicAuth.Password = "secret"
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)

	client := fake.Client()
	svc := service.New(cfg, logger, client, uploader)
	cookies := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	h, err := New(cfg, logger, nil, svc, client.Auth(), cookies, nil)
	require.NoError(t, err)

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testApp{
		handler: h,
		fake:    fake,
		server:  srv,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (app *testApp) get(t *testing.T, path string) (int, http.Header, string) {
	t.Helper()
	res, err := app.client.Get(app.server.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, res.Header, string(body)
}

func (app *testApp) post(t *testing.T, path string, form url.Values) (int, http.Header, string) {
	t.Helper()
	res, err := app.client.PostForm(app.server.URL+path, form)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, res.Header, string(body)
}

// postMultipart submits form fields plus one file under the "cover" field.
func (app *testApp) postMultipart(t *testing.T, path string, form url.Values, filename string, content []byte) (int, http.Header, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range form {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	fw, err := mw.CreateFormFile("cover", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	res, err := app.client.Post(app.server.URL+path, mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, res.Header, string(body)
}

func (app *testApp) login(t *testing.T, role string) {
	t.Helper()
	app.fake.Handle(http.MethodPost, "/auth/login", http.StatusOK, `{
		"success": true,
		"data": {
			"user": {"id": 7, "name": "Ana", "email": "ana@example.com", "role": "`+role+`", "isVerified": true},
			"accessToken": "access-7",
			"refreshToken": "refresh-7"
		}
	}`)
	status, header, _ := app.post(t, "/login", url.Values{"email": {"ana@example.com"}, "password": {"secret1"}})
	require.Equal(t, http.StatusSeeOther, status)
	require.Equal(t, "/", header.Get("Location"))
}

func TestBooksPagination(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books", http.StatusOK,
		`{"success":true,"data":[`+bookJSON+`],"pagination":{"page":1,"limit":12,"total":25,"pages":3}}`)

	status, _, body := app.get(t, "/books")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Página 1 de 3")
	assert.Contains(t, body, "<button disabled>Anterior</button>")
	assert.Contains(t, body, `<a class="button" href="/books?page=2">Siguiente</a>`)
	assert.Contains(t, body, "Drácula")
	assert.Contains(t, body, "Terror")
}

func TestBooksPaginationKeepsFilters(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books", http.StatusOK,
		`{"success":true,"data":[`+bookJSON+`],"pagination":{"page":3,"limit":12,"total":25,"pages":3}}`)

	_, _, body := app.get(t, "/books?search=drac&page=3")
	assert.Contains(t, body, "Página 3 de 3")
	assert.Contains(t, body, `href="/books?page=2&amp;search=drac">Anterior</a>`)
	assert.Contains(t, body, "<button disabled>Siguiente</button>")
	assert.Equal(t, "limit=12&page=3&search=drac", app.fake.CallsTo(http.MethodGet, "/books")[0].Query)
}

func TestBooksSinglePageHidesPagination(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books", http.StatusOK,
		`{"success":true,"data":[`+bookJSON+`],"pagination":{"page":1,"limit":12,"total":1,"pages":1}}`)

	_, _, body := app.get(t, "/books")
	assert.NotContains(t, body, "Página")
}

func TestBooksFetchFailureIsNotEmptyResult(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books", http.StatusInternalServerError, `{"success":false,"error":"database down"}`)

	status, _, body := app.get(t, "/books")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body, "No se pudieron cargar los libros: database down")
	assert.NotContains(t, body, "No se encontraron libros")

	app.fake.Handle(http.MethodGet, "/books", http.StatusOK, `{"success":true,"data":[]}`)
	status, _, body = app.get(t, "/books")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No se encontraron libros")
}

func TestHomeShowsPerCategoryFailures(t *testing.T) {
	app := newTestApp(t)
	app.fake.HandleFunc(http.MethodGet, "/books", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("categoryId") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"success":false,"error":"boom"}`)
			return
		}
		io.WriteString(w, `{"success":true,"data":[`+bookJSON+`]}`)
	})

	status, _, body := app.get(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, strings.Count(body, "No se pudieron cargar los libros de esta categoría: boom"))
	assert.Equal(t, 9, strings.Count(body, `href="/books/5"`))
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/my-books", "/books/new", "/books/5/edit", "/books/5/delete"} {
		t.Run(path, func(t *testing.T) {
			status, header, _ := app.get(t, path)
			assert.Equal(t, http.StatusSeeOther, status)
			assert.Equal(t, "/login", header.Get("Location"))
		})
	}
	assert.Empty(t, app.fake.Calls())
}

func TestGuardWhileLoading(t *testing.T) {
	app := newTestApp(t)
	called := false
	next := func(w http.ResponseWriter, r *http.Request) { called = true }

	holder := session.New(nil, storage.NewMemory(), jsonlog.New(io.Discard, jsonlog.LevelOff))
	req := httptest.NewRequest(http.MethodGet, "/my-books", nil)
	req = req.WithContext(session.NewContext(req.Context(), holder))
	rr := httptest.NewRecorder()

	app.handler.requireAuthenticatedUser(next)(rr, req)
	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cargando...")
	assert.Contains(t, rr.Body.String(), `content="1;url=/my-books"`)
}

func TestLogoutThenGuardedRouteRedirects(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books/my/books", http.StatusOK, `{"success":true,"data":[]}`)
	app.login(t, "user")

	status, _, body := app.get(t, "/my-books")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Hola, Ana")
	assert.Contains(t, body, "Todavía no has añadido ningún libro")
	calls := app.fake.CallsTo(http.MethodGet, "/books/my/books")
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer access-7", calls[0].Header.Get("Authorization"))

	status, header, _ := app.post(t, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	status, header, _ = app.get(t, "/my-books")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login", header.Get("Location"))
	assert.Len(t, app.fake.CallsTo(http.MethodGet, "/books/my/books"), 1)
}

func TestLoginFailureShowsMessage(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodPost, "/auth/login", http.StatusUnauthorized, `{"success":false,"error":"Credenciales inválidas"}`)

	status, _, body := app.post(t, "/login", url.Values{"email": {"ana@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "Credenciales inválidas")
	assert.Contains(t, body, `value="ana@example.com"`)
}

func TestRegisterRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodPost, "/auth/register", http.StatusCreated, `{"success":true,"message":"ok"}`)

	status, _, body := app.post(t, "/register", url.Values{
		"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"secret1"}, "confirmation": {"secret2"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "Las contraseñas no coinciden")
	assert.Empty(t, app.fake.Calls())

	status, header, _ := app.post(t, "/register", url.Values{
		"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"secret1"}, "confirmation": {"secret1"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login", header.Get("Location"))

	_, _, body = app.get(t, "/login")
	assert.Contains(t, body, "Registro exitoso")
	assert.NotContains(t, body, "Hola, Ana")
}

func TestCreateBookWithEmptyTitleMakesNoCall(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "user")

	status, _, body := app.post(t, "/books", url.Values{"title": {""}, "categoryId": {"1"}, "isbn": {"9780141439846"}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "El título es obligatorio")
	assert.Contains(t, body, `value="9780141439846"`)
	assert.Empty(t, app.fake.CallsTo(http.MethodPost, "/books"))
}

func TestCreateBookSurfacesRejection(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodPost, "/books", http.StatusBadRequest, `{"success":false,"error":"Categoría inexistente"}`)
	app.login(t, "user")

	status, _, body := app.post(t, "/books", url.Values{"title": {"Drácula"}, "categoryId": {"1"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Categoría inexistente")
	assert.Contains(t, body, `value="Drácula"`)
}

func TestEditBookWithoutChanges(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books/5", http.StatusOK, `{"success":true,"data":`+bookJSON+`}`)
	app.fake.Handle(http.MethodPut, "/books/5", http.StatusOK, `{"success":true,"data":`+bookJSON+`}`)
	app.login(t, "user")

	status, _, body := app.get(t, "/books/5/edit")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `name="title" value="Drácula"`)
	assert.Contains(t, body, `name="publishedYear" value="1897"`)
	assert.Contains(t, body, `name="pages" value="418"`)
	assert.Contains(t, body, `name="isbn" value=""`)
	assert.Contains(t, body, `<option value="1" selected>Terror</option>`)

	// Submit exactly what the prefilled form holds.
	form := url.Values{
		"title": {"Drácula"}, "author": {"Bram Stoker"}, "isbn": {""}, "description": {""},
		"publishedYear": {"1897"}, "publisher": {""}, "pages": {"418"}, "language": {"English"},
		"coverImage": {""}, "categoryId": {"1"}, "available": {"true"},
	}
	status, header, _ := app.post(t, "/books/5", form)
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/books", header.Get("Location"))

	calls := app.fake.CallsTo(http.MethodPut, "/books/5")
	require.Len(t, calls, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(calls[0].Body), &sent))
	for _, absent := range []string{"isbn", "description", "publisher", "coverImage"} {
		assert.NotContains(t, sent, absent)
	}
	assert.Equal(t, true, sent["available"])

	_, _, body = app.get(t, "/books/5")
	assert.Contains(t, body, "Libro actualizado correctamente")
}

func TestEditBookOwnedByAnotherUser(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books/6", http.StatusOK, `{"success":true,"data":{"id":6,"title":"Otro","userId":9,"categoryId":1}}`)
	app.login(t, "user")

	status, _, _ := app.get(t, "/books/6/edit")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestBookDetailControls(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books/5", http.StatusOK, `{"success":true,"data":`+bookJSON+`}`)

	status, _, body := app.get(t, "/books/5")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Bram Stoker")
	assert.NotContains(t, body, "/books/5/edit")

	app.login(t, "user")
	_, _, body = app.get(t, "/books/5")
	assert.Contains(t, body, `href="/books/5/edit"`)
	assert.Contains(t, body, `href="/books/5/delete"`)

	status, _, _ = app.get(t, "/books/404")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteBookRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books/5", http.StatusOK, `{"success":true,"data":`+bookJSON+`}`)
	app.fake.Handle(http.MethodDelete, "/books/5", http.StatusOK, `{"success":true}`)
	app.login(t, "user")

	status, _, body := app.get(t, "/books/5/delete")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "¿Seguro que quieres eliminar «Drácula»?")

	status, header, _ := app.post(t, "/books/5/delete", url.Values{"confirm": {"no"}})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/books/5", header.Get("Location"))
	assert.Empty(t, app.fake.CallsTo(http.MethodDelete, "/books/5"))

	status, header, _ = app.post(t, "/books/5/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/books", header.Get("Location"))
	calls := app.fake.CallsTo(http.MethodDelete, "/books/5")
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer access-7", calls[0].Header.Get("Authorization"))
}

func TestCategoryBooks(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books", http.StatusOK, `{"success":true,"data":[`+bookJSON+`]}`)

	status, _, body := app.get(t, "/category/999")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Categoría no encontrada")
	assert.Empty(t, app.fake.Calls())

	status, _, body = app.get(t, "/category/1")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Libros de terror y suspenso")
	assert.Equal(t, "categoryId=1&limit=12&page=1", app.fake.Calls()[0].Query)
}

func TestCategoryManagementRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/categories", http.StatusOK, `{"success":true,"data":[{"id":1,"name":"Terror"}]}`)
	app.fake.Handle(http.MethodPost, "/categories", http.StatusCreated, `{"success":true,"data":{"id":11,"name":"Poesía"}}`)

	status, header, _ := app.post(t, "/categories", url.Values{"name": {"Poesía"}})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login", header.Get("Location"))

	app.login(t, "user")
	status, _, _ = app.post(t, "/categories", url.Values{"name": {"Poesía"}})
	assert.Equal(t, http.StatusForbidden, status)
	_, _, body := app.get(t, "/categories")
	assert.NotContains(t, body, "Nueva categoría")

	app.login(t, "admin")
	_, _, body = app.get(t, "/categories")
	assert.Contains(t, body, "Nueva categoría")
	status, header, _ = app.post(t, "/categories", url.Values{"name": {"Poesía"}})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/categories", header.Get("Location"))
	assert.Len(t, app.fake.CallsTo(http.MethodPost, "/categories"), 1)
}

func TestVerifyEmail(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/auth/verify-email/abc", http.StatusOK, `{"success":true,"message":"Email verificado"}`)

	status, _, body := app.get(t, "/verify-email/abc")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Email verificado")
	assert.Contains(t, body, `http-equiv="refresh"`)

	status, _, body = app.get(t, "/verify-email/zzz")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "no es válido o ha caducado")
	assert.NotContains(t, body, `http-equiv="refresh"`)
}

func TestNetworkFailureMessage(t *testing.T) {
	app := newTestApp(t)
	app.fake.Close()

	status, _, body := app.get(t, "/books")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body, "Error de red")
}

func TestHealthcheck(t *testing.T) {
	app := newTestApp(t)
	status, header, body := app.get(t, "/v1/healthcheck")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.NotEmpty(t, header.Get("X-Request-Id"))

	var got struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "available", got.Status)
	assert.Equal(t, "testing", got.SystemInfo["environment"])
}

func TestDebugVarsRequiresBasicAuth(t *testing.T) {
	app := newTestApp(t)
	status, header, _ := app.get(t, "/debug/vars")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, header.Get("WWW-Authenticate"), "Basic")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.server.URL+"/debug/vars", nil)
	require.NoError(t, err)
	req.SetBasicAuth("admin", "secret")
	res, err := app.client.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestStaticFiles(t *testing.T) {
	app := newTestApp(t)
	status, _, body := app.get(t, "/static/css/main.css")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, ".pagination")
}

var pngCover = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type countingUploader struct {
	keys []string
}

func (u *countingUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	u.keys = append(u.keys, *input.Key)
	return &manager.UploadOutput{}, nil
}

func TestCreateBookValidatesBeforeUploadingCover(t *testing.T) {
	uploader := &countingUploader{}
	app := newTestAppWithUploader(t, uploader)
	app.fake.Handle(http.MethodPost, "/books", http.StatusCreated, `{"success":true,"data":`+bookJSON+`}`)
	app.login(t, "user")

	status, _, body := app.postMultipart(t, "/books", url.Values{"title": {""}, "categoryId": {"1"}}, "c.png", pngCover)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "El título es obligatorio")
	assert.Empty(t, uploader.keys)
	assert.Empty(t, app.fake.CallsTo(http.MethodPost, "/books"))

	status, header, _ := app.postMultipart(t, "/books", url.Values{"title": {"Drácula"}, "categoryId": {"1"}}, "c.png", pngCover)
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/books", header.Get("Location"))
	require.Len(t, uploader.keys, 1)
	calls := app.fake.CallsTo(http.MethodPost, "/books")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Body, "https://covers.s3.eu-west-1.amazonaws.com/"+uploader.keys[0])
}

func TestUpdateBookSurfacesNotFoundMessage(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodPut, "/books/5", http.StatusNotFound, `{"success":false,"error":"Libro no existe"}`)
	app.fake.Handle(http.MethodDelete, "/books/5", http.StatusNotFound, `{"success":false,"error":"Libro no existe"}`)
	app.login(t, "user")

	status, _, body := app.post(t, "/books/5", url.Values{"title": {"Drácula"}, "categoryId": {"1"}})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Libro no existe")
	assert.Contains(t, body, `value="Drácula"`)

	status, _, body = app.post(t, "/books/5/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Libro no existe")
}

func TestBooksRejectsMalformedQuery(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/books?page=abc", "/books?categoryId=x", "/category/1?page=abc"} {
		status, _, body := app.get(t, path)
		assert.Equal(t, http.StatusUnprocessableEntity, status, path)
		assert.Contains(t, body, "debe ser un número entero", path)
	}
	assert.Empty(t, app.fake.Calls())
}

func TestBooksPastLastPageLinksBack(t *testing.T) {
	app := newTestApp(t)
	app.fake.Handle(http.MethodGet, "/books", http.StatusOK,
		`{"success":true,"data":[],"pagination":{"page":9,"limit":12,"total":25,"pages":3}}`)

	status, _, body := app.get(t, "/books?page=9")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No se encontraron libros")
	assert.Contains(t, body, `<a class="button" href="/books?page=3">Anterior</a>`)
	assert.Contains(t, body, "<button disabled>Siguiente</button>")
}
