package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/", h.homeHandler)

	router.HandlerFunc(http.MethodGet, "/login", h.showLoginHandler)
	router.HandlerFunc(http.MethodPost, "/login", h.loginHandler)
	router.HandlerFunc(http.MethodGet, "/register", h.showRegisterHandler)
	router.HandlerFunc(http.MethodPost, "/register", h.registerHandler)
	router.HandlerFunc(http.MethodPost, "/logout", h.logoutHandler)
	router.HandlerFunc(http.MethodGet, "/verify-email/:token", h.verifyEmailHandler)

	router.HandlerFunc(http.MethodGet, "/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/books", h.requireAuthenticatedUser(h.createBookHandler))
	// "/books/new" shares the ":id" wildcard; showBookHandler dispatches it to the guarded form.
	router.HandlerFunc(http.MethodGet, "/books/:id", h.showBookHandler)
	router.HandlerFunc(http.MethodPost, "/books/:id", h.requireAuthenticatedUser(h.updateBookHandler))
	router.HandlerFunc(http.MethodGet, "/books/:id/edit", h.requireAuthenticatedUser(h.editBookHandler))
	router.HandlerFunc(http.MethodGet, "/books/:id/delete", h.requireAuthenticatedUser(h.confirmDeleteBookHandler))
	router.HandlerFunc(http.MethodPost, "/books/:id/delete", h.requireAuthenticatedUser(h.deleteBookHandler))
	router.HandlerFunc(http.MethodGet, "/my-books", h.requireAuthenticatedUser(h.listMyBooksHandler))
	router.HandlerFunc(http.MethodGet, "/category/:categoryId", h.showCategoryHandler)

	router.HandlerFunc(http.MethodGet, "/categories", h.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/categories", h.requireAdmin(h.createCategoryHandler))
	router.HandlerFunc(http.MethodPost, "/categories/:categoryId", h.requireAdmin(h.updateCategoryHandler))
	router.HandlerFunc(http.MethodPost, "/categories/:categoryId/delete", h.requireAdmin(h.deleteCategoryHandler))

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.Handler(http.MethodGet, "/metrics", h.promHTTP)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.ServeFiles("/static/*filepath", staticFiles())

	return h.recoverPanic(h.requestID(h.metrics(h.rateLimit(h.loadSession(router)))))
}
