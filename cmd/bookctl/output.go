package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/service"
)

var errNotLoggedIn = errors.New("no hay sesión iniciada; ejecuta bookctl login")

// describe turns a command failure into the line shown to the user.
func describe(err error) string {
	var apiErr *api.Error
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		keys := make([]string, 0, len(validationErr.Errors))
		for k := range validationErr.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+validationErr.Errors[k])
		}
		return strings.Join(parts, "; ")
	case errors.As(err, &apiErr) && apiErr.IsNetwork():
		return "Error de red: no se pudo contactar con el servidor"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, service.ErrRecordNotFound):
		return "No encontrado"
	case errors.Is(err, service.ErrNotPermitted):
		return "No tienes permiso para modificar este libro"
	default:
		return err.Error()
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprint(n)
}
