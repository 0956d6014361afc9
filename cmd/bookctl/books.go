package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emzola/bookmanager/service"
	"github.com/spf13/cobra"
)

func newBooksCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and manage books",
	}
	cmd.AddCommand(newBooksListCommand(e), newBooksShowCommand(e), newBooksDeleteCommand(e))
	return cmd
}

func newBooksListCommand(e *env) *cobra.Command {
	var params service.BookListParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a page of books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.Mine {
				if err := e.requireAuthenticatedUser(); err != nil {
					return err
				}
			}
			page, err := e.svc.ListBooks(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los libros: %s", describe(err))
			}
			if len(page.Books) == 0 {
				fmt.Fprintln(e.out, "No se encontraron libros")
				return nil
			}
			tw := newTable(e.out)
			fmt.Fprintln(tw, "ID\tTÍTULO\tAUTOR\tCATEGORÍA\tDISPONIBLE")
			for _, b := range page.Books {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Title, orDash(b.Author), orDash(b.CategoryName()), yesNo(b.Available))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if page.Pagination.Pages > 1 {
				fmt.Fprintf(e.out, "Página %d de %d (%d libros)\n", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&params.Page, "page", 1, "Page number")
	cmd.Flags().StringVar(&params.Search, "search", "", "Search by title or author")
	cmd.Flags().Int64Var(&params.CategoryID, "category", 0, "Filter by category id")
	cmd.Flags().BoolVar(&params.Mine, "mine", false, "List only your books")
	return cmd
}

func newBooksShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			book, err := e.svc.GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			tw := newTable(e.out)
			fmt.Fprintf(tw, "Título:\t%s\n", book.Title)
			fmt.Fprintf(tw, "Autor:\t%s\n", orDash(book.Author))
			fmt.Fprintf(tw, "Categoría:\t%s\n", orDash(book.CategoryName()))
			fmt.Fprintf(tw, "ISBN:\t%s\n", orDash(book.ISBN))
			fmt.Fprintf(tw, "Año:\t%s\n", intOrDash(book.PublishedYear))
			fmt.Fprintf(tw, "Editorial:\t%s\n", orDash(book.Publisher))
			fmt.Fprintf(tw, "Páginas:\t%s\n", intOrDash(book.Pages))
			fmt.Fprintf(tw, "Idioma:\t%s\n", orDash(book.Language))
			fmt.Fprintf(tw, "Disponible:\t%s\n", yesNo(book.Available))
			if book.User != nil {
				fmt.Fprintf(tw, "Publicado por:\t%s\n", book.User.Name)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if book.Description != "" {
				fmt.Fprintf(e.out, "\n%s\n", book.Description)
			}
			return nil
		},
	}
}

func newBooksDeleteCommand(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of your books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := e.requireAuthenticatedUser(); err != nil {
				return err
			}
			book, err := e.svc.EditableBook(cmd.Context(), id, e.sess.User())
			if err != nil {
				return err
			}
			confirmed := yes
			if !confirmed {
				answer, err := e.prompt(fmt.Sprintf("¿Eliminar %q? Esta acción no se puede deshacer [s/N]: ", book.Title))
				if err != nil {
					return err
				}
				confirmed = affirmative(answer)
			}
			err = e.svc.DeleteBook(cmd.Context(), id, confirmed)
			if errors.Is(err, service.ErrNotConfirmed) {
				fmt.Fprintln(e.out, "Eliminación cancelada")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, "Libro eliminado")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("id inválido: %q", s)
	}
	return id, nil
}

func affirmative(answer string) bool {
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}
