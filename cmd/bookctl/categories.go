package main

import (
	"fmt"

	"github.com/emzola/bookmanager/data"
	"github.com/spf13/cobra"
)

func newCategoriesCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse categories",
	}
	cmd.AddCommand(newCategoriesListCommand(e), newCategoriesShowCommand(e))
	return cmd
}

func newCategoriesShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a category as stored by the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			category, err := e.svc.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			tw := newTable(e.out)
			fmt.Fprintf(tw, "ID:\t%d\n", category.ID)
			fmt.Fprintf(tw, "Nombre:\t%s\n", category.Name)
			fmt.Fprintf(tw, "Descripción:\t%s\n", orDash(category.Description))
			return tw.Flush()
		},
	}
}

func newCategoriesListCommand(e *env) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the book categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(e.out)
			fmt.Fprintln(tw, "ID\tNOMBRE\tDESCRIPCIÓN")
			if remote {
				categories, err := e.svc.ListCategories(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range categories {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, orDash(c.Description))
				}
			} else {
				for _, c := range data.StaticCategories() {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Fetch the categories from the API instead of the built-in list")
	return cmd
}
