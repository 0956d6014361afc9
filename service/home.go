package service

import (
	"context"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
	"golang.org/x/sync/errgroup"
)

// ShelfSize is the number of books shown per category on the home screen.
const ShelfSize = 5

type home interface {
	Home(ctx context.Context) ([]Shelf, error)
}

// Shelf is one category carousel on the home screen. Err is set when that
// category alone could not be fetched.
type Shelf struct {
	Category data.StaticCategory
	Books    []data.Book
	Err      error
}

// Home fetches the first books of every static category concurrently. Every
// fetch runs to completion and a failing category only marks its own shelf.
// The result is discarded when ctx is done by the time all fetches return.
func (s *service) Home(ctx context.Context) ([]Shelf, error) {
	categories := data.StaticCategories()
	shelves := make([]Shelf, len(categories))

	var g errgroup.Group
	g.SetLimit(4)
	for i, c := range categories {
		i, c := i, c
		shelves[i].Category = c
		g.Go(func() error {
			res, err := s.api.Books().List(ctx, dto.QsListBooks{Page: 1, Limit: ShelfSize, CategoryID: c.ID})
			if err != nil {
				shelves[i].Err = err
				return nil
			}
			shelves[i].Books = res.Data
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, shelf := range shelves {
		if shelf.Err != nil {
			s.logger.PrintError(shelf.Err, map[string]string{
				"screen":   "home",
				"category": shelf.Category.Name,
			})
		}
	}
	return shelves, nil
}
