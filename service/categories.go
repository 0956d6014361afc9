package service

import (
	"context"
	"strings"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
	"github.com/emzola/bookmanager/internal/validator"
)

// CategoryListSize is the number of categories requested for the management list.
const CategoryListSize = 100

type categories interface {
	ListCategories(ctx context.Context) ([]data.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*data.Category, error)
	SaveCategory(ctx context.Context, categoryID int64, form CategoryForm) (*data.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryForm holds the category form inputs.
type CategoryForm struct {
	Name        string
	Description string
}

func (f CategoryForm) Validate(v *validator.Validator) {
	name := strings.TrimSpace(f.Name)
	v.Check(name != "", "name", "El nombre es obligatorio")
	v.Check(len(name) <= 100, "name", "El nombre no puede superar los 100 caracteres")
}

// ListCategories service retrieves the server-side category list.
func (s *service) ListCategories(ctx context.Context) ([]data.Category, error) {
	res, err := s.api.Categories().List(ctx, dto.QsListCategories{Page: 1, Limit: CategoryListSize})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		s.logger.PrintError(err, map[string]string{"screen": "categories"})
		return nil, err
	}
	return res.Data, nil
}

// GetCategory service retrieves a category record.
func (s *service) GetCategory(ctx context.Context, categoryID int64) (*data.Category, error) {
	res, err := s.api.Categories().Get(ctx, categoryID)
	if err != nil {
		return nil, translate(err)
	}
	return &res.Data, nil
}

// SaveCategory service creates a category when categoryID is zero and
// updates it otherwise.
func (s *service) SaveCategory(ctx context.Context, categoryID int64, form CategoryForm) (*data.Category, error) {
	v := validator.New()
	if form.Validate(v); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	body := dto.CategoryRequestBody{
		Name:        strings.TrimSpace(form.Name),
		Description: optional(form.Description),
	}
	var (
		res *api.Response[data.Category]
		err error
	)
	if categoryID == 0 {
		res, err = s.api.Categories().Create(ctx, body)
	} else {
		res, err = s.api.Categories().Update(ctx, categoryID, body)
	}
	if err != nil {
		return nil, translate(err)
	}
	return &res.Data, nil
}

// DeleteCategory service deletes a category.
func (s *service) DeleteCategory(ctx context.Context, categoryID int64) error {
	_, err := s.api.Categories().Delete(ctx, categoryID)
	return translate(err)
}
