package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emzola/bookmanager/api"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrNotPermitted         = errors.New("not permitted")
	ErrNotConfirmed         = errors.New("deletion not confirmed")
	ErrUploadsDisabled      = errors.New("cover uploads are disabled")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrContentTooLarge      = errors.New("content too large")
)

// ValidationError carries the per-field messages of a form that failed
// validation. It matches ErrFailedValidation with errors.Is.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Errors[k])
	}
	return "failed validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrFailedValidation
}

func failedValidation(errorMap map[string]string) error {
	return &ValidationError{Errors: errorMap}
}

// translate marks a not-found rejection from the remote API with
// ErrRecordNotFound. The rejection stays in the chain so its message can be
// shown as the API wrote it.
func translate(err error) error {
	if api.IsNotFound(err) {
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	return err
}
