package validator

import (
	"regexp"
	"slices"

	"github.com/gabriel-vasile/mimetype"
)

var (
	EmailRX = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	// ISBNRX accepts a bare ISBN-10 or ISBN-13 made of digits only.
	ISBNRX = regexp.MustCompile(`^(?:[0-9]{10}|[0-9]{13})$`)
)

// Validator holds a map of validation errors keyed by form field.
type Validator struct {
	Errors map[string]string
}

// New returns a Validator with an empty errors map.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the errors map doesn't contain any entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error message to the map, keeping the first message for a key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error message to the map only if a validation check is not 'ok'.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// In returns true if a specific value is in a list of permitted values.
func In[T comparable](value T, list ...T) bool {
	return slices.Contains(list, value)
}

// Matches returns true if a string value matches a specific regexp pattern.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// Unique returns true if all values in a slice are unique.
func Unique[T comparable](values []T) bool {
	uniqueValues := make(map[T]bool)
	for _, value := range values {
		uniqueValues[value] = true
	}
	return len(values) == len(uniqueValues)
}

// Mime returns true if the detected content type is one of the permitted types.
func Mime(mtype *mimetype.MIME, permitted ...string) bool {
	if mtype == nil {
		return false
	}
	for _, p := range permitted {
		if mtype.Is(p) {
			return true
		}
	}
	return false
}
