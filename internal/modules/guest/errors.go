package guest

import "errors"

var ErrNotFound = errors.New("guest not found")

// FieldErrors carries field -> constraint pairs from validation.
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return "guest validation failed" }
