package validators

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
