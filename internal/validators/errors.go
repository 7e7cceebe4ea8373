package validators

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
