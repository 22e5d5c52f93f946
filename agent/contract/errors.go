package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
	ErrValidation      = errors.New("validation failed")
	ErrUnknownFunction = errors.New("unknown function")
	ErrCatalogLoad     = errors.New("catalog load failed")
)
