package service

import "errors"

// Sentinel errors returned by the services. Handlers map them onto HTTP
// status codes; anything else is treated as a storage failure and surfaced
// as a generic 500.
var (
	// ErrNotFound signals a lookup by id that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName signals a category name collision.
	ErrDuplicateName = errors.New("category with this name already exists")
	// ErrInvalidReference signals a category_id pointing at no category.
	ErrInvalidReference = errors.New("referenced category does not exist")
)
