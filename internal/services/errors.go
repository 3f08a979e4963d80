package services

import "errors"

// Standard service errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource conflict")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError names the entity a lookup failed for. It matches ErrNotFound
// under errors.Is, and its message is the client-facing 404 detail.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// Is makes every NotFoundError match ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Entity-specific not-found errors.
var (
	ErrMenuNotFound    = &NotFoundError{Entity: "menu"}
	ErrSubmenuNotFound = &NotFoundError{Entity: "submenu"}
	ErrDishNotFound    = &NotFoundError{Entity: "dish"}
)
