package models

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or is not published.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned on a unique violation, typically a duplicate slug.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrNoFieldsToUpdate is returned when an update carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidReference is returned when a parent row (product, sub-product,
	// project) referenced by a child does not exist.
	ErrInvalidReference = errors.New("referenced resource does not exist")

	// ErrInvalidSlug is returned when no slug can be derived from the title or name.
	ErrInvalidSlug = errors.New("slug must contain at least one letter or digit")
)
