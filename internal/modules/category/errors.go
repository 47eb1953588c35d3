package category

import "errors"

var (
	ErrNotFound    = errors.New("category not found")
	ErrSlugTaken   = errors.New("category slug already in use")
	ErrHasListings = errors.New("category has linked listings")
	ErrInvalidType = errors.New("invalid category type")
)
