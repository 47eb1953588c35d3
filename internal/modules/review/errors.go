package review

import "errors"

var (
	ErrNotFound      = errors.New("review not found")
	ErrNotAuthor     = errors.New("review belongs to another user")
	ErrEmptyComment  = errors.New("comment must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
