package listing

import "errors"

var (
	ErrNotFound      = errors.New("listing not found")
	ErrNotOwner      = errors.New("listing belongs to another vendor")
	ErrTooManyImages = errors.New("too many images")
)
