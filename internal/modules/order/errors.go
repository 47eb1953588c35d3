package order

import "errors"

var (
	ErrNotFound       = errors.New("order not found")
	ErrNotOwner       = errors.New("order belongs to another user")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
	ErrBadTransition  = errors.New("illegal status transition")
	ErrListingGone    = errors.New("listing not found")
)
