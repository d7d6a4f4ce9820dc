package domain

import "errors"

var (
	// ErrProductExists indicates a catalog entry with the same name already exists.
	ErrProductExists = errors.New("product already exists")
	// ErrProductNotFound indicates no catalog entry matched the given id or name.
	ErrProductNotFound = errors.New("product not found")
	// ErrMemberNotFound indicates no member matched the given id.
	ErrMemberNotFound = errors.New("member not found")
	// ErrOrderNotFound indicates no pending order matched the given id.
	ErrOrderNotFound = errors.New("order not found")
)
