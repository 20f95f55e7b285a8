package domain

import "errors"

var (
	ErrEmptyAddress        = errors.New("address must not be empty")
	ErrAddressNotFound     = errors.New("address could not be geocoded")
	ErrDuplicateLocationID = errors.New("duplicate location id")
)
