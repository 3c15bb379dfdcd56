package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrMissingArgument    = fmt.Errorf("%w: required argument is missing", ErrInvalidInput)
	ErrWrongAddressFamily = fmt.Errorf("%w: wrong address family", ErrInvalidInput)
	ErrDuplicateAddress   = fmt.Errorf("%w: a host with the same ip address already exists", ErrConflict)
	ErrDuplicateName      = fmt.Errorf("%w: a host with the same name already exists", ErrConflict)

	ErrNetworkNotFound = fmt.Errorf("network %w", ErrNotFound)
	ErrHostNotFound    = fmt.Errorf("host %w", ErrNotFound)
)
