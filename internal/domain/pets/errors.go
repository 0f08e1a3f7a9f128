package pets

import "errors"

var (
	ErrDuplicateName = errors.New("duplicate pet name")
	ErrNotFound      = errors.New("pet not found")
	ErrInvalidInput  = errors.New("invalid input")

	// ErrIO y ErrFormat envuelven fallas del archivo de snapshot.
	ErrIO     = errors.New("snapshot io error")
	ErrFormat = errors.New("snapshot format error")
)
