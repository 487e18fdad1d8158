package str

import "errors"

var (
	// ErrInvalidArgument indicates a nil or destroyed handle, absent content
	// where an operation requires some, or an unusable needle/word argument.
	ErrInvalidArgument = errors.New("str: invalid argument")
	// ErrTooLarge indicates an operation would grow the content past MaxStringSize.
	// The check happens before any mutation, so the handle's content survives.
	ErrTooLarge = errors.New("str: exceeds maximum string size")
	// ErrNotFound indicates a search-based operation found no match.
	ErrNotFound = errors.New("str: not found")
	// ErrAlreadySet indicates ReadLine was called on a handle that already
	// holds content; use AppendLine to extend existing content.
	ErrAlreadySet = errors.New("str: content already present")
)
