package counting

import "errors"

var (
	ErrEmptyInput      = errors.New("empty ballot input")
	ErrInvalidArgument = errors.New("invalid argument")
)
