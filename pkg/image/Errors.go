package image

import "errors"

var (
	ERROR_EMPTY_REFERENCE   = errors.New("image reference is empty")
	ERROR_INVALID_REFERENCE = errors.New("invalid image reference")
)
