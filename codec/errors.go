package codec

import "errors"

var (
	// ErrFrameOutOfRange is returned when a frame index does not exist
	ErrFrameOutOfRange = errors.New("frame index out of range")

	// ErrInvalidParameter is returned when encoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedFormat is returned when the pixel format is not supported
	ErrUnsupportedFormat = errors.New("unsupported format")
)
