package common

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrDegenerateQuantMatrix = errors.New("quantization matrix contains a zero step size")
	ErrInvalidQuantizerScale = errors.New("invalid quantizer scale")
	ErrCoefficientOverflow   = errors.New("coefficient out of codable range")
	ErrCapacityExceeded      = errors.New("coded block exceeds register capacity")
	ErrInvalidCodeWidth      = errors.New("invalid code width")
	ErrCodeTooWide           = errors.New("code has bits set above its width")
)

// CoefficientError reports a quantized coefficient that cannot be coded.
// Position is the scan position (0 for the DC difference).
type CoefficientError struct {
	Position int
	Run      int
	Level    int32
}

func (e *CoefficientError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("DC difference %d exceeds size class %d", e.Level, MaxSizeClass)
	}
	return fmt.Sprintf("AC coefficient at scan position %d (run %d, level %d) exceeds escape range", e.Position, e.Run, e.Level)
}

// Unwrap returns ErrCoefficientOverflow.
func (e *CoefficientError) Unwrap() error {
	return ErrCoefficientOverflow
}

// CapacityError reports an append that would overflow a Register.
type CapacityError struct {
	Have     int
	Want     int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("appending %d bits to %d bits exceeds capacity of %d", e.Want, e.Have, e.Capacity)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
