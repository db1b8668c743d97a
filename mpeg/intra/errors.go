package intra

import (
	"errors"
	"fmt"
)

var (
	ErrNilSamples    = errors.New("nil macroblock samples")
	ErrNilPredictors = errors.New("nil DC predictors")
	ErrInvalidPlane  = errors.New("invalid plane")
)

// BlockError identifies the block of a macroblock that failed to encode.
type BlockError struct {
	Block BlockID
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %s: %v", e.Block, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
