package common

// Quantizer scale limits (5-bit quantizer_scale field).
const (
	MinQuantizerScale = 1
	MaxQuantizerScale = 31
)

// Quantizer divides coefficients by a fixed step matrix.
// It is immutable and safe for concurrent use.
type Quantizer struct {
	steps [64]int32
	scale int
}

// NewQuantizer builds a quantizer with steps matrix[i]*scale.
// A zero step anywhere is rejected here so Quantize never divides by zero.
func NewQuantizer(matrix [64]int32, scale int) (*Quantizer, error) {
	if scale < MinQuantizerScale || scale > MaxQuantizerScale {
		return nil, ErrInvalidQuantizerScale
	}

	q := &Quantizer{scale: scale}
	for i, step := range matrix {
		if step <= 0 {
			return nil, ErrDegenerateQuantMatrix
		}
		q.steps[i] = step * int32(scale)
	}

	return q, nil
}

// Scale returns the quantizer scale.
func (q *Quantizer) Scale() int {
	return q.scale
}

// Step returns the effective step size at row-major index i.
func (q *Quantizer) Step(i int) int32 {
	return q.steps[i]
}

// Quantize divides each coefficient by its step, truncating toward zero.
func (q *Quantizer) Quantize(coef *Block) Block {
	var out Block
	for i := 0; i < 64; i++ {
		out[i] = coef[i] / q.steps[i]
	}
	return out
}
