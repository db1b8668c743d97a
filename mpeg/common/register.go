package common

// RegisterBits is the capacity of a Register.
const RegisterBits = 128

// Register packs codes MSB-first into a single 128-bit accumulator.
// The zero value is an empty register.
type Register struct {
	hi, lo uint64
	n      int
}

// Append shifts the register left by width bits and ORs code into the
// low bits. code must not have bits set at or above width.
func (r *Register) Append(code uint64, width int) error {
	if width < 0 || width > 64 {
		return ErrInvalidCodeWidth
	}
	if width < 64 && code>>uint(width) != 0 {
		return ErrCodeTooWide
	}
	if r.n+width > RegisterBits {
		return &CapacityError{Have: r.n, Want: width, Capacity: RegisterBits}
	}

	switch {
	case width == 0:
		return nil
	case width == 64:
		r.hi = r.lo
		r.lo = code
	default:
		r.hi = r.hi<<uint(width) | r.lo>>uint(64-width)
		r.lo = r.lo<<uint(width) | code
	}
	r.n += width

	return nil
}

// AppendVLC appends a variable-length code.
func (r *Register) AppendVLC(v VLC) error {
	return r.Append(v.Code, v.Len)
}

// Len returns the number of significant bits.
func (r *Register) Len() int {
	return r.n
}

// Value returns the register contents as high and low words.
func (r *Register) Value() (hi, lo uint64) {
	return r.hi, r.lo
}

// Reset empties the register.
func (r *Register) Reset() {
	*r = Register{}
}
