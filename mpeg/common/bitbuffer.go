package common

// BitBuffer is a growable MSB-first bit sink with no capacity ceiling.
type BitBuffer struct {
	data  []byte
	nBits int
}

// NewBitBuffer creates a BitBuffer with room for capacity bytes.
func NewBitBuffer(capacity int) *BitBuffer {
	return &BitBuffer{data: make([]byte, 0, capacity)}
}

// WriteBits appends the low n bits of bits, n in 0..64.
func (b *BitBuffer) WriteBits(bits uint64, n int) error {
	if n < 0 || n > 64 {
		return ErrInvalidCodeWidth
	}

	for n > 0 {
		used := b.nBits % 8
		if used == 0 {
			b.data = append(b.data, 0)
		}

		free := 8 - used
		take := free
		if n < take {
			take = n
		}

		chunk := byte((bits >> uint(n-take)) & (1<<uint(take) - 1))
		b.data[len(b.data)-1] |= chunk << uint(free-take)

		b.nBits += take
		n -= take
	}

	return nil
}

// WriteVLC appends a variable-length code.
func (b *BitBuffer) WriteVLC(v VLC) error {
	return b.WriteBits(v.Code, v.Len)
}

// WriteRegister appends the significant bits of r.
func (b *BitBuffer) WriteRegister(r *Register) error {
	hi, lo := r.Value()
	n := r.Len()
	if n > 64 {
		if err := b.WriteBits(hi, n-64); err != nil {
			return err
		}
		n = 64
	}
	return b.WriteBits(lo, n)
}

// Len returns the number of bits written.
func (b *BitBuffer) Len() int {
	return b.nBits
}

// Bytes returns the written bits, the final byte zero-padded.
// The slice aliases the buffer until the next write.
func (b *BitBuffer) Bytes() []byte {
	return b.data
}

// Reset empties the buffer, keeping its storage.
func (b *BitBuffer) Reset() {
	b.data = b.data[:0]
	b.nBits = 0
}
