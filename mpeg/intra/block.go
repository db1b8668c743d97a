package intra

import (
	"github.com/cocosip/go-mpeg-intra/mpeg/common"
)

// CodedBlock is the packed bitstream of one 8x8 block: the low Len bits
// of the 128-bit value Hi:Lo, MSB first.
type CodedBlock struct {
	Hi  uint64
	Lo  uint64
	Len int
}

func codedFromRegister(r *common.Register) CodedBlock {
	hi, lo := r.Value()
	return CodedBlock{Hi: hi, Lo: lo, Len: r.Len()}
}

// AppendTo writes the block's bits to b.
func (c CodedBlock) AppendTo(b *common.BitBuffer) error {
	n := c.Len
	if n > 64 {
		if err := b.WriteBits(c.Hi, n-64); err != nil {
			return err
		}
		n = 64
	}
	return b.WriteBits(c.Lo, n)
}

// Bytes returns the block's bits left-aligned, the last byte zero-padded.
func (c CodedBlock) Bytes() []byte {
	b := common.NewBitBuffer((c.Len + 7) / 8)
	_ = c.AppendTo(b)
	return b.Bytes()
}

// EncodeQuantized codes a quantized block: the DC difference against pred
// as size class + amplitude, every non-zero AC coefficient in zigzag order
// as escape + 6-bit run + 8-bit level, then end of block.
//
// pred is advanced to q[0] before anything else is coded, so it is
// updated even when the block fails with ErrCoefficientOverflow or
// ErrCapacityExceeded. The next block of the plane is then predicted from
// this block's DC whether or not the caller keeps the failed block.
func EncodeQuantized(q *common.Block, pred *Predictor, table *common.SizeClassTable) (CodedBlock, error) {
	var reg common.Register

	// Encode DC coefficient
	dcDiff := pred.advance(q[0])

	cat, bits := common.EncodeCategory(int(dcDiff))
	if cat > common.MaxSizeClass {
		return CodedBlock{}, &common.CoefficientError{Position: 0, Level: dcDiff}
	}
	if err := reg.AppendVLC(table[cat]); err != nil {
		return CodedBlock{}, err
	}
	if err := reg.Append(bits, cat); err != nil {
		return CodedBlock{}, err
	}

	// Encode AC coefficients
	run := 0
	for k := 1; k < 64; k++ {
		level := q[common.ZigZag[k]]

		if level == 0 {
			run++
			continue
		}

		if level < common.MinLevel || level > common.MaxLevel || run > common.MaxRun {
			return CodedBlock{}, &common.CoefficientError{Position: k, Run: run, Level: level}
		}

		if err := reg.AppendVLC(common.EscapeCode); err != nil {
			return CodedBlock{}, err
		}
		if err := reg.Append(uint64(run), common.RunBits); err != nil {
			return CodedBlock{}, err
		}
		if err := reg.Append(uint64(uint8(int8(level))), common.LevelBits); err != nil {
			return CodedBlock{}, err
		}

		run = 0
	}

	if err := reg.AppendVLC(common.EndOfBlock); err != nil {
		return CodedBlock{}, err
	}

	return codedFromRegister(&reg), nil
}
