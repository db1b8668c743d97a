package intra

import (
	"fmt"

	"github.com/cocosip/go-mpeg-intra/mpeg/common"
)

// bitReader reads MSB-first from a left-aligned bit string.
type bitReader struct {
	data []byte
	pos  int
	n    int
}

func newBitReader(data []byte, n int) *bitReader {
	return &bitReader{data: data, n: n}
}

func (r *bitReader) read(n int) (uint64, error) {
	if r.pos+n > r.n {
		return 0, fmt.Errorf("read %d bits at %d past end %d", n, r.pos, r.n)
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit := (r.data[r.pos/8] >> uint(7-r.pos%8)) & 1
		v = v<<1 | uint64(bit)
		r.pos++
	}
	return v, nil
}

type runLevel struct {
	Run   int
	Level int32
}

type parsedBlock struct {
	SizeClass int
	DCDiff    int32
	Pairs     []runLevel
}

// parseBlock splits a coded block back into its symbols.
func parseBlock(c CodedBlock, table *common.SizeClassTable) (*parsedBlock, error) {
	r := newBitReader(c.Bytes(), c.Len)
	out := &parsedBlock{SizeClass: -1}

	var code uint64
	for l := 1; l <= 8 && out.SizeClass < 0; l++ {
		bit, err := r.read(1)
		if err != nil {
			return nil, err
		}
		code = code<<1 | bit
		for cat, v := range table {
			if v.Len == l && v.Code == code {
				out.SizeClass = cat
				break
			}
		}
	}
	if out.SizeClass < 0 {
		return nil, fmt.Errorf("no size class matches prefix %b", code)
	}

	amp, err := r.read(out.SizeClass)
	if err != nil {
		return nil, err
	}
	out.DCDiff = int32(common.ExtendCategory(out.SizeClass, amp))

	for {
		first, err := r.read(1)
		if err != nil {
			return nil, err
		}
		if first == 1 {
			rest, err := r.read(1)
			if err != nil {
				return nil, err
			}
			if rest != 0 {
				return nil, fmt.Errorf("bad end of block at bit %d", r.pos)
			}
			break
		}

		esc, err := r.read(common.EscapeCode.Len - 1)
		if err != nil {
			return nil, err
		}
		if esc != common.EscapeCode.Code {
			return nil, fmt.Errorf("bad escape %b at bit %d", esc, r.pos)
		}
		run, err := r.read(common.RunBits)
		if err != nil {
			return nil, err
		}
		level, err := r.read(common.LevelBits)
		if err != nil {
			return nil, err
		}
		out.Pairs = append(out.Pairs, runLevel{Run: int(run), Level: int32(int8(uint8(level)))})
	}

	if r.pos != r.n {
		return nil, fmt.Errorf("%d trailing bits", r.n-r.pos)
	}

	return out, nil
}
