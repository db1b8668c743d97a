package intra

import (
	"github.com/cocosip/go-mpeg-intra/mpeg/common"
)

// BlockID names the six blocks of a macroblock in coding order.
type BlockID int

const (
	BlockY1 BlockID = iota
	BlockY2
	BlockY3
	BlockY4
	BlockCb
	BlockCr

	BlocksPerMacroblock = 6
)

var blockNames = [BlocksPerMacroblock]string{"Y1", "Y2", "Y3", "Y4", "Cb", "Cr"}

func (id BlockID) String() string {
	if id < 0 || int(id) >= BlocksPerMacroblock {
		return "unknown"
	}
	return blockNames[id]
}

// Plane returns the prediction chain of the block.
func (id BlockID) Plane() Plane {
	switch id {
	case BlockCb:
		return PlaneCb
	case BlockCr:
		return PlaneCr
	default:
		return PlaneLuma
	}
}

// Samples holds the source blocks of one 16x16 macroblock: four luma
// blocks in raster order (top-left, top-right, bottom-left, bottom-right)
// and one block per chroma plane.
type Samples struct {
	Y  [4]common.Block
	Cb common.Block
	Cr common.Block
}

// Block returns the source block for id.
func (s *Samples) Block(id BlockID) *common.Block {
	switch id {
	case BlockCb:
		return &s.Cb
	case BlockCr:
		return &s.Cr
	default:
		return &s.Y[id]
	}
}

// Macroblock is a coded intra macroblock: the fixed header followed by
// the six coded blocks Y1..Y4, Cb, Cr.
type Macroblock struct {
	Header common.VLC
	Blocks [BlocksPerMacroblock]CodedBlock
}

// Len returns the total coded length in bits.
func (m *Macroblock) Len() int {
	n := m.Header.Len
	for _, b := range m.Blocks {
		n += b.Len
	}
	return n
}

// AppendTo writes the header and the six blocks to b.
func (m *Macroblock) AppendTo(b *common.BitBuffer) error {
	if err := b.WriteVLC(m.Header); err != nil {
		return err
	}
	for _, blk := range m.Blocks {
		if err := blk.AppendTo(b); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the macroblock's bits left-aligned, the last byte zero-padded.
func (m *Macroblock) Bytes() []byte {
	b := common.NewBitBuffer((m.Len() + 7) / 8)
	_ = m.AppendTo(b)
	return b.Bytes()
}
