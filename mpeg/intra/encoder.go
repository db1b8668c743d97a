package intra

import (
	"fmt"

	"github.com/cocosip/go-mpeg-intra/mpeg/common"
)

// Encoder codes intra macroblocks with the default quantization matrix
// and the luminance/chrominance DC size tables. It holds no DC state and
// is safe for concurrent use; prediction state lives in Predictors.
type Encoder struct {
	quant       *common.Quantizer
	dcTables    [3]*common.SizeClassTable
	parallelism int
}

// NewEncoder creates an encoder. nil params uses the defaults.
func NewEncoder(params *Parameters) (*Encoder, error) {
	if params == nil {
		params = NewParameters()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	quant, err := common.NewQuantizer(common.DefaultIntraQuantMatrix, params.QuantizerScale)
	if err != nil {
		return nil, err
	}

	enc := &Encoder{
		quant:       quant,
		parallelism: params.SliceParallelism,
	}
	enc.dcTables[PlaneLuma] = &common.LuminanceDCSizeTable
	enc.dcTables[PlaneCb] = &common.ChrominanceDCSizeTable
	enc.dcTables[PlaneCr] = &common.ChrominanceDCSizeTable

	return enc, nil
}

// Quantizer returns the encoder's quantizer.
func (enc *Encoder) Quantizer() *common.Quantizer {
	return enc.quant
}

// EncodeBlock transforms, quantizes and codes one block of plane,
// advancing pred. See EncodeQuantized for the predictor contract.
func (enc *Encoder) EncodeBlock(src *common.Block, pred *Predictor, plane Plane) (CodedBlock, error) {
	if plane < PlaneLuma || plane > PlaneCr {
		return CodedBlock{}, fmt.Errorf("%w: %d", ErrInvalidPlane, int(plane))
	}

	coef := common.ForwardDCT(src)
	q := enc.quant.Quantize(&coef)
	return EncodeQuantized(&q, pred, enc.dcTables[plane])
}

// EncodeMacroblock codes Y1..Y4 against preds.Y in that order, then Cb
// and Cr against their own predictors.
//
// Coding stops at the first block that fails; the returned *BlockError
// names it. Predictors of that block and every block before it have been
// advanced, those of later blocks are untouched.
func (enc *Encoder) EncodeMacroblock(src *Samples, preds *Predictors) (*Macroblock, error) {
	if src == nil {
		return nil, ErrNilSamples
	}
	if preds == nil {
		return nil, ErrNilPredictors
	}

	mb := &Macroblock{Header: common.MacroblockHeader}

	for id := BlockY1; id < BlocksPerMacroblock; id++ {
		plane := id.Plane()
		coded, err := enc.EncodeBlock(src.Block(id), preds.For(plane), plane)
		if err != nil {
			return nil, &BlockError{Block: id, Err: err}
		}
		mb.Blocks[id] = coded
	}

	return mb, nil
}

// EncodeSlice codes the macroblocks of one slice in order, starting from
// reset predictors.
func (enc *Encoder) EncodeSlice(src []Samples) ([]*Macroblock, error) {
	var preds Predictors

	mbs := make([]*Macroblock, len(src))
	for i := range src {
		mb, err := enc.EncodeMacroblock(&src[i], &preds)
		if err != nil {
			return nil, fmt.Errorf("macroblock %d: %w", i, err)
		}
		mbs[i] = mb
	}

	return mbs, nil
}
