package picture

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	codecHelpers "github.com/cocosip/go-mpeg-intra/codec"
	"github.com/cocosip/go-mpeg-intra/mpeg/common"
	"github.com/cocosip/go-mpeg-intra/mpeg/intra"
)

// EncodedFrame is one frame coded as intra macroblocks, one slice per
// macroblock row.
type EncodedFrame struct {
	Index    int
	MBWidth  int
	MBHeight int
	Slices   [][]*intra.Macroblock
}

// Len returns the total coded size in bits.
func (f *EncodedFrame) Len() int {
	n := 0
	for _, slice := range f.Slices {
		for _, mb := range slice {
			n += mb.Len()
		}
	}
	return n
}

// Bytes packs every macroblock of the frame MSB-first, slice by slice,
// with the final byte zero-padded.
func (f *EncodedFrame) Bytes() ([]byte, error) {
	buf := common.NewBitBuffer((f.Len() + 7) / 8)
	for i, slice := range f.Slices {
		for j, mb := range slice {
			if err := mb.AppendTo(buf); err != nil {
				return nil, fmt.Errorf("slice %d macroblock %d: %w", i, j, err)
			}
		}
	}
	return buf.Bytes(), nil
}

// EncodeFrame samples one native frame and codes it with enc.
func EncodeFrame(enc *intra.Encoder, frame []byte, info *imagetypes.FrameInfo) (*EncodedFrame, error) {
	planes, err := SampleFrame(frame, info)
	if err != nil {
		return nil, err
	}

	slices, err := enc.EncodeSlices(planes.Slices())
	if err != nil {
		return nil, err
	}

	return &EncodedFrame{
		MBWidth:  planes.MBWidth,
		MBHeight: planes.MBHeight,
		Slices:   slices,
	}, nil
}

// EncodePixelData codes every frame of src. parameters may be an
// *intra.Parameters, any codec.Parameters carrying the same names, or nil.
func EncodePixelData(src imagetypes.PixelData, parameters codec.Parameters) ([]*EncodedFrame, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: source PixelData cannot be nil", codecHelpers.ErrInvalidParameter)
	}

	info := src.GetFrameInfo()
	if info == nil {
		return nil, fmt.Errorf("%w: missing frame info", codecHelpers.ErrInvalidParameter)
	}

	enc, err := intra.NewEncoder(intra.ParametersFrom(parameters))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codecHelpers.ErrInvalidParameter, err)
	}

	frames := make([]*EncodedFrame, 0, src.FrameCount())
	for i := 0; i < src.FrameCount(); i++ {
		data, err := src.GetFrame(i)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		frame, err := EncodeFrame(enc, data, info)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frame.Index = i
		frames = append(frames, frame)
	}

	return frames, nil
}
