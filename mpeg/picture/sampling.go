package picture

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	codecHelpers "github.com/cocosip/go-mpeg-intra/codec"
	"github.com/cocosip/go-mpeg-intra/mpeg/common"
	"github.com/cocosip/go-mpeg-intra/mpeg/intra"
)

// Planes holds a frame as signed, level-shifted 4:2:0 YCbCr. The luma
// size is padded to a multiple of 16 by repeating the last row and column.
type Planes struct {
	Width    int // padded luma width
	Height   int // padded luma height
	MBWidth  int
	MBHeight int

	Y  []int32
	Cb []int32 // Width/2 x Height/2
	Cr []int32
}

// SampleFrame converts one native 8-bit frame to Planes.
//
// Supported layouts:
//   - SamplesPerPixel 1, MONOCHROME2 or MONOCHROME1 (inverted); chroma is neutral.
//     PixelRepresentation 1 takes bytes as two's-complement samples.
//   - SamplesPerPixel 3, RGB or YBR_FULL, interleaved or planar.
func SampleFrame(frame []byte, info *imagetypes.FrameInfo) (*Planes, error) {
	if info == nil {
		return nil, fmt.Errorf("%w: missing frame info", codecHelpers.ErrInvalidParameter)
	}

	width := int(info.Width)
	height := int(info.Height)
	components := int(info.SamplesPerPixel)

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", codecHelpers.ErrInvalidParameter, width, height)
	}
	if info.BitsAllocated != 8 || info.BitsStored != 8 {
		return nil, fmt.Errorf("%w: BitsAllocated=%d BitsStored=%d, only 8-bit samples are supported",
			codecHelpers.ErrUnsupportedFormat, info.BitsAllocated, info.BitsStored)
	}
	if components != 1 && components != 3 {
		return nil, fmt.Errorf("%w: SamplesPerPixel=%d", codecHelpers.ErrUnsupportedFormat, components)
	}
	if components == 3 && info.PixelRepresentation != 0 {
		return nil, fmt.Errorf("%w: signed color samples", codecHelpers.ErrUnsupportedFormat)
	}
	if len(frame) < width*height*components {
		return nil, fmt.Errorf("%w: frame has %d bytes, want %d",
			codecHelpers.ErrInvalidParameter, len(frame), width*height*components)
	}

	p := newPlanes(width, height)

	// Full-resolution chroma before 2x2 averaging.
	var cbFull, crFull []int32
	if components == 3 {
		cbFull = make([]int32, p.Width*p.Height)
		crFull = make([]int32, p.Width*p.Height)
	}

	for row := 0; row < p.Height; row++ {
		srcRow := row
		if srcRow >= height {
			srcRow = height - 1
		}
		for col := 0; col < p.Width; col++ {
			srcCol := col
			if srcCol >= width {
				srcCol = width - 1
			}
			pixel := srcRow*width + srcCol
			dst := row*p.Width + col

			if components == 1 {
				p.Y[dst] = monochromeSample(frame[pixel], info)
				continue
			}

			var c [3]int
			for k := 0; k < 3; k++ {
				if info.PlanarConfiguration == 1 {
					c[k] = int(frame[k*width*height+pixel])
				} else {
					c[k] = int(frame[pixel*3+k])
				}
			}

			y, cb, cr := c[0], c[1], c[2]
			if info.PhotometricInterpretation == "RGB" {
				y, cb, cr = rgbToYCbCr(c[0], c[1], c[2])
			}

			p.Y[dst] = int32(y) - 128
			cbFull[dst] = int32(cb) - 128
			crFull[dst] = int32(cr) - 128
		}
	}

	if components == 3 {
		downsample(cbFull, p.Cb, p.Width, p.Height)
		downsample(crFull, p.Cr, p.Width, p.Height)
	}

	return p, nil
}

func newPlanes(width, height int) *Planes {
	mbW := common.DivCeil(width, 16)
	mbH := common.DivCeil(height, 16)

	p := &Planes{
		Width:    mbW * 16,
		Height:   mbH * 16,
		MBWidth:  mbW,
		MBHeight: mbH,
	}
	p.Y = make([]int32, p.Width*p.Height)
	p.Cb = make([]int32, p.Width*p.Height/4)
	p.Cr = make([]int32, p.Width*p.Height/4)

	return p
}

// monochromeSample level-shifts an unsigned sample or takes a signed one
// as is. MONOCHROME1 maps v to -1-v in the signed domain, which is 255-v
// before the shift.
func monochromeSample(b byte, info *imagetypes.FrameInfo) int32 {
	v := int32(b) - 128
	if info.PixelRepresentation == 1 {
		v = int32(int8(b))
	}
	if info.PhotometricInterpretation == "MONOCHROME1" {
		v = -1 - v
	}
	return v
}

// rgbToYCbCr converts with 16-bit fixed-point BT.601 full-range weights.
func rgbToYCbCr(r, g, b int) (y, cb, cr int) {
	y = (19595*r + 38470*g + 7471*b + 32768) >> 16
	cb = (-11056*r - 21712*g + 32768*b + 8421376) >> 16
	cr = (32768*r - 27440*g - 5328*b + 8421376) >> 16
	return common.Clamp(y, 0, 255), common.Clamp(cb, 0, 255), common.Clamp(cr, 0, 255)
}

// downsample averages 2x2 neighbourhoods of a width x height plane.
func downsample(src, dst []int32, width, height int) {
	cw := width / 2
	for row := 0; row < height/2; row++ {
		for col := 0; col < cw; col++ {
			i := 2*row*width + 2*col
			sum := src[i] + src[i+1] + src[i+width] + src[i+width+1]
			dst[row*cw+col] = (sum + 2) >> 2
		}
	}
}

// Macroblock extracts the six source blocks of macroblock (mbX, mbY).
func (p *Planes) Macroblock(mbX, mbY int) intra.Samples {
	var s intra.Samples

	for i := 0; i < 4; i++ {
		bx := mbX*2 + i%2
		by := mbY*2 + i/2
		copyBlock(&s.Y[i], p.Y, p.Width, bx, by)
	}

	cw := p.Width / 2
	copyBlock(&s.Cb, p.Cb, cw, mbX, mbY)
	copyBlock(&s.Cr, p.Cr, cw, mbX, mbY)

	return s
}

func copyBlock(dst *common.Block, plane []int32, stride, blockX, blockY int) {
	for y := 0; y < 8; y++ {
		src := (blockY*8+y)*stride + blockX*8
		copy(dst[y*8:y*8+8], plane[src:src+8])
	}
}

// Slices splits the frame into one slice per macroblock row.
func (p *Planes) Slices() [][]intra.Samples {
	slices := make([][]intra.Samples, p.MBHeight)
	for mbY := range slices {
		row := make([]intra.Samples, p.MBWidth)
		for mbX := range row {
			row[mbX] = p.Macroblock(mbX, mbY)
		}
		slices[mbY] = row
	}
	return slices
}
