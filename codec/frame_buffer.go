package codec

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

var _ imagetypes.PixelData = (*FrameBuffer)(nil)

// FrameBuffer is an in-memory, native (not encapsulated) imagetypes.PixelData.
type FrameBuffer struct {
	frames    [][]byte
	frameInfo *imagetypes.FrameInfo
}

// NewFrameBuffer creates an empty FrameBuffer with the given frame info
func NewFrameBuffer(frameInfo *imagetypes.FrameInfo) *FrameBuffer {
	return &FrameBuffer{
		frames:    make([][]byte, 0),
		frameInfo: frameInfo,
	}
}

// GetFrame returns the pixel data for the specified frame (0-indexed)
func (p *FrameBuffer) GetFrame(frameIndex int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(p.frames) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameOutOfRange, frameIndex, len(p.frames))
	}
	return p.frames[frameIndex], nil
}

// AddFrame appends a frame, checking its size against the frame info
func (p *FrameBuffer) AddFrame(frameData []byte) error {
	if want := p.FrameSize(); want > 0 && len(frameData) < want {
		return fmt.Errorf("%w: frame has %d bytes, want %d", ErrInvalidParameter, len(frameData), want)
	}
	p.frames = append(p.frames, frameData)
	return nil
}

// FrameCount returns the number of frames
func (p *FrameBuffer) FrameCount() int {
	return len(p.frames)
}

// GetFrameInfo returns frame metadata
func (p *FrameBuffer) GetFrameInfo() *imagetypes.FrameInfo {
	return p.frameInfo
}

// IsEncapsulated always returns false
func (p *FrameBuffer) IsEncapsulated() bool {
	return false
}

// FrameSize returns the byte size of one native frame, or 0 when the
// frame info is missing.
func (p *FrameBuffer) FrameSize() int {
	info := p.frameInfo
	if info == nil {
		return 0
	}
	bytesPerSample := (int(info.BitsAllocated) + 7) / 8
	return int(info.Width) * int(info.Height) * int(info.SamplesPerPixel) * bytesPerSample
}
