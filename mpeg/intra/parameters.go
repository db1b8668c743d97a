package intra

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"

	"github.com/cocosip/go-mpeg-intra/mpeg/common"
)

// Ensure Parameters implements codec.Parameters
var _ codec.Parameters = (*Parameters)(nil)

// Parameter names understood by GetParameter/SetParameter.
const (
	ParamQuantizerScale   = "quantizerScale"
	ParamSliceParallelism = "sliceParallelism"
)

// Parameters contains the runtime settings of the intra encoder.
type Parameters struct {
	// QuantizerScale multiplies every step of the quantization matrix (1-31).
	// 1 (default) quantizes with the matrix as is; callers retry a block
	// that overflows with a larger scale.
	QuantizerScale int

	// SliceParallelism bounds the number of slices encoded concurrently.
	// 0 uses runtime.NumCPU(), 1 encodes sequentially.
	SliceParallelism int

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewParameters creates Parameters with default values.
func NewParameters() *Parameters {
	return &Parameters{
		QuantizerScale:   1,
		SliceParallelism: 0,
		params:           make(map[string]interface{}),
	}
}

// ParametersFrom converts generic codec parameters, reading the known
// names and ignoring values of the wrong type. nil yields the defaults.
func ParametersFrom(parameters codec.Parameters) *Parameters {
	if p, ok := parameters.(*Parameters); ok && p != nil {
		return p
	}

	p := NewParameters()
	if parameters == nil {
		return p
	}
	if v := parameters.GetParameter(ParamQuantizerScale); v != nil {
		if scale, ok := v.(int); ok {
			p.QuantizerScale = scale
		}
	}
	if v := parameters.GetParameter(ParamSliceParallelism); v != nil {
		if n, ok := v.(int); ok {
			p.SliceParallelism = n
		}
	}
	return p
}

// GetParameter retrieves a parameter by name (implements codec.Parameters).
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case ParamQuantizerScale:
		return p.QuantizerScale
	case ParamSliceParallelism:
		return p.SliceParallelism
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters).
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case ParamQuantizerScale:
		if v, ok := value.(int); ok {
			p.QuantizerScale = v
		}
	case ParamSliceParallelism:
		if v, ok := value.(int); ok {
			p.SliceParallelism = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate checks the quantizer scale and normalizes the parallelism.
func (p *Parameters) Validate() error {
	if p.QuantizerScale < common.MinQuantizerScale || p.QuantizerScale > common.MaxQuantizerScale {
		return common.ErrInvalidQuantizerScale
	}
	if p.SliceParallelism < 0 {
		p.SliceParallelism = 0
	}
	return nil
}

// WithQuantizerScale sets the quantizer scale and returns the parameters for chaining
func (p *Parameters) WithQuantizerScale(scale int) *Parameters {
	p.QuantizerScale = scale
	return p
}

// WithSliceParallelism sets the slice parallelism and returns the parameters for chaining
func (p *Parameters) WithSliceParallelism(n int) *Parameters {
	p.SliceParallelism = n
	return p
}
