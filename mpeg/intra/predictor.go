package intra

// Plane identifies the DC prediction chain a block belongs to.
type Plane int

const (
	PlaneLuma Plane = iota
	PlaneCb
	PlaneCr
)

func (p Plane) String() string {
	switch p {
	case PlaneLuma:
		return "Y"
	case PlaneCb:
		return "Cb"
	case PlaneCr:
		return "Cr"
	default:
		return "unknown"
	}
}

// Predictor holds the quantized DC value of the last block coded in one
// plane. A Predictor has a single owner: blocks sharing it must be coded
// in order, and the zero value is the state at a slice start.
type Predictor struct {
	dc int32
}

// DC returns the current prediction.
func (p *Predictor) DC() int32 {
	return p.dc
}

// Set overrides the prediction.
func (p *Predictor) Set(dc int32) {
	p.dc = dc
}

// Reset returns the predictor to its slice-start value.
func (p *Predictor) Reset() {
	p.dc = 0
}

// advance stores dc as the new prediction and returns the difference
// against the old one.
func (p *Predictor) advance(dc int32) int32 {
	delta := dc - p.dc
	p.dc = dc
	return delta
}

// Predictors is the DC state of one slice: one luma chain shared by
// Y1..Y4 and independent Cb and Cr chains.
type Predictors struct {
	Y  Predictor
	Cb Predictor
	Cr Predictor
}

// Reset resets all three chains, as at a slice boundary.
func (p *Predictors) Reset() {
	p.Y.Reset()
	p.Cb.Reset()
	p.Cr.Reset()
}

// For returns the predictor of plane.
func (p *Predictors) For(plane Plane) *Predictor {
	switch plane {
	case PlaneCb:
		return &p.Cb
	case PlaneCr:
		return &p.Cr
	default:
		return &p.Y
	}
}
