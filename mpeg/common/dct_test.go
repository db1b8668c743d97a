package common

import (
	"math/rand"
	"testing"
)

func TestForwardDCTHighFrequenciesZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 500; iter++ {
		var src Block
		for i := range src {
			src[i] = int32(rng.Intn(511) - 255)
		}

		coef := ForwardDCT(&src)

		for i := 0; i < 64; i++ {
			if i/8 < 4 && i%8 < 4 {
				continue
			}
			if coef[i] != 0 {
				t.Fatalf("iteration %d: coef[%d] = %d, want 0", iter, i, coef[i])
			}
		}
	}
}

func TestForwardDCTConstantBlock(t *testing.T) {
	for _, v := range []int32{-128, -1, 0, 1, 100, 127} {
		var src Block
		for i := range src {
			src[i] = v
		}

		coef := ForwardDCT(&src)
		if coef[0] != 8*v {
			t.Errorf("DC of constant %d = %d, want %d", v, coef[0], 8*v)
		}
		for i := 1; i < 64; i++ {
			if coef[i] != 0 {
				t.Errorf("constant %d: coef[%d] = %d, want 0", v, i, coef[i])
			}
		}
	}
}

func TestForwardDCTKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		sample func(row, col int) int32
		want   map[int]int32
	}{
		{
			name:   "vertical ramp",
			sample: func(row, _ int) int32 { return int32(row) },
			want:   map[int]int32{0: 28, 8: -20, 24: 4},
		},
		{
			name:   "horizontal ramp",
			sample: func(_, col int) int32 { return int32(col) },
			want:   map[int]int32{0: 28, 1: -5, 3: 1},
		},
		{
			// shifts floor toward negative infinity
			name: "single negative sample",
			sample: func(row, col int) int32 {
				if row == 1 && col == 1 {
					return -3
				}
				return 0
			},
			want: map[int]int32{0: -1, 1: -1, 8: -2, 9: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src Block
			for r := 0; r < 8; r++ {
				for c := 0; c < 8; c++ {
					src[r*8+c] = tt.sample(r, c)
				}
			}

			coef := ForwardDCT(&src)
			for i := 0; i < 64; i++ {
				if coef[i] != tt.want[i] {
					t.Errorf("coef[%d] = %d, want %d", i, coef[i], tt.want[i])
				}
			}
		})
	}
}

func TestForwardDCTDoesNotModifyInput(t *testing.T) {
	var src Block
	for i := range src {
		src[i] = int32(i - 32)
	}
	orig := src

	_ = ForwardDCT(&src)

	if src != orig {
		t.Error("ForwardDCT modified its input")
	}
}
