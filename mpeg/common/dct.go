package common

// ForwardDCT computes an approximate 8x8 DCT-II using only integer adds,
// subtracts and shifts. Only the four lowest frequencies of each axis are
// produced; every coefficient outside the top-left 4x4 is zero.
//
// The transform is T*A*T' where T keeps four rows of a signed-digit DCT
// approximation:
//
//	1 1 1  1  1 1  1 1
//	0 1 0  0  0 0 -1 0
//	1 0 0 -1 -1 0  0 1
//	0 0 0 -1  1 0  0 0
//
// followed by D^2 normalization per vertical frequency: >>3, >>1, >>2, >>1.
func ForwardDCT(src *Block) Block {
	var tmp Block

	// 1D transform on columns
	for x := 0; x < 8; x++ {
		x0 := src[0+x]
		x1 := src[8+x]
		x2 := src[16+x]
		x3 := src[24+x]
		x4 := src[32+x]
		x5 := src[40+x]
		x6 := src[48+x]
		x7 := src[56+x]

		tmp[0+x] = x0 + x1 + x2 + x3 + x4 + x5 + x6 + x7
		tmp[8+x] = x1 - x6
		tmp[16+x] = x0 - x3 - x4 + x7
		tmp[24+x] = x4 - x3
	}

	var coef Block

	// 1D transform on rows, then scaling
	for y := 0; y < 4; y++ {
		row := y * 8

		x0 := tmp[row+0]
		x1 := tmp[row+1]
		x2 := tmp[row+2]
		x3 := tmp[row+3]
		x4 := tmp[row+4]
		x5 := tmp[row+5]
		x6 := tmp[row+6]
		x7 := tmp[row+7]

		shift := dctRowShift[y]
		coef[row+0] = (x0 + x1 + x2 + x3 + x4 + x5 + x6 + x7) >> shift
		coef[row+1] = (x1 - x6) >> shift
		coef[row+2] = (x0 - x3 - x4 + x7) >> shift
		coef[row+3] = (x4 - x3) >> shift
	}

	return coef
}

// dctRowShift is D^2 as right shifts: 1/8, 1/2, 1/4, 1/2.
var dctRowShift = [4]uint{3, 1, 2, 1}
