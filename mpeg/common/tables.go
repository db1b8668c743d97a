package common

// Block holds 64 samples or coefficients in row-major 8x8 order.
type Block [64]int32

// DefaultIntraQuantMatrix is the intra quantization matrix (MPEG-1 default).
var DefaultIntraQuantMatrix = [64]int32{
	8, 16, 19, 22, 26, 27, 29, 34,
	16, 16, 22, 24, 27, 29, 34, 37,
	19, 22, 26, 27, 29, 34, 34, 38,
	22, 22, 26, 27, 29, 34, 37, 40,
	22, 26, 27, 29, 32, 35, 40, 48,
	26, 27, 29, 32, 35, 40, 48, 58,
	26, 27, 29, 34, 38, 46, 56, 69,
	27, 29, 35, 38, 46, 56, 69, 83,
}

// ZigZag maps scan position to row-major block index.
var ZigZag = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// ZigZagInverse maps row-major block index to scan position.
var ZigZagInverse = func() [64]int {
	var inv [64]int
	for pos, idx := range ZigZag {
		inv[idx] = pos
	}
	return inv
}()

// VLC is a variable-length code: the low Len bits of Code.
type VLC struct {
	Code uint64
	Len  int
}

// MaxSizeClass is the largest DC size class.
const MaxSizeClass = 8

// SizeClassTable maps a DC size class (0..8) to its prefix code.
type SizeClassTable [MaxSizeClass + 1]VLC

// LuminanceDCSizeTable holds the dct_dc_size_luminance codes.
var LuminanceDCSizeTable = SizeClassTable{
	{0b100, 3},
	{0b00, 2},
	{0b01, 2},
	{0b101, 3},
	{0b110, 3},
	{0b1110, 4},
	{0b11110, 5},
	{0b111110, 6},
	{0b1111110, 7},
}

// ChrominanceDCSizeTable holds the dct_dc_size_chrominance codes.
var ChrominanceDCSizeTable = SizeClassTable{
	{0b00, 2},
	{0b01, 2},
	{0b10, 2},
	{0b110, 3},
	{0b1110, 4},
	{0b11110, 5},
	{0b111110, 6},
	{0b1111110, 7},
	{0b11111110, 8},
}

// Fixed codes of the macroblock layer.
var (
	// MacroblockHeader: bit 2 is the address increment, bits 1:0 the intra type.
	MacroblockHeader = VLC{Code: 0b101, Len: 3}
	EscapeCode       = VLC{Code: 0b000001, Len: 6}
	EndOfBlock       = VLC{Code: 0b10, Len: 2}
)

// Escape field widths and the level range they can carry.
const (
	RunBits   = 6
	LevelBits = 8

	MaxRun   = 1<<RunBits - 1
	MaxLevel = 1<<(LevelBits-1) - 1

	// MinLevel is -127, not -128: the level pattern 0x80 is the MPEG-1
	// extended-escape prefix, so a level of -128 is a CoefficientError.
	MinLevel = -MaxLevel
)
