package common

// EncodeCategory returns the size class of val (the smallest cat with
// |val| < 2^cat) and its cat-bit amplitude. Negative values are coded as
// the low cat bits of val-1.
func EncodeCategory(val int) (cat int, bits uint64) {
	if val == 0 {
		return 0, 0
	}

	absVal := val
	if absVal < 0 {
		absVal = -absVal
	}

	cat = 1
	for (1 << uint(cat)) <= absVal {
		cat++
	}

	if val > 0 {
		bits = uint64(val)
	} else {
		bits = uint64((1 << uint(cat)) + val - 1)
	}

	return cat, bits
}

// ExtendCategory is the inverse of EncodeCategory.
func ExtendCategory(cat int, bits uint64) int {
	if cat == 0 {
		return 0
	}

	val := int(bits)
	if val < (1 << uint(cat-1)) {
		val += (-1 << uint(cat)) + 1
	}

	return val
}
