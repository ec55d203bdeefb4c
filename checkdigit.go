package vin

const (
	// Length is the number of characters in a VIN.
	Length = 17

	// checkPos is the zero-based index of the check digit (position 9).
	checkPos = 8
)

// characterValues transliterates VIN characters for the weighted
// check-digit sum. I, O, and Q are absent because they never appear in
// a VIN.
var characterValues = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// positionWeights are the 49 CFR 565.15 weights. Position 9 has weight
// zero because it is the check position itself.
var positionWeights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

const checkDigitChars = "0123456789X"

// checkDigit computes the check character over the other 16 positions.
// The remainder 10 is encoded as 'X'.
func checkDigit(s string) byte {
	var total int
	for i := 0; i < Length; i++ {
		total += characterValues[s[i]] * positionWeights[i]
	}
	return checkDigitChars[total%11]
}
