package normalize

// ValidTCNumber reports whether s is a checksum-valid Turkish national
// identity number: eleven digits, first nonzero, with the tenth digit
// equal to (7*sumOdd - sumEven) mod 10 and the eleventh equal to the sum
// of the first ten mod 10.
func ValidTCNumber(s string) bool {
	if len(s) != 11 || s[0] == '0' {
		return false
	}
	var digits [11]int
	for i := 0; i < 11; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}

	sumOdd := digits[0] + digits[2] + digits[4] + digits[6] + digits[8]
	sumEven := digits[1] + digits[3] + digits[5] + digits[7]

	check10 := (sumOdd*7 - sumEven) % 10
	if check10 < 0 {
		check10 += 10
	}
	if check10 != digits[9] {
		return false
	}
	return (sumOdd+sumEven+digits[9])%10 == digits[10]
}
