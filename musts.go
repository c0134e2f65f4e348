package exact

import "fmt"

// MustParseInteger is like [ParseInteger] but panics if the string
// cannot be parsed.
// It simplifies safe initialization of global variables holding
// integers.
func MustParseInteger(s string) Integer {
	n, err := ParseInteger(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInteger(%q) failed: %v", s, err))
	}
	return n
}

// MustParseFraction is like [ParseFraction] but panics if the
// literals cannot be parsed.
// It simplifies safe initialization of global variables holding
// fractions.
func MustParseFraction(num, den string) Fraction {
	f, err := ParseFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustParseFraction(%q, %q) failed: %v", num, den, err))
	}
	return f
}

// MustParseComplex is like [ParseComplex] but panics if the literals
// cannot be parsed.
// It simplifies safe initialization of global variables holding
// complex numbers.
func MustParseComplex(reNum, reDen, imNum, imDen string) Complex {
	c, err := ParseComplex(reNum, reDen, imNum, imDen)
	if err != nil {
		panic(fmt.Sprintf("MustParseComplex(%q, %q, %q, %q) failed: %v", reNum, reDen, imNum, imDen, err))
	}
	return c
}

// MustNewFraction is like [NewFraction] but panics if the denominator
// is zero.
func MustNewFraction(num, den Integer) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewFraction(%q, %q) failed: %v", num, den, err))
	}
	return f
}
