package exact

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Complex is an exact complex number: an ordered pair of fractions
// holding the real and imaginary parts.
// The zero value is the numeric value 0.
// Complex is immutable after construction and safe for concurrent use
// by multiple goroutines.
//
// Each part keeps its own canonical reduced form; the pair itself
// carries no further invariant.
type Complex struct {
	re Fraction // the real part
	im Fraction // the imaginary part
}

// NewComplex returns the complex number re + im*i.
func NewComplex(re, im Fraction) Complex {
	return Complex{re: re, im: im}
}

// ParseComplex converts four integer literals to a complex number:
// the numerator and denominator of the real part, then the numerator
// and denominator of the imaginary part.
// Each pair must satisfy the contract of [ParseFraction].
// Splitting a combined literal such as "2/3-4i" into the four
// substrings is the caller's responsibility.
//
// ParseComplex returns an error if either pair is malformed; no value
// is produced.
func ParseComplex(reNum, reDen, imNum, imDen string) (Complex, error) {
	re, err := ParseFraction(reNum, reDen)
	if err != nil {
		return Complex{}, err
	}
	im, err := ParseFraction(imNum, imDen)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: re, im: im}, nil
}

// Real returns the real part of c.
func (c Complex) Real() Fraction {
	return c.re
}

// Imag returns the imaginary part of c.
func (c Complex) Imag() Fraction {
	return c.im
}

// Conj returns the conjugate of c: the same real part and the negated
// imaginary part.
func (c Complex) Conj() Complex {
	return Complex{re: c.re, im: c.im.Neg()}
}

// Neg returns c with both parts negated.
func (c Complex) Neg() Complex {
	return Complex{re: c.re.Neg(), im: c.im.Neg()}
}

// IsZero returns true if c == 0, that is both parts are zero.
func (c Complex) IsZero() bool {
	return c.re.IsZero() && c.im.IsZero()
}

// IsOne returns true if c == 1, that is the imaginary part is zero
// and the real part is exactly one.
func (c Complex) IsOne() bool {
	return c.im.IsZero() && c.re.IsOne()
}

// Equal returns true if c and d represent the same number.
// Complex numbers are unordered, so there is no Cmp.
func (c Complex) Equal(d Complex) bool {
	return c.re.Cmp(d.re) == 0 && c.im.Cmp(d.im) == 0
}

// Add returns the sum of c and d, computed componentwise.
func (c Complex) Add(d Complex) Complex {
	return Complex{re: c.re.Add(d.re), im: c.im.Add(d.im)}
}

// Sub returns the difference of c and d, computed componentwise.
func (c Complex) Sub(d Complex) Complex {
	return Complex{re: c.re.Sub(d.re), im: c.im.Sub(d.im)}
}

// Mul returns the product of c and d by the complex multiplication
// rule: (a+bi)(x+yi) = (ax - by) + (ay + bx)i.
func (c Complex) Mul(d Complex) Complex {
	re := c.re.Mul(d.re).Sub(c.im.Mul(d.im))
	im := c.re.Mul(d.im).Add(c.im.Mul(d.re))
	return Complex{re: re, im: im}
}

// Quo returns the quotient of c and d, rationalized through the
// conjugate of d: both parts of c * conj(d) are divided by the real
// part of d * conj(d).
// That scaling denominator is |d|^2, which is positive whenever d is
// nonzero, and the imaginary part of d * conj(d) is always zero and
// is discarded.
//
// Quo panics if d is 0: the divisor must be checked before division,
// so a zero divisor is a violated precondition, not a recoverable
// error.
func (c Complex) Quo(d Complex) Complex {
	if d.IsZero() {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", c, d, ErrDivisionByZero))
	}
	conj := d.Conj()
	scale := d.Mul(conj).re
	num := c.Mul(conj)
	return Complex{re: num.re.Quo(scale), im: num.im.Quo(scale)}
}

// String implements the [fmt.Stringer] interface and returns the
// canonical representation of c:
//
//   - "0" if both parts are zero;
//   - the real part alone if the imaginary part is zero;
//   - otherwise the real part (omitted when zero), a "+" or "-"
//     between the parts, and the imaginary magnitude before a
//     trailing "i".
//
// The imaginary magnitude is parenthesized if it is not an integer,
// and the coefficient 1 is elided so that a unit imaginary part
// renders as a bare "i" or "-i".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Complex) String() string {
	// Special case: real number
	if c.im.IsZero() {
		return c.re.String()
	}

	var b strings.Builder

	// Real part
	if !c.re.IsZero() {
		b.WriteString(c.re.String())
		if !c.im.IsNeg() {
			b.WriteByte('+')
		}
	}

	// Imaginary part
	if c.im.IsNeg() {
		b.WriteByte('-')
	}
	mag := c.im.Abs()
	switch {
	case !mag.IsInt():
		b.WriteByte('(')
		b.WriteString(mag.String())
		b.WriteByte(')')
	case !mag.IsOne():
		b.WriteString(mag.String())
	}
	b.WriteByte('i')

	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 6/17+(1/2)i
//	%q:    "6/17+(1/2)i"
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Complex) Format(state fmt.State, verb rune) {
	s := c.String()

	// Quotes
	// Canonical renderings never contain characters that need escaping.
	if verb == 'q' || verb == 'Q' {
		s = `"` + s + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s = s + pad
		} else {
			s = pad + s
		}
	}

	// Writing result
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		state.Write([]byte(s))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(exact.Complex="))
		state.Write([]byte(s))
		state.Write([]byte(")"))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Complex.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Complex) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Value implements the [driver.Valuer] interface.
// It represents the complex number as its canonical string.
//
// There is no matching Scanner: locating the real/imaginary boundary
// in a combined literal is the responsibility of an external parser,
// not of this package.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Complex) Value() (driver.Value, error) {
	return c.String(), nil
}
