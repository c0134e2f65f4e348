package exact

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Integer is an arbitrary-precision signed whole number.
// The zero value is the numeric value 0.
// Integer is immutable after construction: every arithmetic operation
// allocates and returns a new value, so it is safe for concurrent use
// by multiple goroutines.
//
// An integer is a struct with two fields:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: an unbounded sequence of decimal digits, stored
//     least-significant digit first.
//
// The magnitude carries no most-significant zeros, and zero is always
// stored as non-negative, so every numeric value has exactly one
// representation.
type Integer struct {
	neg bool   // indicates whether the integer is negative
	mag digits // the magnitude of the integer, least-significant digit first
}

var (
	// ErrInvalidInteger occurs when parsing a malformed integer literal.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrInvalidFraction occurs when parsing a malformed fraction,
	// including a fraction with a zero denominator.
	ErrInvalidFraction = errors.New("invalid fraction")
	// ErrDivisionByZero occurs when a division operation is invoked with
	// a zero divisor.
	// It is a precondition violation, not a data error, so it surfaces
	// as a panic rather than a returned error.
	ErrDivisionByZero = errors.New("division by zero")
)

// abs returns the magnitude of n, reading the zero value as 0.
func (n Integer) abs() digits {
	if len(n.mag) == 0 {
		return digits{0}
	}
	return n.mag
}

func newInteger(neg bool, mag digits) Integer {
	mag = mag.norm()
	if mag.isZero() {
		neg = false
	}
	return Integer{neg: neg, mag: mag}
}

// NewInteger returns an integer equal to i.
func NewInteger(i int64) Integer {
	s := strconv.FormatInt(i, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	return Integer{neg: neg, mag: newDigits(s)}
}

// ParseInteger converts a string to an integer.
// The input must match the following formal EBNF grammar:
//
//	sign    ::= '-'
//	nonzero ::= '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	digit   ::= '0' | nonzero
//	literal ::= [sign] nonzero { digit } | '0'
//
// An empty string, a bare sign, "-0", a leading zero before another
// digit, and any non-digit character are all invalid.
//
// ParseInteger returns an error wrapping [ErrInvalidInteger] if the
// string does not represent a valid integer; the error names the
// offending literal and no value is produced.
func ParseInteger(s string) (Integer, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Digits
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}

	switch {
	case pos != width:
		return Integer{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrInvalidInteger)
	case pos == start:
		return Integer{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidInteger)
	case s[start] == '0' && neg:
		return Integer{}, fmt.Errorf("parsing %q: negative zero: %w", s, ErrInvalidInteger)
	case s[start] == '0' && width-start > 1:
		return Integer{}, fmt.Errorf("parsing %q: leading zero: %w", s, ErrInvalidInteger)
	}

	return Integer{neg: neg, mag: newDigits(s[start:])}, nil
}

// String implements the [fmt.Stringer] interface and returns the
// canonical representation of n: a sign character if negative,
// followed by the digits most-significant first.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Integer) String() string {
	if n.neg {
		return "-" + n.abs().string()
	}
	return n.abs().string()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// The following format flags can be used with all verbs:
// '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Integer) Format(state fmt.State, verb rune) {

	// Integer digits
	digs := n.abs().string()

	// Arithmetic sign
	rsign := 0
	if n.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digs) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case n.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digs...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'd', 'D', 's', 'S', 'v', 'V', 'q', 'Q':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(exact.Integer="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns the number of digits in the magnitude of n.
// Prec assumes that 0 has one digit.
func (n Integer) Prec() int {
	return n.abs().prec()
}

// Int64 converts n to int64 and reports whether the conversion is
// lossless.
// The conversion fails if the magnitude of n exceeds [math.MaxInt64].
func (n Integer) Int64() (int64, bool) {
	mag := n.abs()
	v := int64(0)
	for i := len(mag) - 1; i >= 0; i-- {
		d := int64(mag[i])
		if v > (math.MaxInt64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	if n.neg {
		v = -v
	}
	return v, true
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Integer) Sign() int {
	switch {
	case n.neg:
		return -1
	case n.abs().isZero():
		return 0
	}
	return 1
}

// IsZero returns true if n == 0.
func (n Integer) IsZero() bool {
	return n.abs().isZero()
}

// IsPos returns true if n > 0.
func (n Integer) IsPos() bool {
	return !n.neg && !n.abs().isZero()
}

// IsNeg returns true if n < 0.
func (n Integer) IsNeg() bool {
	return n.neg
}

// Neg returns n with the opposite sign.
func (n Integer) Neg() Integer {
	return newInteger(!n.neg, n.abs().clone())
}

// Abs returns the absolute value of n.
func (n Integer) Abs() Integer {
	return Integer{neg: false, mag: n.abs().clone()}
}

// CopySign returns n with the same sign as m.
// If m is zero, the sign of the result remains unchanged.
func (n Integer) CopySign(m Integer) Integer {
	switch {
	case m.IsZero():
		return n
	case n.IsNeg() != m.IsNeg():
		return n.Neg()
	default:
		return n
	}
}

// Cmp compares n and m numerically and returns:
//
//	-1 if n < m
//	 0 if n == m
//	+1 if n > m
//
// Signs are compared first, then magnitudes by digit count and then
// digit by digit from the most-significant position.
func (n Integer) Cmp(m Integer) int {
	// Special case: different signs
	switch {
	case m.Sign() < n.Sign():
		return 1
	case n.Sign() < m.Sign():
		return -1
	}
	// General case
	if n.neg {
		return m.abs().cmp(n.abs())
	}
	return n.abs().cmp(m.abs())
}

// Max returns the maximum of n and m.
func (n Integer) Max(m Integer) Integer {
	if n.Cmp(m) >= 0 {
		return n
	}
	return m
}

// Min returns the minimum of n and m.
func (n Integer) Min(m Integer) Integer {
	if n.Cmp(m) <= 0 {
		return n
	}
	return m
}

// addSigned combines two signed magnitudes.
// Same-sign operands add their magnitudes and keep the shared sign;
// differing-sign operands subtract the smaller magnitude from the
// larger and take the sign of whichever magnitude is larger.
// A zero result is canonicalized to non-negative.
func addSigned(xneg bool, x digits, yneg bool, y digits) (bool, digits) {
	if xneg == yneg {
		return xneg, x.add(y)
	}
	z := x.dist(y)
	neg := false
	switch x.cmp(y) {
	case 1:
		neg = xneg
	case -1:
		neg = yneg
	}
	if z.isZero() {
		neg = false
	}
	return neg, z
}

// Add returns the sum of n and m.
func (n Integer) Add(m Integer) Integer {
	neg, mag := addSigned(n.neg, n.abs(), m.neg, m.abs())
	return Integer{neg: neg, mag: mag}
}

// Sub returns the difference of n and m.
func (n Integer) Sub(m Integer) Integer {
	neg, mag := addSigned(n.neg, n.abs(), !m.neg, m.abs())
	return Integer{neg: neg, mag: mag}
}

// Mul returns the product of n and m.
// The result is negative only if exactly one operand is negative and
// neither operand is zero.
func (n Integer) Mul(m Integer) Integer {
	mag := n.abs().mul(m.abs())
	neg := n.neg != m.neg && !mag.isZero()
	return Integer{neg: neg, mag: mag}
}

// QuoRem returns the quotient and remainder of n and m such that
// n = m*q + r and |r| < |m|.
// The quotient sign follows the multiplication rule; the remainder
// sign follows the dividend.
//
// QuoRem panics if m is 0: the divisor must be checked before
// division, so a zero divisor is a violated precondition, not a
// recoverable error.
func (n Integer) QuoRem(m Integer) (q, r Integer) {
	if m.IsZero() {
		panic(fmt.Sprintf("%q.QuoRem(%q) failed: %v", n, m, ErrDivisionByZero))
	}
	qmag, rmag := n.abs().quoRem(m.abs())
	q = Integer{neg: n.neg != m.neg && !qmag.isZero(), mag: qmag}
	r = Integer{neg: n.neg && !rmag.isZero(), mag: rmag}
	return q, r
}

// Quo returns the quotient of n and m truncated towards zero.
// Also see method [Integer.QuoRem].
//
// Quo panics if m is 0.
func (n Integer) Quo(m Integer) Integer {
	q, _ := n.QuoRem(m)
	return q
}

// Rem returns the remainder of n and m.
// Also see method [Integer.QuoRem].
//
// Rem panics if m is 0.
func (n Integer) Rem(m Integer) Integer {
	_, r := n.QuoRem(m)
	return r
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Integer.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Integer) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see [ParseInteger].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Integer) UnmarshalText(text []byte) error {
	var err error
	*n, err = ParseInteger(string(text))
	return err
}

// Value implements the [driver.Valuer] interface.
// It represents the integer as its canonical string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Integer) Value() (driver.Value, error) {
	return n.String(), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Integer) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*n, err = ParseInteger(value)
	case []byte:
		*n, err = ParseInteger(string(value))
	case int64:
		*n = NewInteger(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Integer{})
	}
	return err
}
