package exact

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Fraction is an exact rational number: a sign and a coprime
// numerator/denominator pair of magnitudes.
// The zero value is the numeric value 0.
// Fraction is immutable after construction and safe for concurrent
// use by multiple goroutines.
//
// A fraction is a struct with three fields:
//
//   - Sign: a boolean indicating whether the fraction is negative.
//   - Numerator: a non-negative magnitude.
//   - Denominator: a positive magnitude.
//
// Every constructed fraction is in reduced canonical form: the
// numerator and denominator are coprime, and zero is always stored as
// {non-negative, 0, 1}.
// The sign is carried externally to the pair, so the stored
// magnitudes are never negative.
type Fraction struct {
	neg bool   // indicates whether the fraction is negative
	num digits // the numerator magnitude
	den digits // the denominator magnitude
}

// numAbs returns the numerator magnitude, reading the zero value as 0.
func (f Fraction) numAbs() digits {
	if len(f.num) == 0 {
		return digits{0}
	}
	return f.num
}

// denAbs returns the denominator magnitude, reading the zero value as 1.
func (f Fraction) denAbs() digits {
	if len(f.den) == 0 {
		return digits{1}
	}
	return f.den
}

// newFraction reduces num/den to canonical coprime form.
// The zero numerator forces the canonical zero {non-negative, 0, 1}.
// newFraction assumes that den is nonzero.
func newFraction(neg bool, num, den digits) Fraction {
	num, den = num.norm(), den.norm()
	// Special cases
	switch {
	case num.isZero():
		return Fraction{neg: false, num: digits{0}, den: digits{1}}
	case num.cmp(den) == 0:
		return Fraction{neg: neg, num: digits{1}, den: digits{1}}
	}
	// General case
	g := num.gcd(den)
	num, _ = num.quoRem(g)
	den, _ = den.quoRem(g)
	return Fraction{neg: neg, num: num, den: den}
}

// NewFraction returns the reduced fraction num/den.
// The sign of the result is the exclusive or of the operand signs.
//
// NewFraction returns an error wrapping [ErrInvalidFraction] if den
// is zero.
func NewFraction(num, den Integer) (Fraction, error) {
	if den.IsZero() {
		return Fraction{}, fmt.Errorf("%q/%q: zero denominator: %w", num, den, ErrInvalidFraction)
	}
	return newFraction(num.IsNeg() != den.IsNeg(), num.abs().clone(), den.abs().clone()), nil
}

// ParseFraction converts a numerator literal and a denominator
// literal to a reduced fraction.
// Both literals must satisfy the integer grammar of [ParseInteger],
// and the denominator must not parse to zero.
//
// ParseFraction returns an error:
//   - wrapping [ErrInvalidInteger] if either literal is malformed;
//   - wrapping [ErrInvalidFraction] if the denominator is zero.
func ParseFraction(num, den string) (Fraction, error) {
	n, err := ParseInteger(num)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing %q/%q: %w", num, den, err)
	}
	d, err := ParseInteger(den)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing %q/%q: %w", num, den, err)
	}
	if d.IsZero() {
		return Fraction{}, fmt.Errorf("parsing %q/%q: zero denominator: %w", num, den, ErrInvalidFraction)
	}
	return newFraction(n.IsNeg() != d.IsNeg(), n.abs().clone(), d.abs().clone()), nil
}

// parseFractionText converts a single "N" or "N/D" literal to a
// fraction, for text round-tripping.
func parseFractionText(s string) (Fraction, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return ParseFraction(s[:i], s[i+1:])
	}
	return ParseFraction(s, "1")
}

// String implements the [fmt.Stringer] interface and returns the
// canonical representation of f: "N" if the denominator is 1,
// otherwise "N/D", with a leading "-" if negative.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	var b strings.Builder
	if f.neg {
		b.WriteByte('-')
	}
	b.WriteString(f.numAbs().string())
	if !f.denAbs().isOne() {
		b.WriteByte('/')
		b.WriteString(f.denAbs().string())
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1/2
//	%q:    "-1/2"
//
// The following format flags can be used with all verbs:
// '+', ' ', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {

	// Fraction digits
	digs := f.numAbs().string()
	if !f.denAbs().isOne() {
		digs += "/" + f.denAbs().string()
	}

	// Arithmetic sign
	rsign := 0
	if f.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digs) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		if state.Flag('-') {
			tspaces = w - width
		} else {
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
		case f.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
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
	case 's', 'S', 'v', 'V', 'q', 'Q':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(exact.Fraction="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Num returns the signed numerator of f.
func (f Fraction) Num() Integer {
	return Integer{neg: f.neg && !f.numAbs().isZero(), mag: f.numAbs().clone()}
}

// Denom returns the denominator of f, which is always positive.
func (f Fraction) Denom() Integer {
	return Integer{neg: false, mag: f.denAbs().clone()}
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	switch {
	case f.neg:
		return -1
	case f.numAbs().isZero():
		return 0
	}
	return 1
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.numAbs().isZero()
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return !f.neg && !f.numAbs().isZero()
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.neg
}

// IsOne returns true if f == 1.
func (f Fraction) IsOne() bool {
	return !f.neg && f.numAbs().isOne() && f.denAbs().isOne()
}

// IsInt returns true if the denominator of f is 1.
// It decides whether rendering needs the "N/D" form.
func (f Fraction) IsInt() bool {
	return f.denAbs().isOne()
}

// Neg returns f with the opposite sign.
func (f Fraction) Neg() Fraction {
	if f.IsZero() {
		return Fraction{neg: false, num: digits{0}, den: digits{1}}
	}
	return Fraction{neg: !f.neg, num: f.numAbs().clone(), den: f.denAbs().clone()}
}

// Abs returns the absolute value of f.
func (f Fraction) Abs() Fraction {
	return Fraction{neg: false, num: f.numAbs().clone(), den: f.denAbs().clone()}
}

// Add returns the sum of f and g.
// Equal denominators combine the numerators directly; otherwise the
// common denominator is the least common multiple, obtained through
// the gcd of the two denominators rather than their full product, to
// keep intermediate magnitudes small.
// The result is re-reduced to canonical form.
func (f Fraction) Add(g Fraction) Fraction {
	fnum, fden := f.numAbs(), f.denAbs()
	gnum, gden := g.numAbs(), g.denAbs()

	// Common denominator
	var den digits
	if fden.cmp(gden) == 0 {
		den = fden.clone()
	} else {
		gcd := fden.gcd(gden)
		fmul, _ := gden.quoRem(gcd)
		gmul, _ := fden.quoRem(gcd)
		fnum = fnum.mul(fmul)
		gnum = gnum.mul(gmul)
		den = fden.mul(fmul)
	}

	// Signed numerator
	neg, num := addSigned(f.neg, fnum, g.neg, gnum)

	return newFraction(neg, num, den)
}

// Sub returns the difference of f and g.
// It is the sum of f and the negated g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns the product of f and g.
// Numerators and denominators multiply independently and the result
// is reduced; it is negative only if exactly one operand is negative
// and neither numerator is zero.
func (f Fraction) Mul(g Fraction) Fraction {
	num := f.numAbs().mul(g.numAbs())
	den := f.denAbs().mul(g.denAbs())
	return newFraction(f.neg != g.neg, num, den)
}

// Inv returns the reciprocal of f: the numerator and denominator
// swapped, the sign kept.
//
// Inv panics if f is 0.
func (f Fraction) Inv() Fraction {
	if f.IsZero() {
		panic(fmt.Sprintf("%q.Inv() failed: %v", f, ErrDivisionByZero))
	}
	return Fraction{neg: f.neg, num: f.denAbs().clone(), den: f.numAbs().clone()}
}

// Quo returns the quotient of f and g, computed as the product of f
// and the reciprocal of g.
//
// Quo panics if g is 0: the divisor must be checked before division,
// so a zero divisor is a violated precondition, not a recoverable
// error.
func (f Fraction) Quo(g Fraction) Fraction {
	if g.IsZero() {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", f, g, ErrDivisionByZero))
	}
	return f.Mul(g.Inv())
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
//
// The comparison is the sign of f - g.
func (f Fraction) Cmp(g Fraction) int {
	return f.Sub(g).Sign()
}

// Max returns the maximum of f and g.
func (f Fraction) Max(g Fraction) Fraction {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Min returns the minimum of f and g.
func (f Fraction) Min(g Fraction) Fraction {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// It accepts the "N" and "N/D" forms produced by
// [Fraction.MarshalText].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = parseFractionText(string(text))
	return err
}

// Value implements the [driver.Valuer] interface.
// It represents the fraction as its canonical string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = parseFractionText(value)
	case []byte:
		*f, err = parseFractionText(string(value))
	case int64:
		*f, err = NewFraction(NewInteger(value), NewInteger(1))
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Fraction{})
	}
	return err
}
