package exact

// digits is an arbitrary-length magnitude stored as decimal digit
// values (0..9), least-significant digit first.
// A normalized magnitude has no most-significant zeros, except for
// the single-digit value 0, and is never empty.
// All methods treat their operands as read-only and allocate a fresh
// slice for every result.
type digits []byte

// newDigits converts the ASCII digits of s (most-significant first)
// to a magnitude.
// newDigits assumes that s contains only characters '0' through '9'.
func newDigits(s string) digits {
	x := make(digits, len(s))
	for i := 0; i < len(s); i++ {
		x[i] = s[len(s)-1-i] - '0'
	}
	return x.norm()
}

// norm strips most-significant zeros, keeping at least one digit.
func (x digits) norm() digits {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// clone returns an independently owned copy of x.
func (x digits) clone() digits {
	z := make(digits, len(x))
	copy(z, x)
	return z
}

func (x digits) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

func (x digits) isOne() bool {
	return len(x) == 1 && x[0] == 1
}

// prec returns the length of x in decimal digits.
// prec assumes that x is normalized, so 0 has one digit.
func (x digits) prec() int {
	return len(x)
}

// cmp compares normalized magnitudes and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Digit counts are compared first, then digits from the
// most-significant position down.
func (x digits) cmp(y digits) int {
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// add calculates x + y with per-digit carry propagation.
func (x digits) add(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(digits, len(x)+1)
	carry := byte(0)
	for i := 0; i < len(x); i++ {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % 10
		carry = s / 10
	}
	z[len(x)] = carry
	return z.norm()
}

// dist calculates |x - y| as "larger magnitude minus smaller
// magnitude" with borrow propagation.
func (x digits) dist(y digits) digits {
	big, small := x, y
	if x.cmp(y) < 0 {
		big, small = y, x
	}
	z := make(digits, len(big))
	borrow := 0
	for i := 0; i < len(big); i++ {
		d := int(big[i]) - borrow
		if i < len(small) {
			d -= int(small[i])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = byte(d)
	}
	return z.norm()
}

// mul calculates x * y by schoolbook digit-by-digit
// multiply-accumulate, O(len(x) * len(y)).
func (x digits) mul(y digits) digits {
	// Special case
	if x.isZero() || y.isZero() {
		return digits{0}
	}
	// General case
	z := make(digits, len(x)+len(y))
	for i := 0; i < len(x); i++ {
		carry := 0
		for j := 0; j < len(y); j++ {
			s := int(x[i])*int(y[j]) + int(z[i+j]) + carry
			z[i+j] = byte(s % 10)
			carry = s / 10
		}
		z[i+len(y)] = byte(carry)
	}
	return z.norm()
}

// lsh (Left Shift) calculates x * 10^shift.
func (x digits) lsh(shift int) digits {
	// Special cases
	switch {
	case x.isZero():
		return digits{0}
	case shift <= 0:
		return x.clone()
	}
	// General case
	z := make(digits, shift+len(x))
	copy(z[shift:], x)
	return z
}

// quoRem calculates q, r such that x = y*q + r and r < y, by long
// division: for each output digit position, from most-significant
// down, the divisor is shifted left by the matching power of ten and
// repeatedly subtracted from the running remainder, counting the
// subtractions as that position's quotient digit.
// quoRem assumes that y is nonzero; the caller checks the divisor.
func (x digits) quoRem(y digits) (q, r digits) {
	// Special case: |x| < |y|
	if x.cmp(y) < 0 {
		return digits{0}, x.clone()
	}
	// General case
	q = make(digits, len(x)-len(y)+1)
	r = x.clone()
	for shift := len(q) - 1; shift >= 0; shift-- {
		scaled := y.lsh(shift)
		count := byte(0)
		for r.cmp(scaled) >= 0 {
			r = r.dist(scaled)
			count++
		}
		q[shift] = count
	}
	return q.norm(), r.norm()
}

// gcd calculates the greatest common divisor of x and y by the
// iterative Euclidean algorithm, reassigning the two carried
// magnitudes instead of recursing.
// gcd assumes that x and y are nonzero.
func (x digits) gcd(y digits) digits {
	a, b := x.clone(), y.clone()
	for !b.isZero() {
		_, r := a.quoRem(b)
		a, b = b, r
	}
	return a
}

// string renders x most-significant digit first.
func (x digits) string() string {
	buf := make([]byte, len(x))
	for i := 0; i < len(x); i++ {
		buf[i] = x[len(x)-1-i] + '0'
	}
	return string(buf)
}
