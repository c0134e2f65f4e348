package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/exact"
)

var (
	integerCorpus = []string{
		"0", "1", "-1", "2", "-2", "7", "-7", "10", "-10",
		"99", "100", "-123", "999", "1000", "123456789",
		"-987654321", "123456789123456789",
	}
	fractionCorpus = [][2]string{
		{"0", "1"}, {"1", "1"}, {"-1", "1"}, {"1", "2"}, {"-1", "2"},
		{"2", "3"}, {"-3", "4"}, {"5", "7"}, {"12", "34"}, {"-99", "100"},
		{"123456789", "987654321"},
	}
	complexCorpus = [][4]string{
		{"0", "1", "0", "1"},
		{"1", "1", "0", "1"},
		{"0", "1", "1", "1"},
		{"1", "1", "1", "1"},
		{"3", "1", "4", "1"},
		{"-5", "1", "10", "1"},
		{"1", "2", "-3", "4"},
		{"-2", "3", "5", "7"},
		{"12", "34", "1", "2"},
	}
)

func integers(t *testing.T) []exact.Integer {
	t.Helper()
	ns := make([]exact.Integer, len(integerCorpus))
	for i, s := range integerCorpus {
		ns[i] = exact.MustParseInteger(s)
	}
	return ns
}

func fractions(t *testing.T) []exact.Fraction {
	t.Helper()
	fs := make([]exact.Fraction, len(fractionCorpus))
	for i, lit := range fractionCorpus {
		fs[i] = exact.MustParseFraction(lit[0], lit[1])
	}
	return fs
}

func complexes(t *testing.T) []exact.Complex {
	t.Helper()
	cs := make([]exact.Complex, len(complexCorpus))
	for i, lit := range complexCorpus {
		cs[i] = exact.MustParseComplex(lit[0], lit[1], lit[2], lit[3])
	}
	return cs
}

func TestInteger_Commutativity(t *testing.T) {
	for _, n := range integers(t) {
		for _, m := range integers(t) {
			assert.Zero(t, n.Add(m).Cmp(m.Add(n)), "%q.Add(%q)", n, m)
			assert.Zero(t, n.Mul(m).Cmp(m.Mul(n)), "%q.Mul(%q)", n, m)
		}
	}
}

func TestInteger_DivisionIdentity(t *testing.T) {
	for _, n := range integers(t) {
		for _, m := range integers(t) {
			if m.IsZero() {
				continue
			}
			q, r := n.QuoRem(m)
			assert.Zero(t, m.Mul(q).Add(r).Cmp(n), "%q = %q * %q + %q", n, m, q, r)
			assert.Negative(t, r.Abs().Cmp(m.Abs()), "remainder %q vs divisor %q", r, m)
			if !r.IsZero() {
				assert.Equal(t, n.Sign(), r.Sign(), "%q.QuoRem(%q) remainder sign", n, m)
			}
		}
	}
}

func TestInteger_RoundTrip(t *testing.T) {
	for _, s := range integerCorpus {
		n, err := exact.ParseInteger(s)
		require.NoError(t, err)
		assert.Equal(t, s, n.String())
	}
}

func TestFraction_Commutativity(t *testing.T) {
	for _, f := range fractions(t) {
		for _, g := range fractions(t) {
			assert.Zero(t, f.Add(g).Cmp(g.Add(f)), "%q.Add(%q)", f, g)
			assert.Zero(t, f.Mul(g).Cmp(g.Mul(f)), "%q.Mul(%q)", f, g)
		}
	}
}

func TestFraction_DivisionInverse(t *testing.T) {
	for _, f := range fractions(t) {
		for _, g := range fractions(t) {
			if g.IsZero() {
				continue
			}
			assert.Zero(t, f.Mul(g).Quo(g).Cmp(f), "%q * %q / %q", f, g, g)
			assert.True(t, g.Mul(g.Inv()).IsOne(), "%q * 1/%q", g, g)
		}
	}
}

func TestFraction_AdditiveInverse(t *testing.T) {
	for _, f := range fractions(t) {
		assert.True(t, f.Add(f.Neg()).IsZero(), "%q + -%q", f, f)
	}
}

func TestComplex_Commutativity(t *testing.T) {
	for _, c := range complexes(t) {
		for _, d := range complexes(t) {
			assert.True(t, c.Add(d).Equal(d.Add(c)), "%v.Add(%v)", c, d)
			assert.True(t, c.Mul(d).Equal(d.Mul(c)), "%v.Mul(%v)", c, d)
		}
	}
}

func TestComplex_DivisionInverse(t *testing.T) {
	for _, c := range complexes(t) {
		for _, d := range complexes(t) {
			if d.IsZero() {
				continue
			}
			assert.True(t, c.Mul(d).Quo(d).Equal(c), "%v * %v / %v", c, d, d)
		}
	}
}

// TestComplex_ConjugateNorm verifies that b times its conjugate is a
// real number, positive whenever b is nonzero. Division relies on this
// to scale by an invertible real factor.
func TestComplex_ConjugateNorm(t *testing.T) {
	for _, c := range complexes(t) {
		norm := c.Mul(c.Conj())
		require.True(t, norm.Imag().IsZero(), "%v * conj(%v) has imaginary part %q", c, c, norm.Imag())
		if c.IsZero() {
			assert.True(t, norm.Real().IsZero())
		} else {
			assert.True(t, norm.Real().IsPos(), "%v * conj(%v) = %q", c, c, norm.Real())
		}
	}
}

func TestComplex_ConjInvolution(t *testing.T) {
	for _, c := range complexes(t) {
		assert.True(t, c.Conj().Conj().Equal(c), "conj(conj(%v))", c)
	}
}
