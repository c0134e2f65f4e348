/*
Package exact implements immutable arbitrary-precision numbers:
integers, rational fractions, and complex numbers with rational parts.
Every operation is exact; nothing is ever rounded.

# Representation

The package is a tower of three types, each built only on the one
below it:

  - [Integer]: a sign and an unbounded sequence of decimal digits,
    stored least-significant digit first with no most-significant
    zeros. Zero is always non-negative, so every numeric value has
    exactly one representation.
  - [Fraction]: a sign and a coprime numerator/denominator pair of
    non-negative magnitudes, the denominator positive. Every
    constructed fraction is in reduced canonical form; zero is always
    stored as 0/1 with a non-negative sign.
  - [Complex]: an ordered pair of fractions holding the real and
    imaginary parts.

Ownership is strictly tree-shaped: a complex number owns its two
fractions and a fraction owns its two magnitudes. Constructors and
arithmetic operations copy or freshly allocate everything they return,
so two values never share mutable state and read-only concurrent use
is safe by construction.

# Construction

Values are constructed from validated decimal text:

  - [ParseInteger] accepts the strict grammar -?[1-9][0-9]*|0.
    Leading zeros, "-0", an empty string, and non-digit characters are
    rejected.
  - [ParseFraction] accepts a numerator literal and a denominator
    literal; the denominator must not parse to zero. The result is
    reduced immediately.
  - [ParseComplex] accepts four integer literals: the
    numerator/denominator of the real part and of the imaginary part.
    Splitting a combined literal such as "2/3-4i" into those four
    substrings is the caller's job; this package never scans for the
    real/imaginary boundary.

Each parser has a Must variant for static initialization, and
[NewInteger] converts from int64.

# Operations

Integer arithmetic is schoolbook: addition and subtraction by
per-digit carry and borrow, multiplication by digit-by-digit
multiply-accumulate, and division by repeated subtraction of a
power-of-ten-shifted divisor. The package intentionally favors
simplicity and auditability over Karatsuba or FFT multiplication; all
asymptotics are the schoolbook ones.

Fraction arithmetic delegates to integer arithmetic and re-reduces
every result with the iterative Euclidean algorithm. Addition obtains
the common denominator through the gcd of the two denominators rather
than their full product, keeping intermediate magnitudes small.

Complex arithmetic delegates to fraction arithmetic: componentwise
addition and subtraction, the (ax-by, ay+bx) multiplication rule, and
conjugate-based division scaled by |d|^2.

# Errors

The package distinguishes two failure kinds:

  - Invalid literals are data errors. Parsers return an error wrapping
    [ErrInvalidInteger] or [ErrInvalidFraction] that names the
    offending literal, and no value is produced. The caller decides
    whether and how to display the message; the package performs no
    I/O.

  - A zero divisor in [Integer.QuoRem], [Fraction.Quo], [Complex.Quo]
    and their relatives is a precondition violation. Once construction
    has succeeded, a zero divisor can only mean a caller skipped its
    own check, so these methods panic with [ErrDivisionByZero] instead
    of returning an error.

Arithmetic on well-formed operands always succeeds and produces a
canonical result; there are no other failure modes.
*/
package exact
