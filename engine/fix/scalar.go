// Package fix implements the Q16.16 fixed-point scalar and the small vector types the
// renderer is built on.
//
// Nothing in this package uses floating point on the render path. Float conversions
// exist for host tooling and tests only.
package fix

import (
	"errors"
	"fmt"
	"strconv"
)

// Scalar is a signed Q16.16 fixed-point number.
type Scalar int32

const shift = 16

const (
	One  Scalar = 1 << shift
	Half Scalar = One >> 1

	Max Scalar = 0x7FFFFFFF
	Min Scalar = -0x7FFFFFFF - 1

	// Epsilon (~0.001) replaces a zero divisor.
	Epsilon Scalar = 66

	Pi     Scalar = 205887
	HalfPi Scalar = 102944
	TwoPi  Scalar = 411775
)

var (
	ErrSyntax = errors.New("fix: invalid syntax")
	ErrRange  = errors.New("fix: value out of range")
)

func sat(v int64) Scalar {
	if v > int64(Max) {
		return Max
	}
	if v < int64(Min) {
		return Min
	}
	return Scalar(v)
}

// Int converts an integer, saturating outside [-32768, 32767].
func Int(n int) Scalar { return sat(int64(n) << shift) }

// Raw reinterprets raw Q16.16 bits.
func Raw(r int32) Scalar { return Scalar(r) }

// Float converts a float64. Host tooling only.
func Float(f float64) Scalar {
	v := f * float64(One)
	if v >= 0 {
		v += 0.5
	} else {
		v -= 0.5
	}
	if v >= float64(Max) {
		return Max
	}
	if v <= float64(Min) {
		return Min
	}
	return Scalar(int64(v))
}

// Float returns s as float64. Host tooling only.
func (s Scalar) Float() float64 { return float64(s) / float64(One) }

// Raw returns the raw Q16.16 bits.
func (s Scalar) Raw() int32 { return int32(s) }

// Int rounds to the nearest integer, halves away from zero.
func (s Scalar) Int() int {
	if s >= 0 {
		return int((int64(s) + int64(Half)) >> shift)
	}
	return -int((-int64(s) + int64(Half)) >> shift)
}

// Floor rounds toward negative infinity.
func (s Scalar) Floor() int { return int(s >> shift) }

func (s Scalar) Add(o Scalar) Scalar { return sat(int64(s) + int64(o)) }
func (s Scalar) Sub(o Scalar) Scalar { return sat(int64(s) - int64(o)) }

func (s Scalar) Neg() Scalar {
	if s == Min {
		return Max
	}
	return -s
}

func (s Scalar) Abs() Scalar {
	if s < 0 {
		return s.Neg()
	}
	return s
}

// Mul multiplies with round-half-up and saturation.
func (s Scalar) Mul(o Scalar) Scalar {
	p := int64(s) * int64(o)
	return sat((p + int64(Half)) >> shift)
}

// Div divides with rounding to nearest. A zero divisor is replaced by Epsilon.
func (s Scalar) Div(o Scalar) Scalar {
	if o == 0 {
		o = Epsilon
	}
	n := int64(s) << shift
	d := int64(o)
	if (n >= 0) == (d > 0) {
		n += d / 2
	} else {
		n -= d / 2
	}
	return sat(n / d)
}

// MulInt multiplies by a plain integer.
func (s Scalar) MulInt(n int) Scalar { return sat(int64(s) * int64(n)) }

// DivInt divides by a plain integer, truncating. Zero returns s unchanged.
func (s Scalar) DivInt(n int) Scalar {
	if n == 0 {
		return s
	}
	return sat(int64(s) / int64(n))
}

func (s Scalar) Clamp(lo, hi Scalar) Scalar {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}

func Minimum(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

func Maximum(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

// Sqrt returns the square root rounded to nearest. Negative input yields 0.
func (s Scalar) Sqrt() Scalar {
	if s <= 0 {
		return 0
	}
	return sat(int64(isqrt(uint64(s) << shift)))
}

// isqrt returns round(sqrt(n)).
func isqrt(n uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	if n > res {
		res++
	}
	return res
}

// String formats s with three decimals without floating point.
func (s Scalar) String() string {
	var b [24]byte
	out := b[:0]
	v := int64(s)
	if v < 0 {
		out = append(out, '-')
		v = -v
	}
	ip := v >> shift
	fp := ((v&0xFFFF)*1000 + int64(Half)) >> shift
	if fp >= 1000 {
		ip++
		fp -= 1000
	}
	out = strconv.AppendInt(out, ip, 10)
	out = append(out, '.')
	if fp < 100 {
		out = append(out, '0')
	}
	if fp < 10 {
		out = append(out, '0')
	}
	out = strconv.AppendInt(out, fp, 10)
	return string(out)
}

// Parse reads a decimal number such as "-1.25" or "300".
func Parse(str string) (Scalar, error) {
	s := str
	if s == "" {
		return 0, fmt.Errorf("parse %q: %w", str, ErrSyntax)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	var ip int64
	digits := 0
	for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		ip = ip*10 + int64(s[0]-'0')
		if ip > 32768 {
			return 0, fmt.Errorf("parse %q: %w", str, ErrRange)
		}
		s = s[1:]
		digits++
	}

	var frac, scale int64 = 0, 1
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			// Digits past the sixth cannot change a 16-bit fraction.
			if scale < 1000000 {
				frac = frac*10 + int64(s[0]-'0')
				scale *= 10
			}
			s = s[1:]
			digits++
		}
	}
	if len(s) != 0 || digits == 0 {
		return 0, fmt.Errorf("parse %q: %w", str, ErrSyntax)
	}

	v := ip<<shift + (frac<<shift+scale/2)/scale
	if neg {
		v = -v
	}
	if v > int64(Max) || v < int64(Min) {
		return 0, fmt.Errorf("parse %q: %w", str, ErrRange)
	}
	return Scalar(v), nil
}

// Set implements flag.Value.
func (s *Scalar) Set(str string) error {
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
