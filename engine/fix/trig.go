package fix

// Quarter-wave sine table, sinTable[i] = sin(i/tableSize * pi/2).
const (
	tableBits = 10
	tableSize = 1 << tableBits
)

var sinTable [tableSize + 1]Scalar

func init() {
	// Taylor series in Q30, integer only. Seven terms are exact to well below
	// one Q16.16 ulp on [0, pi/2].
	const halfPiQ30 = 1686629713
	mul := func(a, b int64) int64 { return (a * b) >> 30 }
	for i := 1; i < tableSize; i++ {
		x := halfPiQ30 * int64(i) / tableSize
		x2 := mul(x, x)
		term, sum := x, x
		for k := int64(1); k <= 6; k++ {
			term = -mul(term, x2) / ((2 * k) * (2*k + 1))
			sum += term
		}
		sinTable[i] = Scalar((sum + 1<<13) >> 14)
	}
	sinTable[0] = 0
	sinTable[tableSize] = One
}

const quarterSpan = int64(tableSize) << shift

// quarterAt interpolates the table at a Q16 table position in [0, tableSize].
func quarterAt(p int64) int64 {
	i := p >> shift
	if i >= tableSize {
		return int64(sinTable[tableSize])
	}
	a := int64(sinTable[i])
	b := int64(sinTable[i+1])
	return a + ((b-a)*(p&0xFFFF))>>shift
}

func sinRaw(a int64) Scalar {
	r := a % int64(TwoPi)
	if r < 0 {
		r += int64(TwoPi)
	}
	// Position in quarter-table units, Q16.
	p := (r << (tableBits + 2 + shift)) / int64(TwoPi)
	quadrant := p / quarterSpan
	f := p % quarterSpan
	switch quadrant {
	case 0:
		return Scalar(quarterAt(f))
	case 1:
		return Scalar(quarterAt(quarterSpan - f))
	case 2:
		return Scalar(-quarterAt(f))
	default:
		return Scalar(-quarterAt(quarterSpan - f))
	}
}

// Sin returns the sine of an angle in radians.
func (s Scalar) Sin() Scalar { return sinRaw(int64(s)) }

// Cos returns the cosine of an angle in radians.
func (s Scalar) Cos() Scalar { return sinRaw(int64(s) + int64(HalfPi)) }
