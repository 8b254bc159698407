package gpc

import (
	"math"

	"github.com/shopspring/decimal"
)

const fractionDigits = 5   // fractional digits kept per axis
const fractionScale = 1e5 // 10^fractionDigits

var ten = decimal.NewFromInt(10)

// axisParts is one axis value broken into sign, whole degrees and the first
// five fractional digits.
type axisParts struct {
	sign   int // -1 or +1
	whole  int
	digits [fractionDigits]int
}

// decompose splits one axis value into its parts. The whole part and the
// digits are both taken from the shortest decimal representation of v so
// they cannot disagree. v must be finite.
func decompose(v float64) axisParts {
	p := axisParts{sign: 1}
	if v < 0 {
		p.sign = -1
	}

	abs := decimal.NewFromFloat(math.Abs(v))
	whole := abs.Truncate(0)
	p.whole = int(whole.IntPart())

	fractional := abs.Sub(whole)
	for i := range p.digits {
		shifted := fractional.Mul(ten)
		digit := shifted.Truncate(0)
		p.digits[i] = int(digit.IntPart())
		fractional = shifted.Sub(digit)
	}
	return p
}

// fraction returns the digits as an integer in [0, 99999].
func (p axisParts) fraction() int {
	f := 0
	for _, d := range p.digits {
		f = f*10 + d
	}
	return f
}

// compose rebuilds the axis value. The division is done once on an exact
// integer so the result is the float64 closest to the decimal value.
func (p axisParts) compose() float64 {
	v := float64(p.whole*fractionScale+p.fraction()) / fractionScale
	if p.sign < 0 && v != 0 {
		v = -v
	}
	return v
}
