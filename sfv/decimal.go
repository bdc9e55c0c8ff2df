package sfv

import (
	"math"
	"strconv"
)

// MaxNumeric is the largest magnitude an Integer, a Date, or a Decimal
// mantissa at exponent -3 may take: fifteen nines.
const MaxNumeric = 999_999_999_999_999

// Decimal is a fixed-point decimal: mantissa * 10^exponent with
// exponent in {0, -1, -2, -3}. The mantissa magnitude is bounded by
// 10^(12+|exponent|) - 1, so the integer part never exceeds twelve
// digits and the whole value never exceeds MaxNumeric thousandths.
//
// The zero value is a valid decimal representing 0.
type Decimal struct {
	mantissa int64
	exponent int8
}

// decimalMantissaMax[-e] is the largest mantissa magnitude valid at
// exponent e.
var decimalMantissaMax = [4]int64{
	999_999_999_999,
	9_999_999_999_999,
	99_999_999_999_999,
	999_999_999_999_999,
}

func decimalValid(mantissa int64, exponent int8) bool {
	if exponent > 0 || exponent < -3 {
		return false
	}
	max := decimalMantissaMax[-exponent]
	return mantissa >= -max && mantissa <= max
}

// NewDecimal creates a decimal from a mantissa and an exponent,
// validating the exponent range and the mantissa magnitude.
func NewDecimal(mantissa int64, exponent int8) (Decimal, error) {
	if !decimalValid(mantissa, exponent) {
		return Decimal{}, ErrInvalidIntegerOrDecimal
	}
	return Decimal{mantissa: mantissa, exponent: exponent}, nil
}

// DecimalFromFloat converts f to a decimal with exponent -3, rounding
// the third fractional digit to nearest-even.
func DecimalFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ErrInvalidIntegerOrDecimal
	}
	scaled := math.RoundToEven(f * 1000)
	if scaled < -MaxNumeric || scaled > MaxNumeric {
		return Decimal{}, ErrInvalidIntegerOrDecimal
	}
	return Decimal{mantissa: int64(scaled), exponent: -3}, nil
}

// Mantissa returns the mantissa.
func (d Decimal) Mantissa() int64 { return d.mantissa }

// Exponent returns the exponent.
func (d Decimal) Exponent() int8 { return d.exponent }

// SetMantissa replaces the mantissa, validating against the current
// exponent before committing.
func (d *Decimal) SetMantissa(mantissa int64) error {
	if !decimalValid(mantissa, d.exponent) {
		return ErrInvalidIntegerOrDecimal
	}
	d.mantissa = mantissa
	return nil
}

// SetExponent replaces the exponent, validating the current mantissa
// against it before committing.
func (d *Decimal) SetExponent(exponent int8) error {
	if !decimalValid(d.mantissa, exponent) {
		return ErrInvalidIntegerOrDecimal
	}
	d.exponent = exponent
	return nil
}

// Canonicalized returns the canonical form of d: the exponent is at
// most -1 (exponent 0 is re-expressed by scaling the mantissa up) and
// the fraction carries no trailing zero digits beyond the first.
func (d Decimal) Canonicalized() Decimal {
	m, e := d.mantissa, d.exponent
	if e == 0 {
		m *= 10
		e = -1
	}
	for e < -1 && m%10 == 0 {
		m /= 10
		e++
	}
	return Decimal{mantissa: m, exponent: e}
}

// AppendCanonical appends the canonical text form of d to dst: an
// optional sign, the integer digits (at least one), a decimal point,
// and one to three fraction digits.
func (d Decimal) AppendCanonical(dst []byte) []byte {
	c := d.Canonicalized()
	m := c.mantissa
	if m < 0 {
		dst = append(dst, '-')
		m = -m
	}
	scale := int64(1)
	for i := int8(0); i > c.exponent; i-- {
		scale *= 10
	}
	dst = strconv.AppendInt(dst, m/scale, 10)
	dst = append(dst, '.')
	frac := strconv.FormatInt(m%scale, 10)
	for i := len(frac); i < int(-c.exponent); i++ {
		dst = append(dst, '0')
	}
	return append(dst, frac...)
}

// String returns the canonical text form.
func (d Decimal) String() string {
	return string(d.AppendCanonical(nil))
}
