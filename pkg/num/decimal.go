package num

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of decimal places kept by Decimal.Div.
const DivisionPrecision = 16

type decimalArithmetic struct{}

// Decimal computes with arbitrary precision shopspring decimals.
var Decimal Arithmetic[decimal.Decimal] = decimalArithmetic{}

func (decimalArithmetic) Zero() decimal.Decimal { return decimal.Zero }
func (decimalArithmetic) One() decimal.Decimal  { return decimal.NewFromInt(1) }

func (decimalArithmetic) FromUint32(v uint32) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

func (decimalArithmetic) FromFloat64(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func (decimalArithmetic) Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "can not parse %q as decimal", s)
	}
	return d, nil
}

func (decimalArithmetic) String(v decimal.Decimal) string { return v.String() }

func (decimalArithmetic) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (decimalArithmetic) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (decimalArithmetic) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

func (decimalArithmetic) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, DivisionPrecision)
}

func (decimalArithmetic) Abs(v decimal.Decimal) decimal.Decimal { return v.Abs() }
func (decimalArithmetic) Sign(v decimal.Decimal) int            { return v.Sign() }

func (decimalArithmetic) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }
