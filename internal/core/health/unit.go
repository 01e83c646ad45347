package health

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownUnit is returned when a unit symbol is not recognized.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleUnit is returned when converting between dimensions (e.g. energy → time).
	ErrIncompatibleUnit = errors.New("incompatible unit")
)

// Dimension groups units that can be converted into each other.
type Dimension string

const (
	DimensionCount  Dimension = "count"
	DimensionEnergy Dimension = "energy"
	DimensionTime   Dimension = "time"
)

// Unit is a unit of measure with an exact factor to its dimension's base unit
// (count, joule, second).
type Unit struct {
	Symbol    string
	Dimension Dimension
	factor    decimal.Decimal
}

var (
	Count = Unit{Symbol: "count", Dimension: DimensionCount, factor: decimal.NewFromInt(1)}

	Joule       = Unit{Symbol: "J", Dimension: DimensionEnergy, factor: decimal.NewFromInt(1)}
	Kilojoule   = Unit{Symbol: "kJ", Dimension: DimensionEnergy, factor: decimal.NewFromInt(1000)}
	SmallCal    = Unit{Symbol: "cal", Dimension: DimensionEnergy, factor: decimal.RequireFromString("4.184")}
	Kilocalorie = Unit{Symbol: "kcal", Dimension: DimensionEnergy, factor: decimal.NewFromInt(4184)}

	Millisecond = Unit{Symbol: "ms", Dimension: DimensionTime, factor: decimal.RequireFromString("0.001")}
	Second      = Unit{Symbol: "s", Dimension: DimensionTime, factor: decimal.NewFromInt(1)}
	Minute      = Unit{Symbol: "min", Dimension: DimensionTime, factor: decimal.NewFromInt(60)}
	Hour        = Unit{Symbol: "h", Dimension: DimensionTime, factor: decimal.NewFromInt(3600)}
)

// unitsBySymbol includes the aliases stores commonly write ("Cal" is a kilocalorie).
var unitsBySymbol = map[string]Unit{
	"count": Count,
	"J":     Joule,
	"kJ":    Kilojoule,
	"cal":   SmallCal,
	"kcal":  Kilocalorie,
	"Cal":   Kilocalorie,
	"ms":    Millisecond,
	"s":     Second,
	"min":   Minute,
	"h":     Hour,
	"hr":    Hour,
}

// ParseUnit resolves a unit symbol.
func ParseUnit(symbol string) (Unit, error) {
	u, ok := unitsBySymbol[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return u, nil
}

// Compatible reports whether values in u can be expressed in other.
func (u Unit) Compatible(other Unit) bool {
	return u.Dimension != "" && u.Dimension == other.Dimension
}

func (u Unit) String() string {
	return u.Symbol
}

// convert rescales v from u to target exactly: v * u.factor / target.factor.
func (u Unit) convert(v decimal.Decimal, target Unit) (decimal.Decimal, error) {
	if !u.Compatible(target) {
		return decimal.Zero, fmt.Errorf("%w: cannot convert %s to %s", ErrIncompatibleUnit, u.Symbol, target.Symbol)
	}
	if u.factor.Equal(target.factor) {
		return v, nil
	}
	return v.Mul(u.factor).Div(target.factor), nil
}
