package health

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is an amount expressed in a unit.
type Quantity struct {
	Value decimal.Decimal
	Unit  Unit
}

// NewQuantity builds a Quantity from a float value.
func NewQuantity(value float64, unit Unit) Quantity {
	return Quantity{Value: decimal.NewFromFloat(value), Unit: unit}
}

// In returns the quantity's value expressed in unit.
func (q Quantity) In(unit Unit) (decimal.Decimal, error) {
	return q.Unit.convert(q.Value, unit)
}

// Float64In is In followed by a float conversion.
func (q Quantity) Float64In(unit Unit) (float64, error) {
	v, err := q.In(unit)
	if err != nil {
		return 0, err
	}
	f, _ := v.Float64()
	return f, nil
}

// Add returns q + other, expressed in q's unit.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	v, err := other.In(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value.Add(v), Unit: q.Unit}, nil
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", q.Value.String(), q.Unit.Symbol)
}

// Convert expresses a raw aggregated quantity in c's canonical unit.
// It never fails: a category without a canonical unit, or a quantity whose
// unit cannot be converted, yields 0 with ok=false.
func Convert(c Category, q Quantity) (value float64, ok bool) {
	var target Unit
	switch c {
	case StepCount:
		target = Count
	case ActiveEnergyBurned:
		target = Kilocalorie
	case ExerciseTime:
		target = Minute
	default:
		return 0.0, false
	}

	v, err := q.Float64In(target)
	if err != nil {
		return 0.0, false
	}
	return v, true
}
