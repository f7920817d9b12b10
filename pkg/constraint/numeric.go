package constraint

import (
	"cmp"
	"math/big"

	"github.com/shopspring/decimal"
)

// Integer is the set of integer kinds supported by IntegerConstraint.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds supported by FloatConstraint.
type Float interface {
	~float32 | ~float64
}

// Comparators supplies the ordering tests for a numeric representation.
// Each factory receives the bound and returns the test applied to candidates.
type Comparators[V any] struct {
	GreaterThan        func(min V) func(V) bool
	GreaterThanOrEqual func(min V) func(V) bool
	LessThan           func(max V) func(V) bool
	LessThanOrEqual    func(max V) func(V) bool
}

// OrderedComparators uses the built-in operators. For floats every
// comparison with NaN is false, so NaN violates all four rules.
func OrderedComparators[V cmp.Ordered]() Comparators[V] {
	return Comparators[V]{
		GreaterThan:        func(min V) func(V) bool { return func(v V) bool { return v > min } },
		GreaterThanOrEqual: func(min V) func(V) bool { return func(v V) bool { return v >= min } },
		LessThan:           func(max V) func(V) bool { return func(v V) bool { return v < max } },
		LessThanOrEqual:    func(max V) func(V) bool { return func(v V) bool { return v <= max } },
	}
}

// CompareComparators builds comparators from a three-way compare function
// returning a negative number, zero or a positive number.
func CompareComparators[V any](compare func(a, b V) int) Comparators[V] {
	return Comparators[V]{
		GreaterThan:        func(min V) func(V) bool { return func(v V) bool { return compare(v, min) > 0 } },
		GreaterThanOrEqual: func(min V) func(V) bool { return func(v V) bool { return compare(v, min) >= 0 } },
		LessThan:           func(max V) func(V) bool { return func(v V) bool { return compare(v, max) < 0 } },
		LessThanOrEqual:    func(max V) func(V) bool { return func(v V) bool { return compare(v, max) <= 0 } },
	}
}

// NumericBase adds ordering rules on top of Base. The comparison semantics
// come from the Comparators passed to Init; NumericBase only wires rule
// shape and messages. An absent value passes every ordering rule.
type NumericBase[V any, C any] struct {
	Base[V, C]
	cmp Comparators[V]
}

func (n *NumericBase[V, C]) Init(self C, comparators Comparators[V]) {
	n.Base.Init(self)
	n.cmp = comparators
}

func (n *NumericBase[V, C]) GreaterThan(min V) C {
	return n.Add(Of(n.cmp.GreaterThan(min), NumericGreaterThan, func() []any { return []any{min} }, NullIsValid))
}

func (n *NumericBase[V, C]) GreaterThanOrEqual(min V) C {
	return n.Add(Of(n.cmp.GreaterThanOrEqual(min), NumericGreaterThanOrEqual, func() []any { return []any{min} }, NullIsValid))
}

func (n *NumericBase[V, C]) LessThan(max V) C {
	return n.Add(Of(n.cmp.LessThan(max), NumericLessThan, func() []any { return []any{max} }, NullIsValid))
}

func (n *NumericBase[V, C]) LessThanOrEqual(max V) C {
	return n.Add(Of(n.cmp.LessThanOrEqual(max), NumericLessThanOrEqual, func() []any { return []any{max} }, NullIsValid))
}

type IntegerConstraint[V Integer] struct {
	NumericBase[V, *IntegerConstraint[V]]
}

func NewInteger[V Integer]() *IntegerConstraint[V] {
	c := &IntegerConstraint[V]{}
	c.Init(c, OrderedComparators[V]())
	return c
}

type FloatConstraint[V Float] struct {
	NumericBase[V, *FloatConstraint[V]]
}

func NewFloat[V Float]() *FloatConstraint[V] {
	c := &FloatConstraint[V]{}
	c.Init(c, OrderedComparators[V]())
	return c
}

// BigIntConstraint orders *big.Int values. A nil *big.Int, or a nil bound,
// passes the ordering rules the same way an absent value does.
type BigIntConstraint struct {
	NumericBase[*big.Int, *BigIntConstraint]
}

func NewBigInt() *BigIntConstraint {
	c := &BigIntConstraint{}
	c.Init(c, bigIntComparators())
	return c
}

func bigIntComparators() Comparators[*big.Int] {
	ordered := CompareComparators((*big.Int).Cmp)
	nilSafe := func(factory func(*big.Int) func(*big.Int) bool) func(*big.Int) func(*big.Int) bool {
		return func(bound *big.Int) func(*big.Int) bool {
			if bound == nil {
				return func(*big.Int) bool { return true }
			}
			test := factory(bound)
			return func(v *big.Int) bool { return v == nil || test(v) }
		}
	}
	return Comparators[*big.Int]{
		GreaterThan:        nilSafe(ordered.GreaterThan),
		GreaterThanOrEqual: nilSafe(ordered.GreaterThanOrEqual),
		LessThan:           nilSafe(ordered.LessThan),
		LessThanOrEqual:    nilSafe(ordered.LessThanOrEqual),
	}
}

// DecimalConstraint orders arbitrary-precision decimals.
type DecimalConstraint struct {
	NumericBase[decimal.Decimal, *DecimalConstraint]
}

func NewDecimal() *DecimalConstraint {
	c := &DecimalConstraint{}
	c.Init(c, CompareComparators(decimal.Decimal.Cmp))
	return c
}
