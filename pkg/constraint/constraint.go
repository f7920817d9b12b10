package constraint

import (
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Base holds the rule sequence and the shared rule vocabulary. Every
// constraint type embeds it, with C set to the embedding pointer type, so
// the methods below return the concrete constraint and chains keep their
// type:
//
//	type Percent struct {
//		constraint.NumericBase[float64, *Percent]
//	}
//
//	func NewPercent() *Percent {
//		p := &Percent{}
//		p.Init(p, constraint.OrderedComparators[float64]())
//		return p
//	}
//
// Rules are added while building. Once the constraint is shared for
// evaluation it must not be modified; evaluation only reads.
type Base[V any, C any] struct {
	seq  Sequence[V]
	self C
}

// Init binds the concrete constraint returned by the fluent methods.
func (b *Base[V, C]) Init(self C) {
	b.self = self
}

// Cast returns the concrete constraint.
func (b *Base[V, C]) Cast() C {
	return b.self
}

// Add appends a rule.
func (b *Base[V, C]) Add(p Predicate[V]) C {
	b.seq.Push(p)
	return b.self
}

// Predicates returns a copy of the rules in declaration order.
func (b *Base[V, C]) Predicates() []Predicate[V] {
	return b.seq.Predicates()
}

// Len returns the number of rules.
func (b *Base[V, C]) Len() int {
	return b.seq.Len()
}

// NotNull rejects an absent value.
func (b *Base[V, C]) NotNull() C {
	return b.Add(Of(func(V) bool { return true }, ObjectNotNull, nil, NullIsInvalid))
}

// IsNull accepts only an absent value.
func (b *Base[V, C]) IsNull() C {
	return b.Add(Of(func(V) bool { return false }, ObjectIsNull, nil, NullIsValid))
}

// Predicate adds a custom rule. An absent value passes it.
func (b *Base[V, C]) Predicate(test func(V) bool, msg ViolationMessage) C {
	return b.Add(Of(test, msg, nil, NullIsValid))
}

// PredicateNullable adds a custom rule. An absent value violates it.
func (b *Base[V, C]) PredicateNullable(test func(V) bool, msg ViolationMessage) C {
	return b.Add(Of(test, msg, nil, NullIsInvalid))
}

// PredicateCustom adds a CustomConstraint. An absent value passes it.
func (b *Base[V, C]) PredicateCustom(c CustomConstraint[V]) C {
	return b.Predicate(c.Test, c.ViolationMessage())
}

// PredicateNullableCustom adds a CustomConstraint. An absent value violates it.
func (b *Base[V, C]) PredicateNullableCustom(c CustomConstraint[V]) C {
	return b.PredicateNullable(c.Test, c.ViolationMessage())
}

// Message replaces the message of the rule added last. It panics with
// ErrNoConstraintToOverride when no rule has been added.
func (b *Base[V, C]) Message(msg ViolationMessage) C {
	p := b.popForOverride(msg.Code())
	return b.Add(p.OverrideMessage(msg))
}

// MessageString replaces only the template of the rule added last, keeping
// its code and key. It panics like Message.
func (b *Base[V, C]) MessageString(template string) C {
	p := b.popForOverride("")
	return b.Add(p.OverrideMessage(p.Message().WithTemplate(template)))
}

func (b *Base[V, C]) popForOverride(code string) Predicate[V] {
	p, ok := b.seq.Pop()
	if !ok {
		slog.Default().Error("message override without a preceding rule",
			logger.Component("constraint"),
			logger.Code(code),
			logger.Error(ErrNoConstraintToOverride),
		)
		panic(ErrNoConstraintToOverride)
	}
	return p
}

// Evaluate runs every rule against the candidate, nil meaning absent, and
// returns the violations in declaration order. It returns nil when all
// rules pass.
func (b *Base[V, C]) Evaluate(candidate *V) Violations {
	var out Violations
	for p := range b.seq.All() {
		if v, failed := p.Evaluate(candidate); failed {
			out = append(out, v)
		}
	}
	return out
}

// EvaluateValue is Evaluate for a present value.
func (b *Base[V, C]) EvaluateValue(v V) Violations {
	return b.Evaluate(&v)
}

// Validate returns the violations for candidate as an error, or nil.
func (b *Base[V, C]) Validate(candidate *V) error {
	return b.Evaluate(candidate).Err()
}

// ObjectConstraint offers the shared vocabulary for values of any type.
type ObjectConstraint[V any] struct {
	Base[V, *ObjectConstraint[V]]
}

func NewObject[V any]() *ObjectConstraint[V] {
	c := &ObjectConstraint[V]{}
	c.Init(c)
	return c
}
