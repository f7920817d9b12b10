// Package constraint is the rule engine behind rulekit: it represents single
// validation rules, composes them into ordered sequences through typed
// fluent builders and evaluates them into structured violations.
//
// # Architecture
//
// A Predicate is one rule: a test, a ViolationMessage, a lazily evaluated
// argument list and a NullPolicy deciding what happens when the value is
// absent. Rules are collected in a Sequence that only grows or shrinks at
// the tail.
//
// Base carries the sequence and the vocabulary shared by every constraint
// (NotNull, IsNull, Predicate, PredicateNullable, Message). It is generic
// over the value type V and the concrete constraint type C, and every
// method returns C, so chains keep their concrete type:
//
//	c := constraint.NewSlice[string]().
//	    NotEmpty().
//	    LessThanOrEqual(10).
//	    Message(tooManyTags)
//
// NumericBase and ContainerBase extend Base with ordering and size rules.
// Ordering is supplied per numeric representation through Comparators;
// size through a measuring function. Concrete constraints are provided for
// bool, integers, floats, *big.Int, decimal.Decimal, slices, maps and
// strings, and new ones are built by embedding one of the bases and
// calling Init.
//
// # Evaluation
//
// Evaluate takes a pointer to the candidate; nil means absent. Violations
// are returned in rule declaration order, each carrying the message and the
// resolved arguments. Size rules append the measured size after the
// threshold, so a renderer can say "expected at most 10 but was 12".
//
//	if vs := c.EvaluateValue(tags); !vs.IsEmpty() {
//	    for _, v := range vs {
//	        fmt.Println(v.Code(), v.Args)
//	    }
//	}
//
// Rendering templates and attaching field names is left to the caller; see
// the messages package for template lookup.
//
// # Concurrency
//
// Build a constraint once, then share it. Evaluate only reads, so any number
// of goroutines may evaluate the same constraint. Adding rules or
// overriding messages after sharing is a data race.
//
// # Error Handling
//
// Failed rules are values, not errors. Validate wraps a non-empty result in
// Violations, which implements error and matches ErrValidationFailed with
// errors.Is. Calling Message before any rule was added panics with
// ErrNoConstraintToOverride.
package constraint
