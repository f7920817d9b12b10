package constraint

// NullPolicy decides the outcome of a rule when the candidate is absent.
type NullPolicy uint8

const (
	// NullIsValid skips the rule for an absent candidate.
	NullIsValid NullPolicy = iota
	// NullIsInvalid reports an absent candidate as a violation of the rule.
	NullIsInvalid
)

func (p NullPolicy) String() string {
	switch p {
	case NullIsValid:
		return "null_is_valid"
	case NullIsInvalid:
		return "null_is_invalid"
	default:
		return "unknown"
	}
}

// ViolatedValue is a quantity measured while evaluating a rule, such as the
// actual size of a collection. It is appended to the message arguments.
type ViolatedValue struct {
	value any
}

func NewViolatedValue(v any) ViolatedValue {
	return ViolatedValue{value: v}
}

func (v ViolatedValue) Value() any { return v.value }

// Predicate is a single rule: a test, the message reported on failure, a lazy
// producer of message arguments and a null policy.
//
// The test is never called with an absent candidate. The argument producer
// is only called when a violation is built.
type Predicate[V any] struct {
	check      func(V) bool
	measure    func(V) (ViolatedValue, bool)
	message    ViolationMessage
	args       func() []any
	nullPolicy NullPolicy
}

// Of creates a rule that fails when test returns false.
func Of[V any](test func(V) bool, msg ViolationMessage, args func() []any, policy NullPolicy) Predicate[V] {
	return Predicate[V]{
		check:      test,
		message:    msg,
		args:       args,
		nullPolicy: policy,
	}
}

// WithViolatedValue creates a measuring rule. The test reports failure by
// returning the measured value and true; the value is appended after the
// arguments produced by args.
func WithViolatedValue[V any](test func(V) (ViolatedValue, bool), msg ViolationMessage, args func() []any, policy NullPolicy) Predicate[V] {
	return Predicate[V]{
		measure:    test,
		message:    msg,
		args:       args,
		nullPolicy: policy,
	}
}

func (p Predicate[V]) Message() ViolationMessage { return p.message }

func (p Predicate[V]) NullPolicy() NullPolicy { return p.nullPolicy }

// OverrideMessage returns a copy of the rule reporting msg instead.
func (p Predicate[V]) OverrideMessage(msg ViolationMessage) Predicate[V] {
	p.message = msg
	return p
}

// Evaluate checks the candidate. A nil candidate means the value is absent.
// The returned bool is true when the rule is violated.
func (p Predicate[V]) Evaluate(candidate *V) (Violation, bool) {
	if candidate == nil {
		if p.nullPolicy == NullIsInvalid {
			return p.violation(), true
		}
		return Violation{}, false
	}

	if p.measure != nil {
		measured, failed := p.measure(*candidate)
		if !failed {
			return Violation{}, false
		}
		v := p.violation()
		v.Args = append(v.Args, measured.value)
		return v, true
	}

	if p.check == nil || p.check(*candidate) {
		return Violation{}, false
	}
	return p.violation(), true
}

func (p Predicate[V]) violation() Violation {
	var args []any
	if p.args != nil {
		src := p.args()
		args = make([]any, len(src), len(src)+1)
		copy(args, src)
	} else {
		args = make([]any, 0, 1)
	}
	return Violation{Message: p.message, Args: args}
}
