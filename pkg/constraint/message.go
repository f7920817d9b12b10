package constraint

import "slices"

// ViolationMessage identifies a kind of failure. Code is the stable identifier
// consumers switch on, Key is the lookup key for message catalogs and the
// template is the fallback used when no catalog entry exists.
//
// Templates use positional placeholders. {0} is reserved for the field name,
// which the caller that owns the field prepends when rendering; rule
// arguments start at {1}.
type ViolationMessage struct {
	code     string
	key      string
	template string
}

// NewViolationMessage creates a message. An empty key falls back to the code.
func NewViolationMessage(code, key, template string) ViolationMessage {
	if key == "" {
		key = code
	}
	return ViolationMessage{code: code, key: key, template: template}
}

func (m ViolationMessage) Code() string { return m.code }

func (m ViolationMessage) Key() string { return m.key }

func (m ViolationMessage) DefaultTemplate() string { return m.template }

// WithTemplate returns a copy of the message with the template replaced.
// Code and key are kept so consumers switching on the code are unaffected.
func (m ViolationMessage) WithTemplate(template string) ViolationMessage {
	m.template = template
	return m
}

func (m ViolationMessage) String() string { return m.code }

// Built-in messages. Codes are part of the public contract and must not change.
var (
	ObjectNotNull = ViolationMessage{"OBJECT_NOT_NULL", "object.notNull", `"{0}" must not be null`}
	ObjectIsNull  = ViolationMessage{"OBJECT_IS_NULL", "object.isNull", `"{0}" must be null`}

	BooleanIsTrue  = ViolationMessage{"BOOLEAN_IS_TRUE", "boolean.isTrue", `"{0}" must be true`}
	BooleanIsFalse = ViolationMessage{"BOOLEAN_IS_FALSE", "boolean.isFalse", `"{0}" must be false`}

	ContainerNotEmpty = ViolationMessage{"CONTAINER_NOT_EMPTY", "container.notEmpty",
		`"{0}" must not be empty`}
	ContainerLessThan = ViolationMessage{"CONTAINER_LESS_THAN", "container.lessThan",
		`The size of "{0}" must be less than {1}. The given size is {2}`}
	ContainerLessThanOrEqual = ViolationMessage{"CONTAINER_LESS_THAN_OR_EQUAL", "container.lessThanOrEqual",
		`The size of "{0}" must be less than or equal to {1}. The given size is {2}`}
	ContainerGreaterThan = ViolationMessage{"CONTAINER_GREATER_THAN", "container.greaterThan",
		`The size of "{0}" must be greater than {1}. The given size is {2}`}
	ContainerGreaterThanOrEqual = ViolationMessage{"CONTAINER_GREATER_THAN_OR_EQUAL", "container.greaterThanOrEqual",
		`The size of "{0}" must be greater than or equal to {1}. The given size is {2}`}
	ContainerFixedSize = ViolationMessage{"CONTAINER_FIXED_SIZE", "container.fixedSize",
		`The size of "{0}" must be {1}. The given size is {2}`}

	NumericGreaterThan = ViolationMessage{"NUMERIC_GREATER_THAN", "numeric.greaterThan",
		`"{0}" must be greater than {1}`}
	NumericGreaterThanOrEqual = ViolationMessage{"NUMERIC_GREATER_THAN_OR_EQUAL", "numeric.greaterThanOrEqual",
		`"{0}" must be greater than or equal to {1}`}
	NumericLessThan = ViolationMessage{"NUMERIC_LESS_THAN", "numeric.lessThan",
		`"{0}" must be less than {1}`}
	NumericLessThanOrEqual = ViolationMessage{"NUMERIC_LESS_THAN_OR_EQUAL", "numeric.lessThanOrEqual",
		`"{0}" must be less than or equal to {1}`}
)

var defaultMessages = []ViolationMessage{
	ObjectNotNull,
	ObjectIsNull,
	BooleanIsTrue,
	BooleanIsFalse,
	ContainerNotEmpty,
	ContainerLessThan,
	ContainerLessThanOrEqual,
	ContainerGreaterThan,
	ContainerGreaterThanOrEqual,
	ContainerFixedSize,
	NumericGreaterThan,
	NumericGreaterThanOrEqual,
	NumericLessThan,
	NumericLessThanOrEqual,
}

// DefaultMessages returns every built-in message in declaration order.
func DefaultMessages() []ViolationMessage {
	return slices.Clone(defaultMessages)
}

// LookupDefault finds a built-in message by code or by key.
func LookupDefault(codeOrKey string) (ViolationMessage, bool) {
	for _, m := range defaultMessages {
		if m.code == codeOrKey || m.key == codeOrKey {
			return m, true
		}
	}
	return ViolationMessage{}, false
}
