package constraint

// CustomConstraint bundles a test with the message reported when it fails.
type CustomConstraint[V any] interface {
	Test(v V) bool
	ViolationMessage() ViolationMessage
}

type customConstraint[V any] struct {
	test func(V) bool
	msg  ViolationMessage
}

// NewCustom creates a CustomConstraint from a function and a message.
func NewCustom[V any](msg ViolationMessage, test func(V) bool) CustomConstraint[V] {
	return customConstraint[V]{test: test, msg: msg}
}

func (c customConstraint[V]) Test(v V) bool { return c.test(v) }

func (c customConstraint[V]) ViolationMessage() ViolationMessage { return c.msg }
