package constraint

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ContainerBase adds size rules on top of Base. The size of a candidate is
// measured by the function passed to Init. Range rules capture the measured
// size, so their arguments are the threshold followed by the actual size.
type ContainerBase[V any, C any] struct {
	Base[V, C]
	size func(V) int
}

func (c *ContainerBase[V, C]) Init(self C, size func(V) int) {
	c.Base.Init(self)
	c.size = size
}

// NotEmpty rejects an absent value and a value of size zero.
func (c *ContainerBase[V, C]) NotEmpty() C {
	size := c.size
	return c.Add(Of(func(v V) bool { return size(v) != 0 }, ContainerNotEmpty, nil, NullIsInvalid))
}

func (c *ContainerBase[V, C]) LessThan(max int) C {
	return c.addSizeRule(func(n int) bool { return n < max }, ContainerLessThan, max)
}

func (c *ContainerBase[V, C]) LessThanOrEqual(max int) C {
	return c.addSizeRule(func(n int) bool { return n <= max }, ContainerLessThanOrEqual, max)
}

func (c *ContainerBase[V, C]) GreaterThan(min int) C {
	return c.addSizeRule(func(n int) bool { return n > min }, ContainerGreaterThan, min)
}

func (c *ContainerBase[V, C]) GreaterThanOrEqual(min int) C {
	return c.addSizeRule(func(n int) bool { return n >= min }, ContainerGreaterThanOrEqual, min)
}

// FixedSize requires the size to equal n exactly.
func (c *ContainerBase[V, C]) FixedSize(n int) C {
	return c.addSizeRule(func(size int) bool { return size == n }, ContainerFixedSize, n)
}

func (c *ContainerBase[V, C]) addSizeRule(ok func(int) bool, msg ViolationMessage, threshold int) C {
	size := c.size
	test := func(v V) (ViolatedValue, bool) {
		n := size(v)
		if ok(n) {
			return ViolatedValue{}, false
		}
		return NewViolatedValue(n), true
	}
	return c.Add(WithViolatedValue(test, msg, func() []any { return []any{threshold} }, NullIsValid))
}

// SliceConstraint measures slices by length. A nil slice is present and
// has size zero; absence is a nil candidate pointer.
type SliceConstraint[E any] struct {
	ContainerBase[[]E, *SliceConstraint[E]]
}

func NewSlice[E any]() *SliceConstraint[E] {
	c := &SliceConstraint[E]{}
	c.Init(c, func(v []E) int { return len(v) })
	return c
}

// MapConstraint measures maps by number of entries.
type MapConstraint[K comparable, E any] struct {
	ContainerBase[map[K]E, *MapConstraint[K, E]]
}

func NewMap[K comparable, E any]() *MapConstraint[K, E] {
	c := &MapConstraint[K, E]{}
	c.Init(c, func(v map[K]E) int { return len(v) })
	return c
}

// StringConstraint measures strings in code points. By default the string
// is NFC-normalised first, so "e" followed by a combining acute accent
// counts as one.
type StringConstraint struct {
	ContainerBase[string, *StringConstraint]
}

// StringOption configures how a StringConstraint measures its input.
type StringOption func(*stringOptions)

type stringOptions struct {
	form      norm.Form
	normalize bool
}

// WithNormalization measures the string after applying form.
func WithNormalization(form norm.Form) StringOption {
	return func(o *stringOptions) {
		o.form = form
		o.normalize = true
	}
}

// WithoutNormalization measures the raw code points.
func WithoutNormalization() StringOption {
	return func(o *stringOptions) { o.normalize = false }
}

func NewString(opts ...StringOption) *StringConstraint {
	o := stringOptions{form: norm.NFC, normalize: true}
	for _, opt := range opts {
		opt(&o)
	}

	size := utf8.RuneCountInString
	if o.normalize {
		form := o.form
		size = func(s string) int { return utf8.RuneCountInString(form.String(s)) }
	}

	c := &StringConstraint{}
	c.Init(c, size)
	return c
}
