package constraint

// BooleanConstraint checks bool values. An absent value passes both rules.
type BooleanConstraint struct {
	Base[bool, *BooleanConstraint]
}

func NewBoolean() *BooleanConstraint {
	c := &BooleanConstraint{}
	c.Init(c)
	return c
}

func (c *BooleanConstraint) IsTrue() *BooleanConstraint {
	return c.Add(Of(func(v bool) bool { return v }, BooleanIsTrue, nil, NullIsValid))
}

func (c *BooleanConstraint) IsFalse() *BooleanConstraint {
	return c.Add(Of(func(v bool) bool { return !v }, BooleanIsFalse, nil, NullIsValid))
}
