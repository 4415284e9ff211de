package model

// ordered is the optional integer order shared by resets and whens. Zero is a
// valid order, so "unset" is tracked separately.
type ordered struct {
	value int
	set   bool
}

func (o *ordered) SetOrder(order int) {
	o.value = order
	o.set = true
}

// Order returns the order, or 0 while it is unset.
func (o *ordered) Order() int {
	return o.value
}

func (o *ordered) UnsetOrder() {
	o.value = 0
	o.set = false
}

func (o *ordered) IsOrderSet() bool {
	return o.set
}
