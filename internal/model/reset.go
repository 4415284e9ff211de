package model

import (
	"iter"
	"weak"
)

// Reset is a conditional state reset. It may be tied to a Variable it does
// not own and holds an ordered list of When triggers.
type Reset struct {
	ordered

	variable weak.Pointer[Variable]
	whens    RefList[When]
}

func NewReset() *Reset {
	return &Reset{}
}

// SetVariable links the reset to v without keeping v alive. Passing nil
// clears the link.
func (r *Reset) SetVariable(v *Variable) {
	r.variable = weak.Make(v)
}

// Variable returns the linked variable, or nil when none is linked or the
// variable is no longer referenced anywhere else.
func (r *Reset) Variable() *Variable {
	return r.variable.Value()
}

func (r *Reset) AddWhen(w *When) { r.whens.Add(w) }
func (r *Reset) WhenCount() int { return r.whens.Count() }
func (r *Reset) ContainsWhen(w *When) bool { return r.whens.Contains(w) }
func (r *Reset) RemoveWhenAt(i int) bool { return r.whens.RemoveAt(i) }
func (r *Reset) RemoveWhen(w *When) bool { return r.whens.Remove(w) }
func (r *Reset) RemoveAllWhens() { r.whens.RemoveAll() }
func (r *Reset) When(i int) *When { return r.whens.At(i) }
func (r *Reset) TakeWhen(i int) *When { return r.whens.TakeAt(i) }
func (r *Reset) ReplaceWhen(i int, w *When) bool { return r.whens.ReplaceAt(i, w) }

// Whens yields the triggers in insertion order.
func (r *Reset) Whens() iter.Seq2[int, *When] {
	return r.whens.All()
}

// Clone copies the reset. The trigger list is new, the triggers and the
// variable are shared with r.
func (r *Reset) Clone() *Reset {
	return &Reset{
		ordered:  r.ordered,
		variable: r.variable,
		whens:    r.whens.Clone(),
	}
}

// Move transfers the state of r into a new Reset and leaves r empty.
func (r *Reset) Move() *Reset {
	moved := &Reset{
		ordered:  r.ordered,
		variable: r.variable,
		whens:    r.whens.Move(),
	}
	r.ordered = ordered{}
	r.variable = weak.Pointer[Variable]{}
	return moved
}
