package model

import "iter"

// Component aggregates variables and resets. It performs no cross-checks
// between the two lists: a reset may point at a variable the component does
// not hold.
type Component struct {
	name      string
	variables RefList[Variable]
	resets    RefList[Reset]
}

func NewComponent(name string) *Component {
	return &Component{name: name}
}

func (c *Component) Name() string { return c.name }
func (c *Component) SetName(name string) { c.name = name }

func (c *Component) AddVariable(v *Variable) { c.variables.Add(v) }
func (c *Component) VariableCount() int { return c.variables.Count() }
func (c *Component) HasVariable(v *Variable) bool { return c.variables.Contains(v) }
func (c *Component) RemoveVariableAt(i int) bool { return c.variables.RemoveAt(i) }
func (c *Component) RemoveVariable(v *Variable) bool {
	return c.variables.Remove(v)
}
func (c *Component) RemoveAllVariables() { c.variables.RemoveAll() }
func (c *Component) Variable(i int) *Variable { return c.variables.At(i) }
func (c *Component) TakeVariable(i int) *Variable { return c.variables.TakeAt(i) }
func (c *Component) ReplaceVariable(i int, v *Variable) bool {
	return c.variables.ReplaceAt(i, v)
}

// VariableByName returns the first variable called name, or nil.
func (c *Component) VariableByName(name string) *Variable {
	for _, v := range c.variables.All() {
		if v != nil && v.Name() == name {
			return v
		}
	}
	return nil
}

func (c *Component) Variables() iter.Seq2[int, *Variable] {
	return c.variables.All()
}

func (c *Component) AddReset(r *Reset) { c.resets.Add(r) }
func (c *Component) ResetCount() int { return c.resets.Count() }
func (c *Component) HasReset(r *Reset) bool { return c.resets.Contains(r) }
func (c *Component) RemoveResetAt(i int) bool { return c.resets.RemoveAt(i) }
func (c *Component) RemoveReset(r *Reset) bool { return c.resets.Remove(r) }
func (c *Component) RemoveAllResets() { c.resets.RemoveAll() }
func (c *Component) Reset(i int) *Reset { return c.resets.At(i) }
func (c *Component) TakeReset(i int) *Reset { return c.resets.TakeAt(i) }
func (c *Component) ReplaceReset(i int, r *Reset) bool {
	return c.resets.ReplaceAt(i, r)
}

func (c *Component) Resets() iter.Seq2[int, *Reset] {
	return c.resets.All()
}

// Clone copies the component with fresh lists that share the same variables
// and resets.
func (c *Component) Clone() *Component {
	return &Component{
		name:      c.name,
		variables: c.variables.Clone(),
		resets:    c.resets.Clone(),
	}
}

// Move transfers the lists of c into a new Component and leaves c empty. The
// name is carried over and cleared.
func (c *Component) Move() *Component {
	moved := &Component{
		name:      c.name,
		variables: c.variables.Move(),
		resets:    c.resets.Move(),
	}
	c.name = ""
	return moved
}
