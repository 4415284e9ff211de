package model

// Variable is a named quantity inside a component.
type Variable struct {
	name string
}

func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (v *Variable) Name() string { return v.name }
func (v *Variable) SetName(name string) { v.name = name }

// Units names a units definition of a model.
type Units struct {
	name string
}

func NewUnits(name string) *Units {
	return &Units{name: name}
}

func (u *Units) Name() string { return u.name }
func (u *Units) SetName(name string) { u.name = name }

// Import points at an external document. Resolving it is not this package's
// concern.
type Import struct {
	source string
}

func NewImport(source string) *Import {
	return &Import{source: source}
}

func (i *Import) Source() string { return i.source }
func (i *Import) SetSource(source string) { i.source = source }
