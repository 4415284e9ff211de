package model

import "iter"

// Model is the root of a document. It holds components, units definitions
// and imports, each in insertion order.
type Model struct {
	name       string
	components RefList[Component]
	units      RefList[Units]
	imports    RefList[Import]
}

func NewModel(name string) *Model {
	return &Model{name: name}
}

func (m *Model) Name() string { return m.name }
func (m *Model) SetName(name string) { m.name = name }

func (m *Model) AddComponent(c *Component) { m.components.Add(c) }
func (m *Model) ComponentCount() int { return m.components.Count() }
func (m *Model) HasComponent(c *Component) bool { return m.components.Contains(c) }
func (m *Model) RemoveComponentAt(i int) bool { return m.components.RemoveAt(i) }
func (m *Model) RemoveComponent(c *Component) bool {
	return m.components.Remove(c)
}
func (m *Model) RemoveAllComponents() { m.components.RemoveAll() }
func (m *Model) Component(i int) *Component { return m.components.At(i) }
func (m *Model) TakeComponent(i int) *Component { return m.components.TakeAt(i) }
func (m *Model) ReplaceComponent(i int, c *Component) bool {
	return m.components.ReplaceAt(i, c)
}

// ComponentByName returns the first component called name, or nil.
func (m *Model) ComponentByName(name string) *Component {
	for _, c := range m.components.All() {
		if c != nil && c.Name() == name {
			return c
		}
	}
	return nil
}

func (m *Model) Components() iter.Seq2[int, *Component] {
	return m.components.All()
}

func (m *Model) AddUnits(u *Units) { m.units.Add(u) }
func (m *Model) UnitsCount() int { return m.units.Count() }
func (m *Model) HasUnits(u *Units) bool { return m.units.Contains(u) }
func (m *Model) RemoveUnits(u *Units) bool { return m.units.Remove(u) }
func (m *Model) Units(i int) *Units { return m.units.At(i) }
func (m *Model) AllUnits() iter.Seq2[int, *Units] {
	return m.units.All()
}

func (m *Model) AddImport(i *Import) { m.imports.Add(i) }
func (m *Model) ImportCount() int { return m.imports.Count() }
func (m *Model) HasImport(i *Import) bool { return m.imports.Contains(i) }
func (m *Model) RemoveImport(i *Import) bool { return m.imports.Remove(i) }
func (m *Model) Import(i int) *Import { return m.imports.At(i) }
func (m *Model) Imports() iter.Seq2[int, *Import] {
	return m.imports.All()
}

// Clone copies the model with fresh lists sharing the same entities.
func (m *Model) Clone() *Model {
	return &Model{
		name:       m.name,
		components: m.components.Clone(),
		units:      m.units.Clone(),
		imports:    m.imports.Clone(),
	}
}
