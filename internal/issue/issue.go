// Package issue describes diagnostics raised against an entity graph.
//
// An Issue carries a description, a Kind and at most one implicated entity.
// The implicated entity is a single tagged subject: setting one kind of
// subject replaces whatever was set before. Copying an Issue value copies
// the description and kind and shares the subject entity.
package issue

import (
	"fmt"

	"cellkit/internal/model"
)

// Subject tags which entity an Issue implicates.
type Subject int

const (
	SubjectNone Subject = iota
	SubjectComponent
	SubjectImport
	SubjectModel
	SubjectUnits
	SubjectVariable
)

type Issue struct {
	description string
	kind        Kind

	subject   Subject
	component *model.Component
	imp       *model.Import
	model     *model.Model
	units     *model.Units
	variable  *model.Variable
}

// New returns an issue of the given kind.
func New(kind Kind, description string) *Issue {
	return &Issue{kind: kind, description: description}
}

func (i *Issue) Description() string { return i.description }

func (i *Issue) SetDescription(description string) {
	i.description = description
}

func (i *Issue) Kind() Kind            { return i.kind }
func (i *Issue) SetKind(kind Kind)     { i.kind = kind }
func (i *Issue) IsKind(kind Kind) bool { return i.kind == kind }

// Subject reports which entity, if any, the issue implicates.
func (i *Issue) Subject() Subject { return i.subject }

func (i *Issue) SetComponent(c *model.Component) {
	i.clearSubject()
	if c != nil {
		i.subject, i.component = SubjectComponent, c
	}
}

func (i *Issue) Component() *model.Component { return i.component }

func (i *Issue) SetImport(imp *model.Import) {
	i.clearSubject()
	if imp != nil {
		i.subject, i.imp = SubjectImport, imp
	}
}

func (i *Issue) Import() *model.Import { return i.imp }

func (i *Issue) SetModel(m *model.Model) {
	i.clearSubject()
	if m != nil {
		i.subject, i.model = SubjectModel, m
	}
}

func (i *Issue) Model() *model.Model { return i.model }

func (i *Issue) SetUnits(u *model.Units) {
	i.clearSubject()
	if u != nil {
		i.subject, i.units = SubjectUnits, u
	}
}

func (i *Issue) Units() *model.Units { return i.units }

func (i *Issue) SetVariable(v *model.Variable) {
	i.clearSubject()
	if v != nil {
		i.subject, i.variable = SubjectVariable, v
	}
}

func (i *Issue) Variable() *model.Variable { return i.variable }

// SubjectName returns the name (or source, for imports) of the implicated
// entity, or "" when there is none.
func (i *Issue) SubjectName() string {
	switch i.subject {
	case SubjectComponent:
		return i.component.Name()
	case SubjectImport:
		return i.imp.Source()
	case SubjectModel:
		return i.model.Name()
	case SubjectUnits:
		return i.units.Name()
	case SubjectVariable:
		return i.variable.Name()
	default:
		return ""
	}
}

func (i *Issue) String() string {
	if name := i.SubjectName(); name != "" {
		return fmt.Sprintf("%s %q: %s", i.kind, name, i.description)
	}
	return fmt.Sprintf("%s: %s", i.kind, i.description)
}

func (i *Issue) clearSubject() {
	i.subject = SubjectNone
	i.component = nil
	i.imp = nil
	i.model = nil
	i.units = nil
	i.variable = nil
}
