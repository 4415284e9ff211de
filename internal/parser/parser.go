package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cellkit/internal/model"
)

// Document is a model loaded from a YAML description. It keeps the model
// reachable, which in turn keeps every variable referenced by a reset alive.
type Document struct {
	Model      *model.Model
	SourceFile string
}

var (
	ErrEmptyDocument   = errors.New("document is empty")
	ErrInvalidYAML     = errors.New("invalid YAML in document")
	ErrMissingName     = errors.New("document missing required 'name' field")
	ErrUnknownVariable = errors.New("reset references an unknown variable")
)

type modelSpec struct {
	Name       string          `yaml:"name"`
	Imports    []importSpec    `yaml:"imports"`
	Units      []unitsSpec     `yaml:"units"`
	Components []componentSpec `yaml:"components"`
}

type importSpec struct {
	Source string `yaml:"source"`
}

type unitsSpec struct {
	Name string `yaml:"name"`
}

type componentSpec struct {
	Name      string         `yaml:"name"`
	Variables []variableSpec `yaml:"variables"`
	Resets    []resetSpec    `yaml:"resets"`
}

type variableSpec struct {
	Name string `yaml:"name"`
}

type resetSpec struct {
	Variable string     `yaml:"variable"`
	Order    *int       `yaml:"order"`
	Whens    []whenSpec `yaml:"whens"`
}

type whenSpec struct {
	Order     *int   `yaml:"order"`
	ID        string `yaml:"id"`
	Condition string `yaml:"condition"`
	Value     string `yaml:"value"`
}

func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.SourceFile = path
	return doc, nil
}

func Parse(content []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}

	var spec modelSpec
	if err := yaml.Unmarshal(trimmed, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrMissingName
	}

	m, err := build(&spec)
	if err != nil {
		return nil, err
	}
	return &Document{Model: m}, nil
}

func build(spec *modelSpec) (*model.Model, error) {
	m := model.NewModel(spec.Name)
	for _, imp := range spec.Imports {
		m.AddImport(model.NewImport(imp.Source))
	}
	for _, u := range spec.Units {
		m.AddUnits(model.NewUnits(u.Name))
	}

	// Variables first so resets can point into any component.
	components := make([]*model.Component, len(spec.Components))
	for i, cs := range spec.Components {
		c := model.NewComponent(cs.Name)
		for _, vs := range cs.Variables {
			c.AddVariable(model.NewVariable(vs.Name))
		}
		components[i] = c
		m.AddComponent(c)
	}

	for i, cs := range spec.Components {
		c := components[i]
		for j, rs := range cs.Resets {
			r, err := buildReset(m, c, rs)
			if err != nil {
				return nil, fmt.Errorf("component %q reset %d: %w", cs.Name, j, err)
			}
			c.AddReset(r)
		}
	}

	return m, nil
}

func buildReset(m *model.Model, owner *model.Component, spec resetSpec) (*model.Reset, error) {
	r := model.NewReset()
	if spec.Order != nil {
		r.SetOrder(*spec.Order)
	}
	if spec.Variable != "" {
		v := resolveVariable(m, owner, spec.Variable)
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, spec.Variable)
		}
		r.SetVariable(v)
	}
	for _, ws := range spec.Whens {
		w := model.NewWhen()
		if ws.Order != nil {
			w.SetOrder(*ws.Order)
		}
		w.SetID(ws.ID)
		w.SetCondition(fragment(ws.Condition))
		w.SetValue(fragment(ws.Value))
		r.AddWhen(w)
	}
	return r, nil
}

// fragment drops the line break a literal block scalar appends and keeps the
// rest of the markup verbatim.
func fragment(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// resolveVariable looks in the owning component first, then in every other
// component in document order.
func resolveVariable(m *model.Model, owner *model.Component, name string) *model.Variable {
	if v := owner.VariableByName(name); v != nil {
		return v
	}
	for _, c := range m.Components() {
		if c == owner {
			continue
		}
		if v := c.VariableByName(name); v != nil {
			return v
		}
	}
	return nil
}
