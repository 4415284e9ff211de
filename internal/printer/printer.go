// Package printer renders the entity graph as canonical markup.
//
// Output is deterministic: attributes appear in a fixed order per element and
// only when their field is set, elements without children are self-closing,
// and children follow the current insertion order of their lists. Condition
// and value fragments of a when are written verbatim. Printing never mutates
// the graph and has no failure path.
package printer

import (
	"strconv"
	"strings"

	"cellkit/internal/model"
)

const (
	cellmlNamespace = "http://www.cellml.org/cellml/2.0#"
	xlinkNamespace  = "http://www.w3.org/1999/xlink"
)

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")

func PrintWhen(w *model.When) string {
	var b strings.Builder
	writeWhen(&b, w)
	return b.String()
}

func PrintReset(r *model.Reset) string {
	var b strings.Builder
	writeReset(&b, r)
	return b.String()
}

func PrintVariable(v *model.Variable) string {
	var b strings.Builder
	writeVariable(&b, v)
	return b.String()
}

func PrintComponent(c *model.Component) string {
	var b strings.Builder
	writeComponent(&b, c)
	return b.String()
}

func PrintUnits(u *model.Units) string {
	var b strings.Builder
	writeUnits(&b, u)
	return b.String()
}

func PrintImport(i *model.Import) string {
	var b strings.Builder
	writeImport(&b, i)
	return b.String()
}

// PrintModel renders a whole document: imports, then units, then
// components.
func PrintModel(m *model.Model) string {
	var b strings.Builder
	writeModel(&b, m)
	return b.String()
}

func writeWhen(b *strings.Builder, w *model.When) {
	if w == nil {
		return
	}
	b.WriteString("<when")
	if w.IsOrderSet() {
		writeAttr(b, "order", strconv.Itoa(w.Order()))
	}
	if w.ID() != "" {
		writeAttr(b, "id", w.ID())
	}
	if !w.HasBody() {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	b.WriteString(w.Condition())
	b.WriteString(w.Value())
	b.WriteString("</when>")
}

func writeReset(b *strings.Builder, r *model.Reset) {
	if r == nil {
		return
	}
	b.WriteString("<reset")
	if v := r.Variable(); v != nil {
		writeAttr(b, "variable", v.Name())
	}
	if r.IsOrderSet() {
		writeAttr(b, "order", strconv.Itoa(r.Order()))
	}
	if r.WhenCount() == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for _, w := range r.Whens() {
		writeWhen(b, w)
	}
	b.WriteString("</reset>")
}

func writeVariable(b *strings.Builder, v *model.Variable) {
	if v == nil {
		return
	}
	b.WriteString("<variable")
	writeAttr(b, "name", v.Name())
	b.WriteString("/>")
}

func writeComponent(b *strings.Builder, c *model.Component) {
	if c == nil {
		return
	}
	b.WriteString("<component")
	writeAttr(b, "name", c.Name())
	if c.VariableCount() == 0 && c.ResetCount() == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for _, v := range c.Variables() {
		writeVariable(b, v)
	}
	for _, r := range c.Resets() {
		writeReset(b, r)
	}
	b.WriteString("</component>")
}

func writeUnits(b *strings.Builder, u *model.Units) {
	if u == nil {
		return
	}
	b.WriteString("<units")
	writeAttr(b, "name", u.Name())
	b.WriteString("/>")
}

func writeImport(b *strings.Builder, i *model.Import) {
	if i == nil {
		return
	}
	b.WriteString("<import")
	writeAttr(b, "xmlns:xlink", xlinkNamespace)
	if i.Source() != "" {
		writeAttr(b, "xlink:href", i.Source())
	}
	b.WriteString("/>")
}

func writeModel(b *strings.Builder, m *model.Model) {
	if m == nil {
		return
	}
	b.WriteString("<model")
	writeAttr(b, "xmlns", cellmlNamespace)
	writeAttr(b, "name", m.Name())
	if m.ImportCount() == 0 && m.UnitsCount() == 0 && m.ComponentCount() == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for _, i := range m.Imports() {
		writeImport(b, i)
	}
	for _, u := range m.AllUnits() {
		writeUnits(b, u)
	}
	for _, c := range m.Components() {
		writeComponent(b, c)
	}
	b.WriteString("</model>")
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	attrEscaper.WriteString(b, value)
	b.WriteString(`"`)
}
