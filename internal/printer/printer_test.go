package printer

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"cellkit/internal/model"
)

const (
	mathOpen  = `<math xmlns="http://www.w3.org/1998/Math/MathML">`
	mathClose = `</math>`
)

func mathml(body string) string {
	return mathOpen + body + mathClose
}

func TestPrintReset(t *testing.T) {
	t.Run("empty reset", func(t *testing.T) {
		require.Equal(t, "<reset/>", PrintReset(model.NewReset()))
	})

	t.Run("with variable", func(t *testing.T) {
		r := model.NewReset()
		v := model.NewVariable("A")
		r.SetVariable(v)
		require.Equal(t, `<reset variable="A"/>`, PrintReset(r))
		runtime.KeepAlive(v)
	})

	t.Run("with order", func(t *testing.T) {
		r := model.NewReset()
		r.SetOrder(1)
		require.Equal(t, `<reset order="1"/>`, PrintReset(r))
	})

	t.Run("variable before order", func(t *testing.T) {
		r := model.NewReset()
		v := model.NewVariable("B")
		r.SetOrder(1)
		r.SetVariable(v)
		require.Equal(t, `<reset variable="B" order="1"/>`, PrintReset(r))
		runtime.KeepAlive(v)
	})

	t.Run("order omitted after unset", func(t *testing.T) {
		r := model.NewReset()
		r.SetOrder(4)
		r.UnsetOrder()
		require.Equal(t, "<reset/>", PrintReset(r))
	})

	t.Run("with empty when", func(t *testing.T) {
		r := model.NewReset()
		r.AddWhen(model.NewWhen())
		require.Equal(t, "<reset><when/></reset>", PrintReset(r))
	})

	t.Run("with multiple whens", func(t *testing.T) {
		r := model.NewReset()
		r.AddWhen(model.NewWhen())
		r.AddWhen(model.NewWhen())
		r.AddWhen(model.NewWhen())
		require.Equal(t, "<reset><when/><when/><when/></reset>", PrintReset(r))
	})

	t.Run("when with value only", func(t *testing.T) {
		r := model.NewReset()
		w := model.NewWhen()
		w.SetValue(mathml("a value set"))
		r.AddWhen(w)
		require.Equal(t, "<reset><when>"+mathml("a value set")+"</when></reset>", PrintReset(r))
	})

	t.Run("whens with orders set after adding", func(t *testing.T) {
		r := model.NewReset()
		w1, w2, w3 := model.NewWhen(), model.NewWhen(), model.NewWhen()
		r.AddWhen(w1)
		r.AddWhen(w2)
		r.AddWhen(w3)
		w1.SetOrder(7)
		w2.SetOrder(-1)
		w3.SetOrder(0)
		require.Equal(t, `<reset><when order="7"/><when order="-1"/><when order="0"/></reset>`, PrintReset(r))
	})

	t.Run("whens with conditions and values", func(t *testing.T) {
		expected := `<reset variable="A">` +
			`<when order="2">` + mathml("some mathml") + `</when>` +
			`<when order="-1" id="wid">` +
			mathml("some condition in mathml") +
			mathml("some value in mathml") +
			`</when>` +
			`</reset>`

		r := model.NewReset()
		v := model.NewVariable("A")
		w1, w2 := model.NewWhen(), model.NewWhen()
		w1.SetOrder(2)
		w1.SetCondition(mathml("some mathml"))
		w2.SetOrder(-1)
		w2.SetCondition(mathml("some condition in mathml"))
		w2.SetValue(mathml("some value in mathml"))
		w2.SetID("wid")
		r.SetVariable(v)
		r.AddWhen(w1)
		r.AddWhen(w2)

		require.Equal(t, expected, PrintReset(r))
		runtime.KeepAlive(v)
	})

	t.Run("nil", func(t *testing.T) {
		require.Empty(t, PrintReset(nil))
	})
}

func TestPrintWhen_FragmentsVerbatim(t *testing.T) {
	w := model.NewWhen()
	w.SetID("a&b")
	w.SetCondition("<broken & unescaped")
	require.Equal(t, `<when id="a&amp;b"><broken & unescaped</when>`, PrintWhen(w))
}

func TestPrintComponent_AddRemoveResets(t *testing.T) {
	const (
		e1 = `<component name="valid_name">` +
			`<variable name="V_na"/>` +
			`<reset variable="V_na"><when order="3"/><when order="0"/></reset>` +
			`<reset variable="V_na"><when order="1"/></reset>` +
			`</component>`
		e2 = `<component name="valid_name">` +
			`<variable name="V_na"/>` +
			`<reset variable="V_na"><when order="3"/><when order="0"/></reset>` +
			`</component>`
		e3 = `<component name="valid_name"><variable name="V_na"/></component>`
		e4 = `<component name="valid_name">` +
			`<variable name="V_na"/>` +
			`<reset variable="V_na"><when order="1"/></reset>` +
			`</component>`
	)

	c := model.NewComponent("valid_name")
	v := model.NewVariable("V_na")
	r1, r2, r3 := model.NewReset(), model.NewReset(), model.NewReset()
	w1, w2, w3 := model.NewWhen(), model.NewWhen(), model.NewWhen()

	r1.SetVariable(v)
	r2.SetVariable(v)
	r1.AddWhen(w1)
	r1.AddWhen(w3)
	r2.AddWhen(w2)
	w1.SetOrder(3)
	w2.SetOrder(1)
	w3.SetOrder(0)

	c.AddReset(r1)
	c.AddReset(r2)
	c.AddVariable(v)

	require.Equal(t, e1, PrintComponent(c))

	require.True(t, c.RemoveReset(r2))
	require.Equal(t, e2, PrintComponent(c))
	require.False(t, c.RemoveReset(r3))

	c.AddReset(r2)
	c.AddReset(r2)
	c.RemoveAllResets()
	require.Equal(t, e3, PrintComponent(c))

	c.AddReset(r1)
	c.AddReset(r2)
	c.AddReset(r3)
	require.True(t, c.RemoveResetAt(0))
	require.True(t, c.RemoveResetAt(1))
	require.Equal(t, e4, PrintComponent(c))
	require.False(t, c.RemoveResetAt(1))
}

func TestPrintComponent_Empty(t *testing.T) {
	require.Equal(t, `<component name=""/>`, PrintComponent(model.NewComponent("")))
}

func TestPrintModel(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t, `<model xmlns="http://www.cellml.org/cellml/2.0#" name="m"/>`, PrintModel(model.NewModel("m")))
	})

	t.Run("document order", func(t *testing.T) {
		m := model.NewModel("hh")
		c := model.NewComponent("membrane")
		c.AddVariable(model.NewVariable("V"))
		m.AddComponent(c)
		m.AddUnits(model.NewUnits("mV"))
		m.AddImport(model.NewImport("lib.cellml"))

		expected := `<model xmlns="http://www.cellml.org/cellml/2.0#" name="hh">` +
			`<import xmlns:xlink="http://www.w3.org/1999/xlink" xlink:href="lib.cellml"/>` +
			`<units name="mV"/>` +
			`<component name="membrane"><variable name="V"/></component>` +
			`</model>`
		require.Equal(t, expected, PrintModel(m))
	})
}

func TestPrint_DoesNotMutate(t *testing.T) {
	c := model.NewComponent("c")
	r := model.NewReset()
	r.AddWhen(model.NewWhen())
	c.AddReset(r)

	first := PrintComponent(c)
	second := PrintComponent(c)
	require.Equal(t, first, second)
	require.Equal(t, 1, c.ResetCount())
	require.Equal(t, 1, r.WhenCount())
}
