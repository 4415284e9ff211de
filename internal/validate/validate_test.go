package validate

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"cellkit/internal/issue"
	"cellkit/internal/model"
)

// validModel returns a model with one component, one variable and a fully
// specified reset.
func validModel() (*model.Model, *model.Component, *model.Variable) {
	m := model.NewModel("hh")
	c := model.NewComponent("membrane")
	v := model.NewVariable("V")
	c.AddVariable(v)

	r := model.NewReset()
	r.SetVariable(v)
	r.SetOrder(1)
	w := model.NewWhen()
	w.SetOrder(1)
	w.SetCondition("<math/>")
	w.SetValue("<math/>")
	r.AddWhen(w)
	c.AddReset(r)

	m.AddComponent(c)
	m.AddUnits(model.NewUnits("mV"))
	m.AddImport(model.NewImport("lib.cellml"))
	return m, c, v
}

func descriptions(report *Report) []string {
	out := make([]string, 0, len(report.Issues))
	for _, item := range report.Issues {
		out = append(out, item.Description())
	}
	return out
}

func TestRun_ValidModel(t *testing.T) {
	m, _, _ := validModel()
	report, err := Run(context.Background(), m)
	require.NoError(t, err)
	require.True(t, report.Empty(), "unexpected issues: %v", descriptions(report))
}

func TestRun_NilModel(t *testing.T) {
	report, err := Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, report.Issues, 1)
	require.True(t, report.Issues[0].IsKind(issue.KindUndefined))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, _, _ := validModel()
	_, err := Run(ctx, m)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Names(t *testing.T) {
	m := model.NewModel("")
	c := model.NewComponent("1bad")
	dup := model.NewComponent("1bad")
	c.AddVariable(model.NewVariable("x"))
	c.AddVariable(model.NewVariable("x"))
	m.AddComponent(c)
	m.AddComponent(dup)
	m.AddUnits(model.NewUnits("mV"))
	m.AddUnits(model.NewUnits("mV"))
	m.AddImport(model.NewImport(""))

	report, err := Run(context.Background(), m)
	require.NoError(t, err)

	require.True(t, report.HasKind(issue.KindModel))
	require.True(t, report.HasKind(issue.KindImport))
	require.True(t, report.HasKind(issue.KindUnits))
	require.True(t, report.HasKind(issue.KindVariable))
	require.True(t, report.HasKind(issue.KindComponent))
	require.Contains(t, descriptions(report), "duplicate component name: 1bad")
	require.Contains(t, descriptions(report), "duplicate variable name in component 1bad: x")
	require.Contains(t, descriptions(report), "duplicate units name: mV")

	for _, item := range report.Issues {
		if item.IsKind(issue.KindModel) {
			require.Same(t, m, item.Model())
		}
	}
}

func TestRun_Resets(t *testing.T) {
	t.Run("reset without variable or order", func(t *testing.T) {
		m, c, _ := validModel()
		c.AddReset(model.NewReset())

		report, err := Run(context.Background(), m)
		require.NoError(t, err)
		require.Equal(t, []string{
			"reset 1 in component membrane does not reference a variable",
			"reset 1 in component membrane does not have an order",
		}, descriptions(report))
		for _, item := range report.Issues {
			require.True(t, item.IsKind(issue.KindReset))
			require.Same(t, c, item.Component())
		}
	})

	t.Run("variable outside component", func(t *testing.T) {
		m, c, _ := validModel()
		outsider := model.NewVariable("elsewhere")
		other := model.NewComponent("other")
		other.AddVariable(outsider)
		m.AddComponent(other)

		r := model.NewReset()
		r.SetVariable(outsider)
		r.SetOrder(5)
		c.AddReset(r)

		report, err := Run(context.Background(), m)
		require.NoError(t, err)
		require.Len(t, report.Issues, 1)
		require.True(t, report.Issues[0].IsKind(issue.KindReset))
		require.Same(t, outsider, report.Issues[0].Variable())
		runtime.KeepAlive(other)
	})

	t.Run("duplicate reset order on variable", func(t *testing.T) {
		m, c, v := validModel()
		r := model.NewReset()
		r.SetVariable(v)
		r.SetOrder(1)
		c.AddReset(r)

		report, err := Run(context.Background(), m)
		require.NoError(t, err)
		require.Equal(t, []string{
			"component membrane has more than one reset on variable V with order 1",
		}, descriptions(report))
	})
}

func TestRun_Whens(t *testing.T) {
	m, c, _ := validModel()
	r := c.Reset(0)
	r.AddWhen(model.NewWhen())
	repeat := model.NewWhen()
	repeat.SetOrder(1)
	repeat.SetCondition("<math/>")
	repeat.SetValue("<math/>")
	r.AddWhen(repeat)

	report, err := Run(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, []string{
		"when 1 of reset 0 in component membrane does not have an order",
		"when 1 of reset 0 in component membrane does not have a condition",
		"when 1 of reset 0 in component membrane does not have a value",
		"when 2 of reset 0 in component membrane repeats order 1",
	}, descriptions(report))
	require.True(t, report.HasKind(issue.KindWhen))
	require.False(t, report.HasKind(issue.KindReset))
}

func TestReport_NilSafe(t *testing.T) {
	var report *Report
	require.True(t, report.Empty())
	require.False(t, report.HasKind(issue.KindWhen))
}
