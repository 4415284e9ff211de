package model

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReset_Order(t *testing.T) {
	r := NewReset()
	require.False(t, r.IsOrderSet())
	require.Equal(t, 0, r.Order())

	r.SetOrder(1)
	require.True(t, r.IsOrderSet())
	require.Equal(t, 1, r.Order())

	r.SetOrder(0)
	require.True(t, r.IsOrderSet())

	r.UnsetOrder()
	require.False(t, r.IsOrderSet())
}

func TestReset_AddAndCountWhens(t *testing.T) {
	r := NewReset()
	w1, w2, w3, w4 := NewWhen(), NewWhen(), NewWhen(), NewWhen()
	require.Equal(t, 0, r.WhenCount())

	r.AddWhen(w1)
	r.AddWhen(w2)
	r.AddWhen(w3)
	r.AddWhen(w4)
	require.Equal(t, 4, r.WhenCount())

	r.AddWhen(w3)
	require.Equal(t, 5, r.WhenCount())
}

func TestReset_ContainsWhen(t *testing.T) {
	r := NewReset()
	w1, w2 := NewWhen(), NewWhen()
	require.False(t, r.ContainsWhen(w1))

	r.AddWhen(w1)
	r.AddWhen(w2)
	require.True(t, r.ContainsWhen(w1))
	require.True(t, r.ContainsWhen(w2))
}

func TestReset_RemoveWhens(t *testing.T) {
	r := NewReset()
	w1, w2, w3 := NewWhen(), NewWhen(), NewWhen()
	r.AddWhen(w1)
	r.AddWhen(w2)

	require.True(t, r.RemoveWhenAt(0))
	require.Equal(t, 1, r.WhenCount())
	require.False(t, r.RemoveWhenAt(1))

	r.AddWhen(w1)
	r.AddWhen(w1)
	r.AddWhen(w1)
	r.RemoveWhen(w1)
	r.RemoveWhen(w1)
	require.Equal(t, 2, r.WhenCount())

	require.False(t, r.RemoveWhen(w3))
	require.Equal(t, 2, r.WhenCount())

	r.RemoveAllWhens()
	require.Equal(t, 0, r.WhenCount())
}

func TestReset_GetTakeReplaceWhen(t *testing.T) {
	r := NewReset()
	w1, w2, w3 := NewWhen(), NewWhen(), NewWhen()
	r.AddWhen(w1)
	r.AddWhen(w2)

	require.Same(t, w1, r.When(0))
	require.Equal(t, 0, r.When(0).Order())
	require.Nil(t, r.When(4))

	require.False(t, r.ReplaceWhen(5, w3))
	require.True(t, r.ReplaceWhen(1, w3))
	require.Same(t, w3, r.When(1))

	taken := r.TakeWhen(1)
	require.Same(t, w3, taken)
	require.Equal(t, 1, r.WhenCount())
	require.Nil(t, r.TakeWhen(4))
}

func TestReset_Variable(t *testing.T) {
	r := NewReset()
	require.Nil(t, r.Variable())

	v := NewVariable("A")
	r.SetVariable(v)
	require.Same(t, v, r.Variable())

	r.SetVariable(nil)
	require.Nil(t, r.Variable())
	runtime.KeepAlive(v)
}

func TestReset_VariableLinkDoesNotKeepVariableAlive(t *testing.T) {
	r := NewReset()
	r.SetVariable(NewVariable("transient"))

	for i := 0; i < 5 && r.Variable() != nil; i++ {
		runtime.GC()
	}
	require.Nil(t, r.Variable())
}

func TestReset_CloneSharesWhens(t *testing.T) {
	r := NewReset()
	v := NewVariable("A")
	w := NewWhen()
	r.SetVariable(v)
	r.SetOrder(3)
	r.AddWhen(w)

	clone := r.Clone()
	require.Equal(t, 1, clone.WhenCount())
	require.Same(t, w, clone.When(0))
	require.Same(t, v, clone.Variable())
	require.Equal(t, 3, clone.Order())

	clone.AddWhen(NewWhen())
	require.Equal(t, 1, r.WhenCount())

	w.SetOrder(9)
	require.Equal(t, 9, clone.When(0).Order())
	runtime.KeepAlive(v)
}

func TestReset_Move(t *testing.T) {
	r := NewReset()
	v := NewVariable("A")
	r.SetVariable(v)
	r.SetOrder(2)
	r.AddWhen(NewWhen())

	moved := r.Move()
	require.Equal(t, 1, moved.WhenCount())
	require.Equal(t, 2, moved.Order())
	require.Same(t, v, moved.Variable())

	require.Equal(t, 0, r.WhenCount())
	require.False(t, r.IsOrderSet())
	require.Nil(t, r.Variable())

	r.AddWhen(NewWhen())
	require.Equal(t, 1, r.WhenCount())
	runtime.KeepAlive(v)
}

func TestWhen_Fields(t *testing.T) {
	w := NewWhen()
	require.False(t, w.IsOrderSet())
	require.False(t, w.HasBody())

	w.SetOrder(-1)
	w.SetID("wid")
	w.SetCondition("<math/>")
	require.True(t, w.IsOrderSet())
	require.Equal(t, -1, w.Order())
	require.Equal(t, "wid", w.ID())
	require.True(t, w.HasBody())

	w.SetCondition("")
	w.SetValue("<math>1</math>")
	require.True(t, w.HasBody())
	require.Equal(t, "<math>1</math>", w.Value())
}
