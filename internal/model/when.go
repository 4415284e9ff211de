package model

// When is one ordered trigger of a reset. Condition and Value are opaque
// markup fragments: they are stored and printed verbatim, never parsed.
// An empty string means the field is unset.
type When struct {
	ordered

	id        string
	condition string
	value     string
}

func NewWhen() *When {
	return &When{}
}

func (w *When) ID() string { return w.id }
func (w *When) SetID(id string) { w.id = id }

func (w *When) Condition() string { return w.condition }

func (w *When) SetCondition(condition string) {
	w.condition = condition
}

func (w *When) Value() string { return w.value }

func (w *When) SetValue(value string) {
	w.value = value
}

// HasBody reports whether the when carries a condition or a value.
func (w *When) HasBody() bool {
	return w.condition != "" || w.value != ""
}
