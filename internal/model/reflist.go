package model

import (
	"iter"
	"slices"
)

// RefList is an ordered list of shared entity references. Membership and
// removal compare pointers, never field values, so the same instance may
// occupy several slots and each slot is removed independently.
//
// The zero value is an empty list ready to use.
type RefList[T any] struct {
	items []*T
}

func (l *RefList[T]) Add(item *T) {
	l.items = append(l.items, item)
}

func (l *RefList[T]) Count() int {
	return len(l.items)
}

func (l *RefList[T]) Contains(item *T) bool {
	return l.indexOf(item) != -1
}

// RemoveAt drops the slot at index i. Out-of-range indices, negative ones
// included, leave the list untouched and report false.
func (l *RefList[T]) RemoveAt(i int) bool {
	if !l.inRange(i) {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Remove drops the first slot holding item and reports whether one existed.
func (l *RefList[T]) Remove(item *T) bool {
	i := l.indexOf(item)
	if i == -1 {
		return false
	}
	return l.RemoveAt(i)
}

func (l *RefList[T]) RemoveAll() {
	l.items = nil
}

// At returns the reference at index i, or nil when i is out of range.
func (l *RefList[T]) At(i int) *T {
	if !l.inRange(i) {
		return nil
	}
	return l.items[i]
}

// TakeAt returns the reference at index i and removes it from the list.
// The caller becomes responsible for keeping the entity reachable.
func (l *RefList[T]) TakeAt(i int) *T {
	if !l.inRange(i) {
		return nil
	}
	item := l.items[i]
	l.RemoveAt(i)
	return item
}

// ReplaceAt overwrites the slot at index i, keeping its position.
func (l *RefList[T]) ReplaceAt(i int, item *T) bool {
	if !l.inRange(i) {
		return false
	}
	l.items[i] = item
	return true
}

// Clone returns a list with its own backing storage holding the same
// references.
func (l *RefList[T]) Clone() RefList[T] {
	if len(l.items) == 0 {
		return RefList[T]{}
	}
	return RefList[T]{items: slices.Clone(l.items)}
}

// Move hands the contents over to the returned list and leaves l empty.
func (l *RefList[T]) Move() RefList[T] {
	moved := RefList[T]{items: l.items}
	l.items = nil
	return moved
}

// All yields index/reference pairs in insertion order.
func (l *RefList[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (l *RefList[T]) inRange(i int) bool {
	return i >= 0 && i < len(l.items)
}

func (l *RefList[T]) indexOf(item *T) int {
	return slices.Index(l.items, item)
}
