// Package model holds the in-memory entity graph of a CellML-style document:
// models, components, variables, units, imports, resets and their when
// triggers.
//
// Entities are shared by pointer. Any number of containers may hold the same
// instance, and lists compare entries by identity. A Reset's link to its
// Variable is a weak reference so it never keeps an otherwise unreferenced
// Variable alive. Nothing in this package is safe for concurrent mutation.
package model
