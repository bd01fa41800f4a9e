// Package edgetable provides a read-only lookup of elemental x-ray
// absorption-edge energies, keyed by atomic number and edge label
// (K, L1..L3, M1..M5, N1..N7, O1..O5, P1..P3).
//
// Callers use it to validate or override the derivative-based edge
// estimate of the preedge package:
//
//	tab := edgetable.Default()
//	e0, ok := tab.Lookup(26, "K") // Fe K edge, 7112 eV
//
// The table is an immutable value with no package-level mutable state,
// safe for concurrent use.
package edgetable

import (
	"sort"
	"sync"
)

// Table is an immutable elemental absorption-edge lookup.
type Table struct {
	symbols  []string
	energies []map[string]float64
	bySymbol map[string]int
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the built-in table covering elements Z = 1..98.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = newTable(symbols, edgeEnergies)
	})

	return defaultTable
}

func newTable(syms []string, energies []map[string]float64) *Table {
	t := &Table{
		symbols:  syms,
		energies: energies,
		bySymbol: make(map[string]int, len(syms)),
	}

	for z, s := range syms {
		if s != "" {
			t.bySymbol[s] = z
		}
	}

	return t
}

// Lookup returns the energy in eV of the named absorption edge for the
// element with the given atomic number.
func (t *Table) Lookup(z int, edge string) (float64, bool) {
	if z < 1 || z >= len(t.energies) {
		return 0, false
	}

	e, ok := t.energies[z][edge]

	return e, ok
}

// Symbol returns the element symbol for an atomic number.
func (t *Table) Symbol(z int) (string, bool) {
	if z < 1 || z >= len(t.symbols) {
		return "", false
	}

	return t.symbols[z], true
}

// AtomicNumber returns the atomic number for an element symbol.
func (t *Table) AtomicNumber(symbol string) (int, bool) {
	z, ok := t.bySymbol[symbol]

	return z, ok
}

// Edges returns the sorted edge labels known for an element, or nil for
// an unknown atomic number.
func (t *Table) Edges(z int) []string {
	if z < 1 || z >= len(t.energies) {
		return nil
	}

	out := make([]string, 0, len(t.energies[z]))
	for edge := range t.energies[z] {
		out = append(out, edge)
	}

	sort.Strings(out)

	return out
}

// MaxZ returns the highest atomic number covered by the table.
func (t *Table) MaxZ() int {
	return len(t.energies) - 1
}
