// Package coffee builds priced coffee orders from the catalog.
//
// A Builder accumulates add-ons; Build freezes the current state into a Coffee
// that later builder changes cannot reach.
package coffee

import "strings"

// Coffee is a finalized, priced drink.
type Coffee struct {
	kind   string
	addons []string
	price  int
}

func (c Coffee) Type() string { return c.kind }

// Addons returns the applied add-on labels in the order they were applied.
func (c Coffee) Addons() []string {
	return append([]string(nil), c.addons...)
}

func (c Coffee) Price() int { return c.price }

// Description renders "<Type> no additives" or "<Type> with A, B, C".
func (c Coffee) Description() string {
	if len(c.addons) == 0 {
		return c.kind + " no additives"
	}
	return c.kind + " with " + strings.Join(c.addons, ", ")
}

func (c Coffee) String() string { return c.Description() }
