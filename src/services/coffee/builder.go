package coffee

import (
	"fmt"

	"go-coffee-order/src/services/catalog"
)

// BuilderState is a read-only view of an in-progress order.
type BuilderState struct {
	Type   string
	Addons []string
	Price  int
}

// Builder accumulates add-ons on top of a base coffee. It only ever grows:
// labels are appended and the price increases.
type Builder struct {
	kind   string
	addons []string
	price  int
}

func NewBuilder(kind string, basePrice int) *Builder {
	return &Builder{kind: kind, price: basePrice}
}

// AddAddon applies a catalog add-on by name. Unknown names leave the builder untouched.
func (b *Builder) AddAddon(name string) error {
	addon, err := catalog.Addon(name)
	if err != nil {
		return fmt.Errorf("add addon: %w", err)
	}
	b.addons = append(b.addons, addon.Label)
	b.price += addon.Price
	return nil
}

// include records an add-on that is already part of the base price.
func (b *Builder) include(name string) error {
	addon, err := catalog.Addon(name)
	if err != nil {
		return fmt.Errorf("include addon: %w", err)
	}
	b.addons = append(b.addons, addon.Label)
	return nil
}

func (b *Builder) State() BuilderState {
	return BuilderState{
		Type:   b.kind,
		Addons: append([]string(nil), b.addons...),
		Price:  b.price,
	}
}

// Build snapshots the builder into an immutable Coffee.
func (b *Builder) Build() Coffee {
	return Coffee{
		kind:   b.kind,
		addons: append([]string(nil), b.addons...),
		price:  b.price,
	}
}
