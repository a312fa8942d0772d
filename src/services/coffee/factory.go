package coffee

import (
	"fmt"

	"go-coffee-order/src/services/catalog"
)

// NewCoffee returns a builder seeded with the base price of typeName and, for
// latte and cappuccino, their default add-ons. typeName is case-insensitive.
func NewCoffee(typeName string) (*Builder, error) {
	entry, err := catalog.Product(typeName)
	if err != nil {
		return nil, fmt.Errorf("create coffee: %w", err)
	}

	b := NewBuilder(entry.Title, entry.BasePrice)
	for _, name := range entry.Defaults {
		if err := b.include(name); err != nil {
			return nil, fmt.Errorf("create %s: %w", entry.Name, err)
		}
	}
	return b, nil
}
