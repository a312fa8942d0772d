// Package catalog holds the fixed coffee menu: product base prices and priced add-ons.
//
// The tables are initialized once at package load and never mutated, so they can be
// shared by any number of orders without synchronization.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProductType = errors.New("unknown type of coffee")
	ErrUnknownAddon       = errors.New("unknown addon")
)

// ProductEntry is a coffee type on the menu. Defaults are add-on names that come
// pre-applied and are already included in BasePrice.
type ProductEntry struct {
	Name      string
	Title     string
	BasePrice int
	Defaults  []string
}

// AddonEntry is an extra that can be applied to any coffee.
type AddonEntry struct {
	Name  string
	Label string
	Price int
}

var products = []ProductEntry{
	{Name: "espresso", Title: "Espresso", BasePrice: 400},
	{Name: "latte", Title: "Latte", BasePrice: 450, Defaults: []string{"milk"}},
	{Name: "cappuccino", Title: "Cappuccino", BasePrice: 750, Defaults: []string{"milk", "cinnamon"}},
	{Name: "americano", Title: "Americano", BasePrice: 650},
}

var addons = []AddonEntry{
	{Name: "milk", Label: "Milk", Price: 100},
	{Name: "vanilla", Label: "Vanilla", Price: 150},
	{Name: "chocolate", Label: "Chocolate", Price: 150},
	{Name: "ice", Label: "Ice", Price: 50},
	{Name: "veganmilk", Label: "Vegan milk", Price: 120},
	{Name: "cinnamon", Label: "Cinnamon", Price: 140},
	{Name: "whippedcream", Label: "Whipped cream", Price: 130},
}

var (
	productsByName = indexProducts(products)
	addonsByName   = indexAddons(addons)
)

func indexProducts(entries []ProductEntry) map[string]ProductEntry {
	m := make(map[string]ProductEntry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

func indexAddons(entries []AddonEntry) map[string]AddonEntry {
	m := make(map[string]AddonEntry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

// Normalize lower-cases and trims a user supplied name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Product looks up a coffee type by name, ignoring case.
func Product(name string) (ProductEntry, error) {
	e, ok := productsByName[Normalize(name)]
	if !ok {
		return ProductEntry{}, fmt.Errorf("%w: %q", ErrUnknownProductType, name)
	}
	e.Defaults = append([]string(nil), e.Defaults...)
	return e, nil
}

// Addon looks up an add-on by name, ignoring case.
func Addon(name string) (AddonEntry, error) {
	e, ok := addonsByName[Normalize(name)]
	if !ok {
		return AddonEntry{}, fmt.Errorf("%w: %q", ErrUnknownAddon, name)
	}
	return e, nil
}

// ProductNames returns the coffee names in menu order.
func ProductNames() []string {
	names := make([]string, 0, len(products))
	for _, e := range products {
		names = append(names, e.Name)
	}
	return names
}

// AddonNames returns the add-on names in menu order.
func AddonNames() []string {
	names := make([]string, 0, len(addons))
	for _, e := range addons {
		names = append(names, e.Name)
	}
	return names
}
