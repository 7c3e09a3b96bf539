package order

import (
	"sort"

	"cafeteria-backend/entities"
)

// menuLine couples one day's menu row with its food's name and catalog price.
type menuLine struct {
	entry *entities.MenuEntry
	name  string
	price int
}

// admit checks a requested units-per-food map against a transaction-consistent
// menu snapshot. It returns the first food (by name order) that is missing
// from the menu or whose ceiling the request would exceed. Admission has no
// side effects and must be re-evaluated from a fresh snapshot on every
// attempt; stock changes continuously.
func admit(snapshot map[string]*menuLine, requested map[string]int) (string, bool) {
	names := make([]string, 0, len(requested))
	for name := range requested {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		line, ok := snapshot[name]
		if !ok {
			return name, false
		}
		if line.entry.Ordered+requested[name] > line.entry.MaxCount {
			return name, false
		}
	}
	return "", true
}

// groupItems collapses an ordered item list into units per distinct food name.
func groupItems(items []requestedItem) map[string]int {
	grouped := make(map[string]int, len(items))
	for _, it := range items {
		grouped[it.name] += it.quantity
	}
	return grouped
}

type requestedItem struct {
	name     string
	quantity int
}
