package theme

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/StoreStation/restructured/pkg/block"
)

// Table maps blocks to their replacement in a themed village. Rules keep the
// order they were added in.
type Table struct {
	rules *orderedmap.OrderedMap[block.ID, uint32]
}

// NewTable returns an empty Table. An empty table replaces nothing.
func NewTable() *Table {
	return &Table{rules: orderedmap.NewOrderedMap[block.ID, uint32]()}
}

// Replace adds a rule placing to with metadata meta wherever from would be
// placed. Adding a rule for a block twice overwrites the first one. A meta of
// NoOverride (255) makes the rule behave like Keep.
func (t *Table) Replace(from, to block.ID, meta uint8) *Table {
	t.rules.Set(from, Encode(to, int(meta)))
	return t
}

// Keep adds a rule placing to wherever from would be placed, keeping the
// metadata from was placed with.
func (t *Table) Keep(from, to block.ID) *Table {
	t.rules.Set(from, Encode(to, NoOverride))
	return t
}

// Lookup returns the rule code for b.
func (t *Table) Lookup(b block.ID) (uint32, bool) {
	return t.rules.Get(b)
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return t.rules.Len()
}

// Each calls f for every rule in insertion order.
func (t *Table) Each(f func(from block.ID, code uint32)) {
	for el := t.rules.Front(); el != nil; el = el.Next() {
		f(el.Key, el.Value)
	}
}

func (t *Table) clone() *Table {
	c := NewTable()
	t.Each(func(from block.ID, code uint32) {
		c.rules.Set(from, code)
	})
	return c
}
