package theme

import (
	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// TaigaForest returns the rules that rebuild a village out of spruce wood.
func TaigaForest() *Table {
	t := NewTable()
	t.Replace(block.Log, block.Log, block.Spruce)
	t.Replace(block.Log2, block.Log, block.Spruce)
	t.Replace(block.Planks, block.Planks, block.Spruce)
	for _, stairs := range []block.ID{block.OakStairs, block.BirchStairs, block.DarkOakStairs, block.JungleStairs, block.AcaciaStairs} {
		t.Keep(stairs, block.SpruceStairs)
	}
	t.Replace(block.WoodenSlab, block.WoodenSlab, block.Spruce)
	t.Replace(block.DoubleWoodenSlab, block.DoubleWoodenSlab, block.Spruce)
	return t
}

// RegisterTaigaForest registers the spruce theme for every taiga biome.
func RegisterTaigaForest(r *Registry) {
	r.Register("taiga_forest", TaigaForest(), biome.TaigaFamily()...)
}

// RegisterBuiltins registers every theme shipped with the package.
func RegisterBuiltins(r *Registry) {
	RegisterTaigaForest(r)
}
