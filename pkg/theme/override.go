package theme

import (
	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// Override lets the host take over block selection before a theme applies
// its own rules. Each method returns the replacement and true to deny the
// theme its lookup, or false to let the theme decide.
type Override interface {
	// VillageBlock is asked for the block of every themed placement.
	VillageBlock(b biome.ID, sel block.Selected) (block.ID, bool)
	// VillageMeta is asked for the metadata of every themed placement.
	VillageMeta(b biome.ID, sel block.Selected) (uint8, bool)
}

// NopOverride never overrides anything.
type NopOverride struct{}

func (NopOverride) VillageBlock(biome.ID, block.Selected) (block.ID, bool) { return 0, false }
func (NopOverride) VillageMeta(biome.ID, block.Selected) (uint8, bool)     { return 0, false }

// OverrideFuncs adapts plain functions to Override. A nil field never
// overrides.
type OverrideFuncs struct {
	Block func(b biome.ID, sel block.Selected) (block.ID, bool)
	Meta  func(b biome.ID, sel block.Selected) (uint8, bool)
}

func (f OverrideFuncs) VillageBlock(b biome.ID, sel block.Selected) (block.ID, bool) {
	if f.Block == nil {
		return 0, false
	}
	return f.Block(b, sel)
}

func (f OverrideFuncs) VillageMeta(b biome.ID, sel block.Selected) (uint8, bool) {
	if f.Meta == nil {
		return 0, false
	}
	return f.Meta(b, sel)
}

// Overrides asks each Override in turn. The first one to deny wins.
type Overrides []Override

func (o Overrides) VillageBlock(b biome.ID, sel block.Selected) (block.ID, bool) {
	for _, h := range o {
		if id, deny := h.VillageBlock(b, sel); deny {
			return id, true
		}
	}
	return 0, false
}

func (o Overrides) VillageMeta(b biome.ID, sel block.Selected) (uint8, bool) {
	for _, h := range o {
		if meta, deny := h.VillageMeta(b, sel); deny {
			return meta, true
		}
	}
	return 0, false
}
