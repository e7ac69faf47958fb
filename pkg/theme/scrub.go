package theme

import "github.com/StoreStation/restructured/pkg/block"

// Scrub turns a monster egg into the plain block it imitates. Any other
// block, or a monster egg with an unknown variant, is returned unchanged.
//
// Variant 4 (cracked stone brick) falls through to variant 5 and resolves to
// chiseled stone brick.
func Scrub(sel block.Selected) block.Selected {
	if !block.IsDisguise(sel.Block) {
		return sel
	}
	switch sel.Meta {
	case 0:
		return block.Of(block.Stone, 0)
	case 1:
		return block.Of(block.Cobblestone, 0)
	case 2:
		return block.Of(block.StoneBrick, block.StoneBrickPlain)
	case 3:
		return block.Of(block.StoneBrick, block.StoneBrickMossy)
	case 4, 5:
		return block.Of(block.StoneBrick, block.StoneBrickChiseled)
	}
	return sel
}
