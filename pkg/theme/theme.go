// Package theme remaps the blocks of village structures to match the biome
// they are built in.
//
// Every lookup runs the same pipeline: the placement is optionally scrubbed
// of monster eggs, the host Override is asked whether it wants to decide,
// and finally the theme's rule table is consulted. Rules that set metadata
// keep the half bit of slabs and the axis bits of logs from the original
// placement.
package theme

import (
	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// Theme is the set of block replacements used for villages in one biome.
// Themes are created by a Registry and never change afterwards.
type Theme struct {
	name     string
	biome    biome.ID
	table    *Table
	blocks   *block.Registry
	override Override
}

// Name returns the name the theme was registered under.
func (t *Theme) Name() string { return t.name }

// Biome returns the biome the theme was registered for.
func (t *Theme) Biome() biome.ID { return t.biome }

// Rules returns the number of replacement rules of the theme.
func (t *Theme) Rules() int { return t.table.Len() }

// FindReplacement returns the block and metadata to place instead of b with
// metadata meta. When scrubEggs is set, monster eggs are first resolved to
// the block they imitate.
func (t *Theme) FindReplacement(b block.ID, meta uint8, scrubEggs bool) block.Selected {
	sel := t.selection(b, meta, scrubEggs)
	return block.Selected{Block: t.replaceBlock(sel), Meta: t.replaceMeta(sel)}
}

// FindReplacementBlock returns the block part of FindReplacement.
func (t *Theme) FindReplacementBlock(b block.ID, meta uint8, scrubEggs bool) block.ID {
	return t.replaceBlock(t.selection(b, meta, scrubEggs))
}

// FindReplacementMeta returns the metadata part of FindReplacement.
func (t *Theme) FindReplacementMeta(b block.ID, meta uint8, scrubEggs bool) uint8 {
	return t.replaceMeta(t.selection(b, meta, scrubEggs))
}

func (t *Theme) selection(b block.ID, meta uint8, scrubEggs bool) block.Selected {
	sel := block.Of(b, meta)
	if scrubEggs {
		sel = Scrub(sel)
	}
	return sel
}

func (t *Theme) replaceBlock(sel block.Selected) block.ID {
	if id, deny := t.override.VillageBlock(t.biome, sel); deny {
		return id
	}
	code, ok := t.table.Lookup(sel.Block)
	if !ok {
		return sel.Block
	}
	// Rules pointing at blocks the host does not know fall back to the
	// original block.
	replace := DecodeBlock(code)
	if t.blocks != nil && !t.blocks.Contains(replace) {
		return sel.Block
	}
	return replace
}

func (t *Theme) replaceMeta(sel block.Selected) uint8 {
	if meta, deny := t.override.VillageMeta(t.biome, sel); deny {
		return meta
	}
	replace := uint8(NoOverride)
	if code, ok := t.table.Lookup(sel.Block); ok {
		replace = DecodeMeta(code)
	}
	if replace != NoOverride {
		switch {
		case sel.IsSlab():
			replace |= sel.Meta & block.SlabTop
		case sel.IsLog():
			replace |= sel.Meta & block.LogAxisMask
		}
	}
	if replace == NoOverride {
		return sel.Meta
	}
	return replace
}
