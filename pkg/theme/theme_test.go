package theme

import (
	"math"
	"testing"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ids := []int{math.MaxUint16}
	for id := 0; id <= math.MaxUint16; id += 97 {
		ids = append(ids, id)
	}
	for _, id := range ids {
		for meta := 0; meta <= 255; meta++ {
			code := Encode(block.ID(id), meta)
			if b, m := DecodeBlock(code), DecodeMeta(code); b != block.ID(id) || int(m) != meta {
				t.Fatalf("decode(encode(%d, %d)) = (%d, %d)", id, meta, b, m)
			}
		}
	}
}

func TestEncodeNegativeMeta(t *testing.T) {
	for _, meta := range []int{-1, -2, -8, -256, -257} {
		code := Encode(block.SpruceStairs, meta)
		if m := DecodeMeta(code); m != NoOverride {
			t.Errorf("Encode(_, %d) meta = %d, want NoOverride", meta, m)
		}
		if b := DecodeBlock(code); b != block.SpruceStairs {
			t.Errorf("Encode(_, %d) block = %d, want %d", meta, b, block.SpruceStairs)
		}
	}
}

func TestFindUnregisteredBiome(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	th := r.Find(biome.Desert)
	if th != r.Default() {
		t.Fatalf("Find(desert) = %s, want default theme", th.Name())
	}
	tests := []block.Selected{
		block.Of(block.Log, 4),
		block.Of(block.OakStairs, 3),
		block.Of(block.WoodenSlab, 8),
		block.Of(block.Cobblestone, 0),
	}
	for _, sel := range tests {
		if got := th.FindReplacement(sel.Block, sel.Meta, false); got != sel {
			t.Errorf("default FindReplacement(%v) = %v, want identity", sel, got)
		}
	}
}

func TestTaigaForest(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	for _, b := range biome.TaigaFamily() {
		if name := r.Find(b).Name(); name != "taiga_forest" {
			t.Errorf("Find(%s) = %s, want taiga_forest", b, name)
		}
	}

	th := r.Find(biome.ColdTaiga)
	tests := []struct {
		in, want block.Selected
	}{
		// Logs become spruce and keep their axis.
		{block.Of(block.Log, block.Oak), block.Of(block.Log, block.Spruce)},
		{block.Of(block.Log, block.Birch|4), block.Of(block.Log, block.Spruce|4)},
		{block.Of(block.Log2, 1|8), block.Of(block.Log, block.Spruce|8)},
		{block.Of(block.Log2, 12), block.Of(block.Log, block.Spruce|12)},
		// Planks have no orientation.
		{block.Of(block.Planks, block.Oak), block.Of(block.Planks, block.Spruce)},
		// Slabs keep their half.
		{block.Of(block.WoodenSlab, block.Oak), block.Of(block.WoodenSlab, block.Spruce)},
		{block.Of(block.WoodenSlab, block.Oak|block.SlabTop), block.Of(block.WoodenSlab, block.Spruce|block.SlabTop)},
		{block.Of(block.DoubleWoodenSlab, block.Birch), block.Of(block.DoubleWoodenSlab, block.Spruce)},
		// Stairs keep their facing and half.
		{block.Of(block.OakStairs, 2), block.Of(block.SpruceStairs, 2)},
		{block.Of(block.AcaciaStairs, 7), block.Of(block.SpruceStairs, 7)},
		{block.Of(block.DarkOakStairs, 0), block.Of(block.SpruceStairs, 0)},
		// Untouched blocks.
		{block.Of(block.Cobblestone, 0), block.Of(block.Cobblestone, 0)},
		{block.Of(block.Torch, 5), block.Of(block.Torch, 5)},
	}
	for _, tt := range tests {
		got := th.FindReplacement(tt.in.Block, tt.in.Meta, false)
		if got != tt.want {
			t.Errorf("FindReplacement(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if b := th.FindReplacementBlock(tt.in.Block, tt.in.Meta, false); b != tt.want.Block {
			t.Errorf("FindReplacementBlock(%v) = %d, want %d", tt.in, b, tt.want.Block)
		}
		if m := th.FindReplacementMeta(tt.in.Block, tt.in.Meta, false); m != tt.want.Meta {
			t.Errorf("FindReplacementMeta(%v) = %d, want %d", tt.in, m, tt.want.Meta)
		}
	}
}

func TestOrientationOnlyForSlabsAndLogs(t *testing.T) {
	r := NewRegistry()
	r.Register("test", NewTable().
		Replace(block.StoneSlab, block.WoodenSlab, 2).
		Replace(block.Log, block.Log2, 1).
		Replace(block.Planks, block.Sandstone, 2), biome.Desert)
	th := r.Find(biome.Desert)

	if got := th.FindReplacement(block.StoneSlab, 8|3, false); got != block.Of(block.WoodenSlab, 2|8) {
		t.Errorf("slab = %v, want top half kept", got)
	}
	if got := th.FindReplacement(block.Log, 8|2, false); got != block.Of(block.Log2, 1|8) {
		t.Errorf("log = %v, want axis kept", got)
	}
	if got := th.FindReplacement(block.Planks, 12, false); got != block.Of(block.Sandstone, 2) {
		t.Errorf("planks = %v, want no bits kept", got)
	}
}

func TestScrub(t *testing.T) {
	tests := []struct {
		meta uint8
		want block.Selected
	}{
		{0, block.Of(block.Stone, 0)},
		{1, block.Of(block.Cobblestone, 0)},
		{2, block.Of(block.StoneBrick, 0)},
		{3, block.Of(block.StoneBrick, 1)},
		{4, block.Of(block.StoneBrick, 3)},
		{5, block.Of(block.StoneBrick, 3)},
		{6, block.Of(block.MonsterEgg, 6)}, // unknown variant
	}
	for _, tt := range tests {
		if got := Scrub(block.Of(block.MonsterEgg, tt.meta)); got != tt.want {
			t.Errorf("Scrub(egg:%d) = %v, want %v", tt.meta, got, tt.want)
		}
	}
	if Scrub(block.Of(block.MonsterEgg, 4)) != Scrub(block.Of(block.MonsterEgg, 5)) {
		t.Error("variants 4 and 5 must scrub to the same block")
	}
	if got := Scrub(block.Of(block.Stone, 3)); got != block.Of(block.Stone, 3) {
		t.Errorf("Scrub(stone:3) = %v, want unchanged", got)
	}
}

func TestScrubFlag(t *testing.T) {
	r := NewRegistry()
	r.Register("mossy", NewTable().Replace(block.Cobblestone, block.MossyCobblestone, 0), biome.Swampland)
	th := r.Find(biome.Swampland)

	if got := th.FindReplacement(block.MonsterEgg, 1, false); got != block.Of(block.MonsterEgg, 1) {
		t.Errorf("unscrubbed egg = %v, want unchanged", got)
	}
	// The scrubbed block goes through the rules.
	if got := th.FindReplacement(block.MonsterEgg, 1, true); got != block.Of(block.MossyCobblestone, 0) {
		t.Errorf("scrubbed egg = %v, want mossy cobblestone", got)
	}
	if got := th.FindReplacementBlock(block.MonsterEgg, 0, true); got != block.Stone {
		t.Errorf("scrubbed egg block = %d, want stone", got)
	}
	if got := th.FindReplacementMeta(block.MonsterEgg, 3, true); got != 1 {
		t.Errorf("scrubbed egg meta = %d, want 1", got)
	}
}

func TestOverride(t *testing.T) {
	var seen []block.Selected
	hook := OverrideFuncs{
		Block: func(b biome.ID, sel block.Selected) (block.ID, bool) {
			seen = append(seen, sel)
			if b == biome.Taiga && sel.Block == block.Planks {
				return block.GoldBlock, true
			}
			return 0, false
		},
		Meta: func(b biome.ID, sel block.Selected) (uint8, bool) {
			if sel.Block == block.Log {
				return 14, true
			}
			return 0, false
		},
	}
	r := NewRegistry(WithOverride(hook))
	RegisterBuiltins(r)
	th := r.Find(biome.Taiga)

	// The block hook wins over the rule, the meta rule still applies.
	if got := th.FindReplacement(block.Planks, 0, false); got != block.Of(block.GoldBlock, block.Spruce) {
		t.Errorf("planks = %v, want gold block with spruce meta", got)
	}
	// The meta hook wins, even over orientation bits.
	if got := th.FindReplacement(block.Log, 4, false); got != block.Of(block.Log, 14) {
		t.Errorf("log = %v, want log:14", got)
	}
	// The hook sees the scrubbed placement.
	seen = nil
	th.FindReplacementBlock(block.MonsterEgg, 2, true)
	if len(seen) != 1 || seen[0] != block.Of(block.StoneBrick, 0) {
		t.Errorf("hook saw %v, want stonebrick:0", seen)
	}
	// The default theme asks the hook too.
	if got := r.Default().FindReplacementBlock(block.Log, 0, false); got != block.Log {
		t.Errorf("default log = %d", got)
	}
	if got := r.Default().FindReplacementMeta(block.Log, 0, false); got != 14 {
		t.Errorf("default log meta = %d, want 14", got)
	}
}

func TestOverridesFirstDenyWins(t *testing.T) {
	deny := func(id block.ID) Override {
		return OverrideFuncs{Block: func(biome.ID, block.Selected) (block.ID, bool) { return id, true }}
	}
	chain := Overrides{NopOverride{}, OverrideFuncs{}, deny(block.Sand), deny(block.Gravel)}
	if id, ok := chain.VillageBlock(biome.Plains, block.Of(block.Dirt, 0)); !ok || id != block.Sand {
		t.Errorf("VillageBlock = %d, %v, want sand", id, ok)
	}
	if _, ok := chain.VillageMeta(biome.Plains, block.Of(block.Dirt, 0)); ok {
		t.Error("VillageMeta denied, want pass")
	}
}

func TestUnknownTargetKeepsBlock(t *testing.T) {
	blocks := block.NewRegistry()
	if err := blocks.Register("planks", block.Planks); err != nil {
		t.Fatal(err)
	}
	r := NewRegistry(WithBlocks(blocks))
	r.Register("broken", NewTable().
		Replace(block.Planks, 4000, 3).
		Replace(block.Cobblestone, block.Planks, 1), biome.Plains)
	th := r.Find(biome.Plains)

	if got := th.FindReplacement(block.Planks, 0, false); got != block.Of(block.Planks, 3) {
		t.Errorf("planks = %v, want planks:3", got)
	}
	if got := th.FindReplacement(block.Cobblestone, 0, false); got != block.Of(block.Planks, 1) {
		t.Errorf("cobblestone = %v, want planks:1", got)
	}
}

func TestRegisterCopiesTable(t *testing.T) {
	r := NewRegistry()
	table := NewTable().Replace(block.Planks, block.Planks, block.Birch)
	r.Register("birch", table, biome.Forest, biome.Plains)
	table.Replace(block.Log, block.Log, block.Birch)

	th := r.Find(biome.Forest)
	if th.Rules() != 1 {
		t.Errorf("Rules() = %d, want 1", th.Rules())
	}
	if got := th.FindReplacement(block.Log, 0, false); got != block.Of(block.Log, 0) {
		t.Errorf("log = %v, want unchanged", got)
	}
	if th.Biome() != biome.Forest || r.Find(biome.Plains).Biome() != biome.Plains {
		t.Error("themes do not carry the biome they were registered for")
	}
}

func TestRegistryBiomes(t *testing.T) {
	r := NewRegistry()
	if n := len(r.Biomes()); n != 0 {
		t.Fatalf("new registry has %d themed biomes", n)
	}
	RegisterBuiltins(r)
	r.Register("desert", NewTable(), biome.Desert)

	want := []biome.ID{biome.Desert, biome.Taiga, biome.TaigaHills, biome.ColdTaiga, biome.ColdTaigaHills, biome.MegaTaiga, biome.MegaTaigaHills}
	got := r.Biomes()
	if len(got) != len(want) {
		t.Fatalf("Biomes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Biomes() = %v, want %v", got, want)
		}
	}
}

func TestTableOrder(t *testing.T) {
	table := TaigaForest()
	var from []block.ID
	table.Each(func(b block.ID, _ uint32) { from = append(from, b) })
	if len(from) != table.Len() || from[0] != block.Log || from[len(from)-1] != block.DoubleWoodenSlab {
		t.Errorf("Each order = %v", from)
	}
}

func TestReplaceWithNoOverrideKeepsMeta(t *testing.T) {
	r := NewRegistry()
	r.Register("stairs", NewTable().Replace(block.OakStairs, block.SpruceStairs, NoOverride), biome.Forest)
	th := r.Find(biome.Forest)

	for meta := uint8(0); meta < 8; meta++ {
		got := th.FindReplacement(block.OakStairs, meta, false)
		if want := block.Of(block.SpruceStairs, meta); got != want {
			t.Errorf("FindReplacement(oak stairs, %d) = %v, want %v", meta, got, want)
		}
	}
}
