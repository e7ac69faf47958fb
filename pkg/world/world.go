package world

import (
	"sync"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// BlockPos represents a block position in the world.
type BlockPos struct {
	X, Y, Z int32
}

type columnPos struct {
	X, Z int32
}

// World is generated terrain plus the blocks changed on top of it.
type World struct {
	gen *Generator

	mu     sync.RWMutex
	blocks map[BlockPos]block.State
	tops   map[columnPos]int32 // highest modified Y per column
}

// NewWorld creates a World generated from seed.
func NewWorld(seed int64) *World {
	return &World{
		gen:    NewGenerator(seed),
		blocks: make(map[BlockPos]block.State),
		tops:   make(map[columnPos]int32),
	}
}

// Generator returns the generator the World was created with.
func (w *World) Generator() *Generator {
	return w.gen
}

// GetBlock returns the block state at the given position.
func (w *World) GetBlock(x, y, z int32) block.State {
	w.mu.RLock()
	if b, ok := w.blocks[BlockPos{x, y, z}]; ok {
		w.mu.RUnlock()
		return b
	}
	w.mu.RUnlock()
	return w.gen.BlockAt(int(x), int(y), int(z))
}

// SetBlock sets the block state at the given position.
func (w *World) SetBlock(x, y, z int32, state block.State) {
	w.mu.Lock()
	w.blocks[BlockPos{x, y, z}] = state
	col := columnPos{x, z}
	if top, ok := w.tops[col]; !ok || y > top {
		w.tops[col] = y
	}
	w.mu.Unlock()
}

// GetModifications returns a copy of all modified blocks.
func (w *World) GetModifications() map[BlockPos]block.State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make(map[BlockPos]block.State, len(w.blocks))
	for k, v := range w.blocks {
		result[k] = v
	}
	return result
}

// Biome returns the biome of the column at x, z.
func (w *World) Biome(x, z int) *Biome {
	return w.gen.Biome(x, z)
}

// BiomeID returns the id of the biome of the column at x, z.
func (w *World) BiomeID(x, z int) biome.ID {
	return w.gen.Biome(x, z).ID
}

// AverageGroundLevel returns GroundLevel.
func (w *World) AverageGroundLevel() int {
	return GroundLevel
}

// TopSolidOrLiquidHeight returns the Y just above the highest solid or liquid
// block of the column, modifications included.
func (w *World) TopSolidOrLiquidHeight(x, z int) int {
	start := w.gen.TopSolidOrLiquidHeight(x, z) - 1

	w.mu.RLock()
	top, ok := w.tops[columnPos{int32(x), int32(z)}]
	w.mu.RUnlock()
	if ok && int(top) > start {
		start = int(top)
	}

	for y := start; y >= 0; y-- {
		if solidOrLiquid(w.GetBlock(int32(x), int32(y), int32(z)).ID()) {
			return y + 1
		}
	}
	return 0
}

// IsLiquidAt reports whether the block at x, y, z is a liquid.
func (w *World) IsLiquidAt(x, y, z int) bool {
	return block.IsLiquid(w.GetBlock(int32(x), int32(y), int32(z)).ID())
}

// solidOrLiquid reports whether b stops a column scan. Foliage and small
// plants are skipped, as they are in the vanilla height map.
func solidOrLiquid(b block.ID) bool {
	switch b {
	case block.Air, block.Leaves, block.Leaves2, block.Sapling, block.TallGrass,
		block.DeadBush, block.Dandelion, block.Poppy, block.Torch:
		return false
	}
	return true
}
