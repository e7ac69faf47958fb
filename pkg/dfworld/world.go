// Package dfworld lets a dragonfly world be surveyed with the region sampler.
package dfworld

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/model"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/mcdb"
	"github.com/sirupsen/logrus"

	"github.com/StoreStation/restructured/pkg/biome"
)

// DefaultGroundLevel is the average ground level used when World.GroundLevel
// is left at zero.
const DefaultGroundLevel = 64

// World reads columns of a dragonfly world through a transaction. A World is
// only valid for as long as the transaction it wraps.
type World struct {
	Tx *world.Tx
	// GroundLevel is the Y the sampler uses as a floor for column heights.
	GroundLevel int
}

// New returns a World reading through tx.
func New(tx *world.Tx) *World {
	return &World{Tx: tx, GroundLevel: DefaultGroundLevel}
}

// AverageGroundLevel returns GroundLevel, or DefaultGroundLevel if unset.
func (w *World) AverageGroundLevel() int {
	if w.GroundLevel == 0 {
		return DefaultGroundLevel
	}
	return w.GroundLevel
}

// TopSolidOrLiquidHeight returns the Y just above the highest solid or liquid
// block of the column. Leaves and blocks without a collision box, such as
// plants, are skipped. An empty column returns the bottom of the world.
func (w *World) TopSolidOrLiquidHeight(x, z int) int {
	bottom := w.Tx.Range().Min()
	for y := w.Tx.HighestBlock(x, z); y >= bottom; y-- {
		if w.solidOrLiquid(cube.Pos{x, y, z}) {
			return y + 1
		}
	}
	return bottom
}

func (w *World) solidOrLiquid(pos cube.Pos) bool {
	if _, ok := w.Tx.Liquid(pos); ok {
		return true
	}
	m := w.Tx.Block(pos).Model()
	if _, ok := m.(model.Leaves); ok {
		return false
	}
	return len(m.BBox(pos, w.Tx)) > 0
}

// IsLiquidAt reports whether a liquid occupies the block at x, y, z.
func (w *World) IsLiquidAt(x, y, z int) bool {
	_, ok := w.Tx.Liquid(cube.Pos{x, y, z})
	return ok
}

// BiomeID returns the id of the biome of the column at x, z, read at the top
// of the column.
func (w *World) BiomeID(x, z int) biome.ID {
	return biomeID(w.Tx.Biome(cube.Pos{x, w.Tx.HighestBlock(x, z), z}))
}

// biomeID maps a dragonfly biome to its legacy id. The numeric ids are shared
// for every biome up to mesa; anything outside the legacy range is reported
// as plains.
func biomeID(b world.Biome) biome.ID {
	id := b.EncodeBiome()
	if id < 0 || id > math.MaxUint8 {
		return biome.Plains
	}
	return biome.ID(id)
}

// NewOverworld returns the overworld of a dragonfly server reading from
// provider. Dragonfly's block registry is only usable once a server has been
// built, so worlds passed to World must come from here or from a running
// server. The server never listens. Chunks the provider lacks are left empty.
// Dragonfly's log output goes to log at debug level; a nil log discards it.
func NewOverworld(log *logrus.Logger, provider world.Provider, readOnly bool) *world.World {
	out := io.Discard
	if log != nil {
		out = log.WriterLevel(logrus.DebugLevel)
	}
	conf := server.Config{
		Log:                     slog.New(slog.NewTextHandler(out, nil)),
		WorldProvider:           provider,
		ReadOnlyWorld:           readOnly,
		Generator:               func(world.Dimension) world.Generator { return world.NopGenerator{} },
		DisableResourceBuilding: true,
	}
	return conf.New().World()
}

// OpenSave opens the Bedrock world save in dir for reading and returns its
// overworld. Closing the returned world closes the save.
func OpenSave(log *logrus.Logger, dir string) (*world.World, error) {
	db, err := mcdb.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open world save %s: %w", dir, err)
	}
	return NewOverworld(log, db, true), nil
}
