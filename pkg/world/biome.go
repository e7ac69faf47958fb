package world

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// Biome describes terrain generation parameters for a biome.
type Biome struct {
	ID              biome.ID
	Name            string
	SurfaceBlock    block.State // top block of a dry column
	FillerBlock     block.State // blocks below the surface
	BaseHeight      int         // base terrain height in blocks
	HeightVariation float64     // amplitude of height noise
	HasSnow         bool
}

// Predefined biomes
var (
	BiomeOcean = &Biome{
		ID: biome.Ocean, Name: "Ocean",
		SurfaceBlock: block.StateOf(block.Sand, 0),
		FillerBlock:  block.StateOf(block.Sand, 0),
		BaseHeight:   46, HeightVariation: 6,
	}
	BiomePlains = &Biome{
		ID: biome.Plains, Name: "Plains",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   66, HeightVariation: 4,
	}
	BiomeDesert = &Biome{
		ID: biome.Desert, Name: "Desert",
		SurfaceBlock: block.StateOf(block.Sand, 0),
		FillerBlock:  block.StateOf(block.Sandstone, 0),
		BaseHeight:   65, HeightVariation: 5,
	}
	BiomeExtremeHills = &Biome{
		ID: biome.ExtremeHills, Name: "Extreme Hills",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Stone, 0),
		BaseHeight:   78, HeightVariation: 30,
	}
	BiomeForest = &Biome{
		ID: biome.Forest, Name: "Forest",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   68, HeightVariation: 8,
	}
	BiomeTaiga = &Biome{
		ID: biome.Taiga, Name: "Taiga",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   68, HeightVariation: 8,
	}
	BiomeColdTaiga = &Biome{
		ID: biome.ColdTaiga, Name: "Cold Taiga",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   68, HeightVariation: 8,
		HasSnow: true,
	}
	BiomeMegaTaiga = &Biome{
		ID: biome.MegaTaiga, Name: "Mega Taiga",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   70, HeightVariation: 10,
	}
	BiomeJungle = &Biome{
		ID: biome.Jungle, Name: "Jungle",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   70, HeightVariation: 12,
	}
	BiomeRoofedForest = &Biome{
		ID: biome.RoofedForest, Name: "Roofed Forest",
		SurfaceBlock: block.StateOf(block.Grass, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   68, HeightVariation: 6,
	}
	BiomeIcePlains = &Biome{
		ID: biome.IcePlains, Name: "Ice Plains",
		SurfaceBlock: block.StateOf(block.Snow, 0),
		FillerBlock:  block.StateOf(block.Dirt, 0),
		BaseHeight:   66, HeightVariation: 4,
		HasSnow: true,
	}
)

// allBiomes is an ordered list used for selection lookups.
var allBiomes = []*Biome{
	BiomeOcean,
	BiomePlains,
	BiomeDesert,
	BiomeExtremeHills,
	BiomeForest,
	BiomeTaiga,
	BiomeColdTaiga,
	BiomeMegaTaiga,
	BiomeJungle,
	BiomeRoofedForest,
	BiomeIcePlains,
}

// BiomeByID returns the predefined biome with the id passed.
func BiomeByID(id biome.ID) (*Biome, bool) {
	for _, b := range allBiomes {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// BiomeAt selects a biome for a world block position using temperature and
// rainfall noise in [0, 1]. The noise is sampled at a low frequency so biomes
// form large regions, and a Whittaker-like classification keeps hot biomes
// away from cold ones.
func BiomeAt(temp, rain opensimplex.Noise, worldX, worldZ int) *Biome {
	const scale = 0.003
	bx := float64(worldX) * scale
	bz := float64(worldZ) * scale

	t := clamp01(temp.Eval2(bx, bz))
	r := clamp01(rain.Eval2(bx+500, bz+500))

	switch {
	case t < 0.25: // Cold
		if r > 0.6 {
			return BiomeColdTaiga
		}
		return BiomeIcePlains

	case t < 0.4: // Cool
		if r > 0.65 {
			return BiomeMegaTaiga
		}
		if r > 0.3 {
			return BiomeTaiga
		}
		return BiomeExtremeHills

	case t < 0.65: // Temperate
		if r > 0.7 {
			return BiomeRoofedForest
		}
		if r > 0.4 {
			return BiomeForest
		}
		if r > 0.2 {
			return BiomePlains
		}
		return BiomeOcean

	default: // Hot
		if r > 0.7 {
			return BiomeJungle
		}
		if r > 0.4 {
			return BiomePlains
		}
		return BiomeDesert
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
