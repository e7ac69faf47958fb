package world

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

const (
	// WaterLevel is the sea level. Columns below it are flooded up to it.
	WaterLevel = 62
	// GroundLevel is the average ground level reported to region samplers.
	GroundLevel = 64
)

// Generator produces terrain from a seed using simplex noise. It holds no
// mutable state and may be shared between goroutines.
type Generator struct {
	Seed       int64
	terrain    opensimplex.Noise // broad height map noise
	roughness  opensimplex.Noise // fine detail
	tempNoise  opensimplex.Noise // biome temperature, [0, 1]
	rainNoise  opensimplex.Noise // biome rainfall, [0, 1]
	lakeNoise  opensimplex.Noise // lake carving
	riverNoise opensimplex.Noise // river carving
}

// NewGenerator creates a terrain generator from a seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:       seed,
		terrain:    opensimplex.New(seed),
		roughness:  opensimplex.New(seed + 100),
		tempNoise:  opensimplex.NewNormalized(seed + 1),
		rainNoise:  opensimplex.NewNormalized(seed + 2),
		lakeNoise:  opensimplex.New(seed + 300),
		riverNoise: opensimplex.New(seed + 400),
	}
}

// octave sums several layers of noise, each at lacunarity times the
// frequency and persistence times the amplitude of the previous one. The
// result is normalised back to the range of a single layer.
func octave(n opensimplex.Noise, x, z float64, octaves int, lacunarity, persistence float64) float64 {
	total, norm := 0.0, 0.0
	amp, freq := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*freq, z*freq) * amp
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	return total / norm
}

// Biome returns the biome of the column at x, z.
func (g *Generator) Biome(x, z int) *Biome {
	return BiomeAt(g.tempNoise, g.rainNoise, x, z)
}

// BiomeID returns the id of the biome of the column at x, z.
func (g *Generator) BiomeID(x, z int) biome.ID {
	return g.Biome(x, z).ID
}

// SurfaceHeight returns the solid surface Y for the given world-space x, z.
func (g *Generator) SurfaceHeight(x, z int) int {
	b := g.Biome(x, z)

	const noiseScale = 0.015
	h := octave(g.terrain, float64(x)*noiseScale, float64(z)*noiseScale, 3, 2.0, 0.5)
	h += g.roughness.Eval2(float64(x)*0.1, float64(z)*0.1) * 0.1

	height := float64(b.BaseHeight) + h*b.HeightVariation

	// 1. Rivers: narrow valleys where the ridged noise is close to zero.
	const riverScale = 0.003
	rv := math.Abs(g.riverNoise.Eval2(float64(x)*riverScale, float64(z)*riverScale))
	if rv < 0.04 {
		factor := (0.04 - rv) / 0.04
		height -= factor * 15.0
	}

	// 2. Lakes: basins where the lake noise peaks.
	const lakeScale = 0.01
	lv := g.lakeNoise.Eval2(float64(x)*lakeScale, float64(z)*lakeScale)
	if lv > 0.6 {
		factor := (lv - 0.6) / (1.0 - 0.6)
		height -= factor * 12.0
	}

	return min(max(int(height), 1), 250)
}

// BlockAt returns the generated block state at x, y, z.
func (g *Generator) BlockAt(x, y, z int) block.State {
	if y < 0 || y > 255 {
		return block.StateOf(block.Air, 0)
	}
	if y == 0 {
		return block.StateOf(block.Bedrock, 0)
	}

	surfH := g.SurfaceHeight(x, z)
	switch {
	case y > surfH && y <= WaterLevel:
		return block.StateOf(block.Water, 0)
	case y > surfH:
		return block.StateOf(block.Air, 0)
	case y < surfH:
		return g.Biome(x, z).FillerBlock
	case surfH < WaterLevel:
		// Sand under water
		return block.StateOf(block.Sand, 0)
	default:
		return g.Biome(x, z).SurfaceBlock
	}
}

// AverageGroundLevel returns GroundLevel.
func (g *Generator) AverageGroundLevel() int {
	return GroundLevel
}

// TopSolidOrLiquidHeight returns the Y just above the surface or, for
// flooded columns, just above the water.
func (g *Generator) TopSolidOrLiquidHeight(x, z int) int {
	return max(g.SurfaceHeight(x, z), WaterLevel) + 1
}

// IsLiquidAt reports whether the generated block at x, y, z is a liquid.
func (g *Generator) IsLiquidAt(x, y, z int) bool {
	return block.IsLiquid(g.BlockAt(x, y, z).ID())
}
