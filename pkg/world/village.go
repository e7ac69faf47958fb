package world

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
	"github.com/StoreStation/restructured/pkg/region"
	"github.com/StoreStation/restructured/pkg/theme"
)

// villageCellSize is the side of a village grid cell in blocks. Each cell
// independently rolls whether it holds a village centre.
const villageCellSize = 96

// VillageGrid handles deterministic village placement on a sparse grid.
type VillageGrid struct {
	seed int64
}

// NewVillageGrid creates a VillageGrid for the given world seed.
func NewVillageGrid(seed int64) *VillageGrid {
	return &VillageGrid{seed: seed}
}

// cellHash returns a deterministic value in [0, mod) for cell (cx, cz).
func (v *VillageGrid) cellHash(cx, cz, mod int64) int64 {
	const k1 int64 = -7046029254386353131 // splitmix64 step 1
	const k2 int64 = -4265267296055464877 // splitmix64 step 2
	h := v.seed ^ (cx * k1) ^ (cz * 7823434773480878946)
	h ^= h >> 33
	h *= k1
	h ^= h >> 27
	h *= k2
	h ^= h >> 31
	if h < 0 {
		h = -h
	}
	return h % mod
}

// villageCenter returns the world-space (x, z) centre of the village in grid
// cell (cellX, cellZ), and ok=true if that cell contains one (25% chance).
func (v *VillageGrid) villageCenter(cellX, cellZ int) (wx, wz int, ok bool) {
	cx := int64(cellX)
	cz := int64(cellZ)
	if v.cellHash(cx, cz, 4) != 0 {
		return 0, 0, false
	}
	// Offset within the cell so villages aren't always at the corner
	ox := int(v.cellHash(cx^0xDEAD, cz^0xBEEF, int64(villageCellSize-20))) + 10
	oz := int(v.cellHash(cx^0xCAFE, cz^0xF00D, int64(villageCellSize-20))) + 10
	return cellX*villageCellSize + ox, cellZ*villageCellSize + oz, true
}

// divFloor returns a / b, rounding towards negative infinity.
func divFloor(a, b int) int {
	if a < 0 && a%b != 0 {
		return a/b - 1
	}
	return a / b
}

// Centers returns the village centres lying inside area, cell by cell.
func (v *VillageGrid) Centers(area region.Box) [][2]int {
	var centers [][2]int
	for cz := divFloor(area.MinZ, villageCellSize); cz <= divFloor(area.MaxZ, villageCellSize); cz++ {
		for cx := divFloor(area.MinX, villageCellSize); cx <= divFloor(area.MaxX, villageCellSize); cx++ {
			x, z, ok := v.villageCenter(cx, cz)
			if !ok || x < area.MinX || x > area.MaxX || z < area.MinZ || z > area.MaxZ {
				continue
			}
			centers = append(centers, [2]int{x, z})
		}
	}
	return centers
}

// BiomeSource returns the biome id of a column.
type BiomeSource interface {
	BiomeID(x, z int) biome.ID
}

// Site is a candidate village location and the survey of its surroundings.
type Site struct {
	X, Z     int
	Box      region.Box
	Biome    biome.ID
	Stats    region.Stats
	Accepted bool
	Reason   string // why the site was rejected
}

// Planner surveys the candidate village centres of an area and decides which
// of them can be built on.
type Planner struct {
	Grid   *VillageGrid
	World  region.World
	Biomes BiomeSource
	Log    logrus.FieldLogger

	// Radius is the half side of the square sampled around each centre.
	Radius int
	// MaxVariance is the largest height variance a site may have.
	MaxVariance int
}

// NewPlanner returns a Planner with the default survey radius and roughness
// limit, logging to log. A nil log discards everything.
func NewPlanner(grid *VillageGrid, w region.World, biomes BiomeSource, log logrus.FieldLogger) *Planner {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Planner{Grid: grid, World: w, Biomes: biomes, Log: log, Radius: 8, MaxVariance: 16}
}

// Survey samples the square around (x, z) and decides whether a village can
// be built there. More than half of the columns under water, or a variance
// above MaxVariance, reject the site.
func (p *Planner) Survey(x, z int) (Site, error) {
	site := Site{X: x, Z: z, Box: region.Centered(x, z, p.Radius), Biome: p.Biomes.BiomeID(x, z)}
	stats, err := region.ComputeStats(p.World, site.Box)
	if err != nil {
		return Site{}, err
	}
	site.Stats = stats

	switch {
	case stats.Water*2 > stats.Area:
		site.Reason = "flooded"
	case stats.Variance > p.MaxVariance:
		site.Reason = "too rough"
	default:
		site.Accepted = true
	}
	return site, nil
}

// Plan surveys every village centre inside area.
func (p *Planner) Plan(area region.Box) ([]Site, error) {
	var sites []Site
	for _, c := range p.Grid.Centers(area) {
		site, err := p.Survey(c[0], c[1])
		if err != nil {
			return nil, err
		}
		entry := p.Log.WithFields(logrus.Fields{
			"x":     site.X,
			"z":     site.Z,
			"biome": site.Biome.String(),
			"stats": site.Stats.String(),
		})
		if site.Accepted {
			entry.Info("village site accepted")
		} else {
			entry.Debugf("village site rejected: %s", site.Reason)
		}
		sites = append(sites, site)
	}
	return sites, nil
}

// Builder places village structures into a World, remapping every block
// through the theme of the site's biome.
type Builder struct {
	World  *World
	Themes *theme.Registry
}

// placer writes themed blocks and counts them.
type placer struct {
	w      *World
	th     *theme.Theme
	placed int
}

func (p *placer) place(x, y, z int, b block.ID, meta uint8) {
	if y < 0 || y > 255 {
		return
	}
	sel := p.th.FindReplacement(b, meta, true)
	p.w.SetBlock(int32(x), int32(y), int32(z), sel.State())
	p.placed++
}

// Build places a well at the site centre and a house next to it, standing on
// the mean height of the site. It returns the number of blocks placed.
func (b *Builder) Build(site Site) int {
	p := &placer{w: b.World, th: b.Themes.Find(site.Biome)}
	y := max(site.Stats.Mean, WaterLevel+1)
	buildWell(p, site.X, y, site.Z)
	buildHouse(p, site.X+4, y, site.Z-2)
	return p.placed
}

// buildWell places a 4x4 well whose base at y-1 sits flush with the ground.
func buildWell(p *placer, vx, y, vz int) {
	for dx := -2; dx <= 1; dx++ {
		for dz := -2; dz <= 1; dz++ {
			isCorner := (dx == -2 || dx == 1) && (dz == -2 || dz == 1)
			isInner := (dx == -1 || dx == 0) && (dz == -1 || dz == 0)

			// Base layer, monster eggs that turn into stone bricks.
			p.place(vx+dx, y-1, vz+dz, block.MonsterEgg, 2)
			switch {
			case isCorner:
				p.place(vx+dx, y, vz+dz, block.MonsterEgg, 1)
				p.place(vx+dx, y+1, vz+dz, block.Fence, 0)
				p.place(vx+dx, y+2, vz+dz, block.Fence, 0)
			case isInner:
				p.place(vx+dx, y, vz+dz, block.Water, 0)
			default:
				p.place(vx+dx, y, vz+dz, block.MonsterEgg, 3)
			}
			p.place(vx+dx, y+3, vz+dz, block.StoneSlab, 0)
		}
	}
}

// buildHouse places a 5x5 house with log corners, a beam under the roof and
// a stair roof running east-west.
func buildHouse(p *placer, hx, y, hz int) {
	const w = 5
	const h = 3
	for dx := 0; dx < w; dx++ {
		for dz := 0; dz < w; dz++ {
			p.place(hx+dx, y-1, hz+dz, block.Cobblestone, 0)
			isCorner := (dx == 0 || dx == w-1) && (dz == 0 || dz == w-1)
			isWall := dx == 0 || dx == w-1 || dz == 0 || dz == w-1

			for dy := 0; dy < h; dy++ {
				switch {
				case isCorner:
					p.place(hx+dx, y+dy, hz+dz, block.Log, block.Oak)
				case !isWall:
					p.place(hx+dx, y+dy, hz+dz, block.Air, 0)
				case dz == 0 && dx == 2 && dy < 2:
					// Door, bottom then top half.
					if dy == 0 {
						p.place(hx+dx, y+dy, hz+dz, block.WoodenDoor, 1)
					} else {
						p.place(hx+dx, y+dy, hz+dz, block.WoodenDoor, 8)
					}
				case dy == 1 && (dx == 2 || dz == 2):
					p.place(hx+dx, y+dy, hz+dz, block.GlassPane, 0)
				default:
					p.place(hx+dx, y+dy, hz+dz, block.Planks, block.Oak)
				}
			}
		}
	}

	// Beams along X (axis meta 4) on the long walls.
	for dx := 1; dx < w-1; dx++ {
		p.place(hx+dx, y+h, hz, block.Log, block.Oak|4)
		p.place(hx+dx, y+h, hz+w-1, block.Log, block.Oak|4)
	}

	// Roof: stairs facing east (0) and west (1), slab ridge on top.
	for dz := -1; dz <= w; dz++ {
		p.place(hx-1, y+h, hz+dz, block.OakStairs, 0)
		p.place(hx+w, y+h, hz+dz, block.OakStairs, 1)
		p.place(hx, y+h+1, hz+dz, block.OakStairs, 0)
		p.place(hx+w-1, y+h+1, hz+dz, block.OakStairs, 1)
		p.place(hx+1, y+h+2, hz+dz, block.OakStairs, 0)
		p.place(hx+w-2, y+h+2, hz+dz, block.OakStairs, 1)
		p.place(hx+2, y+h+3, hz+dz, block.WoodenSlab, block.Oak)
		p.place(hx+2, y+h+2, hz+dz, block.WoodenSlab, block.Oak|block.SlabTop)
	}
	p.place(hx+2, y+1, hz-1, block.Torch, 4)
}
