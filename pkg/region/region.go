// Package region samples the surface height map of a world over a
// rectangular area.
//
// Sampling reads columns through the World interface. Hosts that generate
// terrain lazily will generate or load every column the box touches, so the
// cost of a call grows with the area of the box.
package region

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidRegion is returned for boxes that do not cover any column.
var ErrInvalidRegion = errors.New("invalid region")

// World is the host world the sampler reads from. Return values must be
// stable while the world is not modified; calls may have side effects such as
// chunk generation.
type World interface {
	// AverageGroundLevel returns the typical ground level of the world's
	// dimension.
	AverageGroundLevel() int
	// TopSolidOrLiquidHeight returns the Y of the first cell above the
	// highest solid or liquid block of the column at (x, z).
	TopSolidOrLiquidHeight(x, z int) int
	// IsLiquidAt reports whether the block at (x, y, z) is a liquid.
	IsLiquidAt(x, y, z int) bool
}

// Stats describes the surface of a region.
type Stats struct {
	// Area is the number of columns sampled.
	Area int
	// Mean is the mean surface height, rounded to the nearest integer.
	Mean int
	// Variance is the population variance of the surface height around Mean,
	// rounded to the nearest integer.
	Variance int
	// Water is the number of columns whose surface block is a liquid.
	Water int
}

func (s Stats) String() string {
	return fmt.Sprintf("[area: %d; mean: %d; variance: %d, water: %d]", s.Area, s.Mean, s.Variance, s.Water)
}

// columnHeight is the surface height used by both samplers. Columns below
// the dimension's ground level count as sitting just under it.
func columnHeight(w World, floor, x, z int) int {
	return max(w.TopSolidOrLiquidHeight(x, z), floor)
}

func checkBox(box Box) error {
	if !box.Valid() {
		return fmt.Errorf("%w: zero-area bounding box %v", ErrInvalidRegion, box)
	}
	return nil
}

// ComputeStats samples every column of box and returns the area, the rounded
// mean height, the rounded population variance and the number of columns
// whose surface is a liquid.
func ComputeStats(w World, box Box) (Stats, error) {
	if err := checkBox(box); err != nil {
		return Stats{}, err
	}
	floor := w.AverageGroundLevel() - 1
	stats := Stats{Area: box.Area()}

	heights := make([]int, 0, stats.Area)
	total := 0
	box.Each(func(x, z int) {
		h := columnHeight(w, floor, x, z)
		total += h
		heights = append(heights, h)
		if w.IsLiquidAt(x, h-1, z) {
			stats.Water++
		}
	})

	n := float32(len(heights))
	stats.Mean = int(math32.Round(float32(total) / n))

	accum := 0
	for _, h := range heights {
		d := h - stats.Mean
		accum += d * d
	}
	stats.Variance = int(math32.Round(float32(accum) / n))
	return stats, nil
}

// AverageGroundLevel returns the mean surface height of box truncated
// towards zero. It is cheaper than ComputeStats and does not round, so the
// two can differ by one for the same box.
func AverageGroundLevel(w World, box Box) (int, error) {
	if err := checkBox(box); err != nil {
		return 0, err
	}
	floor := w.AverageGroundLevel() - 1

	total := 0
	box.Each(func(x, z int) {
		total += columnHeight(w, floor, x, z)
	})
	return total / box.Area(), nil
}
