// Package biome names the legacy numeric biome identifiers.
package biome

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBiome is returned by Parse for names that do not match a biome.
var ErrUnknownBiome = errors.New("unknown biome")

// ID is a legacy biome id, as stored in the per-column biome array of a chunk.
type ID uint8

const (
	Ocean          ID = 0
	Plains         ID = 1
	Desert         ID = 2
	ExtremeHills   ID = 3
	Forest         ID = 4
	Taiga          ID = 5
	Swampland      ID = 6
	River          ID = 7
	FrozenOcean    ID = 10
	IcePlains      ID = 12
	Beach          ID = 16
	TaigaHills     ID = 19
	Jungle         ID = 21
	RoofedForest   ID = 29
	ColdTaiga      ID = 30
	ColdTaigaHills ID = 31
	MegaTaiga      ID = 32
	MegaTaigaHills ID = 33
	Savanna        ID = 35
	Mesa           ID = 37
)

var names = map[ID]string{
	Ocean:          "ocean",
	Plains:         "plains",
	Desert:         "desert",
	ExtremeHills:   "extreme_hills",
	Forest:         "forest",
	Taiga:          "taiga",
	Swampland:      "swampland",
	River:          "river",
	FrozenOcean:    "frozen_ocean",
	IcePlains:      "ice_plains",
	Beach:          "beach",
	TaigaHills:     "taiga_hills",
	Jungle:         "jungle",
	RoofedForest:   "roofed_forest",
	ColdTaiga:      "cold_taiga",
	ColdTaigaHills: "cold_taiga_hills",
	MegaTaiga:      "mega_taiga",
	MegaTaigaHills: "mega_taiga_hills",
	Savanna:        "savanna",
	Mesa:           "mesa",
}

// String returns the snake case name of the biome, or "biome(N)" when the id
// has no name.
func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("biome(%d)", uint8(id))
}

// Parse resolves a biome name as returned by String. Case and surrounding
// whitespace are ignored, and spaces may be used instead of underscores.
func Parse(name string) (ID, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	for id, s := range names {
		if s == n {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBiome, name)
}

// TaigaFamily lists every taiga variant, snowy and mega ones included.
func TaigaFamily() []ID {
	return []ID{ColdTaiga, ColdTaigaHills, MegaTaiga, MegaTaigaHills, Taiga, TaigaHills}
}
