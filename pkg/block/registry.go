package block

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBlock is returned when a block name or id has not been registered.
var ErrUnknownBlock = errors.New("unknown block")

// Registry resolves block names to their stable numeric ids and back. A
// Registry is filled at startup and only read afterwards.
type Registry struct {
	byName map[string]ID
	byID   map[ID]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]ID),
		byID:   make(map[ID]string),
	}
}

// Register binds name to id. Names without a namespace are put in the
// minecraft namespace.
func (r *Registry) Register(name string, id ID) error {
	name = qualify(name)
	if old, ok := r.byName[name]; ok {
		return fmt.Errorf("block %s already registered with id %d", name, old)
	}
	if old, ok := r.byID[id]; ok {
		return fmt.Errorf("block id %d already registered as %s", id, old)
	}
	r.byName[name] = id
	r.byID[id] = name
	return nil
}

// ByName returns the id registered under name.
func (r *Registry) ByName(name string) (ID, error) {
	id, ok := r.byName[qualify(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	return id, nil
}

// Name returns the name registered for id.
func (r *Registry) Name(id ID) (string, bool) {
	name, ok := r.byID[id]
	return name, ok
}

// Contains reports whether id has been registered.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered blocks.
func (r *Registry) Len() int {
	return len(r.byID)
}

func qualify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	return name
}

// vanillaNames lists the names of the blocks declared in this package.
var vanillaNames = map[ID]string{
	Air:                    "air",
	Stone:                  "stone",
	Grass:                  "grass",
	Dirt:                   "dirt",
	Cobblestone:            "cobblestone",
	Planks:                 "planks",
	Sapling:                "sapling",
	Bedrock:                "bedrock",
	FlowingWater:           "flowing_water",
	Water:                  "water",
	FlowingLava:            "flowing_lava",
	Lava:                   "lava",
	Sand:                   "sand",
	Gravel:                 "gravel",
	Log:                    "log",
	Leaves:                 "leaves",
	Glass:                  "glass",
	Sandstone:              "sandstone",
	Bed:                    "bed",
	TallGrass:              "tallgrass",
	DeadBush:               "deadbush",
	Dandelion:              "yellow_flower",
	Poppy:                  "red_flower",
	GoldBlock:              "gold_block",
	DoubleStoneSlab:        "double_stone_slab",
	StoneSlab:              "stone_slab",
	MossyCobblestone:       "mossy_cobblestone",
	Torch:                  "torch",
	OakStairs:              "oak_stairs",
	Wheat:                  "wheat",
	Farmland:               "farmland",
	WoodenDoor:             "wooden_door",
	StoneStairs:            "stone_stairs",
	Snow:                   "snow",
	Fence:                  "fence",
	MonsterEgg:             "monster_egg",
	StoneBrick:             "stonebrick",
	GlassPane:              "glass_pane",
	StoneBrickStairs:       "stone_brick_stairs",
	DoubleWoodenSlab:       "double_wooden_slab",
	WoodenSlab:             "wooden_slab",
	SandstoneStairs:        "sandstone_stairs",
	SpruceStairs:           "spruce_stairs",
	BirchStairs:            "birch_stairs",
	JungleStairs:           "jungle_stairs",
	CobblestoneWall:        "cobblestone_wall",
	Leaves2:                "leaves2",
	Log2:                   "log2",
	AcaciaStairs:           "acacia_stairs",
	DarkOakStairs:          "dark_oak_stairs",
	RedSandstone:           "red_sandstone",
	RedSandstoneStairs:     "red_sandstone_stairs",
	DoubleRedSandstoneSlab: "double_stone_slab2",
	RedSandstoneSlab:       "stone_slab2",
}

// Vanilla returns a Registry holding every block declared in this package
// under its vanilla name.
func Vanilla() *Registry {
	r := NewRegistry()
	for id, name := range vanillaNames {
		// Names and ids in the table are unique.
		_ = r.Register(name, id)
	}
	return r
}
