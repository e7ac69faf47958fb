package block

// ID is a legacy numeric block id as used by the 1.7/1.8 chunk format.
type ID uint16

// Block IDs referenced by the village themes and the reference terrain.
const (
	Air                    ID = 0
	Stone                  ID = 1
	Grass                  ID = 2
	Dirt                   ID = 3
	Cobblestone            ID = 4
	Planks                 ID = 5
	Sapling                ID = 6
	Bedrock                ID = 7
	FlowingWater           ID = 8
	Water                  ID = 9
	FlowingLava            ID = 10
	Lava                   ID = 11
	Sand                   ID = 12
	Gravel                 ID = 13
	Log                    ID = 17
	Leaves                 ID = 18
	Glass                  ID = 20
	Sandstone              ID = 24
	Bed                    ID = 26
	TallGrass              ID = 31
	DeadBush               ID = 32
	Dandelion              ID = 37
	Poppy                  ID = 38
	GoldBlock              ID = 41
	DoubleStoneSlab        ID = 43
	StoneSlab              ID = 44
	MossyCobblestone       ID = 48
	Torch                  ID = 50
	OakStairs              ID = 53
	Wheat                  ID = 59
	Farmland               ID = 60
	WoodenDoor             ID = 64
	StoneStairs            ID = 67
	Snow                   ID = 80
	Fence                  ID = 85
	MonsterEgg             ID = 97
	StoneBrick             ID = 98
	GlassPane              ID = 102
	StoneBrickStairs       ID = 109
	DoubleWoodenSlab       ID = 125
	WoodenSlab             ID = 126
	SandstoneStairs        ID = 128
	SpruceStairs           ID = 134
	BirchStairs            ID = 135
	JungleStairs           ID = 136
	CobblestoneWall        ID = 139
	Leaves2                ID = 161
	Log2                   ID = 162
	AcaciaStairs           ID = 163
	DarkOakStairs          ID = 164
	RedSandstone           ID = 179
	RedSandstoneStairs     ID = 180
	DoubleRedSandstoneSlab ID = 181
	RedSandstoneSlab       ID = 182
)

// Metadata values and bit masks.
const (
	// SlabTop marks the upper half on a single slab.
	SlabTop uint8 = 8
	// LogAxisMask selects the two axis bits of a log (0 = Y, 4 = X, 8 = Z, 12 = bark only).
	LogAxisMask uint8 = 12

	// Wood variants, valid on Log, Planks, Sapling, Leaves and wooden slabs.
	Oak     uint8 = 0
	Spruce  uint8 = 1
	Birch   uint8 = 2
	Jungle  uint8 = 3
	Acacia  uint8 = 4
	DarkOak uint8 = 5

	// Stone brick variants.
	StoneBrickPlain    uint8 = 0
	StoneBrickMossy    uint8 = 1
	StoneBrickCracked  uint8 = 2
	StoneBrickChiseled uint8 = 3
)

// Selected is a block type together with the metadata it is placed with.
type Selected struct {
	Block ID
	Meta  uint8
}

// Of returns a Selected for the block and metadata passed.
func Of(b ID, meta uint8) Selected {
	return Selected{Block: b, Meta: meta}
}

// IsSlab reports whether the block is a single or double slab.
func (s Selected) IsSlab() bool { return IsSlab(s.Block) }

// IsLog reports whether the block is a log.
func (s Selected) IsLog() bool { return IsLog(s.Block) }

// IsSlab reports whether b is one of the slab blocks, single or double.
func IsSlab(b ID) bool {
	switch b {
	case StoneSlab, DoubleStoneSlab, WoodenSlab, DoubleWoodenSlab, RedSandstoneSlab, DoubleRedSandstoneSlab:
		return true
	}
	return false
}

// IsLog reports whether b is a log block.
func IsLog(b ID) bool {
	return b == Log || b == Log2
}

// IsLiquid reports whether b is water or lava, flowing or still.
func IsLiquid(b ID) bool {
	return b >= FlowingWater && b <= Lava
}

// IsDisguise reports whether b is the silverfish block that imitates stone.
func IsDisguise(b ID) bool {
	return b == MonsterEgg
}
