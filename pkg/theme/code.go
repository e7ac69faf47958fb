package theme

import "github.com/StoreStation/restructured/pkg/block"

const (
	metaMask   = 0xFF
	blockShift = 8

	// NoOverride is the metadata stored in a rule that replaces the block but
	// keeps the metadata it was placed with.
	NoOverride = metaMask
)

// Encode packs a replacement block and metadata into a rule code. Any negative
// meta is stored as NoOverride; a meta above 255 keeps its low byte.
func Encode(b block.ID, meta int) uint32 {
	if meta < 0 {
		meta = NoOverride
	}
	return uint32(b)<<blockShift | uint32(meta)&metaMask
}

// DecodeBlock returns the block stored in a rule code.
func DecodeBlock(code uint32) block.ID {
	return block.ID(code >> blockShift)
}

// DecodeMeta returns the metadata stored in a rule code.
func DecodeMeta(code uint32) uint8 {
	return uint8(code & metaMask)
}
