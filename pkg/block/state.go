package block

// State is a block state packed the way the 1.8 chunk format stores it:
// blockID << 4 | metadata.
type State uint16

// StateOf packs a block and its metadata into a State. Only the low four
// bits of meta fit.
func StateOf(b ID, meta uint8) State {
	return State(uint16(b)<<4 | uint16(meta&0x0F))
}

// ID returns the block id of the state.
func (s State) ID() ID {
	return ID(s >> 4)
}

// Meta returns the metadata of the state.
func (s State) Meta() uint8 {
	return uint8(s & 0x0F)
}

// Selected unpacks the state.
func (s State) Selected() Selected {
	return Selected{Block: s.ID(), Meta: s.Meta()}
}

// State packs the selected block. Metadata above 15 is truncated.
func (s Selected) State() State {
	return StateOf(s.Block, s.Meta)
}
