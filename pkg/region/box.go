package region

import "fmt"

// Box is a rectangular region of world columns. Both corners are inclusive.
type Box struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// NewBox returns the Box spanning the two corners passed, in any order.
func NewBox(x0, z0, x1, z1 int) Box {
	return Box{
		MinX: min(x0, x1), MinZ: min(z0, z1),
		MaxX: max(x0, x1), MaxZ: max(z0, z1),
	}
}

// Centered returns the Box of side 2*radius+1 centred on (x, z).
func Centered(x, z, radius int) Box {
	return Box{MinX: x - radius, MinZ: z - radius, MaxX: x + radius, MaxZ: z + radius}
}

// Width returns the number of columns along X.
func (b Box) Width() int { return b.MaxX - b.MinX + 1 }

// Depth returns the number of columns along Z.
func (b Box) Depth() int { return b.MaxZ - b.MinZ + 1 }

// Area returns the number of columns covered by the box, or 0 if a side is
// empty.
func (b Box) Area() int {
	if !b.Valid() {
		return 0
	}
	return b.Width() * b.Depth()
}

// Valid reports whether the box covers at least one column.
func (b Box) Valid() bool {
	return b.Width() >= 1 && b.Depth() >= 1
}

// Each calls f for every column of the box, Z-major: all X of the first row
// before moving to the next Z.
func (b Box) Each(f func(x, z int)) {
	for z := b.MinZ; z <= b.MaxZ; z++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			f(x, z)
		}
	}
}

func (b Box) String() string {
	return fmt.Sprintf("(%d, %d)..(%d, %d)", b.MinX, b.MinZ, b.MaxX, b.MaxZ)
}
