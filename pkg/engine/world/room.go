package world

// Room is a carved rectangular open area of the grid, distinct from the
// corridor cells the maze pass produces. Rooms are created during the
// room-placement phase and immutable afterward.
type Room struct {
	X, Z          int
	Width, Height int
}

// CenterX returns the grid X coordinate of the room center.
func (r *Room) CenterX() int {
	return r.X + r.Width/2
}

// CenterZ returns the grid Z coordinate of the room center.
func (r *Room) CenterZ() int {
	return r.Z + r.Height/2
}

// Contains reports whether the grid position lies inside the room.
func (r *Room) Contains(x, z int) bool {
	return x >= r.X && x < r.X+r.Width && z >= r.Z && z < r.Z+r.Height
}

// Overlaps reports whether the room overlaps other when both are expanded
// by buffer cells on every side. Uses the separating-axis test: the rooms
// are apart only if one lies fully beyond the other on some axis.
func (r *Room) Overlaps(other *Room, buffer int) bool {
	separated := r.X+r.Width+buffer <= other.X ||
		other.X+other.Width+buffer <= r.X ||
		r.Z+r.Height+buffer <= other.Z ||
		other.Z+other.Height+buffer <= r.Z
	return !separated
}
