package track

// Frame is an orientation frame on a curve: a position together with the
// three axes of the car that passes through it. Front points along the
// direction of travel, Up away from the seats, and Left = Up × Front
// completes the right-handed set. All three axes are unit vectors for
// well-formed frames.
type Frame struct {
	Position Point
	Front    Vec3
	Left     Vec3
	Up       Vec3
}

// Right returns the axis pointing to the right of the direction of travel,
// the negation of Left.
func (f Frame) Right() Vec3 {
	return f.Left.Negate()
}

// Transform applies aff to the frame. The position is transformed fully and
// the axes by the linear part only. If aff is not a rotation, the axes may
// come out non-unit or no longer orthogonal.
func (f Frame) Transform(aff Affine) Frame {
	return Frame{
		Position: f.Position.Transform(aff),
		Front:    aff.TransformVec(f.Front),
		Left:     aff.TransformVec(f.Left),
		Up:       aff.TransformVec(f.Up),
	}
}

// Station converts the frame to a track station by mapping it from z-up
// curve space into the y-up space of track files. It is the inverse of
// [Station.Frame].
func (f Frame) Station() Station {
	g := f.Transform(ZUpToYUp)
	return Station{
		Position: g.Position,
		Front:    g.Front,
		Left:     g.Left,
		Up:       g.Up,
	}
}
