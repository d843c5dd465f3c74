package picker

// Classify assigns a logical point to one of the three horizontal thirds of
// an image of the given natural size. Boundary points fall into the upper
// zone: x == w/3 is ZoneMiddle and x == 2w/3 is ZoneRight.
//
// natural.Width must be positive; callers check Mapper.Ready first.
func Classify(natural Size, p Point) Zone {
	third := natural.Width / 3
	switch {
	case p.X < third:
		return ZoneLeft
	case p.X < third*2:
		return ZoneMiddle
	default:
		return ZoneRight
	}
}
