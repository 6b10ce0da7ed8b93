package world

import "darkoffice/pkg/engine/geom"

// Direction is one of the four world axes. Y grows south.
type Direction int

// Opposing directions sit next to each other so Opposite can flip the low bit.
const (
	East Direction = iota
	West
	South
	North
)

var directionInfo = [...]struct {
	name  string
	delta geom.Vec2
}{
	East:  {"East", geom.V(1, 0)},
	West:  {"West", geom.V(-1, 0)},
	South: {"South", geom.V(0, 1)},
	North: {"North", geom.V(0, -1)},
}

// JiggleOrder returns the fixed priority order used when nudging a stuck
// body: +x, -x, +y, -y.
func JiggleOrder() []Direction {
	return []Direction{East, West, South, North}
}

func (d Direction) valid() bool {
	return d >= East && d <= North
}

func (d Direction) String() string {
	if !d.valid() {
		return "Unknown"
	}
	return directionInfo[d].name
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return d
	}
	return d ^ 1
}

// Delta returns the unit world-space vector for d, or zero when d is not a
// direction.
func (d Direction) Delta() geom.Vec2 {
	if !d.valid() {
		return geom.Vec2{}
	}
	return directionInfo[d].delta
}
