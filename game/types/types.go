package types

// Point is a position on the playfield, in screen units.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Intersects reports whether a lies inside the closed square of half-width
// tolerance centred on b.
func Intersects(a, b Point, tolerance int) bool {
	return a.X >= b.X-tolerance &&
		a.Y >= b.Y-tolerance &&
		a.X <= b.X+tolerance &&
		a.Y <= b.Y+tolerance
}

// Direction is the heading of the snake's head.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the displacement of one step of the given size.
func (d Direction) Delta(step int) Point {
	switch d {
	case Up:
		return Point{Y: -step}
	case Down:
		return Point{Y: step}
	case Left:
		return Point{X: -step}
	default:
		return Point{X: step}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y          int
	Width, Height int
}

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
)
