package framebuf

import "math"

// Vector2 is a direction or displacement in pixel space.
type Vector2 struct {
	X, Y float64
}

func Vec(x, y float64) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{v.X * f, v.Y * f}
}

func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
