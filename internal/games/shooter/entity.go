package shooter

import "github.com/vovakirdan/space-arcade/internal/core"

// Entity is the capability shared by everything the simulation moves.
type Entity interface {
	// Position returns the center of the entity in arena coordinates.
	Position() core.Position

	// Radius returns the collision radius. Never negative.
	Radius() float64

	// Update advances the entity by one tick.
	Update(dt float64, b core.Bounds)

	// Render draws the entity through a presentation-specific canvas.
	Render(dst Canvas)
}

// Canvas is implemented by each frontend to draw arena-space shapes.
// Coordinates and sizes are in arena units; the canvas does any scaling.
type Canvas interface {
	Circle(center core.Position, radius float64, c core.Color)
	Square(center core.Position, size float64, c core.Color)
	Ship(center core.Position, size float64, facing core.Direction, c core.Color)
}

// circleOf returns the collision circle of an entity.
func circleOf(e Entity) core.Circle {
	return core.Circle{Center: e.Position(), Radius: e.Radius()}
}

// nonNegative clamps sizes read from configuration.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// ShipOutline returns the triangle of a ship of the given size: the nose
// points along facing and the base sits behind the center.
func ShipOutline(center core.Position, size float64, facing core.Direction) [3]core.Position {
	h := size / 2
	var fx, fy float64 // unit vector along facing
	switch facing {
	case core.North:
		fy = -1
	case core.South:
		fy = 1
	case core.West:
		fx = -1
	default:
		fx = 1
	}
	// Perpendicular to facing.
	px, py := -fy, fx

	return [3]core.Position{
		{X: center.X + fx*h, Y: center.Y + fy*h},
		{X: center.X - fx*h + px*h, Y: center.Y - fy*h + py*h},
		{X: center.X - fx*h - px*h, Y: center.Y - fy*h - py*h},
	}
}
