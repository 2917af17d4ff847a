package overlay

// Point is a coordinate in container space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// viewportPadding keeps overlays from touching the viewport edge.
const viewportPadding = 8

// menuHeight approximates the rendered overlay height for flip decisions.
const menuHeight = 40

// toContainer converts a viewport-relative point to container-relative
// coordinates.
func toContainer(x, y float64, container Rect) Point {
	return Point{X: x - container.X, Y: y - container.Y}
}

// clamp keeps a viewport-space point inside the viewport bounds with a
// fixed padding so a menu never renders off-screen.
func clamp(p Point, viewport Rect) Point {
	minX := viewport.X + viewportPadding
	maxX := viewport.X + viewport.Width - viewportPadding
	minY := viewport.Y + viewportPadding
	maxY := viewport.Y + viewport.Height - viewportPadding
	if p.X < minX {
		p.X = minX
	}
	if p.X > maxX {
		p.X = maxX
	}
	if p.Y < minY {
		p.Y = minY
	}
	if p.Y > maxY {
		p.Y = maxY
	}
	return p
}

// placeNearCursor positions a menu above the cursor, flipping below when
// there is not enough room above. Clamping happens in viewport space,
// before the container conversion, so the padding holds regardless of
// where the container sits in the viewport.
func placeNearCursor(cursor, container, viewport Rect) Point {
	y := cursor.Y - menuHeight
	if y < viewport.Y+viewportPadding {
		// Not enough room above: flip below the cursor line.
		y = cursor.Y + cursor.Height
	}
	p := clamp(Point{X: cursor.X, Y: y}, viewport)
	return toContainer(p.X, p.Y, container)
}

// placeAboveSelection centers a menu horizontally above the midpoint of the
// selection's start and end coordinates.
func placeAboveSelection(start, end, container, viewport Rect) Point {
	midX := (start.X + end.X + end.Width) / 2
	top := start.Y
	if end.Y < top {
		top = end.Y
	}
	p := clamp(Point{X: midX, Y: top - menuHeight}, viewport)
	return toContainer(p.X, p.Y, container)
}
