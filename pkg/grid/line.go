package grid

// DrawLine calls c for every tile on the Bresenham line from (x0,y0) to
// (x1,y1) inclusive, ported from the carving package's tilemap DrawLine.
// It writes nothing to the grid itself; the visibility raycaster's ray
// walk uses it.
func (g *Grid) DrawLine(x0, y0, x1, y1 int, c func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	for {
		c(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
