package dom

// HitGrid maps screen cells to nodes for mouse hit testing.
type HitGrid struct {
	width  int
	height int
	cells  []int
	nodes  []Node
}

// NewHitGrid creates a new hit grid with the given dimensions.
func NewHitGrid(width, height int) *HitGrid {
	grid := &HitGrid{}
	grid.Resize(width, height)
	return grid
}

// Resize updates the hit grid dimensions. Contents are cleared when the
// size changes.
func (g *HitGrid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width = width
	g.height = height
	size := width * height
	if size <= 0 {
		g.cells = nil
		g.nodes = nil
		return
	}
	g.cells = make([]int, size)
	g.Clear()
}

// Clear resets the grid contents.
func (g *HitGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = -1
	}
	g.nodes = g.nodes[:0]
}

// Add records a node occupying the specified bounds. Later additions win
// where they overlap earlier ones.
func (g *HitGrid) Add(node Node, bounds Rect) {
	if node == nil || g.width <= 0 || g.height <= 0 {
		return
	}
	bounds = bounds.Intersection(Rect{X: 0, Y: 0, Width: g.width, Height: g.height})
	if bounds.Empty() {
		return
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, node)

	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		row := y * g.width
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			g.cells[row+x] = id
		}
	}
}

// Rebuild clears the grid and adds every visible node under root in
// document order, so descendants sit on top of their ancestors.
func (g *HitGrid) Rebuild(root *Element) {
	g.Clear()
	if root == nil {
		return
	}
	g.Add(root, root.bounds)
	g.addChildren(root)
}

func (g *HitGrid) addChildren(el *Element) {
	for _, child := range el.children {
		switch c := child.(type) {
		case *Element:
			if c.hidden {
				continue
			}
			g.Add(c, c.bounds)
			g.addChildren(c)
		case *Text:
			g.Add(c, c.bounds)
		}
	}
}

// NodeAt returns the node at the given screen position, or nil.
func (g *HitGrid) NodeAt(x, y int) Node {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	idx := g.cells[y*g.width+x]
	if idx < 0 || idx >= len(g.nodes) {
		return nil
	}
	return g.nodes[idx]
}
