// Package diagram extracts the raw shape/edge graph from mxGraph markup.
// It knows nothing about threat models: output is geometry, labels and raw
// style strings, handed to classification untouched.
package diagram

// Geometry is a shape's bounding box in diagram coordinates.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether other lies wholly within g.
func (g Geometry) Contains(other Geometry) bool {
	return other.X >= g.X &&
		other.Y >= g.Y &&
		other.X+other.Width <= g.X+g.Width &&
		other.Y+other.Height <= g.Y+g.Height
}

// Area returns the bounding-box area.
func (g Geometry) Area() float64 {
	return g.Width * g.Height
}

// ShapeNode is a vertex cell. Immutable after extraction.
type ShapeNode struct {
	ID       string
	Label    string
	Style    string
	Geometry Geometry
	ParentID string // empty when the shape sits on the root layer
}

// Edge is a connector cell with two endpoint references. The referenced ids
// are not resolved here; dangling ids surface later as findings.
type Edge struct {
	ID       string
	SourceID string
	TargetID string
	Style    string
	Label    string
}

// Graph is the extraction result, in document order.
type Graph struct {
	Shapes []ShapeNode
	Edges  []Edge
}

// ShapeByID returns the shape with the given id, or nil.
func (g *Graph) ShapeByID(id string) *ShapeNode {
	for i := range g.Shapes {
		if g.Shapes[i].ID == id {
			return &g.Shapes[i]
		}
	}
	return nil
}
