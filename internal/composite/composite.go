// Package composite resolves nested shapes into a containment forest.
// Containment comes from two signals, in priority order: the parent id the
// diagram declares, then geometric bounding-box containment. The result is
// always a forest; cycles are detected and the affected shapes demoted.
package composite

import (
	"sort"
	"strings"

	"github.com/nmoret/diagile/internal/diagram"
	"github.com/nmoret/diagile/internal/finding"
)

// Resolution is the computed containment forest. Children lists follow
// document order of the child shapes.
type Resolution struct {
	parent   map[string]string
	children map[string][]string
	order    []string
}

// Parent returns a shape's resolved parent id, or "" for a root shape.
func (r *Resolution) Parent(id string) string { return r.parent[id] }

// Children returns a shape's resolved child ids in document order.
func (r *Resolution) Children(id string) []string { return r.children[id] }

// Roots returns the ids with no parent, in document order.
func (r *Resolution) Roots() []string {
	var roots []string
	for _, id := range r.order {
		if r.parent[id] == "" {
			roots = append(roots, id)
		}
	}
	return roots
}

// Resolve computes the containment forest over the extracted shapes.
// Shapes are addressed through an index arena so cycle detection is a
// visited-set walk over parent indexes, never pointer chasing.
func Resolve(shapes []diagram.ShapeNode, findings *finding.List) *Resolution {
	index := make(map[string]int, len(shapes))
	for i := range shapes {
		index[shapes[i].ID] = i
	}

	// parentIdx[i] is the resolved parent's arena index, -1 for root.
	parentIdx := make([]int, len(shapes))

	for i := range shapes {
		parentIdx[i] = resolveParent(shapes, index, i, findings)
	}

	demoteCycles(shapes, parentIdx, findings)

	res := &Resolution{
		parent:   make(map[string]string, len(shapes)),
		children: make(map[string][]string),
		order:    make([]string, 0, len(shapes)),
	}
	for i := range shapes {
		id := shapes[i].ID
		res.order = append(res.order, id)
		if parentIdx[i] < 0 {
			res.parent[id] = ""
			continue
		}
		parentID := shapes[parentIdx[i]].ID
		res.parent[id] = parentID
		res.children[parentID] = append(res.children[parentID], id)
	}
	return res
}

// resolveParent picks one parent index for shape i, or -1.
func resolveParent(shapes []diagram.ShapeNode, index map[string]int, i int, findings *finding.List) int {
	child := &shapes[i]

	if child.ParentID != "" {
		declared, ok := index[child.ParentID]
		if !ok {
			findings.Add(finding.Warnf(finding.KindStructuralWarning,
				"components."+child.ID,
				"shape %q declares parent %q which is not a shape in the diagram", child.ID, child.ParentID))
			return geometricParent(shapes, i)
		}
		if declared == i {
			findings.Add(finding.Warnf(finding.KindStructuralWarning,
				"components."+child.ID,
				"shape %q declares itself as parent", child.ID))
			return geometricParent(shapes, i)
		}
		// Declared containment is computed, not trusted: keep the declared
		// parent even when the geometry contradicts it, but say so.
		if !shapes[declared].Geometry.Contains(child.Geometry) {
			findings.Add(finding.Warnf(finding.KindStructuralWarning,
				"components."+child.ID,
				"shape %q declares parent %q but lies outside its bounding box", child.ID, child.ParentID))
		}
		return declared
	}

	return geometricParent(shapes, i)
}

// geometricParent finds the smallest-area shape whose bounding box wholly
// contains shape i. Candidates must be strictly larger, so two identical
// boxes never contain each other. Ties on area break on document order.
func geometricParent(shapes []diagram.ShapeNode, i int) int {
	child := &shapes[i]
	best := -1
	for j := range shapes {
		if j == i {
			continue
		}
		candidate := &shapes[j]
		if candidate.Geometry.Area() <= child.Geometry.Area() {
			continue
		}
		if !candidate.Geometry.Contains(child.Geometry) {
			continue
		}
		if best < 0 || candidate.Geometry.Area() < shapes[best].Geometry.Area() {
			best = j
		}
	}
	return best
}

// demoteCycles walks every parent chain with a visited set. Shapes on a
// cycle are demoted to independent roots and one structural-error finding is
// emitted per cycle, naming its members.
func demoteCycles(shapes []diagram.ShapeNode, parentIdx []int, findings *finding.List) {
	const (
		unvisited  = 0
		inProgress = 1
		done       = 2
	)
	state := make([]int, len(shapes))

	for start := range shapes {
		if state[start] != unvisited {
			continue
		}
		var chain []int
		node := start
		for node >= 0 && state[node] == unvisited {
			state[node] = inProgress
			chain = append(chain, node)
			node = parentIdx[node]
		}
		if node >= 0 && state[node] == inProgress {
			// Everything from node back along the chain is cyclic.
			cycleStart := 0
			for chain[cycleStart] != node {
				cycleStart++
			}
			cycle := chain[cycleStart:]
			ids := make([]string, len(cycle))
			for k, idx := range cycle {
				ids[k] = shapes[idx].ID
				parentIdx[idx] = -1
			}
			sort.Strings(ids)
			findings.Add(finding.Errorf(finding.KindStructuralError,
				"components."+ids[0],
				"containment cycle between shapes %s; demoted to independent components",
				strings.Join(ids, ", ")))
		}
		for _, idx := range chain {
			state[idx] = done
		}
	}
}
