// Package tree turns the flat member list of a family into the forest that
// the family hierarchy view renders.
package tree

import (
	"errors"
	"fmt"

	"github.com/s21platform/family-web/internal/model"
)

// DefaultMaxDepth bounds every walk over a forest.
const DefaultMaxDepth = 64

var ErrParentCycle = errors.New("member parents form a cycle")

type Node struct {
	Member   model.Member `json:"member"`
	Children []*Node      `json:"children"`
}

// Forest is the rooted view of a member snapshot. A node reachable through
// both parents is shared, so the structure is a DAG rendered once per lineage.
type Forest struct {
	Roots []*Node `json:"roots"`
	Size  int     `json:"size"`
}

func (f *Forest) Empty() bool {
	return f == nil || len(f.Roots) == 0
}

// IsRoot keeps the observed selection rule: generation zero, or no recorded
// parent at all.
func IsRoot(m model.Member) bool {
	return m.Generation == 0 || (!m.Father.Present() && !m.Mother.Present())
}

// Assemble builds the forest for members. It never fails: dangling or
// malformed parent references simply attach nothing. Callers that cannot
// trust their input run Validate first.
func Assemble(members []model.Member) *Forest {
	nodes := make(map[string]*Node, len(members))
	ordered := make([]*Node, 0, len(members))
	for _, m := range members {
		if m.ID == "" {
			continue
		}
		if _, ok := nodes[m.ID]; ok {
			continue
		}
		n := &Node{Member: m, Children: []*Node{}}
		nodes[m.ID] = n
		ordered = append(ordered, n)
	}

	for _, child := range ordered {
		for _, ref := range parentRefs(child.Member) {
			parent, ok := nodes[ref]
			if !ok {
				continue
			}
			if !hasChild(parent, child.Member.ID) {
				parent.Children = append(parent.Children, child)
			}
		}
	}

	forest := &Forest{Roots: []*Node{}, Size: len(ordered)}
	for _, n := range ordered {
		if IsRoot(n.Member) {
			forest.Roots = append(forest.Roots, n)
		}
	}

	return forest
}

// Validate rejects snapshots whose parent references loop back on themselves.
func Validate(members []model.Member) error {
	parents := make(map[string][]string, len(members))
	for _, m := range members {
		if m.ID == "" {
			continue
		}
		if _, ok := parents[m.ID]; ok {
			continue
		}
		parents[m.ID] = parentRefs(m)
	}

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(parents))

	var visit func(id string, path []string) error
	visit = func(id string, path []string) error {
		switch state[id] {
		case inProgress:
			return fmt.Errorf("%w: %v", ErrParentCycle, append(path, id))
		case done:
			return nil
		}
		state[id] = inProgress
		for _, p := range parents[id] {
			if _, ok := parents[p]; !ok {
				continue
			}
			if err := visit(p, append(path, id)); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, m := range members {
		if m.ID == "" {
			continue
		}
		if err := visit(m.ID, nil); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits nodes depth first. It stops descending past maxDepth and never
// re-enters a node already on the current path.
func (f *Forest) Walk(maxDepth int, fn func(n *Node, depth int) bool) {
	if f == nil {
		return
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	onPath := make(map[*Node]bool)

	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if depth > maxDepth || onPath[n] {
			return
		}
		if !fn(n, depth) {
			return
		}
		onPath[n] = true
		for _, c := range n.Children {
			walk(c, depth+1)
		}
		delete(onPath, n)
	}

	for _, r := range f.Roots {
		walk(r, 0)
	}
}

func parentRefs(m model.Member) []string {
	refs := make([]string, 0, 2)
	if m.Father.Present() && m.Father.ID != m.ID {
		refs = append(refs, m.Father.ID)
	}
	if m.Mother.Present() && m.Mother.ID != m.ID {
		refs = append(refs, m.Mother.ID)
	}
	return refs
}

func hasChild(parent *Node, id string) bool {
	for _, c := range parent.Children {
		if c.Member.ID == id {
			return true
		}
	}
	return false
}
