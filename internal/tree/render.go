package tree

import (
	"fmt"
	"io"
	"strings"
)

// View is a detached copy of a node, safe to encode: it is built under the
// same depth cap and path guard as Walk.
type View struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Photo        string  `json:"photo,omitempty"`
	Gender       string  `json:"gender,omitempty"`
	Relationship string  `json:"relationship,omitempty"`
	Generation   int     `json:"generation"`
	Children     []*View `json:"children"`
}

func (f *Forest) Render(maxDepth int) []*View {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if f == nil {
		return []*View{}
	}

	onPath := make(map[*Node]bool)
	var render func(n *Node, depth int) *View
	render = func(n *Node, depth int) *View {
		v := &View{
			ID:           n.Member.ID,
			Name:         n.Member.FullName(),
			Photo:        n.Member.Photo,
			Gender:       n.Member.Gender,
			Relationship: n.Member.Relationship,
			Generation:   n.Member.Generation,
			Children:     []*View{},
		}
		if depth >= maxDepth {
			return v
		}
		onPath[n] = true
		for _, c := range n.Children {
			if onPath[c] {
				continue
			}
			v.Children = append(v.Children, render(c, depth+1))
		}
		delete(onPath, n)
		return v
	}

	views := make([]*View, 0, len(f.Roots))
	for _, r := range f.Roots {
		views = append(views, render(r, 0))
	}
	return views
}

// Fprint writes an indented outline of the forest.
func (f *Forest) Fprint(w io.Writer, maxDepth int) error {
	var err error
	f.Walk(maxDepth, func(n *Node, depth int) bool {
		if err != nil {
			return false
		}
		line := n.Member.FullName()
		if n.Member.Relationship != "" {
			line += " (" + n.Member.Relationship + ")"
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line)
		return err == nil
	})
	return err
}
