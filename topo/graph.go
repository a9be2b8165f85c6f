package topo

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/xyxYang/geometry-calculator/chain"
)

// NoNode marks a link end that is not attached to any node.
const NoNode = -1

// End selects one of the two endpoints of a link.
type End int

const (
	StartEnd End = iota
	EndEnd
)

func (e End) String() string {
	if e == StartEnd {
		return "start"
	}
	return "end"
}

// Incidence is one link end attached to a node.
type Incidence struct {
	Link int
	End  End
}

type Node struct {
	ID      int
	Feature Feature
	Point   orb.Point
	Links   []Incidence
}

// LinkList joins the ids of the attached links with commas.
func (n *Node) LinkList() string {
	ids := make([]string, 0, len(n.Links))
	for _, inc := range n.Links {
		ids = append(ids, strconv.Itoa(inc.Link))
	}
	return strings.Join(ids, ",")
}

type Link struct {
	ID      int
	Feature Feature
	Line    orb.LineString

	// Indexes into Graph.Nodes, NoNode when unmatched.
	Start int
	End   int
}

// Endpoint returns the coordinate of one end of the link.
func (l *Link) Endpoint(e End) orb.Point {
	if e == StartEnd {
		return l.Line[0]
	}
	return l.Line[len(l.Line)-1]
}

func (l *Link) setNode(e End, n int) {
	if e == StartEnd {
		l.Start = n
	} else {
		l.End = n
	}
}

// Graph is the result of a build. Nodes and links point at each other
// through their slice indexes.
type Graph struct {
	Nodes  []*Node
	Links  []*Link
	Report Report
}

func (g *Graph) StartNode(l *Link) *Node {
	return g.nodeAt(l.Start)
}

func (g *Graph) EndNode(l *Link) *Node {
	return g.nodeAt(l.End)
}

func (g *Graph) nodeAt(i int) *Node {
	if i < 0 || i >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[i]
}

// Degree is the number of link ends attached to a node.
func (g *Graph) Degree(n *Node) int {
	return len(n.Links)
}

func (g *Graph) attach(li int, e End, ni int) {
	g.Links[li].setNode(e, ni)
	g.Nodes[ni].Links = append(g.Nodes[ni].Links, Incidence{Link: li, End: e})
}

type Stats struct {
	Nodes         int
	Links         int
	DanglingEnds  int
	IsolatedNodes int
	Skipped       int
	Ambiguous     int
}

func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:     len(g.Nodes),
		Links:     len(g.Links),
		Skipped:   len(g.Report.Skipped),
		Ambiguous: len(g.Report.Ambiguous),
	}
	for _, l := range g.Links {
		if l.Start == NoNode {
			s.DanglingEnds++
		}
		if l.End == NoNode {
			s.DanglingEnds++
		}
	}
	for _, n := range g.Nodes {
		if len(n.Links) == 0 {
			s.IsolatedNodes++
		}
	}
	return s
}

// Chains returns the node paths of maximal link runs that only pass
// through nodes joining exactly two link ends.
func (g *Graph) Chains() [][]int {
	paths := make([][]int64, 0, len(g.Links))
	for _, l := range g.Links {
		if l.Start == NoNode || l.End == NoNode {
			continue
		}
		paths = append(paths, []int64{int64(l.Start), int64(l.End)})
	}

	joinable := func(v int64) bool {
		return g.Degree(g.Nodes[v]) == 2
	}

	reduced := chain.Reduce(paths, joinable)
	out := make([][]int, 0, len(reduced))
	for _, p := range reduced {
		path := make([]int, len(p))
		for i, v := range p {
			path[i] = int(v)
		}
		out = append(out, path)
	}
	return out
}
