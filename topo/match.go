package topo

import (
	"github.com/pkg/errors"
)

// MatchNodes builds a graph from line features and a known set of node
// features. Line endpoints attach to the node whose key equals the key of
// the endpoint coordinate. No nodes are created; unmatched ends stay
// NoNode. When two nodes share a key the later one wins.
func (b *Builder) MatchNodes(nodes, lines []Feature) (*Graph, error) {
	g := &Graph{}

	byKey := make(map[string]int, len(nodes))
	for i, f := range nodes {
		p, err := pointOf(f)
		if err != nil {
			rec := g.Report.skip("node", i, err)
			b.log("Skipping %s", rec)
			continue
		}

		n := &Node{
			ID:      len(g.Nodes),
			Feature: f,
			Point:   p,
		}
		g.Nodes = append(g.Nodes, n)

		key := b.key(p)
		if _, dup := byKey[key]; dup {
			g.Report.Ambiguous = append(g.Report.Ambiguous, key)
			b.log("%s", errors.Wrapf(ErrAmbiguousNodeKey, "node %d replaces earlier node for key %q", i, key))
		}
		byKey[key] = n.ID
	}

	b.addLinks(g, lines)

	total := len(g.Links)
	for li, link := range g.Links {
		for _, e := range []End{StartEnd, EndEnd} {
			if n, ok := byKey[b.key(link.Endpoint(e))]; ok {
				g.attach(li, e, n)
			}
		}
		b.tick(li+1, total)
	}

	b.log("Matched %d links against %d nodes", len(g.Links), len(g.Nodes))
	return g, nil
}
