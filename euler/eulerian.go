package euler

import (
	"github.com/arclib/arcgraph/connectivity"
	"github.com/arclib/arcgraph/core"
)

// IsEulerian reports whether g's degree structure admits a closed tour
// covering every link exactly once. The check dispatches on the link
// mixture: delta balance for all-directed graphs, even degrees for
// all-undirected graphs, and both at once for mixed graphs. Connectivity
// is not checked here; Tour does that. The empty graph is Eulerian.
func IsEulerian(g *core.Graph) (bool, error) {
	directed := g.HasDirectedLinks()
	undirected := g.HasUndirectedLinks()
	switch {
	case directed && undirected:
		return IsStronglyEulerian(g)
	case directed:
		return balanced(g)
	case undirected:
		return evenDegrees(g)
	default:
		return true, nil
	}
}

// IsStronglyEulerian reports whether every vertex has even undirected
// degree and zero in/out imbalance over directed links. This is the degree
// condition a mixed graph must meet before its undirected links can be
// oriented into a tourable digraph.
func IsStronglyEulerian(g *core.Graph) (bool, error) {
	even, err := evenDegrees(g)
	if err != nil || !even {
		return false, err
	}

	return balanced(g)
}

func evenDegrees(g *core.Graph) (bool, error) {
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v.ID())
		if err != nil {
			return false, err
		}
		if deg%2 != 0 {
			return false, nil
		}
	}

	return true, nil
}

func balanced(g *core.Graph) (bool, error) {
	for _, v := range g.Vertices() {
		delta, err := g.Delta(v.ID())
		if err != nil {
			return false, err
		}
		if delta != 0 {
			return false, nil
		}
	}

	return true, nil
}

// linksConnected verifies that every link endpoint (and the start vertex)
// shares one component label, ignoring vertices with no links at all.
func linksConnected(g *core.Graph, strong bool, start int) error {
	if g.LinkCount() == 0 {
		return nil
	}
	var (
		comp []int
		err  error
		fail error
	)
	if strong {
		_, comp, err = connectivity.StrongComponents(g)
		fail = ErrNotStronglyConnected
	} else {
		_, comp, err = connectivity.Components(g)
		fail = ErrNotConnected
	}
	if err != nil {
		return err
	}

	ref := 0
	for _, l := range g.Links() {
		if ref == 0 {
			ref = comp[l.Tail()]
		}
		if comp[l.Tail()] != ref || comp[l.Head()] != ref {
			return fail
		}
	}
	if comp[start] != ref {
		return fail
	}

	return nil
}
