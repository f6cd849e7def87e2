// Package sgraph implements the generic sparse weighted graph that backs
// every algorithm and higher-level layer in routegraph.
package sgraph

// Graph is an ordered sequence of adjacency maps. Adj[u][v] is the weight
// of the edge u->v; absence of v from Adj[u] means no edge. Indices are
// integers in [0, Len()) and are stable for the lifetime of the graph
// except through the explicit append/truncate protocol used by geograph
// to inject and remove temporary nodes.
type Graph struct {
	Adj []map[int]float64
}

// New returns an empty graph with n nodes and no edges.
func New(n int) *Graph {
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	return &Graph{Adj: adj}
}

// Len reports the number of nodes currently in the graph.
func (g *Graph) Len() int {
	return len(g.Adj)
}

// AddEdge sets the directed edge u->v to weight w, overwriting any
// previous weight. It panics if u is out of range; v is not checked, so an
// out-of-range v is stored as-is and only reported later by Validate
// (validation of untrusted input goes through Validate, not AddEdge).
func (g *Graph) AddEdge(u, v int, w float64) {
	g.Adj[u][v] = w
}

// AddUndirectedEdge sets both u->v and v->u to weight w.
func (g *Graph) AddUndirectedEdge(u, v int, w float64) {
	g.Adj[u][v] = w
	g.Adj[v][u] = w
}

// RemoveEdge deletes the directed edge u->v if present.
func (g *Graph) RemoveEdge(u, v int) {
	delete(g.Adj[u], v)
}

// AppendNode grows the graph by one empty-adjacency node and returns its
// index.
func (g *Graph) AppendNode() int {
	g.Adj = append(g.Adj, make(map[int]float64))
	return len(g.Adj) - 1
}

// Truncate shrinks the graph back to n nodes, discarding the tail. Callers
// are responsible for having already removed any reverse edges pointing
// into the truncated indices.
func (g *Graph) Truncate(n int) {
	g.Adj = g.Adj[:n]
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := make([]map[int]float64, len(g.Adj))
	for i, m := range g.Adj {
		cp := make(map[int]float64, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[i] = cp
	}
	return &Graph{Adj: out}
}
