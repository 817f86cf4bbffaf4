package graph

// Digraph is a directed graph over string node IDs. Node and edge order is
// insertion order, so every traversal below is deterministic.
type Digraph struct {
	nodes []string
	known map[string]bool
	out   map[string][]string
}

func New() *Digraph {
	return &Digraph{
		known: map[string]bool{},
		out:   map[string][]string{},
	}
}

func (g *Digraph) AddNode(id string) {
	if g.known[id] {
		return
	}
	g.known[id] = true
	g.nodes = append(g.nodes, id)
}

// AddEdge adds both endpoints if needed. Parallel edges are kept.
func (g *Digraph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.out[from] = append(g.out[from], to)
}

func (g *Digraph) HasNode(id string) bool { return g.known[id] }

func (g *Digraph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *Digraph) Successors(id string) []string { return g.out[id] }

func (g *Digraph) Len() int { return len(g.nodes) }

func (g *Digraph) EdgeCount() int {
	n := 0
	for _, succ := range g.out {
		n += len(succ)
	}
	return n
}

func (g *Digraph) HasSelfLoop(id string) bool {
	for _, w := range g.out[id] {
		if w == id {
			return true
		}
	}
	return false
}

// Subgraph keeps the nodes accepted by keep and the edges between them.
func (g *Digraph) Subgraph(keep func(string) bool) *Digraph {
	sub := New()
	for _, v := range g.nodes {
		if keep(v) {
			sub.AddNode(v)
		}
	}
	for _, v := range g.nodes {
		if !sub.known[v] {
			continue
		}
		for _, w := range g.out[v] {
			if sub.known[w] {
				sub.out[v] = append(sub.out[v], w)
			}
		}
	}
	return sub
}

// InDegree and OutDegree count distinct neighbours.
func (g *Digraph) OutDegree(id string) int {
	return len(distinct(g.out[id]))
}

func (g *Digraph) InDegree(id string) int {
	n := 0
	for _, v := range g.nodes {
		for _, w := range distinct(g.out[v]) {
			if w == id {
				n++
			}
		}
	}
	return n
}

func distinct(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
