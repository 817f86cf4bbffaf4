package graph

// Reachable lists the nodes reachable from start in BFS order, start
// included. When through is non-nil, only nodes it accepts are expanded;
// rejected nodes are still reported but not walked past.
func (g *Digraph) Reachable(start string, through func(string) bool) []string {
	if !g.known[start] {
		return nil
	}
	seen := map[string]bool{start: true}
	order := []string{start}
	for i := 0; i < len(order); i++ {
		v := order[i]
		if through != nil && !through(v) {
			continue
		}
		for _, w := range g.out[v] {
			if !seen[w] {
				seen[w] = true
				order = append(order, w)
			}
		}
	}
	return order
}

// ShortestPath returns the BFS path from -> to inclusive, or nil if to is
// unreachable.
func (g *Digraph) ShortestPath(from, to string) []string {
	if !g.known[from] || !g.known[to] {
		return nil
	}
	if from == to {
		return []string{from}
	}
	parent := map[string]string{}
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.out[v] {
			if seen[w] {
				continue
			}
			seen[w] = true
			parent[w] = v
			if w == to {
				return PathTo(parent, from, to)
			}
			queue = append(queue, w)
		}
	}
	return nil
}

// PathTo walks a BFS parent map back from to and returns the path from -> to.
func PathTo(parent map[string]string, from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		p, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	return reverse(path)
}
