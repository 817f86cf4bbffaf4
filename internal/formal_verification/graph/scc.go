package graph

// SCC returns the strongly connected components in Tarjan's completion order.
// Roots are visited in node insertion order.
func (g *Digraph) SCC() [][]string {
	index := 0
	stack := []string{}
	onStack := map[string]bool{}
	id := map[string]int{}
	low := map[string]int{}
	var comps [][]string

	var dfs func(v string)
	dfs = func(v string) {
		index++
		id[v], low[v] = index, index
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.out[v] {
			if _, seen := id[w]; !seen {
				dfs(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && id[w] < low[v] {
				low[v] = id[w]
			}
		}

		if low[v] == id[v] {
			comp := []string{}
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, reverse(comp))
		}
	}

	for _, v := range g.nodes {
		if _, seen := id[v]; !seen {
			dfs(v)
		}
	}
	return comps
}

// Cycles returns every SCC that contains a cycle: more than one node, or a
// single node with a self-loop.
func (g *Digraph) Cycles() [][]string {
	var out [][]string
	for _, comp := range g.SCC() {
		if len(comp) > 1 || g.HasSelfLoop(comp[0]) {
			out = append(out, comp)
		}
	}
	return out
}

func reverse(in []string) []string {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
	return in
}
