package solver

import "sort"

// GreedyEdge builds a tour from the shortest edges upward.
//
// All C(n,2) candidate edges are sorted by length ascending; an edge is
// accepted only when neither endpoint already has degree 2 and, unless it
// is the final closing edge, it would not close a sub-cycle early. Cycle
// detection uses union-find with path halving. Once n edges are placed the
// degree-2 graph is a single Hamiltonian cycle, and the tour is read off
// by walking it from city 0.
//
// Complexity: O(n² log n) time dominated by the edge sort, O(n²) space for
// the edge list.
func GreedyEdge(dist [][]float64, n int) ([]int, error) {
	if err := squareOrder(dist, n); err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return []int{}, nil
	case 1:
		return []int{0}, nil
	}

	type edge struct {
		from, to int
		weight   float64
	}
	edges := make([]edge, 0, n*(n-1)/2)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, edge{from: i, to: j, weight: dist[i][j]})
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].weight < edges[b].weight })

	var (
		degree    = make([]int, n)
		parent    = make([]int, n)
		adj       = make([][]int, n)
		edgeCount int
	)
	for i = 0; i < n; i++ {
		parent[i] = i
	}

	// find with path halving; iterative on purpose.
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	var from, to, rf, rt int
	for _, e := range edges {
		if edgeCount >= n {
			break
		}
		from, to = e.from, e.to

		if degree[from] >= 2 || degree[to] >= 2 {
			continue
		}

		rf, rt = find(from), find(to)
		// A shared root means the edge closes a cycle; only the very last
		// edge of the tour is allowed to do that.
		if edgeCount < n-1 && rf == rt {
			continue
		}

		adj[from] = append(adj[from], to)
		adj[to] = append(adj[to], from)
		degree[from]++
		degree[to]++
		parent[rf] = rt
		edgeCount++
	}

	// Walk the degree-2 graph from city 0, always taking the unvisited
	// neighbor.
	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		current = 0
		next    int
	)
	for len(tour) < n {
		tour = append(tour, current)
		visited[current] = true

		next = -1
		for _, nb := range adj[current] {
			if !visited[nb] {
				next = nb
				break
			}
		}
		if next < 0 {
			break
		}
		current = next
	}

	if err := ValidateTour(tour, n); err != nil {
		return nil, err
	}

	return tour, nil
}
