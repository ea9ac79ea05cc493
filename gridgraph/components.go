package gridgraph

// ConnectedComponents finds all contiguous regions of Open nodes under
// 4-connectivity. Returns a slice of components; each component is a slice
// of node IDs in BFS discovery order, and components are ordered by their
// smallest ID.
//
// To convert an ID back to a coordinate, use Coordinate(id).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gr *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gr.nodes))
	var comps [][]int

	for i0 := range gr.nodes {
		if !gr.Passable(i0) || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range gr.nodes[u].Links {
				if v == NoNeighbor || seen[v] || !gr.Passable(v) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
