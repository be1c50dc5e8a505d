// Package pathfind provides single-source shortest-path search over
// unit-cost graphs.
//
// It operates on the minimal Graph capability below so any structure that
// can enumerate neighbors by index works, without coupling callers to a
// particular grid or map type.
package pathfind

// Unreachable is the distance reported for nodes BFS cannot reach.
const Unreachable = -1

// Graph is the capability consumed by the search: a fixed set of nodes
// addressed by index, each able to enumerate its traversable neighbors.
// Every edge has unit cost.
type Graph interface {
	// NodeCount returns the number of nodes. Valid indices are
	// [0, NodeCount()).
	NodeCount() int
	// Neighbors returns the indices reachable from idx in one step.
	Neighbors(idx int) []int
}

// BFS computes the graph distance (edge count) from start to every node.
// The result has length g.NodeCount(); unreachable nodes hold Unreachable.
// A start outside the valid index range yields all-Unreachable distances.
func BFS(g Graph, start int) []int {
	n := g.NodeCount()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	if start < 0 || start >= n {
		return dist
	}

	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if dist[v] == Unreachable {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// Farthest returns the index with the maximum finite distance and that
// distance. Ties resolve to the lowest index. If no node has a finite
// positive distance, it returns (Unreachable, Unreachable).
func Farthest(dist []int) (idx, d int) {
	idx, d = Unreachable, Unreachable
	for i, v := range dist {
		if v > d {
			idx, d = i, v
		}
	}
	if d == 0 {
		return Unreachable, Unreachable
	}
	return idx, d
}
