// Package algorithms implements graph algorithms on core.Graph, used here as
// an independent oracle to verify the distributed GHS simulation.
package algorithms

import (
	"sort"

	"github.com/mkarasyov/synghs/graph/core"
)

/*
Kruskal — Minimum Spanning Tree (MST)

Description:
  Given an undirected, connected, weighted graph, an MST is a subset of edges
  connecting all vertices with the minimum possible total edge weight.

Algorithm:
  a. Sort all edges by weight ascending, breaking ties lexicographically on
     the (min endpoint, max endpoint) pair so the result is deterministic.
     Vertex IDs are compared as strings, so this matches the GHS
     simulation's numeric tie-break only where string and numeric order of
     the ids agree (e.g. single-digit ids).
  b. Initialize a disjoint-set (DSU) over the vertices.
  c. For each edge (u,v) in order, union the two sets and keep the edge if
     u and v are not already connected.
  d. Stop once V-1 edges have been chosen.

Complexity: O(E log E + E·α(V))
Memory:     O(E + V)
*/

// Kruskal computes an MST using Kruskal's algorithm.
// Returns the edges in the MST (in ascending-weight order) and the total weight.
func Kruskal(g *core.Graph) ([]*core.Edge, float64, error) {
	edges := kruskalFilterUniqueEdges(g)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		ui, vi := orderedPair(edges[i].From.ID, edges[i].To.ID)
		uj, vj := orderedPair(edges[j].From.ID, edges[j].To.ID)
		if ui != uj {
			return ui < uj
		}
		return vi < vj
	})

	parent := make(map[string]string, len(g.Vertices()))
	rank := make(map[string]int, len(g.Vertices()))
	for _, v := range g.Vertices() {
		parent[v.ID] = v.ID
		rank[v.ID] = 0
	}
	var find func(string) string
	find = func(u string) string {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	mst := make([]*core.Edge, 0, len(g.Vertices())-1)
	var total float64

	for _, e := range edges {
		u, v := e.From.ID, e.To.ID
		if find(u) != find(v) {
			union(u, v)
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == len(g.Vertices())-1 {
				break
			}
		}
	}

	return mst, total, nil
}

// orderedPair returns (u, v) sorted lexicographically.
func orderedPair(u, v string) (string, string) {
	if u > v {
		return v, u
	}
	return u, v
}

// kruskalFilterUniqueEdges returns one representative per undirected edge,
// oriented From the lexicographically smaller endpoint.
func kruskalFilterUniqueEdges(g *core.Graph) []*core.Edge {
	all := g.Edges()
	seen := make(map[string]map[string]bool, len(all))
	uniq := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		u, v := orderedPair(e.From.ID, e.To.ID)
		if u == v {
			continue // skip self-loops
		}
		if e.From.ID != u {
			continue // keep the (min, max)-oriented copy only
		}
		if seen[u] == nil {
			seen[u] = make(map[string]bool)
		}
		if !seen[u][v] {
			seen[u][v] = true
			uniq = append(uniq, e)
		}
	}
	return uniq
}
