// Package bfs provides breadth-first search over the node links of an AMR
// core.Graph, returning link distances and visit order.
//
// What
//
//   - Explore variables in non-decreasing distance (link count) from a start variable.
//   - Returns a BFSResult with the visit sequence (Order) and the distance
//     of every reached variable from the start (Depth).
//   - WithUndirected walks inverted links too, so depth matches the nesting
//     of the PENMAN serialization.
//
// Why
//
//   - Corpus statistics report the depth of each graph below its top.
//
// Determinism
//
//	Neighbors are indexed in triple order, so the visit sequence is
//	fully reproducible for a given graph.
//
// Complexity
//
//	Time O(V + T), Memory O(V + T).
package bfs
