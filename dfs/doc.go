// Package dfs implements depth-first traversal and cycle detection over the
// node links of an AMR core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each link before backtracking.
//     A pre-order hook and a lazy triple filter steer the walk; links can be
//     followed in the direction PENMAN writes them.
//   - HasCycle: reports a directed cycle among logical links.
//
// Why:
//   - The PENMAN encoder explores preferred anchors from top with DFS,
//     placing each node's triples from the OnVisit hook.
//   - Corpus statistics count graphs whose reentrancies form cycles.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option / DFSOptions: functional options for DFS behavior
//   - DFSResult: discovery order and Visited map
//
// Complexity:
//
//   - DFS:      Time O(V+T), Memory O(V+T)
//   - HasCycle: Time O(V+T), Memory O(V+T)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start variable not in graph
//   - hook errors             propagated from OnVisit
package dfs
