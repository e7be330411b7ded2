// Package norman normalizes Abstract Meaning Representation (AMR) graphs
// written in PENMAN notation.
//
// What it does:
//
//	• Resilient decoding: malformed graphs are dropped, the rest of the corpus survives
//	• Role canonicalization: :mod-of ⇄ :domain, :consist ⇄ :consist-of, …
//	• Reification: relations become mediating nodes (:location → be-located-at-91)
//	• Dereification: mediating nodes collapse back into relations, when safe
//	• Conceptualization: every node typed, every constant promoted to a node
//	• Corpus tools: statistics, "# ::id" alignment, top mismatches
//
// Everything is organized under small subpackages, leaves first:
//
//	core/           Triple, immutable Graph, variable minting
//	dfs/, bfs/      traversals over variable links (layout, depth, cycles)
//	penman/         Roles canonicalizer, resilient Decoder, Encoder
//	nodetop/        ":TOP <var>" line preprocessor
//	mapping/        reification / dereification tables (TSV, embedded AMR default)
//	reify/          edge → node rewrite
//	collapse/       node → edge rewrite with eligibility analysis
//	conceptualize/  typing pass
//	stats/, align/  corpus reports
//	pipeline/       stage wiring, YAML config, zap logging
//	cmd/norman      command-line interface
//
// Quick example:
//
//	(s / sleep-01 :location (m / mat))
//
//	reifies to
//
//	(s / sleep-01
//	      :ARG1-of (b / be-located-at-91
//	            :ARG2 (m / mat)))
//
//	go install github.com/katalvlaran/norman/cmd/norman@latest
package norman
