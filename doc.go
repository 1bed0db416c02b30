// Package jmapper turns a Mapper cover into topological summaries: the nerve
// graph of the cover, discrete curvature on its edges, a node filtration
// built from that curvature and the persistence diagram of the filtration.
//
// 🚀 What is jmapper?
//
//	A thread-safe pipeline library with a small CLI on top:
//		• Nerve: cover → graph, one vertex per cluster, an edge per overlap
//		• Components: union-find decomposition into policy groups
//		• Curvature: Ollivier-Ricci (optimal transport) or Forman, pluggable
//		• Filtration: edge values pooled onto vertices (min or max)
//		• Persistence: 0-dimensional diagrams plus cycle creators
//		• Sweep: many min_intersection values, concurrently
//
// Under the hood the work is split into subpackages:
//
//	core/        thread-safe undirected Graph with memberships & attributes
//	unionfind/   disjoint sets with path compression
//	bfs/         breadth-first search, hop distances
//	nerve/       cover → nerve graph + connected components
//	curvature/   edge curvature strategies (Func)
//	filtration/  node filtrations & attribute propagation
//	persistence/ persistence diagrams of filtered graphs
//	jmap/        JGraph facade tying the stages together
//	sweep/       concurrent min_intersection sweeps
//	coverio/     cover input & report output (YAML/JSON)
//	config/      run configuration (viper + validator)
//	cmd/jmapper  command-line interface
//
// Quick ASCII example, cover A{1,2,3} B{3,4,5} C{6,7}:
//
//	A───B    C
//
//	two policy groups; A–B share member 3, C is isolated.
//
//	go install github.com/katalvlaran/jmapper/cmd/jmapper@latest
package jmapper
