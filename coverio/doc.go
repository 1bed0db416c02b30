// Package coverio reads covers from disk and writes pipeline reports.
//
// Cover documents are YAML (JSON is accepted as a subset), either wrapped
//
//	clusters:
//	  a: [1, 2, 3]
//	  b: [3, 4]
//
// or as a bare mapping of cluster id to member indices. Integer ids are
// read as their decimal text.
//
// Reports are YAML documents with one entry per pipeline run. Unbounded
// deaths are written as .inf.
package coverio
