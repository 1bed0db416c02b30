// Package jmap is the one-stop facade over the jmapper pipeline:
//
//	cover ─► nerve.Build ─► curvature.Compute ─► filtration.Make ─► persistence
//
// A JGraph is built from a cover with New (a failable factory: an empty cover
// is rejected before anything else happens). The nerve graph and its
// components are available immediately; curvature and the persistence
// diagram are computed on demand and cached until the curvature changes.
//
// JGraph is safe for concurrent use. It never mutates the nerve graph:
// filtration values live on a separate filtered copy.
//
// Logging goes through an injected *zap.Logger (WithLogger); the default is
// a no-op logger.
package jmap
