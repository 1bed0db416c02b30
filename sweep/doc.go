// Package sweep runs the jmapper pipeline once per min_intersection value.
//
// Runs are independent: each builds its own JGraph from the shared, read-only
// cover, so they execute concurrently on an errgroup bounded by the worker
// count. By default the first failing run cancels the rest. In resilient mode
// a failing run is recorded in its Result and the sweep carries on; only
// cancellation of the caller's context stops it.
//
// Results come back in the order of the requested values, each tagged with a
// fresh run ID.
package sweep
