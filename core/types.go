// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAttributeNotFound indicates a named attribute is not set on the element.
	ErrAttributeNotFound = errors.New("core: attribute not found")
)

// Vertex is a node of the graph. Membership holds the sorted, de-duplicated
// member indices of the cover element the vertex stands for.
type Vertex struct {
	ID         string
	Membership []int
}

// Edge is an undirected connection between From and To.
//
// Edge values are immutable once created; attributes are stored on the Graph
// and read through EdgeAttr.
type Edge struct {
	// ID uniquely identifies the edge inside its Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs in the order given to AddEdge.
	From string
	To   string

	seq uint64 // creation sequence number; drives Edges() ordering
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// Graph is an undirected simple graph with attribute storage.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexAttrs
	muEdgeAdj sync.RWMutex // guards edges, adjacency, edgeAttrs

	nextEdgeID uint64 // monotonic edge sequence

	vertices    map[string]*Vertex
	vertexAttrs map[string]map[string]float64

	edges     map[string]*Edge
	edgeAttrs map[string]map[string]float64

	// adjacency[u][v] = edge ID; mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:    make(map[string]*Vertex),
		vertexAttrs: make(map[string]map[string]float64),
		edges:       make(map[string]*Edge),
		edgeAttrs:   make(map[string]map[string]float64),
		adjacency:   make(map[string]map[string]string),
	}
}
