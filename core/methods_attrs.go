// File: methods_attrs.go
// Role: Named float64 attributes on vertices and edges.
// Concurrency:
//   - Vertex attributes under muVert, edge attributes under muEdgeAdj.

package core

// SetVertexAttr sets attribute name on vertex id to value.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetVertexAttr(id, name string, value float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	attrs, ok := g.vertexAttrs[id]
	if !ok {
		attrs = make(map[string]float64)
		g.vertexAttrs[id] = attrs
	}
	attrs[name] = value

	return nil
}

// VertexAttr returns attribute name of vertex id.
//
// Errors:
//   - ErrVertexNotFound, ErrAttributeNotFound.
func (g *Graph) VertexAttr(id, name string) (float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	value, ok := g.vertexAttrs[id][name]
	if !ok {
		return 0, ErrAttributeNotFound
	}

	return value, nil
}

// VertexAttrs returns a snapshot of attribute name for every vertex that has it.
func (g *Graph) VertexAttrs(name string) map[string]float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make(map[string]float64, len(g.vertexAttrs))
	for id, attrs := range g.vertexAttrs {
		if value, ok := attrs[name]; ok {
			out[id] = value
		}
	}

	return out
}

// SetEdgeAttr sets attribute name on edge eid to value.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) SetEdgeAttr(eid, name string, value float64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.edges[eid]; !ok {
		return ErrEdgeNotFound
	}
	attrs, ok := g.edgeAttrs[eid]
	if !ok {
		attrs = make(map[string]float64)
		g.edgeAttrs[eid] = attrs
	}
	attrs[name] = value

	return nil
}

// EdgeAttr returns attribute name of edge eid.
//
// Errors:
//   - ErrEdgeNotFound, ErrAttributeNotFound.
func (g *Graph) EdgeAttr(eid, name string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.edges[eid]; !ok {
		return 0, ErrEdgeNotFound
	}
	value, ok := g.edgeAttrs[eid][name]
	if !ok {
		return 0, ErrAttributeNotFound
	}

	return value, nil
}

// EdgeAttrs returns a snapshot of attribute name for every edge that has it,
// keyed by edge ID.
func (g *Graph) EdgeAttrs(name string) map[string]float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make(map[string]float64, len(g.edgeAttrs))
	for eid, attrs := range g.edgeAttrs {
		if value, ok := attrs[name]; ok {
			out[eid] = value
		}
	}

	return out
}
