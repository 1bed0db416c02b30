// Package curvature computes discrete curvature on the edges of a nerve graph.
//
// A curvature strategy implements Func: it receives a *core.Graph and returns
// one value per edge, keyed by edge ID (EdgeValues). Keying by ID instead of
// by position means a value can never slide onto the wrong edge when the
// graph's iteration order changes. Compute wraps any strategy and enforces the
// result contract: exactly one value for every edge, nothing else.
//
// Strategies:
//
//	OllivierRicci{Alpha}   – κ(x,y) = 1 − W₁(m_x, m_y) / d(x,y)   (default)
//	Forman{}               – κ(u,v) = 4 − deg(u) − deg(v)
//	FuncOf(name, fn)       – adapts a positional func(*core.Graph) ([]float64, error)
//
// Ollivier-Ricci:
//
//	m_x puts mass Alpha on x and (1−Alpha)/deg(x) on each neighbour of x.
//	W₁ is the optimal transport cost between m_x and m_y where moving one unit
//	of mass from a to b costs the hop distance d(a,b). It is solved as a
//	transportation linear program with gonum's simplex implementation. On an
//	unweighted graph d(x,y) = 1 for every edge.
//
// Errors:
//
//	ErrGraphNil        – nil graph
//	ErrNoCurvature     – the graph has no edges, so no curvature exists
//	ErrLengthMismatch  – a strategy returned values not matching the edge set
//	ErrInvalidAlpha    – Alpha outside [0, 1)
//	ErrTransport       – the transport LP could not be solved
package curvature
