package curvature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/jmapper/bfs"
	"github.com/katalvlaran/jmapper/core"
)

// transportTol is the simplex tolerance and the mass balance tolerance.
const transportTol = 1e-10

// measureRadius bounds the distances W₁ needs: supports of m_x and m_y lie
// within one hop of adjacent x and y, so no pair is further than 3 apart.
const measureRadius = 3

// OllivierRicci is the Ollivier-Ricci curvature with idleness Alpha.
type OllivierRicci struct {
	// Alpha is the mass a vertex keeps on itself; 0 spreads all mass
	// uniformly over the neighbours.
	Alpha float64
}

// Name implements Func.
func (OllivierRicci) Name() string { return "ollivier-ricci" }

// measure is a finitely supported probability distribution over vertices.
type measure struct {
	support []string
	mass    []float64
}

// Compute implements Func.
func (o OllivierRicci) Compute(g *core.Graph) (EdgeValues, error) {
	if o.Alpha < 0 || o.Alpha >= 1 || math.IsNaN(o.Alpha) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAlpha, o.Alpha)
	}

	measures := make(map[string]measure)
	dist := newDistanceCache(g)
	edges := g.Edges()
	out := make(EdgeValues, len(edges))
	for _, e := range edges {
		mx, err := o.measureOf(g, measures, e.From)
		if err != nil {
			return nil, err
		}
		my, err := o.measureOf(g, measures, e.To)
		if err != nil {
			return nil, err
		}
		w, err := wasserstein(mx, my, dist.between)
		if err != nil {
			return nil, fmt.Errorf("edge %s (%s-%s): %w", e.ID, e.From, e.To, err)
		}
		// d(x,y) = 1 for adjacent vertices of an unweighted graph.
		out[e.ID] = 1 - w
	}

	return out, nil
}

// measureOf returns (and caches) m_x.
func (o OllivierRicci) measureOf(g *core.Graph, cache map[string]measure, x string) (measure, error) {
	if m, ok := cache[x]; ok {
		return m, nil
	}
	nbrs, err := g.NeighborIDs(x)
	if err != nil {
		return measure{}, err
	}
	var m measure
	if o.Alpha > 0 || len(nbrs) == 0 {
		self := o.Alpha
		if len(nbrs) == 0 {
			self = 1
		}
		m.support = append(m.support, x)
		m.mass = append(m.mass, self)
	}
	if len(nbrs) > 0 {
		share := (1 - o.Alpha) / float64(len(nbrs))
		for _, nbr := range nbrs {
			m.support = append(m.support, nbr)
			m.mass = append(m.mass, share)
		}
	}
	cache[x] = m

	return m, nil
}

// distanceCache memoizes bounded BFS distances per source vertex.
type distanceCache struct {
	g    *core.Graph
	from map[string]map[string]int
}

func newDistanceCache(g *core.Graph) *distanceCache {
	return &distanceCache{g: g, from: make(map[string]map[string]int)}
}

// between returns the hop distance from a to b, or +Inf when b is further
// than measureRadius or unreachable.
func (c *distanceCache) between(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	d, ok := c.from[a]
	if !ok {
		res, err := bfs.BFS(c.g, a, bfs.WithMaxDepth(measureRadius))
		if err != nil {
			return 0, err
		}
		d = res.Depth
		c.from[a] = d
	}
	hops, ok := d[b]
	if !ok {
		return math.Inf(1), nil
	}

	return float64(hops), nil
}

// wasserstein returns the W₁ distance between mu and nu under cost.
//
// The transportation problem
//
//	min Σ π_ij·c_ij  s.t.  Σ_j π_ij = mu_i,  Σ_i π_ij = nu_j,  π ≥ 0
//
// has one redundant equality (both marginals sum to 1), so the last column
// constraint is dropped to give the simplex a full-rank system.
func wasserstein(mu, nu measure, cost func(a, b string) (float64, error)) (float64, error) {
	if math.Abs(floats.Sum(mu.mass)-floats.Sum(nu.mass)) > transportTol {
		return 0, fmt.Errorf("%w: unbalanced measures", ErrTransport)
	}
	m, n := len(mu.support), len(nu.support)
	c := make([]float64, m*n)
	for i, a := range mu.support {
		for j, b := range nu.support {
			d, err := cost(a, b)
			if err != nil {
				return 0, err
			}
			if math.IsInf(d, 1) {
				return 0, fmt.Errorf("%w: %s and %s are disconnected", ErrTransport, a, b)
			}
			c[i*n+j] = d
		}
	}

	// A point mass on either side leaves a single feasible plan.
	switch {
	case m == 1:
		return floats.Dot(nu.mass, c), nil
	case n == 1:
		return floats.Dot(mu.mass, c), nil
	}

	rows := m + n - 1
	A := mat.NewDense(rows, m*n, nil)
	b := make([]float64, rows)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, i*n+j, 1)
		}
		b[i] = mu.mass[i]
	}
	for j := 0; j < n-1; j++ {
		for i := 0; i < m; i++ {
			A.Set(m+j, i*n+j, 1)
		}
		b[m+j] = nu.mass[j]
	}

	opt, _, err := lp.Simplex(c, A, b, transportTol, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return opt, nil
}
