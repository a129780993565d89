package energy

// arc is one directed capacitated edge in the arena. Arcs are always
// allocated in forward/reverse pairs; sister is the index of the other
// half of the pair.
type arc struct {
	to     int
	rCap   int64
	sister int
}

// node is one site's entry in the graph. outArcs lists the arena indices
// of arcs leaving this node. trCap is the node's net terminal capacity:
// positive means an edge of that capacity from the source, negative means
// an edge of abs(trCap) to the sink, zero means no terminal edge.
type node struct {
	outArcs   []int
	parentArc int // arena index of the arc from this node to its tree parent, or -1
	trCap     int64
	color     Color
	isRoot    bool
	isOrphan  bool
	active    bool
}

// Graph is an arena-based capacitated graph for one alpha-expansion move.
// Nodes persist across Recycle calls; arcs do not: Recycle discards every
// arc and resets terminal capacities and tree state, and the next move
// re-adds its arcs into the retained backing arrays.
type Graph struct {
	nodes    []node
	arcs     []arc
	opts     Options
	constant int64 // energy contributed by overlapping terminal capacities

	queue   []int
	orphans []int
}

// NewGraph returns an empty graph configured by opts.
func NewGraph(opts Options) *Graph {
	return &Graph{opts: opts}
}

// AddVariable allocates a new node and returns its handle.
func (g *Graph) AddVariable() int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, node{parentArc: -1})

	return id
}

// NumVariables returns the number of nodes allocated so far.
func (g *Graph) NumVariables() int {
	return len(g.nodes)
}

// addEdge appends a forward/reverse arc pair u->v (capacity capUV) and
// v->u (capacity capVU), threading both into their tail node's adjacency
// list.
func (g *Graph) addEdge(u, v int, capUV, capVU int64) {
	a := len(g.arcs)
	g.arcs = append(g.arcs, arc{to: v, rCap: capUV, sister: a + 1})
	g.arcs = append(g.arcs, arc{to: u, rCap: capVU, sister: a})
	g.nodes[u].outArcs = append(g.nodes[u].outArcs, a)
	g.nodes[v].outArcs = append(g.nodes[v].outArcs, a+1)
}

// addTweights folds a (source, sink) terminal capacity pair into v's net
// trCap, accumulating the overlapping portion as constant energy. Mirrors
// the standard add_tweights routine used by Kolmogorov-Zabih style
// energy-minimization graphs.
func (g *Graph) addTweights(v int, capSource, capSink int64) {
	delta := g.nodes[v].trCap
	if delta > 0 {
		capSource += delta
	} else {
		capSink -= delta
	}
	if capSource < capSink {
		g.constant += capSource
	} else {
		g.constant += capSink
	}
	g.nodes[v].trCap = capSource - capSink
}

// AddTerm1 adds a unary cost to v: A if v keeps its current label, B if v
// switches to the trial label (the sink side of the cut).
func (g *Graph) AddTerm1(v int, a, b int64) {
	g.addTweights(v, b, a)
}

// AddTerm2 adds a pairwise cost between chain-adjacent sites u and v,
// where the four arguments are the cost of the (u,v) label pair in the
// order (keep,keep), (keep,switch), (switch,keep), (switch,switch). The
// term is decomposed into terminal and edge capacities via the standard
// Kolmogorov-Zabih construction; a non-submodular term (keepSwitch +
// switchKeep < keepKeep + switchSwitch) is handled per g.opts.
func (g *Graph) AddTerm2(u, v int, keepKeep, keepSwitch, switchKeep, switchSwitch int64) error {
	a, b, c, d := keepKeep, keepSwitch, switchKeep, switchSwitch
	if b+c < a+d {
		switch g.opts.OnNonSubmodular {
		case Reject:
			b, c = a, d
		case Fail:
			return ErrNonSubmodular
		default: // Heal
			heal(&a, &b, &c, &d)
		}
	}

	g.addTweights(u, d, a)
	b -= a
	c -= d

	switch {
	case b < 0:
		g.addTweights(u, 0, b)
		g.addTweights(v, 0, -b)
		g.addEdge(u, v, 0, b+c)
	case c < 0:
		g.addTweights(u, -c, 0)
		g.addTweights(v, c, 0)
		g.addEdge(u, v, b+c, 0)
	default:
		g.addEdge(u, v, b, c)
	}

	return nil
}

// heal increments keepSwitch, then switchKeep, then decrements keepKeep
// in round-robin until the term is submodular, at a total energy cost
// bounded by the number of steps taken.
func heal(keepKeep, keepSwitch, switchKeep, switchSwitch *int64) {
	for i := 0; *keepSwitch+*switchKeep < *keepKeep+*switchSwitch; i++ {
		switch i % 3 {
		case 0:
			*keepSwitch++
		case 1:
			*switchKeep++
		default:
			*keepKeep--
		}
	}
}

// Recycle keeps the node set, removes all arcs (forward and reverse), and
// resets terminal capacities and tree state. The arc topology is not kept:
// the next move adds its arcs again, reusing the slices' backing arrays.
func (g *Graph) Recycle() {
	g.arcs = g.arcs[:0]
	g.constant = 0
	g.queue = g.queue[:0]
	g.orphans = g.orphans[:0]
	for i := range g.nodes {
		g.nodes[i].outArcs = g.nodes[i].outArcs[:0]
		g.nodes[i].parentArc = -1
		g.nodes[i].trCap = 0
		g.nodes[i].color = Free
		g.nodes[i].isRoot = false
		g.nodes[i].isOrphan = false
		g.nodes[i].active = false
	}
}

// VertexColor returns the search tree that owns v after Minimize has run.
func (g *Graph) VertexColor(v int) Color {
	return g.nodes[v].color
}
