package energy

import "math"

// Minimize computes the minimum s-t cut via the Boykov-Kolmogorov
// augmenting-path algorithm and returns the total energy of the cut: the
// max-flow value plus the constant energy folded in by AddTerm1/AddTerm2.
// After Minimize returns, VertexColor reports each node's side of the
// cut.
func (g *Graph) Minimize() int64 {
	g.initTrees()

	var flow int64
	for {
		u, v, connector := g.grow()
		if connector < 0 {
			break
		}
		flow += g.augment(u, v, connector)
		g.adopt()
	}

	return flow + g.constant
}

// initTrees seeds the source and sink search trees from each node's
// terminal capacity.
func (g *Graph) initTrees() {
	for i := range g.nodes {
		n := &g.nodes[i]
		switch {
		case n.trCap > 0:
			n.color = Source
			n.isRoot = true
			g.activate(i)
		case n.trCap < 0:
			n.color = Sink
			n.isRoot = true
			g.activate(i)
		default:
			n.color = Free
		}
	}
}

func (g *Graph) activate(v int) {
	if !g.nodes[v].active {
		g.nodes[v].active = true
		g.queue = append(g.queue, v)
	}
}

// grow drains the active queue, extending the search trees until it
// finds an arc connecting a source-tree node to a sink-tree node with
// positive residual capacity, or exhausts the queue. It returns the
// source-tree endpoint, the sink-tree endpoint, and the arena index of
// the connecting arc (-1 if no augmenting path remains).
func (g *Graph) grow() (int, int, int) {
	for len(g.queue) > 0 {
		p := g.queue[0]
		g.queue = g.queue[1:]
		if !g.nodes[p].active {
			continue
		}

		pColor := g.nodes[p].color
		if pColor == Free {
			g.nodes[p].active = false
			continue
		}

		for _, a := range g.nodes[p].outArcs {
			q := g.arcs[a].to
			qColor := g.nodes[q].color

			if qColor == Free {
				var claimArc int64
				if pColor == Source {
					claimArc = g.arcs[a].rCap
				} else {
					claimArc = g.arcs[g.arcs[a].sister].rCap
				}
				if claimArc > 0 {
					g.nodes[q].color = pColor
					g.nodes[q].parentArc = g.arcs[a].sister
					g.nodes[q].isRoot = false
					g.activate(q)
				}
				continue
			}

			if qColor == pColor {
				continue
			}

			// p and q belong to opposite trees: a connecting edge.
			if pColor == Source {
				if g.arcs[a].rCap > 0 {
					g.nodes[p].active = true
					g.queue = append([]int{p}, g.queue...)

					return p, q, a
				}
			} else {
				sister := g.arcs[a].sister
				if g.arcs[sister].rCap > 0 {
					g.nodes[p].active = true
					g.queue = append([]int{p}, g.queue...)

					return q, p, sister
				}
			}
		}

		g.nodes[p].active = false
	}

	return -1, -1, -1
}

// pushArc returns the arena index of the arc carrying flow between a
// child and its tree parent in the direction flow must travel:
// parent->child for the source tree, child->parent for the sink tree.
func (g *Graph) pushArc(childParentArc int, sourceTree bool) int {
	if sourceTree {
		return g.arcs[childParentArc].sister
	}

	return childParentArc
}

// treeBottleneck returns the smallest residual capacity along the path
// from leaf up to its tree's root, including the root's terminal
// capacity.
func (g *Graph) treeBottleneck(leaf int, sourceTree bool) int64 {
	b := int64(math.MaxInt64)
	v := leaf
	for g.nodes[v].parentArc != -1 {
		pa := g.nodes[v].parentArc
		if r := g.arcs[g.pushArc(pa, sourceTree)].rCap; r < b {
			b = r
		}
		v = g.arcs[pa].to
	}

	if sourceTree {
		if g.nodes[v].trCap < b {
			b = g.nodes[v].trCap
		}
	} else {
		if abs := -g.nodes[v].trCap; abs < b {
			b = abs
		}
	}

	return b
}

// treePush pushes amount units of flow from leaf to its tree's root,
// marking any node whose parent edge saturates as an orphan.
func (g *Graph) treePush(leaf int, sourceTree bool, amount int64) {
	v := leaf
	for g.nodes[v].parentArc != -1 {
		pa := g.nodes[v].parentArc
		idx := g.pushArc(pa, sourceTree)
		g.arcs[idx].rCap -= amount
		g.arcs[g.arcs[idx].sister].rCap += amount

		next := g.arcs[pa].to
		if g.arcs[idx].rCap == 0 {
			g.nodes[v].parentArc = -1
			g.markOrphan(v)
		}
		v = next
	}

	if sourceTree {
		g.nodes[v].trCap -= amount
	} else {
		g.nodes[v].trCap += amount
	}
}

// augment pushes the maximum flow along the path root(source)->u->v->
// root(sink) through the connector arc, and returns the amount pushed.
func (g *Graph) augment(u, v, connector int) int64 {
	bottleneck := g.treeBottleneck(u, true)
	if b := g.treeBottleneck(v, false); b < bottleneck {
		bottleneck = b
	}
	if r := g.arcs[connector].rCap; r < bottleneck {
		bottleneck = r
	}

	g.arcs[connector].rCap -= bottleneck
	g.arcs[g.arcs[connector].sister].rCap += bottleneck
	g.treePush(u, true, bottleneck)
	g.treePush(v, false, bottleneck)

	return bottleneck
}

func (g *Graph) markOrphan(v int) {
	if !g.nodes[v].isOrphan {
		g.nodes[v].isOrphan = true
		g.orphans = append(g.orphans, v)
	}
}

// adopt resolves every pending orphan: each either finds a new valid
// parent within its own tree, or is freed from its tree, cascading the
// free to any of its former children.
func (g *Graph) adopt() {
	for len(g.orphans) > 0 {
		o := g.orphans[len(g.orphans)-1]
		g.orphans = g.orphans[:len(g.orphans)-1]
		if !g.nodes[o].isOrphan {
			continue
		}

		color := g.nodes[o].color
		adopted := false
		for _, a := range g.nodes[o].outArcs {
			p := g.arcs[a].to
			np := &g.nodes[p]
			if np.color != color || np.isOrphan {
				continue
			}
			if !np.isRoot && np.parentArc == -1 {
				continue
			}

			var capArc int
			if color == Source {
				capArc = g.arcs[a].sister
			} else {
				capArc = a
			}
			if g.arcs[capArc].rCap > 0 {
				g.nodes[o].parentArc = a
				g.nodes[o].isOrphan = false
				g.activate(o)
				adopted = true
				break
			}
		}

		if adopted {
			continue
		}

		g.nodes[o].color = Free
		g.nodes[o].isOrphan = false
		g.nodes[o].isRoot = false
		g.nodes[o].parentArc = -1
		g.nodes[o].active = false

		for _, a := range g.nodes[o].outArcs {
			x := g.arcs[a].to
			nx := &g.nodes[x]
			if nx.color == color && nx.parentArc != -1 && g.arcs[nx.parentArc].to == o {
				nx.parentArc = -1
				g.markOrphan(x)
			}
		}
	}
}
