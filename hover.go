package twig

// hoverNode is implemented by RawComponents that interpret a layout, so the
// hover pass can see through them without knowing their event type. A nil
// hoverTarget marks a transparent wrapper that does not count as a level.
type hoverNode interface {
	hoverTarget() any
	hoverChildren(fn func(child any, offset Vec2))
}

// hoverEntry is one visited widget and the status it will be told.
type hoverEntry struct {
	listener HoverListener // nil when the widget does not listen
	status   HoveredStatus
}

// hoverPass computes the hit chain for one pointer position. The ancestors of
// a widget are the frames of the recursion; nothing stores parent links.
type hoverPass struct {
	pointer  Vec2
	visited  []hoverEntry
	depth    int
	maxDepth int
}

// walk visits node, placed at origin in the root's space, and returns its hit
// chain from the deepest widget up to node as indices into p.visited. An empty
// chain means the pointer is not over the subtree.
//
// A raw leaf is under the pointer when its own HitTest accepts it, the same
// test mouse dispatch uses. A layout widget with an explicit bounding box is
// under the pointer when the box, translated to origin, contains it;
// otherwise when one of its children is. When several siblings report a
// chain, the first one in layout order wins, matching mouse dispatch.
func (p *hoverPass) walk(node any, origin Vec2) []int {
	p.depth++
	if p.depth > p.maxDepth {
		p.maxDepth = p.depth
	}
	defer func() { p.depth-- }()

	target := node
	var chain []int
	hn, hasLayout := node.(hoverNode)
	if hasLayout {
		target = hn.hoverTarget()
		hn.hoverChildren(func(child any, offset Vec2) {
			c := p.walk(child, origin.Add(offset))
			if len(c) > 0 && len(chain) == 0 {
				chain = c
			}
		})
	}
	if target == nil {
		return chain
	}

	idx := len(p.visited)
	listener, _ := target.(HoverListener)
	p.visited = append(p.visited, hoverEntry{listener: listener})

	if !hasLayout {
		if ht, ok := node.(interface{ HitTest(Vec2) bool }); ok && ht.HitTest(p.pointer.Sub(origin)) {
			return []int{idx}
		}
		return nil
	}
	if bb, ok := target.(BoundingBoxer); ok {
		if box, ok := bb.BoundingBox(); ok {
			if !box.Translate(origin).Contains(p.pointer) {
				return nil
			}
			return append(chain, idx)
		}
	}
	if len(chain) == 0 {
		return nil
	}
	return append(chain, idx)
}

// resolve assigns Hovered to the deepest chain member, ChildHovered to the
// rest of the chain, and notifies every visited listener.
func (p *hoverPass) resolve(chain []int) {
	for i, idx := range chain {
		if i == 0 {
			p.visited[idx].status = Hovered
		} else {
			p.visited[idx].status = ChildHovered
		}
	}
	for _, e := range p.visited {
		if e.listener != nil {
			e.listener.SetHoveredStatus(e.status)
		}
	}
}

// hoverChain runs a hover pass over root for pointer and notifies listeners.
// It returns the pass so callers can inspect the visited set.
func hoverChain(root any, pointer Vec2) (*hoverPass, []int) {
	p := &hoverPass{pointer: pointer}
	chain := p.walk(root, Vec2{})
	p.resolve(chain)
	return p, chain
}
