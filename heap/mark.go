// ABOUTME: Mark phase of the collector
// ABOUTME: Worklist traversal flagging everything reachable from the roots

package heap

// markAll flags every object reachable from the root stack. It uses an
// explicit worklist rather than recursion so arbitrarily deep chains
// cannot overflow the call stack. The marked check before expanding a
// node is what terminates traversal on cyclic graphs.
func (h *Heap) markAll() {
	work := make([]ObjRef, h.roots.len())
	copy(work, h.roots.refs)

	for len(work) > 0 {
		ref := work[len(work)-1]
		work = work[:len(work)-1]

		obj := h.arena.at(ref)
		if obj.marked {
			continue
		}
		obj.marked = true

		if obj.kind == KindPair {
			// tail below head so the head is visited first
			work = append(work, obj.tail, obj.head)
		}
	}
}

// Reachable counts the objects reachable from the root stack without
// touching mark bits, so it can run between collections. A collection
// immediately after would leave exactly this many objects live.
func (h *Heap) Reachable() int {
	seen := make(map[ObjRef]bool, h.numObjects)
	work := make([]ObjRef, h.roots.len())
	copy(work, h.roots.refs)

	for len(work) > 0 {
		ref := work[len(work)-1]
		work = work[:len(work)-1]

		if seen[ref] {
			continue
		}
		seen[ref] = true

		obj := h.arena.at(ref)
		if obj.kind == KindPair {
			work = append(work, obj.tail, obj.head)
		}
	}
	return len(seen)
}
