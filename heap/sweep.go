// ABOUTME: Sweep phase of the collector
// ABOUTME: Reclaims unmarked objects and clears mark bits on survivors

package heap

// sweep walks the registry chain once. Unmarked objects are unlinked
// and their slots released; marked objects have their bit cleared for
// the next cycle. The successor is read before a slot is released,
// since releasing invalidates it.
func (h *Heap) sweep() {
	prev := NilRef
	ref := h.firstObject

	for ref != NilRef {
		obj := h.arena.at(ref)
		next := obj.next

		if !obj.marked {
			if prev == NilRef {
				h.firstObject = next
			} else {
				h.arena.at(prev).next = next
			}
			h.arena.release(ref)
			h.numObjects--
		} else {
			obj.marked = false
			prev = ref
		}

		ref = next
	}
}
