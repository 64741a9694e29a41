// ABOUTME: Arena storage for heap objects
// ABOUTME: Growable slot slice with a freelist for reclaimed slots

package heap

// arena owns the storage for every object. Slots are addressed by
// ObjRef; reclaimed slots go on a freelist and are reused before the
// slice grows. The arena knows nothing about reachability — lifetime
// decisions belong to the collector.
type arena struct {
	slots []object
	free  []ObjRef
}

// alloc stores obj in a free slot (reusing a reclaimed one if
// available) and returns its reference. Never fails.
func (a *arena) alloc(obj object) ObjRef {
	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[ref] = obj
		return ref
	}
	a.slots = append(a.slots, obj)
	return ObjRef(len(a.slots) - 1)
}

// at returns the slot for ref. Internal use on refs already known to be
// live (roots and registry links); callers taking refs from outside go
// through lookup instead.
func (a *arena) at(ref ObjRef) *object {
	return &a.slots[ref]
}

// lookup resolves ref to a live slot, or nil if ref is out of range or
// names a reclaimed slot.
func (a *arena) lookup(ref ObjRef) *object {
	if ref < 0 || int(ref) >= len(a.slots) {
		return nil
	}
	obj := &a.slots[ref]
	if obj.kind == kindFree {
		return nil
	}
	return obj
}

// release returns ref's slot to the freelist. The slot is poisoned with
// kindFree so lookup on a stale reference fails instead of reading
// reclaimed data.
func (a *arena) release(ref ObjRef) {
	a.slots[ref] = object{kind: kindFree, head: NilRef, tail: NilRef, next: NilRef}
	a.free = append(a.free, ref)
}
