// ABOUTME: Heap facade tying arena, root stack, and collector together
// ABOUTME: Provides allocation with a count-based collection trigger

// Package heap implements a small managed heap with an explicit root
// stack and a stop-the-world mark-and-sweep collector. Objects are ints
// or pairs; pair edges may form arbitrary graphs, including cycles, and
// the collector reclaims exactly what the roots cannot reach.
//
// A Heap is not safe for concurrent use; every operation runs to
// completion on the caller's goroutine.
package heap

import (
	"fmt"
	"io"
	"os"
)

// DefaultMaxObjects is the live-object threshold a new heap starts
// with. After each collection the threshold becomes twice the number of
// surviving objects.
const DefaultMaxObjects = 8

// CollectStats describes a single completed collection cycle.
type CollectStats struct {
	Reclaimed int // objects swept this cycle
	Live      int // objects remaining after the cycle
}

// Stats holds lifetime counters for a heap.
type Stats struct {
	Collections    int // completed collection cycles
	TotalReclaimed int // objects swept across all cycles
	Live           int // currently allocated objects
	Threshold      int // live-object count that forces the next collection
}

// Heap is one independent collected heap: the object arena, the root
// stack, and the allocation trigger. Multiple heaps can coexist; they
// share no state.
type Heap struct {
	arena arena
	roots rootStack

	firstObject ObjRef // registry chain head, newest allocation first
	numObjects  int
	maxObjects  int

	collections    int
	totalReclaimed int

	out io.Writer // collection summary sink
}

// New creates an empty heap whose root stack holds at most maxStackSize
// references. Collection summaries go to os.Stdout until SetOutput.
func New(maxStackSize int) *Heap {
	return &Heap{
		roots:       newRootStack(maxStackSize),
		firstObject: NilRef,
		maxObjects:  DefaultMaxObjects,
		out:         os.Stdout,
	}
}

// SetOutput redirects the per-collection summary line. Pass io.Discard
// to silence it.
func (h *Heap) SetOutput(w io.Writer) {
	h.out = w
}

// PushInt allocates an int object, pushes it onto the root stack, and
// returns its reference. Returns ErrStackOverflow if the root stack is
// full; the heap is left unchanged on failure.
func (h *Heap) PushInt(value uint64) (ObjRef, error) {
	if h.roots.full() {
		return NilRef, ErrStackOverflow
	}
	h.maybeCollect()
	ref := h.allocate(object{kind: KindInt, value: value, head: NilRef, tail: NilRef})
	if err := h.roots.push(ref); err != nil {
		return NilRef, err
	}
	return ref, nil
}

// PushPair pops two references — the first pop becomes the new pair's
// tail, the second its head — allocates a pair from them, pushes the
// pair's reference, and returns it. The operands are consumed: only the
// pair ends up on the stack. Returns ErrStackUnderflow if fewer than
// two references are on the stack; the heap is left unchanged on
// failure.
func (h *Heap) PushPair() (ObjRef, error) {
	if h.roots.len() < 2 {
		return NilRef, ErrStackUnderflow
	}
	// Trigger before popping so a collection still sees both operands
	// as roots.
	h.maybeCollect()
	tail, err := h.roots.pop()
	if err != nil {
		return NilRef, err
	}
	head, err := h.roots.pop()
	if err != nil {
		return NilRef, err
	}
	ref := h.allocate(object{kind: KindPair, head: head, tail: tail})
	if err := h.roots.push(ref); err != nil {
		return NilRef, err
	}
	return ref, nil
}

// Push places an existing reference back on the root stack. Returns
// ErrInvalidRef for NilRef, out-of-range, or reclaimed references: only
// live references may become roots, which keeps the mark phase free of
// validity checks.
func (h *Heap) Push(ref ObjRef) error {
	if h.arena.lookup(ref) == nil {
		return ErrInvalidRef
	}
	return h.roots.push(ref)
}

// Pop removes and returns the most recently pushed reference. The
// object itself stays allocated until a collection finds it
// unreachable.
func (h *Heap) Pop() (ObjRef, error) {
	return h.roots.pop()
}

// SetPairTail replaces the tail edge of a pair. Returns ErrInvalidRef
// if either reference is not a live object and ErrTypeMismatch if pair
// does not refer to a pair. Edges always point at live objects, so
// collection cannot fail; mutating them can create or break cycles but
// never affects registry membership.
func (h *Heap) SetPairTail(pair, newTail ObjRef) error {
	obj := h.arena.lookup(pair)
	if obj == nil || h.arena.lookup(newTail) == nil {
		return ErrInvalidRef
	}
	if obj.kind != KindPair {
		return ErrTypeMismatch
	}
	obj.tail = newTail
	return nil
}

// SetPairHead replaces the head edge of a pair. Returns ErrInvalidRef
// if either reference is not a live object and ErrTypeMismatch if pair
// does not refer to a pair.
func (h *Heap) SetPairHead(pair, newHead ObjRef) error {
	obj := h.arena.lookup(pair)
	if obj == nil || h.arena.lookup(newHead) == nil {
		return ErrInvalidRef
	}
	if obj.kind != KindPair {
		return ErrTypeMismatch
	}
	obj.head = newHead
	return nil
}

// Collect runs a full synchronous mark-and-sweep cycle: mark everything
// reachable from the root stack, sweep the rest, then allow the heap to
// double before the next forced collection. One summary line is written
// per cycle.
func (h *Heap) Collect() CollectStats {
	before := h.numObjects

	h.markAll()
	h.sweep()

	h.maxObjects = h.numObjects * 2

	stats := CollectStats{Reclaimed: before - h.numObjects, Live: h.numObjects}
	h.collections++
	h.totalReclaimed += stats.Reclaimed

	if h.out != nil {
		fmt.Fprintf(h.out, "Collected %d objects, %d remaining.\n", stats.Reclaimed, stats.Live)
	}
	return stats
}

// Kind returns the kind of the referenced object, or ErrInvalidRef if
// ref is not a live object.
func (h *Heap) Kind(ref ObjRef) (Kind, error) {
	obj := h.arena.lookup(ref)
	if obj == nil {
		return kindFree, ErrInvalidRef
	}
	return obj.kind, nil
}

// IntValue returns the payload of an int object. Returns ErrInvalidRef
// for a dead reference and ErrTypeMismatch for a pair.
func (h *Heap) IntValue(ref ObjRef) (uint64, error) {
	obj := h.arena.lookup(ref)
	if obj == nil {
		return 0, ErrInvalidRef
	}
	if obj.kind != KindInt {
		return 0, ErrTypeMismatch
	}
	return obj.value, nil
}

// PairHead returns the head edge of a pair object. Returns
// ErrInvalidRef for a dead reference and ErrTypeMismatch for an int.
func (h *Heap) PairHead(ref ObjRef) (ObjRef, error) {
	obj := h.arena.lookup(ref)
	if obj == nil {
		return NilRef, ErrInvalidRef
	}
	if obj.kind != KindPair {
		return NilRef, ErrTypeMismatch
	}
	return obj.head, nil
}

// PairTail returns the tail edge of a pair object. Returns
// ErrInvalidRef for a dead reference and ErrTypeMismatch for an int.
func (h *Heap) PairTail(ref ObjRef) (ObjRef, error) {
	obj := h.arena.lookup(ref)
	if obj == nil {
		return NilRef, ErrInvalidRef
	}
	if obj.kind != KindPair {
		return NilRef, ErrTypeMismatch
	}
	return obj.tail, nil
}

// ForEachObject iterates over every allocated object in registry order,
// newest allocation first. The callback must not allocate or collect.
func (h *Heap) ForEachObject(fn func(ObjRef)) {
	for ref := h.firstObject; ref != NilRef; ref = h.arena.at(ref).next {
		fn(ref)
	}
}

// NumObjects returns the number of currently allocated objects.
func (h *Heap) NumObjects() int {
	return h.numObjects
}

// MaxObjects returns the live-object count that will force a collection
// before the next allocation.
func (h *Heap) MaxObjects() int {
	return h.maxObjects
}

// RootLen returns the number of references on the root stack.
func (h *Heap) RootLen() int {
	return h.roots.len()
}

// Stats returns lifetime heap counters.
func (h *Heap) Stats() Stats {
	return Stats{
		Collections:    h.collections,
		TotalReclaimed: h.totalReclaimed,
		Live:           h.numObjects,
		Threshold:      h.maxObjects,
	}
}

// maybeCollect runs a collection if the live-object count has reached
// the threshold. Called before every allocation.
func (h *Heap) maybeCollect() {
	if h.numObjects >= h.maxObjects {
		h.Collect()
	}
}

// allocate links obj into the registry as the new chain head and
// returns its reference. The trigger has already run by the time this
// is called.
func (h *Heap) allocate(obj object) ObjRef {
	obj.marked = false
	obj.next = h.firstObject
	ref := h.arena.alloc(obj)
	h.firstObject = ref
	h.numObjects++
	return ref
}
