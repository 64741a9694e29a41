// ABOUTME: Core data types for the managed heap
// ABOUTME: Defines ObjRef, Kind, and the tagged object representation

package heap

// ObjRef is an index into the heap's arena identifying a single object.
// All object-to-object edges (pair head/tail, the registry chain, the
// root stack) are ObjRefs rather than pointers, so the arena is the only
// owner of object storage.
type ObjRef int32

// NilRef is the absent reference, used to terminate the registry chain.
const NilRef ObjRef = -1

// Kind is the tag of a heap object.
type Kind uint8

const (
	// KindInt is a leaf object holding an unsigned integer value.
	KindInt Kind = iota
	// KindPair is a composite object with exactly two outgoing edges.
	KindPair
	// kindFree marks a reclaimed arena slot awaiting reuse.
	kindFree
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPair:
		return "pair"
	default:
		return "free"
	}
}

// object is a single heap cell. head/tail are only meaningful for
// KindPair, value only for KindInt. next links the object into the
// registry chain anchored at Heap.firstObject, newest first; it is an
// enumeration of allocations, not a reachability relation.
type object struct {
	kind   Kind
	value  uint64 // KindInt payload
	head   ObjRef // KindPair first edge
	tail   ObjRef // KindPair second edge
	marked bool   // transient, collector use only
	next   ObjRef // registry chain
}
