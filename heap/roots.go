// ABOUTME: Bounded stack of GC roots
// ABOUTME: Every reference on the stack is a starting point for marking

package heap

// rootStack is a fixed-capacity stack of references the collector
// treats as always reachable. It holds non-owning ObjRefs: popping a
// reference does not free anything, it only stops rooting it.
type rootStack struct {
	refs []ObjRef
	max  int
}

func newRootStack(max int) rootStack {
	return rootStack{refs: make([]ObjRef, 0, max), max: max}
}

func (s *rootStack) push(ref ObjRef) error {
	if len(s.refs) >= s.max {
		return ErrStackOverflow
	}
	s.refs = append(s.refs, ref)
	return nil
}

func (s *rootStack) pop() (ObjRef, error) {
	n := len(s.refs)
	if n == 0 {
		return NilRef, ErrStackUnderflow
	}
	ref := s.refs[n-1]
	s.refs = s.refs[:n-1]
	return ref, nil
}

func (s *rootStack) len() int {
	return len(s.refs)
}

func (s *rootStack) full() bool {
	return len(s.refs) >= s.max
}
