package keep

// GraphStorage retains the in-flight instance of one resolution pass.
// Two independent channels:
//
//  1. The current instance, retained strongly from SetInstance until
//     GraphResolutionCompleted. This lets cyclic or shared
//     sub-dependencies within a single pass reuse the instance instead
//     of reconstructing it, without leaking it into the next pass.
//  2. A per-graph map of non-owning slots, keyed by GraphID, for
//     referencing "this same resolution" across nested lookups. Entries
//     are created lazily and never evicted; a slot whose target was
//     reclaimed simply reads absent.
type GraphStorage struct {
	current   any
	instances map[GraphID]weakRef
}

// NewGraphStorage creates a storage scoped to resolution passes.
func NewGraphStorage() *GraphStorage {
	return &GraphStorage{
		instances: make(map[GraphID]weakRef),
	}
}

// Instance implements Storage. It returns the current in-pass instance.
func (s *GraphStorage) Instance() (any, bool) {
	return s.current, s.current != nil
}

// InstanceInGraph implements Storage. It returns the instance stored
// for the given graph while its target is still alive.
func (s *GraphStorage) InstanceInGraph(graph GraphID) (any, bool) {
	ref, ok := s.instances[graph]
	if !ok {
		return nil, false
	}

	return ref.value()
}

// SetInstance implements Storage. The current-instance slot is set
// regardless of graph; a non-zero graph additionally records the value
// in that graph's non-owning slot.
func (s *GraphStorage) SetInstance(value any, graph GraphID) {
	s.current = value

	if graph.IsZero() {
		return
	}

	// The entry is recorded even when the value has copy semantics and
	// cannot be weakly referenced; it then reads absent, matching a
	// reclaimed target.
	ref, ok := makeWeakRef(value)
	if !ok {
		ref = weakRef{}
	}

	s.instances[graph] = ref
}

// GraphResolutionCompleted implements Storage. The current instance is
// dropped so it cannot leak into the next independent pass; per-graph
// slots remain addressable but are not kept alive by this storage.
func (s *GraphStorage) GraphResolutionCompleted() {
	s.current = nil
}

// ResetInstance implements Storage. It clears the current instance
// only, mirroring GraphResolutionCompleted.
func (s *GraphStorage) ResetInstance() {
	s.current = nil
}
