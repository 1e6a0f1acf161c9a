package keep

// WeakStorage retains an instance only as long as something else keeps
// it alive. Storing a pointer does not extend its lifetime; once the
// last strong owner releases it, reads report absent.
//
// Values with copy semantics can never be "the same instance" twice, so
// storing one is a deliberate no-op: the next read is absent immediately.
type WeakStorage struct {
	ref weakRef
}

// NewWeakStorage creates a storage with non-owning retention.
func NewWeakStorage() *WeakStorage {
	return &WeakStorage{}
}

// Instance implements Storage. It returns the stored instance while its
// target is still alive elsewhere.
func (s *WeakStorage) Instance() (any, bool) {
	return s.ref.value()
}

// InstanceInGraph implements Storage. The graph is ignored.
func (s *WeakStorage) InstanceInGraph(GraphID) (any, bool) {
	return s.Instance()
}

// SetInstance implements Storage. The graph is ignored.
func (s *WeakStorage) SetInstance(value any, _ GraphID) {
	ref, ok := makeWeakRef(value)
	if !ok {
		// Copy semantics: nothing to reference.
		s.ref = weakRef{}

		return
	}

	s.ref = ref
}

// GraphResolutionCompleted implements Storage. It is a no-op.
func (s *WeakStorage) GraphResolutionCompleted() {}

// ResetInstance implements Storage.
func (s *WeakStorage) ResetInstance() {
	s.ref = weakRef{}
}
