package keep

// PermanentStorage strongly retains the single most recently stored
// instance until it is explicitly reset. This backs
// singleton-for-life-of-container semantics.
type PermanentStorage struct {
	instance any
}

// NewPermanentStorage creates a storage with strong singleton retention.
func NewPermanentStorage() *PermanentStorage {
	return &PermanentStorage{}
}

// Instance implements Storage.
func (s *PermanentStorage) Instance() (any, bool) {
	return s.instance, s.instance != nil
}

// InstanceInGraph implements Storage. The graph is ignored.
func (s *PermanentStorage) InstanceInGraph(GraphID) (any, bool) {
	return s.Instance()
}

// SetInstance implements Storage. The held instance is replaced
// unconditionally; the graph is ignored.
func (s *PermanentStorage) SetInstance(value any, _ GraphID) {
	s.instance = value
}

// GraphResolutionCompleted implements Storage. It is a no-op; the
// instance outlives resolution passes.
func (s *PermanentStorage) GraphResolutionCompleted() {}

// ResetInstance implements Storage.
func (s *PermanentStorage) ResetInstance() {
	s.instance = nil
}
