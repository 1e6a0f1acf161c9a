package keep

// TransientStorage never retains anything. Every read is absent, so the
// resolver constructs a fresh instance on every resolution.
type TransientStorage struct{}

// NewTransientStorage creates a storage that retains nothing.
func NewTransientStorage() *TransientStorage {
	return &TransientStorage{}
}

// Instance implements Storage. It is always absent.
func (*TransientStorage) Instance() (any, bool) {
	return nil, false
}

// InstanceInGraph implements Storage. It is always absent.
func (*TransientStorage) InstanceInGraph(GraphID) (any, bool) {
	return nil, false
}

// SetInstance implements Storage. It is a no-op.
func (*TransientStorage) SetInstance(any, GraphID) {}

// GraphResolutionCompleted implements Storage. It is a no-op.
func (*TransientStorage) GraphResolutionCompleted() {}

// ResetInstance implements Storage. It is a no-op.
func (*TransientStorage) ResetInstance() {}
