package keep

// InstanceAs returns the stored instance as T. A stored instance of an
// incompatible type is indistinguishable from nothing stored: both read
// absent, and the caller constructs anew either way.
func InstanceAs[T any](s Storage) (T, bool) {
	instance, ok := s.Instance()
	if !ok {
		var zero T

		return zero, false
	}

	typed, ok := instance.(T)
	if !ok {
		var zero T

		return zero, false
	}

	return typed, true
}

// InstanceInGraphAs is the graph-scoped variant of InstanceAs.
func InstanceInGraphAs[T any](s Storage, graph GraphID) (T, bool) {
	instance, ok := s.InstanceInGraph(graph)
	if !ok {
		var zero T

		return zero, false
	}

	typed, ok := instance.(T)
	if !ok {
		var zero T

		return zero, false
	}

	return typed, true
}

// Typed provides a homogeneously typed view over a Storage, so callers
// that know the instance type at the storage's construction site never
// see a runtime type check fail.
//
// Example:
//
//	storage := NewTyped[*Database](GraphScope.NewStorage())
//	storage.SetInstance(db, graph)
//	db, ok := storage.Instance()
type Typed[T any] struct {
	storage Storage
}

// NewTyped wraps storage with a concrete instance type.
func NewTyped[T any](storage Storage) Typed[T] {
	return Typed[T]{storage: storage}
}

// Instance returns the stored instance as T.
func (t Typed[T]) Instance() (T, bool) {
	return InstanceAs[T](t.storage)
}

// InstanceInGraph returns the instance stored for the given graph as T.
func (t Typed[T]) InstanceInGraph(graph GraphID) (T, bool) {
	return InstanceInGraphAs[T](t.storage, graph)
}

// SetInstance stores a freshly resolved instance.
func (t Typed[T]) SetInstance(value T, graph GraphID) {
	t.storage.SetInstance(value, graph)
}

// GraphResolutionCompleted signals that a top-level resolution pass has
// finished.
func (t Typed[T]) GraphResolutionCompleted() {
	t.storage.GraphResolutionCompleted()
}

// ResetInstance clears the currently stored instance.
func (t Typed[T]) ResetInstance() {
	t.storage.ResetInstance()
}

// Storage returns the underlying untyped storage.
func (t Typed[T]) Storage() Storage {
	return t.storage
}
