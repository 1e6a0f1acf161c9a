package keep

import "slices"

// CompositeStorage delegates to an ordered list of strategies and
// presents their union: an instance is retained as long as any
// component would retain it. The component list is fixed at
// construction.
type CompositeStorage struct {
	components []Storage
}

// NewCompositeStorage creates a storage backed by the given components.
// Read precedence follows argument order.
func NewCompositeStorage(components ...Storage) *CompositeStorage {
	return &CompositeStorage{
		components: slices.Clone(components),
	}
}

// Instance implements Storage. It returns the first non-absent
// component result in list order.
func (s *CompositeStorage) Instance() (any, bool) {
	for _, c := range s.components {
		if instance, ok := c.Instance(); ok {
			return instance, true
		}
	}

	return nil, false
}

// InstanceInGraph implements Storage. It returns the first non-absent
// component result in list order, evaluated independently of Instance.
func (s *CompositeStorage) InstanceInGraph(graph GraphID) (any, bool) {
	for _, c := range s.components {
		if instance, ok := c.InstanceInGraph(graph); ok {
			return instance, true
		}
	}

	return nil, false
}

// SetInstance implements Storage. The write goes to every component;
// components that never retain simply ignore it.
func (s *CompositeStorage) SetInstance(value any, graph GraphID) {
	for _, c := range s.components {
		c.SetInstance(value, graph)
	}
}

// GraphResolutionCompleted implements Storage. It is forwarded to every
// component.
func (s *CompositeStorage) GraphResolutionCompleted() {
	for _, c := range s.components {
		c.GraphResolutionCompleted()
	}
}

// ResetInstance implements Storage. It is forwarded to every component.
func (s *CompositeStorage) ResetInstance() {
	for _, c := range s.components {
		c.ResetInstance()
	}
}
