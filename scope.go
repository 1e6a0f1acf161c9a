package keep

// Scope names an instance lifetime policy and knows how to create the
// storage backing it. A container typically creates one storage per
// registration via the registration's scope.
type Scope struct {
	name    string
	factory func() Storage
}

// NewScope creates a custom scope. The factory is invoked once per
// registration that uses the scope.
func NewScope(name string, factory func() Storage) Scope {
	return Scope{name: name, factory: factory}
}

// Name returns the scope's name.
func (s Scope) Name() string {
	return s.name
}

// String implements fmt.Stringer.
func (s Scope) String() string {
	return s.name
}

// NewStorage creates a fresh storage instance for one registration.
func (s Scope) NewStorage() Storage {
	return s.factory()
}

// Standard scopes.
var (
	// TransientScope never shares instances; every resolution
	// constructs a fresh one.
	TransientScope = NewScope("transient", func() Storage {
		return NewTransientStorage()
	})

	// GraphScope shares an instance within a single resolution pass and
	// drops it when the pass completes.
	GraphScope = NewScope("graph", func() Storage {
		return NewGraphStorage()
	})

	// ContainerScope shares one instance for the life of the container,
	// until explicitly reset.
	ContainerScope = NewScope("container", func() Storage {
		return NewPermanentStorage()
	})

	// WeakScope shares an instance while the current resolution pass is
	// in flight or while something else still references it.
	WeakScope = NewScope("weak", func() Storage {
		return NewCompositeStorage(NewWeakStorage(), NewGraphStorage())
	})
)
