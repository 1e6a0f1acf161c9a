// Package keep implements instance-lifetime storage for dependency
// injection containers. A resolver assigns one Storage per registration
// and uses it to decide whether a later request for the same dependency
// receives the identical instance, a fresh one, or one that depends on
// whether anything else still holds it alive.
package keep

// Storage controls how a resolved instance persists across and within
// resolution passes. One Storage instance backs one registration.
//
// Storage performs no internal locking; the resolver is expected to
// serialize access per instance the same way it serializes resolution.
type Storage interface {
	// Instance returns the currently stored instance.
	// Absence means nothing was stored, the value was reclaimed, or the
	// strategy never retains; callers respond by constructing anew.
	Instance() (any, bool)

	// InstanceInGraph returns the instance stored for the given
	// resolution graph. Strategies without per-graph state ignore the
	// graph and behave like Instance.
	InstanceInGraph(graph GraphID) (any, bool)

	// SetInstance stores a freshly resolved instance. A zero GraphID
	// means the instance is not associated with a tracked graph.
	SetInstance(value any, graph GraphID)

	// GraphResolutionCompleted signals that a top-level resolution pass
	// has finished and pass-scoped state may be dropped.
	GraphResolutionCompleted()

	// ResetInstance clears the currently stored instance. Graph-indexed
	// entries are unaffected.
	ResetInstance()
}
