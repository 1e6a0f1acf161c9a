package keep

import (
	"fmt"

	"go.uber.org/zap"
)

// Observer provides hooks for watching storage operations.
// Observers can be used for logging, metrics, debugging, testing, etc.
// Hooks observe only; they cannot alter the outcome of an operation.
type Observer interface {
	// InstanceStored is called after an instance is stored.
	InstanceStored(graph GraphID, value any)

	// InstanceRequested is called after a read, whether or not an
	// instance was found. The graph is zero for plain reads.
	InstanceRequested(graph GraphID, value any, found bool)

	// GraphCompleted is called after a resolution pass completes.
	GraphCompleted()

	// InstanceReset is called after the storage is reset.
	InstanceReset()
}

// observerChain manages multiple observers.
type observerChain struct {
	observers []Observer
}

func (c *observerChain) instanceStored(graph GraphID, value any) {
	for _, o := range c.observers {
		o.InstanceStored(graph, value)
	}
}

func (c *observerChain) instanceRequested(graph GraphID, value any, found bool) {
	for _, o := range c.observers {
		o.InstanceRequested(graph, value, found)
	}
}

func (c *observerChain) graphCompleted() {
	for _, o := range c.observers {
		o.GraphCompleted()
	}
}

func (c *observerChain) instanceReset() {
	for _, o := range c.observers {
		o.InstanceReset()
	}
}

// FuncObserver wraps functions as an Observer. Nil fields are skipped.
type FuncObserver struct {
	InstanceStoredFunc    func(graph GraphID, value any)
	InstanceRequestedFunc func(graph GraphID, value any, found bool)
	GraphCompletedFunc    func()
	InstanceResetFunc     func()
}

// InstanceStored implements Observer.
func (f *FuncObserver) InstanceStored(graph GraphID, value any) {
	if f.InstanceStoredFunc != nil {
		f.InstanceStoredFunc(graph, value)
	}
}

// InstanceRequested implements Observer.
func (f *FuncObserver) InstanceRequested(graph GraphID, value any, found bool) {
	if f.InstanceRequestedFunc != nil {
		f.InstanceRequestedFunc(graph, value, found)
	}
}

// GraphCompleted implements Observer.
func (f *FuncObserver) GraphCompleted() {
	if f.GraphCompletedFunc != nil {
		f.GraphCompletedFunc()
	}
}

// InstanceReset implements Observer.
func (f *FuncObserver) InstanceReset() {
	if f.InstanceResetFunc != nil {
		f.InstanceResetFunc()
	}
}

// ObservedStorage decorates a Storage, notifying observers after each
// operation. The underlying storage's semantics are unchanged.
type ObservedStorage struct {
	storage Storage
	chain   observerChain
}

// Observe wraps storage so that every operation is reported to the
// given observers, in order.
func Observe(storage Storage, observers ...Observer) *ObservedStorage {
	return &ObservedStorage{
		storage: storage,
		chain:   observerChain{observers: observers},
	}
}

// Instance implements Storage.
func (s *ObservedStorage) Instance() (any, bool) {
	instance, ok := s.storage.Instance()
	s.chain.instanceRequested(GraphID{}, instance, ok)

	return instance, ok
}

// InstanceInGraph implements Storage.
func (s *ObservedStorage) InstanceInGraph(graph GraphID) (any, bool) {
	instance, ok := s.storage.InstanceInGraph(graph)
	s.chain.instanceRequested(graph, instance, ok)

	return instance, ok
}

// SetInstance implements Storage.
func (s *ObservedStorage) SetInstance(value any, graph GraphID) {
	s.storage.SetInstance(value, graph)
	s.chain.instanceStored(graph, value)
}

// GraphResolutionCompleted implements Storage.
func (s *ObservedStorage) GraphResolutionCompleted() {
	s.storage.GraphResolutionCompleted()
	s.chain.graphCompleted()
}

// ResetInstance implements Storage.
func (s *ObservedStorage) ResetInstance() {
	s.storage.ResetInstance()
	s.chain.instanceReset()
}

// LogObserver logs storage operations at debug level.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an observer that logs through the given
// logger.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// InstanceStored implements Observer.
func (o *LogObserver) InstanceStored(graph GraphID, value any) {
	o.log.Debug("instance stored",
		zap.Stringer("graph", graph),
		zap.String("type", fmt.Sprintf("%T", value)),
	)
}

// InstanceRequested implements Observer.
func (o *LogObserver) InstanceRequested(graph GraphID, value any, found bool) {
	o.log.Debug("instance requested",
		zap.Stringer("graph", graph),
		zap.String("type", fmt.Sprintf("%T", value)),
		zap.Bool("found", found),
	)
}

// GraphCompleted implements Observer.
func (o *LogObserver) GraphCompleted() {
	o.log.Debug("graph resolution completed")
}

// InstanceReset implements Observer.
func (o *LogObserver) InstanceReset() {
	o.log.Debug("instance reset")
}
