package keep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransientStorage_NeverRetains(t *testing.T) {
	s := NewTransientStorage()
	svc := &service{name: "transient"}

	s.SetInstance(svc, GraphID{})

	_, ok := s.Instance()
	assert.False(t, ok)

	s.SetInstance(svc, NewGraphID())

	_, ok = s.Instance()
	assert.False(t, ok)
}

func TestTransientStorage_GraphReadIsAbsent(t *testing.T) {
	s := NewTransientStorage()
	graph := NewGraphID()

	s.SetInstance(&service{name: "transient"}, graph)

	_, ok := s.InstanceInGraph(graph)
	assert.False(t, ok)
}

func TestTransientStorage_LifecycleHooksAreNoOps(t *testing.T) {
	s := NewTransientStorage()

	s.GraphResolutionCompleted()
	s.ResetInstance()

	_, ok := s.Instance()
	assert.False(t, ok)
}
