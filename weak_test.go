package keep

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeakStorage_RetainsWhileExternallyOwned(t *testing.T) {
	s := NewWeakStorage()
	svc := &service{name: "held"}

	s.SetInstance(svc, GraphID{})

	runtime.GC()

	got, ok := s.Instance()
	require.True(t, ok)
	assert.Same(t, svc, got)

	runtime.KeepAlive(svc)
}

func TestWeakStorage_DropsUnownedInstance(t *testing.T) {
	s := NewWeakStorage()

	// The only strong reference dies with the argument.
	s.SetInstance(&service{name: "orphan"}, GraphID{})

	runtime.GC()

	_, ok := s.Instance()
	assert.False(t, ok)
}

func TestWeakStorage_LostReferenceIsVisibleEverywhere(t *testing.T) {
	s := NewWeakStorage()
	watcher := NewWeakStorage()

	svc := &service{name: "released"}
	s.SetInstance(svc, GraphID{})
	watcher.SetInstance(svc, GraphID{})

	got, ok := s.Instance()
	require.True(t, ok)
	require.Same(t, svc, got)

	// Release the last strong owner.
	got = nil
	svc = nil

	runtime.GC()

	_, ok = s.Instance()
	assert.False(t, ok)

	_, ok = watcher.Instance()
	assert.False(t, ok)
}

func TestWeakStorage_ValueTypesNeverPersist(t *testing.T) {
	s := NewWeakStorage()

	// A copy stored in a non-owning slot is unreachable by design, not
	// by collection timing: no GC is needed for these to read absent.
	s.SetInstance(settings{name: "copied"}, GraphID{})

	_, ok := s.Instance()
	assert.False(t, ok)

	s.SetInstance(42, GraphID{})

	_, ok = s.Instance()
	assert.False(t, ok)

	s.SetInstance("copied", GraphID{})

	_, ok = s.Instance()
	assert.False(t, ok)
}

func TestWeakStorage_ValueTypeOverwritesHeldPointer(t *testing.T) {
	s := NewWeakStorage()
	svc := &service{name: "held"}

	s.SetInstance(svc, GraphID{})
	s.SetInstance(settings{name: "copied"}, GraphID{})

	_, ok := s.Instance()
	assert.False(t, ok)

	runtime.KeepAlive(svc)
}

func TestWeakStorage_NilPointerReadsAbsent(t *testing.T) {
	s := NewWeakStorage()

	s.SetInstance((*service)(nil), GraphID{})

	_, ok := s.Instance()
	assert.False(t, ok)
}

func TestWeakStorage_GraphReadDelegates(t *testing.T) {
	s := NewWeakStorage()
	svc := &service{name: "held"}

	s.SetInstance(svc, NewGraphID())

	got, ok := s.InstanceInGraph(NewGraphID())
	require.True(t, ok)
	assert.Same(t, svc, got)

	runtime.KeepAlive(svc)
}

func TestWeakStorage_Reset(t *testing.T) {
	s := NewWeakStorage()
	svc := &service{name: "held"}

	s.SetInstance(svc, GraphID{})
	s.ResetInstance()

	_, ok := s.Instance()
	assert.False(t, ok)

	runtime.KeepAlive(svc)
}
