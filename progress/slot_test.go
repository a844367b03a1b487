package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGetBeforePublish(t *testing.T) {
	s := NewSlot[int]()
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestSlotPublishThenGet(t *testing.T) {
	s := NewSlot[string]()
	s.Publish("hello")
	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestSlotMustGetPanicsBeforePublish(t *testing.T) {
	s := NewSlot[int]()
	assert.Panics(t, func() { s.MustGet() })
}

func TestSlotConcurrentReaders(t *testing.T) {
	s := NewSlot[int]()
	s.Publish(42)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := s.Get()
			assert.True(t, ok)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()
}
