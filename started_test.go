package xr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStarted(t *testing.T) {
	var s SessionStarted
	assert.False(t, s.Get(), "zero value")
	s.Set(true)
	assert.True(t, s.Get())
	s.Set(false)
	assert.False(t, s.Get())
}

func TestSessionStartedConcurrent(t *testing.T) {
	var s SessionStarted
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(i%2 == 0)
		}()
		go func() {
			defer wg.Done()
			_ = s.Get()
		}()
	}
	wg.Wait()

	s.Set(true)
	assert.True(t, s.Get())
}
