package attendance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("emp1:2025-03-10")
			counter++
			km.Unlock("emp1:2025-03-10")
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	// Holding one key must not block another
	km.Lock("emp1:2025-03-10")
	defer km.Unlock("emp1:2025-03-10")

	done := make(chan struct{})
	go func() {
		km.Lock("emp2:2025-03-10")
		km.Unlock("emp2:2025-03-10")
		close(done)
	}()

	<-done
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("emp1:2025-03-10")
	km.Unlock("emp1:2025-03-10")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries, "unused keys must not accumulate")
}
