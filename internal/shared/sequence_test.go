package shared

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceStartsPastSeed(t *testing.T) {
	seq := NewSequence(10)
	require.Equal(t, int64(11), seq.Next())
	require.Equal(t, int64(12), seq.Next())
}

func TestSequenceIsUniqueUnderConcurrency(t *testing.T) {
	seq := NewSequence(0)
	const n = 100

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
	require.Len(t, seen, n)
}
