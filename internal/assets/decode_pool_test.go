package assets

import (
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritebox/internal/graphics"
)

func TestDecodePoolDecodesEveryJob(t *testing.T) {
	var calls atomic.Int32
	decode := func(path string) (*graphics.PixelData, error) {
		calls.Add(1)
		return fakeDecode(path)
	}
	pool := NewDecodePool(3, 8, decode)
	defer pool.Shutdown()

	paths := []string{"a.png", "b.png", "corrupt.png", "c.png"}
	results := make(chan DecodeResult, len(paths))
	for _, p := range paths {
		pool.SubmitJobBlocking(DecodeJob{Name: p, Path: p, Result: results})
	}

	var ok, failed []string
	for range paths {
		res := <-results
		if res.Err != nil {
			failed = append(failed, res.Name)
			continue
		}
		require.NotNil(t, res.Pixels)
		ok = append(ok, res.Name)
	}
	sort.Strings(ok)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, ok)
	assert.Equal(t, []string{"corrupt.png"}, failed)
	assert.EqualValues(t, 4, calls.Load())
}

func TestDecodePoolSubmitWhenFull(t *testing.T) {
	block := make(chan struct{})
	decode := func(path string) (*graphics.PixelData, error) {
		<-block
		return fakeDecode(path)
	}
	pool := NewDecodePool(1, 1, decode)
	results := make(chan DecodeResult, 4)

	// the first job occupies the worker, the second fills the queue
	pool.SubmitJobBlocking(DecodeJob{Path: "a.png", Result: results})
	assert.Eventually(t, func() bool { return pool.QueueLength() == 0 }, time.Second, time.Millisecond)
	assert.True(t, pool.SubmitJob(DecodeJob{Path: "b.png", Result: results}))
	assert.False(t, pool.SubmitJob(DecodeJob{Path: "c.png", Result: results}))

	close(block)
	<-results
	<-results
	pool.Shutdown()
	pool.Shutdown()
}
