package latch_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/latch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_DropsOverlappingAttempts(t *testing.T) {
	s := latch.New()
	inside := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ran, err := s.Do("msg-1", func() error {
			close(inside)
			<-release
			return nil
		})
		assert.True(t, ran)
		assert.NoError(t, err)
	}()

	<-inside
	ran, err := s.Do("msg-1", func() error {
		t.Fatal("overlapping attempt must not run")
		return nil
	})
	assert.False(t, ran)
	assert.NoError(t, err)

	ran, err = s.Do("msg-2", func() error { return nil })
	assert.True(t, ran, "other keys are independent")
	assert.NoError(t, err)

	close(release)
	wg.Wait()
	assert.False(t, s.Held("msg-1"))
}

func TestSet_ReleasesAfterFailure(t *testing.T) {
	s := latch.New()
	boom := errors.New("boom")

	ran, err := s.Do("msg-1", func() error { return boom })
	assert.True(t, ran)
	assert.ErrorIs(t, err, boom)

	ran, err = s.Do("msg-1", func() error { return nil })
	assert.True(t, ran)
	require.NoError(t, err)
}

func TestSet_ConcurrentAcquireSingleWinner(t *testing.T) {
	s := latch.New()
	var winners atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryAcquire("msg-1") {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
