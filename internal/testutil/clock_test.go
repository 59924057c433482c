package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStepClock_Advances(t *testing.T) {
	c := NewStepClock(epoch, time.Minute)

	assert.Equal(t, epoch, c.Now())
	assert.Equal(t, epoch.Add(time.Minute), c.Now())
	assert.Equal(t, epoch.Add(2*time.Minute), c.Peek())
}

func TestStepClock_Reset(t *testing.T) {
	c := NewStepClock(epoch, time.Second)
	c.Now()
	c.Now()

	c.Reset()
	assert.Equal(t, epoch, c.Now())
}

func TestStepClock_Concurrent(t *testing.T) {
	c := NewStepClock(epoch, time.Second)

	var wg sync.WaitGroup
	seen := make(chan time.Time, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- c.Now()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[time.Time]bool)
	for ts := range seen {
		unique[ts] = true
	}
	assert.Len(t, unique, 100)
	assert.Equal(t, epoch.Add(100*time.Second), c.Peek())
}
