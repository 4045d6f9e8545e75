package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct{ n atomic.Int32 }

func (r *countingRefresher) Refresh() { r.n.Add(1) }

func TestSchedulerRefreshesPeriodically(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, 20*time.Millisecond)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Equal(t, int32(0), r.n.Load())
	assert.Eventually(t, func() bool { return r.n.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestSchedulerDisabled(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, 0)
	require.NoError(t, s.Start())
	s.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), r.n.Load())
}
