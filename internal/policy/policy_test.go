package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(Bounds{0, 4}, Bounds{2, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Rank())
	assert.Equal(t, 12, r.NumIndices())
	assert.False(t, r.Empty())
}

func TestNewRange1(t *testing.T) {
	r, err := NewRange1(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Rank())
	assert.Equal(t, 7, r.NumIndices())
}

func TestNewRangeInvalid(t *testing.T) {
	_, err := NewRange(Bounds{0, 4}, Bounds{5, 2})
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 1, re.Dim)
	assert.Equal(t, 5, re.Begin)
	assert.Equal(t, 2, re.End)

	_, err = NewRange(Bounds{-1, 4})
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 0, re.Dim)
}

func TestNewRangeRankLimits(t *testing.T) {
	_, err := NewRange()
	assert.ErrorIs(t, err, ErrBadRank)

	nine := make([]Bounds, 9)
	for i := range nine {
		nine[i] = Bounds{0, 1}
	}
	_, err = NewRange(nine...)
	assert.ErrorIs(t, err, ErrBadRank)

	eight := nine[:8]
	_, err = NewRange(eight...)
	assert.NoError(t, err)
}

func TestEmptyRange(t *testing.T) {
	r, err := NewRange(Bounds{3, 3})
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.NumIndices())

	// One empty dimension empties the whole range.
	r, err = NewRange(Bounds{0, 5}, Bounds{2, 2})
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func TestRangeBoundsIsolated(t *testing.T) {
	bounds := []Bounds{{0, 4}}
	r, err := NewRange(bounds...)
	require.NoError(t, err)
	bounds[0] = Bounds{9, 9}
	assert.Equal(t, 4, r.NumIndices(), "range must copy caller bounds")
}

func TestScheduleDynamic(t *testing.T) {
	s, err := ScheduleDynamic(16)
	require.NoError(t, err)
	assert.Equal(t, Dynamic, s.Kind)
	assert.Equal(t, 16, s.Chunk)

	_, err = ScheduleDynamic(0)
	assert.ErrorIs(t, err, ErrBadChunk)
	_, err = ScheduleDynamic(-3)
	assert.ErrorIs(t, err, ErrBadChunk)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Static", Static.String())
	assert.Equal(t, "Dynamic", Dynamic.String())
	assert.Equal(t, "Serial", Serial.String())
	assert.Equal(t, "Threads", Threads.String())
	assert.Equal(t, "Pool", Pool.String())
	assert.Equal(t, "GPU", GPU.String())
}

func TestPolicyComposition(t *testing.T) {
	r, err := NewRange1(0, 100)
	require.NoError(t, err)
	sched, err := ScheduleDynamic(8)
	require.NoError(t, err)

	p := New(r, sched, Threads)
	assert.Equal(t, Threads, p.Space)
	assert.Equal(t, 100, p.Range.NumIndices())
	assert.Equal(t, 8, p.Schedule.Chunk)
}
