//go:build nosteal

package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-hpc/parallax/dispatch"
	"github.com/parallax-hpc/parallax/policy"
)

// parallelSpaces lists the parallel execution spaces available in this build
// configuration.
func parallelSpaces() []policy.Space {
	return []policy.Space{policy.Threads}
}

// The public surface must report the compiled-out pool as unsupported.
func TestPoolUnavailable(t *testing.T) {
	r, err := policy.NewRange1(0, 16)
	require.NoError(t, err)

	err = dispatch.ParallelFor(policy.New(r, policy.ScheduleStatic(), policy.Pool), dispatch.Index(func(int) {}))
	var ue *dispatch.UnsupportedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, policy.Pool, ue.Space)
}
