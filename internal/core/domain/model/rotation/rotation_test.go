package rotation_test

import (
	"testing"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/rotation"
	"partsflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRotation(t *testing.T, agentCount int) (*rotation.AgentRotation, []kernel.UUID) {
	t.Helper()

	agents := make([]kernel.UUID, agentCount)
	for i := range agents {
		agents[i] = kernel.NewUUID()
	}

	r, err := rotation.NewAgentRotation(kernel.NewUUID(), agents)
	require.NoError(t, err)
	return r, agents
}

func TestNewAgentRotation(t *testing.T) {
	t.Run("should create rotation with cursor at start", func(t *testing.T) {
		r, agents := newTestRotation(t, 3)

		require.NoError(t, r.Validate())
		assert.Equal(t, 0, r.Cursor())
		assert.Len(t, r.Agents(), len(agents))
	})

	t.Run("empty rotation is legal", func(t *testing.T) {
		r, err := rotation.NewAgentRotation(kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Empty(t, r.Agents())
	})

	t.Run("should fail with invalid agent ID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := rotation.NewAgentRotation(kernel.NewUUID(), []kernel.UUID{invalidID})

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestAgentRotation_Next(t *testing.T) {
	t.Run("should hand out agents in order with wraparound", func(t *testing.T) {
		r, agents := newTestRotation(t, 3)

		for cycle := 0; cycle < 2; cycle++ {
			for i := range agents {
				agentID, err := r.Next()
				require.NoError(t, err)
				assert.True(t, agentID.IsEqual(agents[i]))
			}
		}
		assert.Equal(t, 0, r.Cursor())
	})

	t.Run("should fail on empty rotation", func(t *testing.T) {
		r, err := rotation.NewAgentRotation(kernel.NewUUID(), nil)
		require.NoError(t, err)

		_, err = r.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("single agent receives every order", func(t *testing.T) {
		r, agents := newTestRotation(t, 1)

		for range 3 {
			agentID, err := r.Next()
			require.NoError(t, err)
			assert.True(t, agentID.IsEqual(agents[0]))
		}
	})
}

func TestAgentRotation_AddAgent(t *testing.T) {
	t.Run("new agent joins the end of the rotation", func(t *testing.T) {
		r, agents := newTestRotation(t, 2)
		newcomer := kernel.NewUUID()

		require.NoError(t, r.AddAgent(newcomer))

		first, _ := r.Next()
		second, _ := r.Next()
		third, _ := r.Next()
		assert.True(t, first.IsEqual(agents[0]))
		assert.True(t, second.IsEqual(agents[1]))
		assert.True(t, third.IsEqual(newcomer))
	})

	t.Run("should reject duplicate agent", func(t *testing.T) {
		r, agents := newTestRotation(t, 2)

		err := r.AddAgent(agents[0])

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadySet)
		assert.Len(t, r.Agents(), 2)
	})
}

func TestAgentRotation_RemoveAgent(t *testing.T) {
	t.Run("removing an agent before the cursor keeps the next recipient", func(t *testing.T) {
		r, agents := newTestRotation(t, 3)
		_, err := r.Next() // cursor now at agents[1]
		require.NoError(t, err)

		require.NoError(t, r.RemoveAgent(agents[0]))

		next, err := r.Next()
		require.NoError(t, err)
		assert.True(t, next.IsEqual(agents[1]))
	})

	t.Run("removing the last agent resets the cursor", func(t *testing.T) {
		r, agents := newTestRotation(t, 1)

		require.NoError(t, r.RemoveAgent(agents[0]))

		assert.Equal(t, 0, r.Cursor())
		_, err := r.Next()
		require.Error(t, err)
	})

	t.Run("should fail for unknown agent", func(t *testing.T) {
		r, _ := newTestRotation(t, 2)

		err := r.RemoveAgent(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRestoreAgentRotation(t *testing.T) {
	t.Run("should restore cursor and version", func(t *testing.T) {
		agents := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}

		r, err := rotation.RestoreAgentRotation(kernel.NewUUID(), agents, 2, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, r.Cursor())
		assert.Equal(t, 5, r.Version())
	})

	t.Run("cursor beyond the pool wraps around", func(t *testing.T) {
		agents := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		r, err := rotation.RestoreAgentRotation(kernel.NewUUID(), agents, 5, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, r.Cursor())
	})

	t.Run("should reject negative cursor", func(t *testing.T) {
		r, err := rotation.RestoreAgentRotation(kernel.NewUUID(), nil, -1, 0)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}
