package services_test

import (
	"testing"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/core/domain/model/rotation"
	"partsflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "John Carter", kernel.MustMoneyFromCents(120000))
	require.NoError(t, err)
	return o
}

func TestLeadDistributor_Distribute(t *testing.T) {
	distributor := services.NewLeadDistributor()

	t.Run("should assign agents round-robin across orders", func(t *testing.T) {
		agents := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
		r, err := rotation.NewAgentRotation(kernel.NewUUID(), agents)
		require.NoError(t, err)

		first := newOrder(t)
		second := newOrder(t)
		third := newOrder(t)

		firstAgent, err := distributor.Distribute(first, r)
		require.NoError(t, err)
		secondAgent, err := distributor.Distribute(second, r)
		require.NoError(t, err)
		thirdAgent, err := distributor.Distribute(third, r)
		require.NoError(t, err)

		assert.True(t, firstAgent.IsEqual(agents[0]))
		assert.True(t, secondAgent.IsEqual(agents[1]))
		assert.True(t, thirdAgent.IsEqual(agents[0]))

		require.NotNil(t, first.AgentID())
		assert.True(t, first.AgentID().IsEqual(agents[0]))
		assert.True(t, second.AgentID().IsEqual(agents[1]))
		assert.True(t, third.AgentID().IsEqual(agents[0]))
	})

	t.Run("should fail on empty rotation", func(t *testing.T) {
		r, err := rotation.NewAgentRotation(kernel.NewUUID(), nil)
		require.NoError(t, err)
		o := newOrder(t)

		_, err = distributor.Distribute(o, r)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrAgentNotFound)
		assert.Nil(t, o.AgentID())
	})

	t.Run("should fail for invalid order", func(t *testing.T) {
		r, err := rotation.NewAgentRotation(kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
		require.NoError(t, err)
		var o *order.Order

		_, err = distributor.Distribute(o, r)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
		assert.Equal(t, 0, r.Cursor())
	})

	t.Run("should fail for invalid rotation", func(t *testing.T) {
		var r *rotation.AgentRotation

		_, err := distributor.Distribute(newOrder(t), r)

		require.Error(t, err)
		assert.Equal(t, rotation.ErrRotationIsNotConstructed, err)
	})
}
