package commands_test

import (
	"testing"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, "John Carter", 120000)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "John Carter", cmd.CustomerName())
		assert.Equal(t, int64(120000), cmd.AmountCents())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateOrderCommand(invalidID, "John Carter", 120000)

		require.Error(t, err)
	})

	t.Run("should fail without customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", 120000)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "John Carter", -1)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.Error(t, cmd.Validate())
	})
}
