package eventlog_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"partsflow/internal/adapters/out/eventlog"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_PublishStatusChanged(t *testing.T) {
	var buf bytes.Buffer
	publisher := eventlog.NewPublisher(zerolog.New(&buf))

	orderID := kernel.NewUUID()
	err := publisher.PublishStatusChanged(t.Context(), order.StatusChangedEvent{
		OrderID:        orderID,
		PreviousStatus: order.POSent,
		NewStatus:      order.POConfirmed,
		OccurredAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, orderID.String(), entry["order_id"])
	assert.Equal(t, "POSent", entry["previous_status"])
	assert.Equal(t, "POConfirmed", entry["new_status"])
	assert.Equal(t, "order status changed", entry["message"])
}
