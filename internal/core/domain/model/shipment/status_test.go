package shipment_test

import (
	"testing"

	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  shipment.Status
		wantErr bool
	}{
		{"draft_is_valid", shipment.Draft, false},
		{"booked_is_valid", shipment.Booked, false},
		{"delivered_is_valid", shipment.Delivered, false},
		{"unknown_is_invalid", shipment.Unknown, true},
		{"out_of_range_is_invalid", shipment.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", shipment.Draft.String())
	assert.Equal(t, "Booked", shipment.Booked.String())
	assert.Equal(t, "Delivered", shipment.Delivered.String())
	assert.Equal(t, "Unknown", shipment.Unknown.String())
	assert.Equal(t, "Unknown", shipment.Status(42).String())
}

func TestStatus_Book(t *testing.T) {
	t.Run("draft_books", func(t *testing.T) {
		next, err := shipment.Draft.Book()

		require.NoError(t, err)
		assert.Equal(t, shipment.Booked, next)
	})

	for _, status := range []shipment.Status{shipment.Unknown, shipment.Booked, shipment.Delivered} {
		t.Run(status.String()+"_cannot_book", func(t *testing.T) {
			_, err := status.Book()
			require.Error(t, err)
		})
	}
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("booked_delivers", func(t *testing.T) {
		next, err := shipment.Booked.Deliver()

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, next)
	})

	for _, status := range []shipment.Status{shipment.Unknown, shipment.Draft, shipment.Delivered} {
		t.Run(status.String()+"_cannot_deliver", func(t *testing.T) {
			_, err := status.Deliver()
			require.Error(t, err)
		})
	}
}
