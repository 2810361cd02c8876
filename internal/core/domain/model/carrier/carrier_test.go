package carrier_test

import (
	"testing"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrincipal(t *testing.T, value string) kernel.Principal {
	t.Helper()
	principal, err := kernel.NewPrincipal(value)
	require.NoError(t, err)
	return principal
}

func TestNewCarrier(t *testing.T) {
	t.Run("registers with default values", func(t *testing.T) {
		id := mustPrincipal(t, "ST1SJ3DTE5DN7X54YDH5D64R3BCB6A2AG2ZQ8YPD5")

		c, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 1000, "New York", 1000)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Fast Delivery Co", c.Name())
		assert.Equal(t, "Truck", c.VehicleType())
		assert.Equal(t, 1000, c.MaxCapacity())
		assert.Equal(t, 0, c.CurrentLoad())
		assert.True(t, c.Available())
		assert.Equal(t, "New York", c.Location())
		assert.Equal(t, 5, c.Rating())
		assert.Equal(t, kernel.Height(1000), c.RegisteredAt())
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")

		_, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 0, "New York", 1)

		require.Error(t, err)
		require.ErrorIs(t, err, carrier.ErrInvalidCapacity)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")

		_, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", -10, "New York", 1)

		require.Error(t, err)
		require.ErrorIs(t, err, carrier.ErrInvalidCapacity)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")

		_, err := carrier.NewCarrier(id, "", "", 100, "", 1)

		require.Error(t, err)
		require.ErrorIs(t, err, carrier.ErrNameIsRequired)
		require.ErrorIs(t, err, carrier.ErrVehicleTypeIsRequired)
		require.ErrorIs(t, err, carrier.ErrLocationIsRequired)
	})

	t.Run("rejects unconstructed principal", func(t *testing.T) {
		var id kernel.Principal

		_, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 100, "New York", 1)

		require.Error(t, err)
	})
}

func TestRestoreCarrier(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")

		c, err := carrier.RestoreCarrier(id, "Fast Delivery Co", "Van", 1000, 300, false, "Boston", 4, 42)

		require.NoError(t, err)
		assert.Equal(t, 300, c.CurrentLoad())
		assert.False(t, c.Available())
		assert.Equal(t, 4, c.Rating())
		assert.Equal(t, kernel.Height(42), c.RegisteredAt())
	})

	t.Run("rejects load above capacity", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")

		_, err := carrier.RestoreCarrier(id, "Fast Delivery Co", "Van", 100, 200, true, "Boston", 5, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative load", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")

		_, err := carrier.RestoreCarrier(id, "Fast Delivery Co", "Van", 100, -1, true, "Boston", 5, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCarrier_SetAvailability(t *testing.T) {
	t.Run("overwrites only the availability flag", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")
		c, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 1000, "New York", 1)
		require.NoError(t, err)

		require.NoError(t, c.SetAvailability(false))

		assert.False(t, c.Available())
		assert.Equal(t, "New York", c.Location())
		assert.Equal(t, 1000, c.MaxCapacity())
	})

	t.Run("fails on unconstructed carrier", func(t *testing.T) {
		var c carrier.Carrier

		err := c.SetAvailability(true)

		require.Error(t, err)
		assert.Equal(t, carrier.ErrCarrierIsNotConstructed, err)
	})
}

func TestCarrier_MoveTo(t *testing.T) {
	t.Run("overwrites only the location", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")
		c, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 1000, "New York", 1)
		require.NoError(t, err)

		require.NoError(t, c.MoveTo("Boston"))

		assert.Equal(t, "Boston", c.Location())
		assert.True(t, c.Available())
	})

	t.Run("rejects empty location", func(t *testing.T) {
		id := mustPrincipal(t, "carrier-1")
		c, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 1000, "New York", 1)
		require.NoError(t, err)

		err = c.MoveTo("")

		require.Error(t, err)
		assert.Equal(t, carrier.ErrLocationIsRequired, err)
		assert.Equal(t, "New York", c.Location())
	})
}

func TestCarrier_AvailableCapacity(t *testing.T) {
	id := mustPrincipal(t, "carrier-1")

	c, err := carrier.RestoreCarrier(id, "Fast Delivery Co", "Truck", 1000, 300, true, "New York", 5, 1)
	require.NoError(t, err)

	assert.Equal(t, 700, c.AvailableCapacity())
}
