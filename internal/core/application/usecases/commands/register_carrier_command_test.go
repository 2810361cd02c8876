package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterCarrierCommand_Success(t *testing.T) {
	id := mustPrincipal("carrier-1")

	cmd, err := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")
	require.NoError(t, err)

	assert.True(t, cmd.ID().IsEqual(id))
	assert.Equal(t, "Fast Delivery Co", cmd.Name())
	assert.Equal(t, "Truck", cmd.VehicleType())
	assert.Equal(t, 1000, cmd.MaxCapacity())
	assert.Equal(t, "New York", cmd.Location())
	assert.NoError(t, cmd.Validate())
}

func TestNewRegisterCarrierCommand_EmptyFields(t *testing.T) {
	id := mustPrincipal("carrier-1")

	tests := []struct {
		name        string
		carrierName string
		vehicleType string
		location    string
	}{
		{"empty name", "", "Truck", "New York"},
		{"empty vehicle type", "Fast Delivery Co", "", "New York"},
		{"empty location", "Fast Delivery Co", "Truck", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRegisterCarrierCommand(id, tt.carrierName, tt.vehicleType, 1000, tt.location)
			require.Error(t, err)
		})
	}
}

func TestNewRegisterCarrierCommand_InvalidPrincipal(t *testing.T) {
	_, err := commands.NewRegisterCarrierCommand(kernel.Principal{}, "Fast Delivery Co", "Truck", 1000, "New York")
	require.Error(t, err)
}

func TestNewRegisterCarrierCommand_CapacityNotCheckedHere(t *testing.T) {
	// Capacity validity belongs to the domain so the rejection carries the
	// registry's code; the command accepts any integer.
	id := mustPrincipal("carrier-1")

	cmd, err := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 0, "New York")
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.MaxCapacity())
}

func TestRegisterCarrierCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RegisterCarrierCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterCarrierCommandIsNotConstructed)
}
