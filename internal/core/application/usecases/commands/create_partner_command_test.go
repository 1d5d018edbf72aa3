package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partnerZips(t *testing.T, codes ...int) []kernel.ZipCode {
	t.Helper()

	zips := make([]kernel.ZipCode, 0, len(codes))
	for _, code := range codes {
		zip, err := kernel.NewZipCode(code)
		require.NoError(t, err)
		zips = append(zips, zip)
	}
	return zips
}

func TestNewCreatePartnerCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		zips := partnerZips(t, 11003, 22044)

		cmd, err := commands.NewCreatePartnerCommand(
			partnerID, "Speedy Logistics", "ops@speedy.example", 20, zips)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.PartnerID().IsEqual(partnerID))
		assert.Equal(t, "Speedy Logistics", cmd.Name())
		assert.Equal(t, "ops@speedy.example", cmd.Email())
		assert.Equal(t, 20, cmd.MaxCapacity())
		assert.Equal(t, zips, cmd.ServiceableZips())
	})

	t.Run("should fail with invalid partner id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreatePartnerCommand(
			invalidID, "Speedy Logistics", "ops@speedy.example", 20, partnerZips(t, 11003))

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewCreatePartnerCommand(
			kernel.NewUUID(), "", "ops@speedy.example", 20, partnerZips(t, 11003))

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrPartnerNameIsRequired)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := commands.NewCreatePartnerCommand(
			kernel.NewUUID(), "Speedy Logistics", "", 20, partnerZips(t, 11003))

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrPartnerEmailIsRequired)
	})

	t.Run("should fail with zero capacity", func(t *testing.T) {
		_, err := commands.NewCreatePartnerCommand(
			kernel.NewUUID(), "Speedy Logistics", "ops@speedy.example", 0, partnerZips(t, 11003))

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrMaxCapacityIsInvalid)
	})

	t.Run("should fail with negative capacity", func(t *testing.T) {
		_, err := commands.NewCreatePartnerCommand(
			kernel.NewUUID(), "Speedy Logistics", "ops@speedy.example", -5, partnerZips(t, 11003))

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrMaxCapacityIsInvalid)
	})

	t.Run("should fail without serviceable zips", func(t *testing.T) {
		_, err := commands.NewCreatePartnerCommand(
			kernel.NewUUID(), "Speedy Logistics", "ops@speedy.example", 20, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrServiceableZipsAreMissing)
	})

	t.Run("should collect every violation", func(t *testing.T) {
		_, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), "", "", 0, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrPartnerNameIsRequired)
		assert.ErrorIs(t, err, commands.ErrPartnerEmailIsRequired)
		assert.ErrorIs(t, err, commands.ErrMaxCapacityIsInvalid)
		assert.ErrorIs(t, err, commands.ErrServiceableZipsAreMissing)
	})
}

func TestCreatePartnerCommand_Validate(t *testing.T) {
	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CreatePartnerCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreatePartnerCommandIsNotConstructed)
	})
}
