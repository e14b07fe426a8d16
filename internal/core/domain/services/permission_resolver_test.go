package services_test

import (
	"testing"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionResolver_Resolve(t *testing.T) {
	resolver := services.NewPermissionResolver()

	t.Run("should grant full capabilities inside the managed scope", func(t *testing.T) {
		zone := newZoneCourier(t)

		perms, err := resolver.Resolve(zone, mustOPCode(t, "BJDX5F01"), false)

		require.NoError(t, err)
		assert.True(t, perms.CanView)
		assert.True(t, perms.CanEdit)
		assert.True(t, perms.CanDelete)
		assert.True(t, perms.CanCreate)
		assert.True(t, perms.CanBatch)
	})

	t.Run("should grant nothing outside scope for a private entity", func(t *testing.T) {
		zone := newZoneCourier(t)

		perms, err := resolver.Resolve(zone, mustOPCode(t, "SHFD1A01"), false)

		require.NoError(t, err)
		assert.Equal(t, services.Permissions{}, perms)
	})

	t.Run("should grant view only outside scope for a public entity", func(t *testing.T) {
		zone := newZoneCourier(t)

		perms, err := resolver.Resolve(zone, mustOPCode(t, "SHFD1A01"), true)

		require.NoError(t, err)
		assert.True(t, perms.CanView)
		assert.False(t, perms.CanEdit)
		assert.False(t, perms.CanDelete)
		assert.False(t, perms.CanCreate)
		assert.False(t, perms.CanBatch)
	})

	t.Run("should withhold batch capability from building couriers", func(t *testing.T) {
		parentID := kernel.NewUUID()
		building, err := courier.NewCourier(kernel.NewUUID(), courier.LevelBuilding,
			mustPrefix(t, "BJDX5F01"), &parentID)
		require.NoError(t, err)

		perms, err := resolver.Resolve(building, mustOPCode(t, "BJDX5F01"), false)

		require.NoError(t, err)
		assert.True(t, perms.CanView)
		assert.True(t, perms.CanEdit)
		assert.False(t, perms.CanBatch)
		// a full-depth prefix has no subordinate depth to provision
		assert.False(t, perms.CanCreate)
	})

	t.Run("should fail for a zero value code", func(t *testing.T) {
		zone := newZoneCourier(t)
		var invalidCode kernel.OPCode

		_, err := resolver.Resolve(zone, invalidCode, false)

		require.Error(t, err)
	})
}

func TestPermissionResolver_ResolveScope(t *testing.T) {
	resolver := services.NewPermissionResolver()

	t.Run("should allow editing the courier's own scope", func(t *testing.T) {
		zone := newZoneCourier(t)

		perms, err := resolver.ResolveScope(zone, mustPrefix(t, "BJDX5F"), false)

		require.NoError(t, err)
		assert.True(t, perms.CanView)
		assert.True(t, perms.CanEdit)
		assert.False(t, perms.CanCreate)
	})

	t.Run("should grant creation exactly one depth below", func(t *testing.T) {
		zone := newZoneCourier(t)

		perms, err := resolver.ResolveScope(zone, mustPrefix(t, "BJDX5F01"), false)

		require.NoError(t, err)
		assert.True(t, perms.CanCreate)
	})

	t.Run("should grant nothing on ancestor scopes", func(t *testing.T) {
		zone := newZoneCourier(t)

		perms, err := resolver.ResolveScope(zone, mustPrefix(t, "BJDX5F"), false)
		require.NoError(t, err)
		assert.True(t, perms.CanEdit)

		// the school scope above is not covered by the zone prefix
		above, err := resolver.ResolveScope(zone, mustPrefix(t, "BJDX"), false)
		require.NoError(t, err)
		assert.False(t, above.CanView)
		assert.False(t, above.CanEdit)
	})
}
