package queries_test

import (
	"testing"

	"letterpost/internal/core/application/usecases/queries"
	"letterpost/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetClaimableTasksQuery_ValidInput(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetClaimableTasksQuery(courierID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())
}

func TestNewGetClaimableTasksQuery_InvalidCourierID(t *testing.T) {
	_, err := queries.NewGetClaimableTasksQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetClaimableTasksQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetClaimableTasksQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetClaimableTasksQueryIsNotConstructed)
}
