package queries_test

import (
	"testing"

	"letterpost/internal/core/application/usecases/queries"
	"letterpost/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSubordinatesQuery_ValidInput(t *testing.T) {
	parentID := kernel.NewUUID()

	query, err := queries.NewGetSubordinatesQuery(parentID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, parentID, query.ParentID())
}

func TestNewGetSubordinatesQuery_InvalidParentID(t *testing.T) {
	_, err := queries.NewGetSubordinatesQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetSubordinatesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSubordinatesQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSubordinatesQueryIsNotConstructed)
}
