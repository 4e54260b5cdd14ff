package queries_test

import (
	"testing"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListParcelsQuery_ValidInput(t *testing.T) {
	sessionID := kernel.NewUUID()
	typeID := kernel.NewUUID()
	costed := false

	q, err := queries.NewListParcelsQuery(sessionID, 2, 20, &typeID, &costed)
	require.NoError(t, err)
	assert.Equal(t, sessionID, q.SessionID())
	assert.Equal(t, 2, q.Page())
	assert.Equal(t, 20, q.Size())
	require.NotNil(t, q.TypeID())
	assert.Equal(t, typeID, *q.TypeID())
	require.NotNil(t, q.Costed())
	assert.False(t, *q.Costed())
}

func TestNewListParcelsQuery_NoFilters(t *testing.T) {
	q, err := queries.NewListParcelsQuery(kernel.NewUUID(), 1, 10, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, q.TypeID())
	assert.Nil(t, q.Costed())
}

func TestNewListParcelsQuery_InvalidPagination(t *testing.T) {
	sessionID := kernel.NewUUID()

	_, err := queries.NewListParcelsQuery(sessionID, 0, 10, nil, nil)
	require.ErrorIs(t, err, queries.ErrPageIsInvalid)

	_, err = queries.NewListParcelsQuery(sessionID, 1, 0, nil, nil)
	require.ErrorIs(t, err, queries.ErrSizeIsInvalid)

	_, err = queries.NewListParcelsQuery(sessionID, 1, queries.MaxPageSize+1, nil, nil)
	require.ErrorIs(t, err, queries.ErrSizeIsInvalid)
}

func TestNewListParcelsQuery_InvalidTypeFilter(t *testing.T) {
	invalid := kernel.UUID{}
	_, err := queries.NewListParcelsQuery(kernel.NewUUID(), 1, 10, &invalid, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
