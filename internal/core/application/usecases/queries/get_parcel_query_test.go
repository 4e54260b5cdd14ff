package queries_test

import (
	"testing"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelQuery_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	sessionID := kernel.NewUUID()
	q, err := queries.NewGetParcelQuery(parcelID, sessionID)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, parcelID, q.ParcelID())
	assert.Equal(t, sessionID, q.SessionID())
}

func TestNewGetParcelQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetParcelQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetParcelQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetParcelQuery_NotConstructed(t *testing.T) {
	var q queries.GetParcelQuery
	err := q.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelQueryIsNotConstructed)
}
