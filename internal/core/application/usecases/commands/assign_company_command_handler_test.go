package commands_test

import (
	"errors"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func claimedParcel(t *testing.T, id, companyID kernel.UUID) *parcel.Parcel {
	t.Helper()
	cost := 750.0
	p, err := parcel.RestoreParcel(
		id, "Laptop", 10, 500, kernel.NewUUID(), kernel.NewUUID(), &cost, &companyID)
	require.NoError(t, err)
	return p
}

func TestAssignCompanyCommandHandler_Handle_Granted(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	companyID := kernel.NewUUID()
	cmd, _ := commands.NewAssignCompanyCommand(parcelID, companyID)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("AssignCompany", mock.Anything, parcelID, companyID).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCompanyCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.AssignmentGranted, result.Outcome)
	assert.Nil(t, result.CurrentCompanyID)
	// The winner never needs the read path.
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAssignCompanyCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	companyID := kernel.NewUUID()
	winnerID := kernel.NewUUID()
	cmd, _ := commands.NewAssignCompanyCommand(parcelID, companyID)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("AssignCompany", mock.Anything, parcelID, companyID).Return(false, nil).Once(),
		repo.On("Get", mock.Anything, parcelID).
			Return(claimedParcel(t, parcelID, winnerID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCompanyCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.AssignmentConflict, result.Outcome)
	require.NotNil(t, result.CurrentCompanyID)
	assert.True(t, result.CurrentCompanyID.IsEqual(winnerID))
}

func TestAssignCompanyCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, _ := commands.NewAssignCompanyCommand(parcelID, kernel.NewUUID())

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("AssignCompany", mock.Anything, parcelID, mock.Anything).Return(false, nil).Once(),
		repo.On("Get", mock.Anything, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcel", parcelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCompanyCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.AssignmentNotFound, result.Outcome)
}

func TestAssignCompanyCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, _ := commands.NewAssignCompanyCommand(parcelID, kernel.NewUUID())

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("AssignCompany", mock.Anything, parcelID, mock.Anything).
			Return(false, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCompanyCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewAssignCompanyCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAssignCompanyCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAssignCompanyCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
