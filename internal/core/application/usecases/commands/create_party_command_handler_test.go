package commands_test

import (
	"testing"

	"dotrack/internal/core/application/usecases/commands"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/party"
	"dotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePartyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreatePartyCommand(kernel.NewUUID(), "P-001", "Acme Logistics")
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	uow := new(MockPartyUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartyRepository").Return(partyRepo).Once(),
		partyRepo.On("Add", ctx, mock.AnythingOfType("*party.Party")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartyCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := partyRepo.Calls[0].Arguments[1].(*party.Party)
	assert.Equal(t, "P-001", added.Number())
	assert.Equal(t, "Acme Logistics", added.Name())
	partyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePartyCommandHandler_Handle_DuplicateNumber(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreatePartyCommand(kernel.NewUUID(), "P-001", "Acme Logistics")
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	uow := new(MockPartyUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartyRepository").Return(partyRepo).Once(),
		partyRepo.On("Add", ctx, mock.AnythingOfType("*party.Party")).
			Return(errs.NewDuplicateNumberError("P-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartyCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateNumber)
	uow.AssertNotCalled(t, "Commit", ctx)
}
