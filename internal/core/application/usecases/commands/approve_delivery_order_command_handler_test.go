package commands_test

import (
	"testing"

	"dotrack/internal/core/application/usecases/commands"
	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveDeliveryOrderCommandHandler_Handle_ForwardsToRoadSale(t *testing.T) {
	ctx := t.Context()

	do := newSubmittedOrder(t,
		func(o *deliveryorder.DeliveryOrder) error { return o.Receive(kernel.ProjectOffice) },
		func(o *deliveryorder.DeliveryOrder) error { return o.Dispatch(kernel.ProjectOffice) },
	)
	require.Equal(t, deliveryorder.AtAreaOffice, do.Stage())

	cmd, err := commands.NewApproveDeliveryOrderCommand(
		do.ID(), kernel.NewUUID(), kernel.AreaOffice, "looks good")
	require.NoError(t, err)

	doRepo := new(MockDeliveryOrderRepository)
	ledger := new(MockHistoryRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(doRepo).Once(),
		uow.On("HistoryRepository").Return(ledger).Once(),
		doRepo.On("Get", ctx, do.ID()).Return(do, nil).Once(),
		doRepo.On("Update", ctx, mock.AnythingOfType("*deliveryorder.DeliveryOrder"), deliveryorder.AtAreaOffice).
			Return(nil).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("*history.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveDeliveryOrderCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, deliveryorder.AtRoadSale, do.Stage())
	assert.Equal(t, kernel.RoadSale, do.Location())

	entry := ledger.Calls[0].Arguments[1].(*history.Entry)
	assert.Equal(t, deliveryorder.ActionApprovedAndForwarded, entry.Action())
	require.NotNil(t, entry.FromDepartment())
	assert.Equal(t, kernel.AreaOffice, *entry.FromDepartment())
	assert.Equal(t, kernel.RoadSale, entry.ToDepartment())
	assert.Equal(t, "looks good", entry.Remarks())

	doRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveDeliveryOrderCommandHandler_Handle_RoadSaleCompletes(t *testing.T) {
	ctx := t.Context()

	do := newSubmittedOrder(t,
		func(o *deliveryorder.DeliveryOrder) error { return o.Receive(kernel.ProjectOffice) },
		func(o *deliveryorder.DeliveryOrder) error { return o.Dispatch(kernel.ProjectOffice) },
		func(o *deliveryorder.DeliveryOrder) error {
			_, err := o.Approve(kernel.AreaOffice)
			return err
		},
	)
	require.Equal(t, deliveryorder.AtRoadSale, do.Stage())

	cmd, err := commands.NewApproveDeliveryOrderCommand(
		do.ID(), kernel.NewUUID(), kernel.RoadSale, "")
	require.NoError(t, err)

	doRepo := new(MockDeliveryOrderRepository)
	ledger := new(MockHistoryRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(doRepo).Once(),
		uow.On("HistoryRepository").Return(ledger).Once(),
		doRepo.On("Get", ctx, do.ID()).Return(do, nil).Once(),
		doRepo.On("Update", ctx, mock.AnythingOfType("*deliveryorder.DeliveryOrder"), deliveryorder.AtRoadSale).
			Return(nil).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("*history.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveDeliveryOrderCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, deliveryorder.Completed, do.Stage())

	entry := ledger.Calls[0].Arguments[1].(*history.Entry)
	assert.Equal(t, deliveryorder.ActionCompleted, entry.Action())
}

func TestApproveDeliveryOrderCommandHandler_Handle_WrongDepartment(t *testing.T) {
	ctx := t.Context()

	do := newSubmittedOrder(t) // at project office, not held by area office

	cmd, err := commands.NewApproveDeliveryOrderCommand(
		do.ID(), kernel.NewUUID(), kernel.AreaOffice, "")
	require.NoError(t, err)

	doRepo := new(MockDeliveryOrderRepository)
	ledger := new(MockHistoryRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(doRepo).Once(),
		uow.On("HistoryRepository").Return(ledger).Once(),
		doRepo.On("Get", ctx, do.ID()).Return(do, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveDeliveryOrderCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
	doRepo.AssertNotCalled(t, "Update", ctx, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApproveDeliveryOrderCommandHandler_Handle_StorageConflict(t *testing.T) {
	ctx := t.Context()

	do := newSubmittedOrder(t,
		func(o *deliveryorder.DeliveryOrder) error { return o.Receive(kernel.ProjectOffice) },
		func(o *deliveryorder.DeliveryOrder) error { return o.Dispatch(kernel.ProjectOffice) },
	)

	cmd, err := commands.NewApproveDeliveryOrderCommand(
		do.ID(), kernel.NewUUID(), kernel.AreaOffice, "")
	require.NoError(t, err)

	doRepo := new(MockDeliveryOrderRepository)
	ledger := new(MockHistoryRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(doRepo).Once(),
		uow.On("HistoryRepository").Return(ledger).Once(),
		doRepo.On("Get", ctx, do.ID()).Return(do, nil).Once(),
		doRepo.On("Update", ctx, mock.AnythingOfType("*deliveryorder.DeliveryOrder"), deliveryorder.AtAreaOffice).
			Return(errs.NewStorageConflictError(do.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveDeliveryOrderCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageConflict)
	ledger.AssertNotCalled(t, "Append", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApproveDeliveryOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewApproveDeliveryOrderCommand(
		orderID, kernel.NewUUID(), kernel.AreaOffice, "")
	require.NoError(t, err)

	doRepo := new(MockDeliveryOrderRepository)
	ledger := new(MockHistoryRepository)
	uow := new(MockWorkflowUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(doRepo).Once(),
		uow.On("HistoryRepository").Return(ledger).Once(),
		doRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("deliveryOrderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveDeliveryOrderCommandHandler(factory, newStepClock())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
