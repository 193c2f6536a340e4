package deliveryorder_test

import (
	"testing"
	"time"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNumber(t *testing.T) deliveryorder.Number {
	t.Helper()
	number, err := deliveryorder.NewNumber(2025, 1)
	require.NoError(t, err)
	return number
}

func newTestOrder(t *testing.T) *deliveryorder.DeliveryOrder {
	t.Helper()
	do, err := deliveryorder.NewDeliveryOrder(
		kernel.NewUUID(),
		validNumber(t),
		kernel.NewUUID(),
		"J. Smith",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		"fragile cargo",
		kernel.NewUUID(),
		time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return do
}

// advanceTo walks a fresh order through the happy path until it reaches the
// requested stage.
func advanceTo(t *testing.T, do *deliveryorder.DeliveryOrder, target deliveryorder.Stage) {
	t.Helper()

	steps := []func() error{
		func() error { return do.SubmitToProjectOffice(kernel.PaperCreator) },
		func() error { return do.Receive(kernel.ProjectOffice) },
		func() error { return do.Dispatch(kernel.ProjectOffice) },
		func() error { _, err := do.Approve(kernel.AreaOffice); return err },
		func() error { _, err := do.Approve(kernel.RoadSale); return err },
	}

	for _, step := range steps {
		if do.Stage() == target {
			return
		}
		require.NoError(t, step())
	}
	require.Equal(t, target, do.Stage())
}

func TestNewDeliveryOrder(t *testing.T) {
	validFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	validUntil := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid order in created stage at paper_creator", func(t *testing.T) {
		do := newTestOrder(t)

		require.NoError(t, do.Validate())
		assert.Equal(t, deliveryorder.Created, do.Stage())
		assert.Equal(t, kernel.PaperCreator, do.Location())
		assert.Equal(t, "J. Smith", do.AuthorizedPerson())
		assert.Equal(t, "fragile cargo", do.Notes())
		assert.False(t, do.IsTerminal())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		do, err := deliveryorder.NewDeliveryOrder(
			invalidID, validNumber(t), kernel.NewUUID(), "J. Smith",
			validFrom, validUntil, "", kernel.NewUUID(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, do)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero number", func(t *testing.T) {
		var invalidNumber deliveryorder.Number

		do, err := deliveryorder.NewDeliveryOrder(
			kernel.NewUUID(), invalidNumber, kernel.NewUUID(), "J. Smith",
			validFrom, validUntil, "", kernel.NewUUID(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, do)
		assert.Contains(t, err.Error(), "number must be created")
	})

	t.Run("should fail with blank authorized person", func(t *testing.T) {
		do, err := deliveryorder.NewDeliveryOrder(
			kernel.NewUUID(), validNumber(t), kernel.NewUUID(), "   ",
			validFrom, validUntil, "", kernel.NewUUID(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, do)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when validUntil is not after validFrom", func(t *testing.T) {
		for _, until := range []time.Time{validFrom, validFrom.Add(-time.Hour)} {
			do, err := deliveryorder.NewDeliveryOrder(
				kernel.NewUUID(), validNumber(t), kernel.NewUUID(), "J. Smith",
				validFrom, until, "", kernel.NewUUID(), time.Now(),
			)

			require.Error(t, err)
			assert.Nil(t, do)
			assert.Contains(t, err.Error(), "validUntil is invalid")
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidNumber deliveryorder.Number

		do, err := deliveryorder.NewDeliveryOrder(
			invalidID, invalidNumber, kernel.NewUUID(), "",
			validFrom, validUntil, "", kernel.NewUUID(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, do)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "number must be created")
		assert.Contains(t, err.Error(), "authorizedPerson")
	})
}

func TestRestoreDeliveryOrder(t *testing.T) {
	validFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	validUntil := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	restore := func(stage deliveryorder.Stage, location kernel.Department) (*deliveryorder.DeliveryOrder, error) {
		return deliveryorder.RestoreDeliveryOrder(
			kernel.NewUUID(), validNumber(t), kernel.NewUUID(), "J. Smith",
			validFrom, validUntil, "", kernel.NewUUID(), time.Now(),
			stage, location,
		)
	}

	t.Run("should restore consistent stage and location pairs", func(t *testing.T) {
		testCases := []struct {
			stage    deliveryorder.Stage
			location kernel.Department
		}{
			{deliveryorder.Created, kernel.PaperCreator},
			{deliveryorder.AtProjectOffice, kernel.ProjectOffice},
			{deliveryorder.ReceivedAtProjectOffice, kernel.ProjectOffice},
			{deliveryorder.DispatchedFromProjectOffice, kernel.AreaOffice},
			{deliveryorder.AtAreaOffice, kernel.AreaOffice},
			{deliveryorder.AtRoadSale, kernel.RoadSale},
			{deliveryorder.Completed, kernel.RoadSale},
		}

		for _, tc := range testCases {
			do, err := restore(tc.stage, tc.location)
			require.NoError(t, err, "stage %s at %s should restore", tc.stage, tc.location)
			assert.Equal(t, tc.stage, do.Stage())
			assert.Equal(t, tc.location, do.Location())
		}
	})

	t.Run("should restore rejected order at any workflow department", func(t *testing.T) {
		for _, dept := range []kernel.Department{
			kernel.PaperCreator, kernel.ProjectOffice, kernel.AreaOffice, kernel.RoadSale,
		} {
			do, err := restore(deliveryorder.Rejected, dept)
			require.NoError(t, err)
			assert.Equal(t, dept, do.Location())
			assert.True(t, do.IsTerminal())
		}
	})

	t.Run("should reject drifted stage and location pairs", func(t *testing.T) {
		_, err := restore(deliveryorder.AtProjectOffice, kernel.AreaOffice)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "location is invalid")
	})

	t.Run("should reject rejected order located at role_creator", func(t *testing.T) {
		_, err := restore(deliveryorder.Rejected, kernel.RoleCreator)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "location is invalid")
	})
}

func TestDeliveryOrder_SubmitToProjectOffice(t *testing.T) {
	t.Run("paper_creator submits freshly created order", func(t *testing.T) {
		do := newTestOrder(t)

		err := do.SubmitToProjectOffice(kernel.PaperCreator)

		require.NoError(t, err)
		assert.Equal(t, deliveryorder.AtProjectOffice, do.Stage())
		assert.Equal(t, kernel.ProjectOffice, do.Location())
	})

	t.Run("other departments cannot submit", func(t *testing.T) {
		do := newTestOrder(t)

		err := do.SubmitToProjectOffice(kernel.ProjectOffice)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
		assert.Equal(t, deliveryorder.Created, do.Stage())
	})
}

func TestDeliveryOrder_Receive(t *testing.T) {
	t.Run("project_office receives submitted order", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)

		err := do.Receive(kernel.ProjectOffice)

		require.NoError(t, err)
		assert.Equal(t, deliveryorder.ReceivedAtProjectOffice, do.Stage())
		assert.Equal(t, kernel.ProjectOffice, do.Location())
	})

	t.Run("wrong department cannot receive", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)

		err := do.Receive(kernel.AreaOffice)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
		assert.Equal(t, deliveryorder.AtProjectOffice, do.Stage())
	})
}

func TestDeliveryOrder_Dispatch(t *testing.T) {
	t.Run("project_office dispatches received order", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.ReceivedAtProjectOffice)

		err := do.Dispatch(kernel.ProjectOffice)

		require.NoError(t, err)
		assert.Equal(t, deliveryorder.AtAreaOffice, do.Stage())
		assert.Equal(t, kernel.AreaOffice, do.Location())
	})

	t.Run("dispatch before receive is rejected", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)

		err := do.Dispatch(kernel.ProjectOffice)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
		assert.Equal(t, deliveryorder.AtProjectOffice, do.Stage())
	})
}

func TestDeliveryOrder_Approve(t *testing.T) {
	t.Run("area_office forwards to road_sale", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtAreaOffice)

		action, err := do.Approve(kernel.AreaOffice)

		require.NoError(t, err)
		assert.Equal(t, deliveryorder.ActionApprovedAndForwarded, action)
		assert.Equal(t, deliveryorder.AtRoadSale, do.Stage())
		assert.Equal(t, kernel.RoadSale, do.Location())
	})

	t.Run("road_sale completes the order", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtRoadSale)

		action, err := do.Approve(kernel.RoadSale)

		require.NoError(t, err)
		assert.Equal(t, deliveryorder.ActionCompleted, action)
		assert.Equal(t, deliveryorder.Completed, do.Stage())
		assert.Equal(t, kernel.RoadSale, do.Location())
		assert.True(t, do.IsTerminal())
	})

	t.Run("department not holding the order cannot approve", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)

		_, err := do.Approve(kernel.AreaOffice)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
		assert.Equal(t, deliveryorder.AtProjectOffice, do.Stage())
		assert.Equal(t, kernel.ProjectOffice, do.Location())
	})

	t.Run("department without forward step cannot approve", func(t *testing.T) {
		do := newTestOrder(t)

		_, err := do.Approve(kernel.PaperCreator)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
	})
}

func TestDeliveryOrder_Reject(t *testing.T) {
	t.Run("holding department rejects and location freezes", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)

		err := do.Reject(kernel.ProjectOffice)

		require.NoError(t, err)
		assert.Equal(t, deliveryorder.Rejected, do.Stage())
		assert.Equal(t, kernel.ProjectOffice, do.Location())
		assert.True(t, do.IsTerminal())
	})

	t.Run("non-holding department cannot reject", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)

		err := do.Reject(kernel.RoadSale)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbiddenDepartment)
		assert.Equal(t, deliveryorder.AtProjectOffice, do.Stage())
	})
}

func TestDeliveryOrder_TerminalLock(t *testing.T) {
	t.Run("completed order refuses all transitions", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.Completed)

		assert.ErrorIs(t, do.Receive(kernel.ProjectOffice), errs.ErrAlreadyTerminal)
		assert.ErrorIs(t, do.Dispatch(kernel.ProjectOffice), errs.ErrAlreadyTerminal)
		_, err := do.Approve(kernel.RoadSale)
		assert.ErrorIs(t, err, errs.ErrAlreadyTerminal)
		assert.ErrorIs(t, do.Reject(kernel.RoadSale), errs.ErrAlreadyTerminal)

		assert.Equal(t, deliveryorder.Completed, do.Stage())
	})

	t.Run("rejected order refuses all transitions", func(t *testing.T) {
		do := newTestOrder(t)
		advanceTo(t, do, deliveryorder.AtProjectOffice)
		require.NoError(t, do.Reject(kernel.ProjectOffice))

		_, err := do.Approve(kernel.ProjectOffice)
		assert.ErrorIs(t, err, errs.ErrAlreadyTerminal)
		assert.ErrorIs(t, do.Reject(kernel.ProjectOffice), errs.ErrAlreadyTerminal)

		assert.Equal(t, deliveryorder.Rejected, do.Stage())
		assert.Equal(t, kernel.ProjectOffice, do.Location())
	})
}

func TestDeliveryOrder_HappyPath(t *testing.T) {
	t.Run("full pipeline walk", func(t *testing.T) {
		do := newTestOrder(t)

		require.NoError(t, do.SubmitToProjectOffice(kernel.PaperCreator))
		assert.Equal(t, deliveryorder.AtProjectOffice, do.Stage())

		require.NoError(t, do.Receive(kernel.ProjectOffice))
		assert.Equal(t, deliveryorder.ReceivedAtProjectOffice, do.Stage())

		require.NoError(t, do.Dispatch(kernel.ProjectOffice))
		assert.Equal(t, deliveryorder.AtAreaOffice, do.Stage())
		assert.Equal(t, kernel.AreaOffice, do.Location())

		action, err := do.Approve(kernel.AreaOffice)
		require.NoError(t, err)
		assert.Equal(t, deliveryorder.ActionApprovedAndForwarded, action)

		action, err = do.Approve(kernel.RoadSale)
		require.NoError(t, err)
		assert.Equal(t, deliveryorder.ActionCompleted, action)
		assert.Equal(t, deliveryorder.Completed, do.Stage())
		assert.Equal(t, kernel.RoadSale, do.Location())
	})
}

func TestDeliveryOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var do deliveryorder.DeliveryOrder

		err := do.Validate()

		require.Error(t, err)
		assert.Equal(t, deliveryorder.ErrDeliveryOrderIsNotConstructed, err)
	})

	t.Run("nil pointer is not constructed", func(t *testing.T) {
		var do *deliveryorder.DeliveryOrder

		err := do.Validate()

		require.Error(t, err)
	})
}
