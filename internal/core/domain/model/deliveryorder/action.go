package deliveryorder

import (
	"fmt"

	"dotrack/internal/pkg/errs"
)

// Action is the tag recorded on a workflow history entry. Actions are
// persisted verbatim and are the vocabulary the ledger replay understands.
type Action string

const (
	// ActionCreated is recorded once when the order is inserted at paper_creator.
	ActionCreated Action = "created"

	// ActionSubmittedToProjectOffice is recorded by the automatic advance that
	// immediately follows creation.
	ActionSubmittedToProjectOffice Action = "submitted_to_project_office"

	// ActionReceived is recorded when project_office acknowledges the order.
	ActionReceived Action = "received"

	// ActionDispatchedToAreaOffice is recorded when project_office sends the
	// order onward.
	ActionDispatchedToAreaOffice Action = "dispatched_to_area_office"

	// ActionApprovedAndForwarded is recorded by the generic forward step from
	// project_office or area_office.
	ActionApprovedAndForwarded Action = "approved_and_forwarded"

	// ActionCompleted is recorded when road_sale approves the order out of the
	// pipeline.
	ActionCompleted Action = "completed"

	// ActionRejected is recorded when the holding department rejects the order.
	ActionRejected Action = "rejected"
)

// getValidActions returns the set of recognized action tags.
func getValidActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionCreated:                  {},
		ActionSubmittedToProjectOffice: {},
		ActionReceived:                 {},
		ActionDispatchedToAreaOffice:   {},
		ActionApprovedAndForwarded:     {},
		ActionCompleted:                {},
		ActionRejected:                 {},
	}
}

// Validate checks if the action is one of the recognized tags.
func (a Action) Validate() error {
	if _, ok := getValidActions()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid",
			fmt.Errorf("%q is not a valid action", string(a)),
		)
	}
	return nil
}

// String returns the persisted form of the action.
func (a Action) String() string {
	return string(a)
}
