package deliveryorder

import (
	"fmt"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

// Stage represents the position of a delivery order in the department
// pipeline. It implements a state machine with defined transitions to ensure
// orders follow the workflow exactly once, in order.
//
// State transitions:
//
//	Created ──> AtProjectOffice ──> ReceivedAtProjectOffice ──> AtAreaOffice ──> AtRoadSale ──> Completed
//	                 │                        │                      │               │
//	                 └────────────────────────┴──────> Rejected <────┴───────────────┘
//
// Completed and Rejected are terminal. DispatchedFromProjectOffice is a legacy
// in-transit stage retained for restoring historical records; no transition
// produces it anymore and its location resolves to area_office.
//
// Stage is a value object that validates state transitions and provides the
// string representations used for persistence and display.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// Created is the initial stage at paper_creator. It is never user-visible
	// after creation completes, because creation auto-advances the order.
	Created

	// AtProjectOffice means the order has been submitted and awaits receipt.
	AtProjectOffice

	// ReceivedAtProjectOffice means project_office acknowledged the order and
	// may now dispatch it.
	ReceivedAtProjectOffice

	// DispatchedFromProjectOffice is a legacy in-transit stage. Its location
	// resolves to area_office.
	DispatchedFromProjectOffice

	// AtAreaOffice means the order awaits area_office approval.
	AtAreaOffice

	// AtRoadSale means the order awaits the final road_sale approval.
	AtRoadSale

	// Completed is the terminal success stage.
	Completed

	// Rejected is the terminal failure stage. The order's location is frozen
	// at the department that rejected it.
	Rejected
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:                "unknown",
		Created:                     "created",
		AtProjectOffice:             "at_project_office",
		ReceivedAtProjectOffice:     "received_at_project_office",
		DispatchedFromProjectOffice: "dispatched_from_project_office",
		AtAreaOffice:                "at_area_office",
		AtRoadSale:                  "at_road_sale",
		Completed:                   "completed",
		Rejected:                    "rejected",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Created:                     "created",
		AtProjectOffice:             "at_project_office",
		ReceivedAtProjectOffice:     "received_at_project_office",
		DispatchedFromProjectOffice: "dispatched_from_project_office",
		AtAreaOffice:                "at_area_office",
		AtRoadSale:                  "at_road_sale",
		Completed:                   "completed",
		Rejected:                    "rejected",
	}
}

// StageFromString parses a stage from its persisted string form.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a valid stage", s),
	)
}

// Validate checks if the Stage value is valid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%d is not a valid stage", s),
		)
	}
	return nil
}

// String returns the snake_case name of the stage, matching the values stored
// in the database. Returns "unknown" for invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the stage accepts no further transitions.
func (s Stage) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// Location returns the department a delivery order in this stage is located
// at. The second return value is false for Rejected (whose location is frozen
// on the aggregate, not derived) and for invalid stages.
func (s Stage) Location() (kernel.Department, bool) {
	switch s {
	case Created:
		return kernel.PaperCreator, true
	case AtProjectOffice, ReceivedAtProjectOffice:
		return kernel.ProjectOffice, true
	case DispatchedFromProjectOffice, AtAreaOffice:
		return kernel.AreaOffice, true
	case AtRoadSale, Completed:
		return kernel.RoadSale, true
	default:
		return kernel.DepartmentUnknown, false
	}
}

// Submit transitions the stage from Created to AtProjectOffice.
// This is the automatic advance chained onto creation.
func (s Stage) Submit() (Stage, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to submit", s.String()),
		)
	}
	return AtProjectOffice, nil
}

// Receive transitions the stage from AtProjectOffice to ReceivedAtProjectOffice.
func (s Stage) Receive() (Stage, error) {
	if s != AtProjectOffice {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to receive", s.String()),
		)
	}
	return ReceivedAtProjectOffice, nil
}

// Dispatch transitions the stage from ReceivedAtProjectOffice to AtAreaOffice.
// Orders must be received before they can be dispatched; the legacy direct
// path from AtProjectOffice is not accepted.
func (s Stage) Dispatch() (Stage, error) {
	if s != ReceivedAtProjectOffice {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to dispatch", s.String()),
		)
	}
	return AtAreaOffice, nil
}

// NextApproveStep is the pure next-step lookup for the generic Approve
// transition. Given the acting department it returns the resulting stage and
// the action tag to record. The third return value is false when the
// department has no forward step (paper_creator, role_creator, invalid).
func NextApproveStep(department kernel.Department) (Stage, Action, bool) {
	switch department {
	case kernel.ProjectOffice:
		return AtAreaOffice, ActionApprovedAndForwarded, true
	case kernel.AreaOffice:
		return AtRoadSale, ActionApprovedAndForwarded, true
	case kernel.RoadSale:
		return Completed, ActionCompleted, true
	default:
		return StageUnknown, "", false
	}
}
