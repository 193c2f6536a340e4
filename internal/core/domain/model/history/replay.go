package history

import (
	"fmt"
	"sort"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

// Replay folds a delivery order's ledger entries into its current stage and
// location. The ledger is the source of truth for the workflow: replaying the
// full, timestamp-ordered history must land on exactly the stage and location
// the delivery order record carries.
//
// Entries are re-sorted by performedAt before folding, so callers may pass
// them in any order.
func Replay(entries []*Entry) (deliveryorder.Stage, kernel.Department, error) {
	if len(entries) == 0 {
		return deliveryorder.StageUnknown, kernel.DepartmentUnknown,
			errs.NewValueIsRequiredError("entries")
	}

	ordered := make([]*Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PerformedAt().Before(ordered[j].PerformedAt())
	})

	for i, entry := range ordered {
		if err := entry.Validate(); err != nil {
			return deliveryorder.StageUnknown, kernel.DepartmentUnknown, err
		}
		if i == 0 && entry.Action() != deliveryorder.ActionCreated {
			return deliveryorder.StageUnknown, kernel.DepartmentUnknown,
				errs.NewValueIsInvalidErrorWithCause(
					"entries",
					fmt.Errorf("ledger must begin with a %s entry, got %s",
						deliveryorder.ActionCreated, entry.Action()),
				)
		}
	}

	last := ordered[len(ordered)-1]
	stage, err := stageAfter(last)
	if err != nil {
		return deliveryorder.StageUnknown, kernel.DepartmentUnknown, err
	}

	location, ok := stage.Location()
	if !ok {
		// The rejected stage carries no derived location; the rejecting
		// department recorded on the entry is where the order froze.
		location = last.ToDepartment()
	}

	return stage, location, nil
}

func stageAfter(entry *Entry) (deliveryorder.Stage, error) {
	switch entry.Action() {
	case deliveryorder.ActionCreated:
		return deliveryorder.Created, nil
	case deliveryorder.ActionSubmittedToProjectOffice:
		return deliveryorder.AtProjectOffice, nil
	case deliveryorder.ActionReceived:
		return deliveryorder.ReceivedAtProjectOffice, nil
	case deliveryorder.ActionDispatchedToAreaOffice:
		return deliveryorder.AtAreaOffice, nil
	case deliveryorder.ActionApprovedAndForwarded:
		switch entry.ToDepartment() {
		case kernel.AreaOffice:
			return deliveryorder.AtAreaOffice, nil
		case kernel.RoadSale:
			return deliveryorder.AtRoadSale, nil
		default:
			return deliveryorder.StageUnknown, errs.NewValueIsInvalidErrorWithCause(
				"entries",
				fmt.Errorf("%s entry forwards to unexpected department %s",
					entry.Action(), entry.ToDepartment()),
			)
		}
	case deliveryorder.ActionCompleted:
		return deliveryorder.Completed, nil
	case deliveryorder.ActionRejected:
		return deliveryorder.Rejected, nil
	default:
		return deliveryorder.StageUnknown, errs.NewValueIsInvalidErrorWithCause(
			"entries",
			fmt.Errorf("unrecognized action %s", entry.Action()),
		)
	}
}
