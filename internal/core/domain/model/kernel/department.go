package kernel

import (
	"fmt"

	"dotrack/internal/pkg/errs"
)

// Department represents a workflow participant group. Every user belongs to
// exactly one department, and every delivery order is located at exactly one
// department at any point in time.
//
// Workflow departments, in pipeline order:
//
//	paper_creator ──> project_office ──> area_office ──> road_sale
//
// RoleCreator is an administrative department that manages users and parties;
// it is not a workflow stage and never holds delivery orders.
//
// Department is a value object that validates membership and provides the
// string representations used for persistence and display.
type Department int

const (
	// DepartmentUnknown represents an invalid or undefined department.
	// This value (0) helps catch uninitialized Department values.
	DepartmentUnknown Department = iota

	// PaperCreator originates delivery orders. Orders leave its desk
	// immediately after creation.
	PaperCreator

	// ProjectOffice receives submitted orders and dispatches them onward.
	ProjectOffice

	// AreaOffice approves dispatched orders and forwards them to road sale.
	AreaOffice

	// RoadSale is the final workflow department where orders complete.
	RoadSale

	// RoleCreator is the administrative department. It manages users and
	// parties and sees global views, but never holds a delivery order.
	RoleCreator
)

// getDepartmentStrings returns a map of Department values to their string representations.
func getDepartmentStrings() map[Department]string {
	return map[Department]string{
		DepartmentUnknown: "unknown",
		PaperCreator:      "paper_creator",
		ProjectOffice:     "project_office",
		AreaOffice:        "area_office",
		RoadSale:          "road_sale",
		RoleCreator:       "role_creator",
	}
}

// getValidDepartmentStrings returns a map of only valid Department values.
func getValidDepartmentStrings() map[Department]string {
	//nolint:exhaustive // DepartmentUnknown is intentionally excluded as it's invalid
	return map[Department]string{
		PaperCreator:  "paper_creator",
		ProjectOffice: "project_office",
		AreaOffice:    "area_office",
		RoadSale:      "road_sale",
		RoleCreator:   "role_creator",
	}
}

// DepartmentFromString parses a department from its persisted string form.
// Returns a ValueIsInvalidError for unrecognized values.
func DepartmentFromString(s string) (Department, error) {
	for dept, str := range getValidDepartmentStrings() {
		if str == s {
			return dept, nil
		}
	}
	return DepartmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"department is invalid",
		fmt.Errorf("%q is not a valid department", s),
	)
}

// Validate checks if the Department value is valid.
// Valid departments are: PaperCreator, ProjectOffice, AreaOffice, RoadSale, RoleCreator.
func (d Department) Validate() error {
	if _, ok := getValidDepartmentStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"department is invalid",
			fmt.Errorf("%d is not a valid department", d),
		)
	}
	return nil
}

// String returns the snake_case name of the department, matching the values
// stored in the database. Returns "unknown" for invalid values.
func (d Department) String() string {
	if str, ok := getDepartmentStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// IsWorkflowStage reports whether the department participates in the delivery
// order pipeline. RoleCreator is administrative and returns false.
func (d Department) IsWorkflowStage() bool {
	switch d {
	case PaperCreator, ProjectOffice, AreaOffice, RoadSale:
		return true
	default:
		return false
	}
}

// IsEqual compares two departments.
func (d Department) IsEqual(other Department) bool {
	return d == other
}
