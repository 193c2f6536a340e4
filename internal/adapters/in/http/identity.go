package http

import (
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names carrying the authenticated caller, set by the gateway in
// front of this service.
const (
	HeaderUserID         = "X-User-ID"
	HeaderUserDepartment = "X-User-Department"
)

// Identity is the authenticated caller of a request: who they are and which
// department they act for. Workflow authorization happens in the domain; the
// adapter only carries the identity through.
type Identity struct {
	UserID     kernel.UUID
	Department kernel.Department
}

// IdentityFromContext reads the caller identity from the request headers.
// Returns a required-value error when either header is missing or malformed.
func IdentityFromContext(ctx echo.Context) (Identity, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return Identity{}, errs.NewValueIsRequiredError(HeaderUserID)
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return Identity{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}

	rawDept := ctx.Request().Header.Get(HeaderUserDepartment)
	if rawDept == "" {
		return Identity{}, errs.NewValueIsRequiredError(HeaderUserDepartment)
	}

	department, err := kernel.DepartmentFromString(rawDept)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: userID, Department: department}, nil
}
