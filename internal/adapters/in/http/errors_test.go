package http

import (
	"errors"
	"net/http"
	"testing"

	"dotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func Test_StatusOf_MapsDomainErrorsToHTTPCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errs.NewObjectNotFoundError("deliveryOrder", "DO-2025-0001"), http.StatusNotFound},
		{"forbidden department", errs.NewForbiddenDepartmentError("road_sale"), http.StatusForbidden},
		{"duplicate number", errs.NewDuplicateNumberError("DO-2025-0001"), http.StatusConflict},
		{"already terminal", errs.NewAlreadyTerminalError("completed"), http.StatusConflict},
		{"storage conflict", errs.NewStorageConflictError("DO-2025-0001"), http.StatusConflict},
		{"required value", errs.NewValueIsRequiredError("doNumber"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("doNumber"), http.StatusBadRequest},
		{"unrecognized error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, statusOf(test.err))
		})
	}
}
