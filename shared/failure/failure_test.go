package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"floorplan/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "save already in progress",
	}

	if f.Error() != "save already in progress" {
		t.Errorf("expected error message to be 'save already in progress', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("decode failed")),
			code:    http.StatusBadRequest,
			message: "decode failed",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("missing floor"),
			code:    http.StatusBadRequest,
			message: "missing floor",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "BadGateway",
			err:     failure.BadGateway(errors.New("graphql: table not found")),
			code:    http.StatusBadGateway,
			message: "graphql: table not found",
		},
		{
			name:    "Unimplemented",
			err:     failure.Unimplemented("ExportLayout"),
			code:    http.StatusNotImplemented,
			message: "ExportLayout",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("floor not found"),
			code:    http.StatusNotFound,
			message: "floor not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("save already in progress"),
			code:    http.StatusConflict,
			message: "save already in progress",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("session belongs to another user"),
			code:    http.StatusForbidden,
			message: "session belongs to another user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}

	if failure.BadGateway(nil) != nil {
		t.Error("BadGateway(nil) should be nil")
	}
}

func TestInvalidField(t *testing.T) {
	err := failure.InvalidField("capacity", "capacity must be greater than or equal to 1")

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	if failure.GetField(err) != "capacity" {
		t.Errorf("expected field 'capacity', got %q", failure.GetField(err))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("save: %w", failure.Conflict("busy")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetField_NotAFailure(t *testing.T) {
	if field := failure.GetField(errors.New("plain")); field != "" {
		t.Errorf("expected empty field, got %q", field)
	}
}
