package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(AnimalNotFound, "no animal matches variant \"navy\"")

	if err.Code != AnimalNotFound {
		t.Errorf("Code = %v, want %v", err.Code, AnimalNotFound)
	}
	if err.Message != "no animal matches variant \"navy\"" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Unwrap() != nil {
		t.Error("New() error should have no cause")
	}
}

func TestHueError_Error(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		message   string
		cause     error
		wantParts []string
	}{
		{
			name:      "with cause",
			code:      SourceUnreadable,
			message:   "cannot read animal data",
			cause:     errors.New("open animals.json: no such file or directory"),
			wantParts: []string{"SOURCE_UNREADABLE", "cannot read animal data", "no such file"},
		},
		{
			name:      "without cause",
			code:      MissingParameter,
			message:   "missing required parameter: variant",
			cause:     nil,
			wantParts: []string{"MISSING_PARAMETER", "missing required parameter: variant"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.code, tt.message, tt.cause)
			got := err.Error()

			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

func TestHueError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(SourceInvalid, "animal data is not valid JSON", cause)

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestHueError_WithDetails(t *testing.T) {
	err := New(AnimalNotFound, "no match")
	details := map[string]interface{}{"variant": "navy", "entries": 10}

	result := err.WithDetails(details)

	// Check that it returns the same error (for chaining)
	if result != err {
		t.Error("WithDetails should return the same error for chaining")
	}
	if err.Details == nil {
		t.Error("Details should be set")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "direct HueError",
			err:  New(AnimalNotFound, "no match"),
			want: AnimalNotFound,
		},
		{
			name: "wrapped in fmt.Errorf",
			err:  fmt.Errorf("lookup failed: %w", New(SourceInvalid, "bad JSON")),
			want: SourceInvalid,
		},
		{
			name: "doubly wrapped",
			err:  fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", New(SourceUnreadable, "gone"))),
			want: SourceUnreadable,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: InternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(AnimalNotFound, "no match"))

	if !IsCode(err, AnimalNotFound) {
		t.Error("IsCode() should find AnimalNotFound in the chain")
	}
	if IsCode(err, SourceInvalid) {
		t.Error("IsCode() should not report SourceInvalid")
	}
	if IsCode(errors.New("plain"), AnimalNotFound) {
		t.Error("IsCode() on plain error should be false")
	}
}

func TestErrorCodes(t *testing.T) {
	// Ensure all error codes are unique
	codes := []ErrorCode{
		AnimalNotFound,
		SourceUnreadable,
		SourceInvalid,
		MissingParameter,
		MethodNotAllowed,
		RouteNotFound,
		ConfigInvalid,
		InternalError,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %v", code)
		}
		seen[code] = true

		// Ensure each code is a non-empty string
		if string(code) == "" {
			t.Error("Error code should not be empty")
		}
	}
}
