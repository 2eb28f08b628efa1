// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/linkshell/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "source_not_found_error",
			code:    errors.ErrSourceNotFound,
			message: "source does not exist",
			wantStr: "[SOURCE_NOT_FOUND] source does not exist",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "source and target are the same path",
			wantStr: "[INVALID_INPUT] source and target are the same path",
		},
		{
			name:    "cross_volume_error",
			code:    errors.ErrCrossVolume,
			message: "hard links cannot span volumes",
			wantStr: "[CROSS_VOLUME_NOT_ALLOWED] hard links cannot span volumes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("access is denied")
	err := errors.Wrap(cause, errors.ErrPermissionDenied, "link creation refused")

	if err.Code != errors.ErrPermissionDenied {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrPermissionDenied)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}
	if got := err.Error(); got != "[PERMISSION_DENIED] link creation refused: access is denied" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrInternal, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrTargetAlreadyExists, "target exists")
	same := errors.New(errors.ErrTargetAlreadyExists, "different message, same code")
	other := errors.New(errors.ErrSourceNotFound, "source missing")

	if !stderrors.Is(err, same) {
		t.Error("errors with the same code should match via errors.Is")
	}
	if stderrors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrUnsupportedForDirectory, "cannot hard link directory %s", "/tmp/dir")

	if !errors.IsErrorCode(err, errors.ErrUnsupportedForDirectory) {
		t.Error("IsErrorCode() should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrUnsupportedForFile) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnknown) {
		t.Error("IsErrorCode() should not match plain errors")
	}

	// Wrapped LinkshellErrors are still found via errors.As.
	wrapped := errors.Wrap(err, errors.ErrSystemFailure, "outer")
	if !errors.IsErrorCode(wrapped, errors.ErrSystemFailure) {
		t.Error("IsErrorCode() should report the outermost code")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain error")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(errors.New(errors.ErrCrossVolume, "x")); got != errors.ErrCrossVolume {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrCrossVolume)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSourceNotFound, "missing").
		WithDetail("source", "/tmp/does-not-exist")

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatal("GetErrorDetails() returned nil")
	}
	if details["source"] != "/tmp/does-not-exist" {
		t.Errorf("detail source = %v", details["source"])
	}
}
