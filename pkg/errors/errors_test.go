package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/javaswitch/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "plugin_not_found",
			code:    errors.ErrPluginNotFound,
			message: "plug-in missing",
			wantStr: "[PLUGIN_NOT_FOUND] plug-in missing",
		},
		{
			name:    "user_cancelled",
			code:    errors.ErrUserCancelled,
			message: "cancelled",
			wantStr: "[USER_CANCELLED] cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "path %q is not absolute", "relative/dir")
	if err.Message != `path "relative/dir" is not absolute` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFSOperation, "rename failed")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FS_OPERATION] rename failed: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is should find the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPlistParse, "bad plist").
		WithDetail("path", "/Library/Internet Plug-Ins/JavaAppletPlugin.plugin/Contents/Info.plist")

	details := errors.GetErrorDetails(err)
	if details["path"] == nil {
		t.Error("GetErrorDetails() should expose the path detail")
	}
}

func TestErrorCodeHelpers(t *testing.T) {
	inner := errors.New(errors.ErrUserCancelled, "cancelled")
	wrapped := fmt.Errorf("run: %w", inner)

	if !errors.IsErrorCode(wrapped, errors.ErrUserCancelled) {
		t.Error("IsErrorCode() should see through fmt wrapping")
	}
	if errors.IsErrorCode(wrapped, errors.ErrPluginNotFound) {
		t.Error("IsErrorCode() matched the wrong code")
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
	if !stderrors.Is(wrapped, errors.New(errors.ErrUserCancelled, "")) {
		t.Error("errors.Is should match on code")
	}
}
