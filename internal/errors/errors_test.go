package errors

import (
	"fmt"
	"testing"
)

func TestCaltrackError_Error(t *testing.T) {
	err := &CaltrackError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "activity not found",
	}

	expected := "NOT_FOUND: activity not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("id is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "id is required" {
		t.Errorf("Message = %q, want %q", err.Message, "id is required")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01HZX")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["id"] != "01HZX" {
		t.Errorf("Details[id] = %v, want %q", err.Details["id"], "01HZX")
	}
}

func TestNewFileNotFound(t *testing.T) {
	err := NewFileNotFound("/tmp/missing.jsonl")

	if err.Code != ErrFileNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrFileNotFound)
	}
	if err.Details["path"] != "/tmp/missing.jsonl" {
		t.Errorf("Details[path] = %v", err.Details["path"])
	}
}

func TestNewInvalidActivity(t *testing.T) {
	err := NewInvalidActivity("calories must be greater than zero")

	if err.Code != ErrInvalidActivity {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidActivity)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
	if err.Message != "invalid activity: calories must be greater than zero" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewCorruptSnapshot(t *testing.T) {
	err := NewCorruptSnapshot("activities", fmt.Errorf("unexpected end of JSON input"))

	if err.Code != ErrCorruptSnapshot {
		t.Errorf("Code = %q, want %q", err.Code, ErrCorruptSnapshot)
	}
	want := `stored snapshot "activities" is malformed: unexpected end of JSON input`
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}

	noCause := NewCorruptSnapshot("activities", nil)
	if noCause.Message != `stored snapshot "activities" is malformed` {
		t.Errorf("Message = %q", noCause.Message)
	}
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(fmt.Errorf("disk full"))
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
	if err.Status != 500 {
		t.Errorf("Status = %d, want 500", err.Status)
	}

	nilErr := NewInternal(nil)
	if nilErr.Message != "internal error" {
		t.Errorf("Message = %q, want %q", nilErr.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", NewNotFound("x"), ErrNotFound, true},
		{"different code", NewNotFound("x"), ErrInvalidRequest, false},
		{"plain error", fmt.Errorf("boom"), ErrInternal, false},
		{"nil error", nil, ErrInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}
