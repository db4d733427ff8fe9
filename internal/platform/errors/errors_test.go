package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "error with cause",
			err: Wrap(KindConfig, "load", "failed to load config",
				errors.New("file not found")),
			contains: []string{"[config:load]", "failed to load config", "file not found"},
		},
		{
			name:     "error without cause",
			err:      New(KindVision, "detect_labels", "label detection failed"),
			contains: []string{"[vision:detect_labels]", "label detection failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errStr, substr) {
					t.Errorf("error string %q does not contain %q", errStr, substr)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := Wrap(KindSpeech, "synthesize", "wrapped", originalErr)

	if !errors.Is(wrappedErr, originalErr) {
		t.Error("Unwrap should return the original error")
	}
}

func TestWrap_NilCause(t *testing.T) {
	if err := Wrap(KindConfig, "load", "message", nil); err != nil {
		t.Errorf("Wrap with nil cause should return nil, got %v", err)
	}
}

func TestWrap_AlreadyTyped(t *testing.T) {
	inner := New(KindVision, "detect_faces", "faces unavailable")
	outer := Wrap(KindTransport, "handle", "request failed", inner)

	if outer != inner {
		t.Error("Wrap should not re-wrap an already typed error")
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{
			name:     "direct error kind match",
			err:      New(KindConfig, "test", "message"),
			kind:     KindConfig,
			expected: true,
		},
		{
			name:     "wrapped error kind match",
			err:      Wrap(KindSpeech, "test", "message", errors.New("cause")),
			kind:     KindSpeech,
			expected: true,
		},
		{
			name:     "error kind mismatch",
			err:      New(KindConfig, "test", "message"),
			kind:     KindVision,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			kind:     KindUnknown,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			kind:     KindConfig,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.expected {
				t.Errorf("IsKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClientMessage(t *testing.T) {
	typed := New(KindTransport, "image.validate", "Nenhuma imagem enviada")
	if got := ClientMessage(typed); got != "Nenhuma imagem enviada" {
		t.Errorf("ClientMessage() = %q, want bare message", got)
	}
	if got := ClientMessage(errors.New("bare")); got != "bare" {
		t.Errorf("ClientMessage() = %q, want %q", got, "bare")
	}
}

func TestDetail(t *testing.T) {
	cause := errors.New("polly unavailable")
	wrapped := Wrap(KindSpeech, "synthesize", "speech synthesis failed", cause)

	if got := Detail(wrapped); got != "polly unavailable" {
		t.Errorf("Detail() = %q, want cause message", got)
	}
	if got := Detail(errors.New("bare")); got != "bare" {
		t.Errorf("Detail() = %q, want %q", got, "bare")
	}
	if got := Detail(nil); got != "" {
		t.Errorf("Detail(nil) = %q, want empty", got)
	}
}
