package errors

import (
	"errors"
	"testing"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "formatted message",
			err:  New(ErrCodeInvalidRule, "rule %d has no target", 3),
			want: "INVALID_RULE: rule 3 has no target",
		},
		{
			name: "no format arguments",
			err:  New(ErrCodeUnknownView, "no view called sidebar"),
			want: "UNKNOWN_VIEW: no view called sidebar",
		},
		{
			name: "wrapped cause appended",
			err:  Wrap(ErrCodeInvalidManifest, errors.New("unexpected EOF"), "failed to decode layout.toml"),
			want: "INVALID_MANIFEST: failed to decode layout.toml: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("file does not exist")
	err := Wrap(ErrCodeInvalidManifest, cause, "failed to read layout.yaml")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want the original cause", errors.Unwrap(err))
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want the cause visible through the chain")
	}

	if unwrapped := New(ErrCodeInternal, "no cause").Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() without a cause = %v, want nil", unwrapped)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeInvalidRule, "rule 0 has no factory"),
			code: ErrCodeInvalidRule,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeInvalidRule, "rule 0 has no factory"),
			code: ErrCodeUnknownView,
			want: false,
		},
		{
			name: "outer code of a wrapped chain",
			err:  Wrap(ErrCodeInvalidManifest, New(ErrCodeInvalidRule, "rule 2"), "document rejected"),
			code: ErrCodeInvalidManifest,
			want: true,
		},
		{
			name: "plain error",
			err:  errors.New("not a coded error"),
			code: ErrCodeInvalidRule,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrCodeInvalidRule,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "coded error",
			err:  New(ErrCodeUnknownFactory, "no factory called explode"),
			want: ErrCodeUnknownFactory,
		},
		{
			name: "code survives stdlib wrapping",
			err:  errors.Join(New(ErrCodeInvalidFormat, "bad extension")),
			want: ErrCodeInvalidFormat,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "coded error drops the code prefix",
			err:  New(ErrCodeInvalidView, "view id contains spaces"),
			want: "view id contains spaces",
		},
		{
			name: "wrapped error drops the cause too",
			err:  Wrap(ErrCodeInvalidManifest, errors.New("yaml: line 3"), "failed to decode manifest"),
			want: "failed to decode manifest",
		},
		{
			name: "plain error passes through",
			err:  errors.New("plain error"),
			want: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
