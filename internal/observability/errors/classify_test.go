package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "canceled", err: context.Canceled, want: "canceled"},
		{name: "wrapped canceled", err: fmt.Errorf("probe: %w", context.Canceled), want: "canceled"},
		{name: "deadline", err: context.DeadlineExceeded, want: "deadline_exceeded"},
		{name: "network timeout", err: timeoutErr{}, want: "network_timeout"},
		{
			name: "auth error",
			err:  &domainauth.AuthError{Op: "probe", Message: "unauthorized", StatusCode: 401},
			want: "auth_autherror",
		},
		{
			name: "wrapped auth error unwraps to innermost",
			err:  fmt.Errorf("bootstrap: %w", &domainauth.AuthError{Op: "probe", Message: "unauthorized"}),
			want: "auth_autherror",
		},
		{name: "plain error", err: errors.New("boom"), want: "errors_errorstring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
