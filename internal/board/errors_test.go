package board

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("job not found"), KindNotFound},
		{"wrapped conflict", fmt.Errorf("apply: %w", Conflict(MsgAlreadyApplied)), KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
		{"forbidden", Forbidden("nope"), KindForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_WrapsCauseAndCapturesStack(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to load jobs", cause)

	assert.Equal(t, "failed to load jobs: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.StackTrace())

	plain := Unauthorized(MsgInvalidCredentials)
	assert.Equal(t, MsgInvalidCredentials, plain.Error())
	assert.Nil(t, plain.Unwrap())
	assert.NotEmpty(t, plain.StackTrace())
}
