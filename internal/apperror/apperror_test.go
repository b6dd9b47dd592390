package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayush/multiuser-calendar/internal/apperror"
)

func TestKindChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"storage", apperror.NewStorage("insert failed", errors.New("conn reset")), apperror.IsStorage},
		{"duplicate username", apperror.NewDuplicateUsername("username already exists"), apperror.IsDuplicateUsername},
		{"invalid credentials", apperror.NewInvalidCredentials("invalid credentials"), apperror.IsInvalidCredentials},
		{"unauthenticated", apperror.NewUnauthenticated("no session"), apperror.IsUnauthenticated},
		{"not found", apperror.NewNotFound("user not found"), apperror.IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}
}

func TestKindChecks_SeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("register: %w", apperror.NewDuplicateUsername("username already exists"))
	assert.True(t, apperror.IsDuplicateUsername(err))
	assert.False(t, apperror.IsStorage(err))
}

func TestError_IncludesCause(t *testing.T) {
	cause := errors.New("conn reset")
	err := apperror.NewStorage("insert failed", cause)

	assert.Equal(t, "insert failed: conn reset", err.Error())
	assert.ErrorIs(t, err, cause)
}
