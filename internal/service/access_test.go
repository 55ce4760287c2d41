package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

func TestRequireBookingRole(t *testing.T) {
	profiles := repository.NewMemoryCollection()
	user := seedProfile(t, profiles, "user")
	admin := seedProfile(t, profiles, "admin")
	access := NewAccess(profiles)

	tests := []struct {
		name    string
		caller  string
		wantErr error
	}{
		{"anonymous", "", ErrUnauthenticated},
		{"no profile", "fantome", ErrProfileNotFound},
		{"wrong role", admin, ErrRoleNotPermitted},
		{"role user", user, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := access.RequireBookingRole(context.Background(), tt.caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.caller, got)
		})
	}
}
