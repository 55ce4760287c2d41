package service

import (
	"context"
	"errors"

	"github.com/fantiss0511/MaliDiscover/internal/domain"
	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

// Access performs the check gating booking creation: resolve the caller,
// load the stored profile, require the booking role. Pure read-then-decide,
// no side effects.
type Access struct {
	profiles repository.Collection
}

func NewAccess(profiles repository.Collection) *Access {
	return &Access{profiles: profiles}
}

// RequireBookingRole returns the caller identity to record as id_personne,
// or the reason the caller may not create bookings.
func (a *Access) RequireBookingRole(ctx context.Context, callerID string) (string, error) {
	if callerID == "" {
		return "", ErrUnauthenticated
	}
	profile, err := a.profiles.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrProfileNotFound
		}
		return "", &StoreError{Op: "lecture du profil", Err: err}
	}
	role, _ := profile["role"].(string)
	if role != domain.RoleUser {
		return "", ErrRoleNotPermitted
	}
	return callerID, nil
}
