package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
	"github.com/fantiss0511/MaliDiscover/pkg/auth"
)

// AuthSvc issues tokens against profiles stored in the Personne collection.
// The original system delegated credentials to an external identity
// provider; running standalone, profiles carry a bcrypt mot_de_passe hash.
type AuthSvc struct {
	profiles   repository.Collection
	tokens     *auth.Manager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthSvc(profiles repository.Collection, tokens *auth.Manager, accessTTL, refreshTTL time.Duration) *AuthSvc {
	return &AuthSvc{profiles: profiles, tokens: tokens, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (access, refresh string, err error) {
	matches, err := s.profiles.Find(ctx, "email", email)
	if err != nil {
		return "", "", &StoreError{Op: "lecture du profil", Err: err}
	}
	if len(matches) == 0 {
		return "", "", ErrInvalidCredentials
	}
	p := matches[0]
	hash, _ := p.Fields["mot_de_passe"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", "", ErrInvalidCredentials
	}
	role, _ := p.Fields["role"].(string)
	access, err = s.tokens.CreateToken(p.ID, role, email, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.tokens.CreateToken(p.ID, role, email, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Me returns the caller's profile, id merged in and credentials stripped.
func (s *AuthSvc) Me(ctx context.Context, callerID string) (repository.Fields, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	doc, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, storeErr("lecture du profil", err)
	}
	delete(doc, "mot_de_passe")
	return withID("id_personne", repository.Record{ID: callerID, Fields: doc}), nil
}
