package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

var (
	ErrUnauthenticated    = errors.New("utilisateur non connecté")
	ErrProfileNotFound    = errors.New("compte utilisateur introuvable")
	ErrRoleNotPermitted   = errors.New("seuls les utilisateurs avec le rôle 'user' peuvent effectuer une réservation")
	ErrInvalidDate        = errors.New("format de date invalide")
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
)

// MissingFieldsError lists domain-mandatory fields absent from a create
// payload after structural validation already passed.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("les champs %s sont obligatoires", strings.Join(e.Fields, ", "))
}

// StoreError wraps a failed store call. The underlying message is surfaced
// untouched and nothing is retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// storeErr keeps ErrNotFound identifiable and wraps anything else.
func storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
