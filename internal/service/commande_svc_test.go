package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

func seedProfile(t *testing.T, profiles *repository.MemoryCollection, role string) string {
	t.Helper()
	id, err := profiles.Add(context.Background(), repository.Fields{
		"nom":   "Awa Traoré",
		"email": "awa@example.ml",
		"role":  role,
	})
	require.NoError(t, err)
	return id
}

func newCommandeFixture(t *testing.T) (*CommandeSvc, *repository.MemoryCollection, *repository.MemoryCollection) {
	t.Helper()
	store := repository.NewMemoryCollection()
	profiles := repository.NewMemoryCollection()
	return NewCommandeSvc(store, NewAccess(profiles)), store, profiles
}

func validCommande() CommandeInput {
	return CommandeInput{IDRestaurant: "R1", IDGestionnaire: "G1", QteCommande: 3}
}

func TestCreateCommandeUnauthenticated(t *testing.T) {
	svc, store, _ := newCommandeFixture(t)

	_, err := svc.Create(context.Background(), "", validCommande())
	require.ErrorIs(t, err, ErrUnauthenticated)

	records, err := store.Query(context.Background(), "date_commande", true)
	require.NoError(t, err)
	assert.Empty(t, records, "no record may be written for anonymous callers")
}

func TestCreateCommandeProfileNotFound(t *testing.T) {
	svc, store, _ := newCommandeFixture(t)

	_, err := svc.Create(context.Background(), "inconnu", validCommande())
	require.ErrorIs(t, err, ErrProfileNotFound)

	records, _ := store.Query(context.Background(), "date_commande", true)
	assert.Empty(t, records)
}

func TestCreateCommandeRoleNotPermitted(t *testing.T) {
	svc, store, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "gestionnaire")

	_, err := svc.Create(context.Background(), caller, validCommande())
	require.ErrorIs(t, err, ErrRoleNotPermitted)

	records, _ := store.Query(context.Background(), "date_commande", true)
	assert.Empty(t, records)
}

func TestCreateCommandeMissingFields(t *testing.T) {
	svc, store, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")

	_, err := svc.Create(context.Background(), caller, CommandeInput{IDRestaurant: "R1"})

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"id_gestionnaire", "qte_commande"}, missing.Fields)

	records, _ := store.Query(context.Background(), "date_commande", true)
	assert.Empty(t, records)
}

func TestCreateCommandeRoundTrip(t *testing.T) {
	svc, _, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")

	id, err := svc.Create(context.Background(), caller, validCommande())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, doc["id_commande"])
	assert.Equal(t, "R1", doc["id_restaurant"])
	assert.Equal(t, "G1", doc["id_gestionnaire"])
	assert.Equal(t, 3, doc["qte_commande"])
	assert.Equal(t, caller, doc["id_personne"], "owner comes from the caller, never the payload")
	created, ok := doc["createdAt"].(time.Time)
	require.True(t, ok, "createdAt must be store-assigned")
	assert.False(t, created.IsZero())
}

func TestCreateCommandeDateDefaultsToNow(t *testing.T) {
	svc, _, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")
	fixed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id, err := svc.Create(context.Background(), caller, validCommande())
	require.NoError(t, err)

	doc, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, fixed, doc["date_commande"])
}

func TestCreateCommandeClientDateKept(t *testing.T) {
	svc, _, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")

	in := validCommande()
	in.DateCommande = "2024-02-01"
	id, err := svc.Create(context.Background(), caller, in)
	require.NoError(t, err)

	doc, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), doc["date_commande"])

	in.DateCommande = "pas une date"
	_, err = svc.Create(context.Background(), caller, in)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListCommandesOrderedByDateDesc(t *testing.T) {
	svc, _, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")

	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		in := validCommande()
		in.DateCommande = date
		_, err := svc.Create(context.Background(), caller, in)
		require.NoError(t, err)
	}

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	var got []time.Time
	for _, doc := range out {
		got = append(got, doc["date_commande"].(time.Time))
	}
	assert.Equal(t, []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, got)
}

func TestGetCommandeNotFound(t *testing.T) {
	svc, _, _ := newCommandeFixture(t)

	_, err := svc.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateCommandeFiltersSystemFields(t *testing.T) {
	svc, _, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")

	id, err := svc.Create(context.Background(), caller, validCommande())
	require.NoError(t, err)

	err = svc.Update(context.Background(), id, map[string]any{
		"qte_commande": 5,
		"id_personne":  "intrus",
		"createdAt":    "2000-01-01",
	})
	require.NoError(t, err)

	doc, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, doc["qte_commande"])
	assert.Equal(t, caller, doc["id_personne"], "id_personne is not client-mutable")
	_, isTime := doc["createdAt"].(time.Time)
	assert.True(t, isTime, "createdAt is not client-mutable")
	_, hasUpdated := doc["updatedAt"]
	assert.True(t, hasUpdated, "update must stamp updatedAt")
}

func TestUpdateCommandeNotFound(t *testing.T) {
	svc, _, _ := newCommandeFixture(t)

	err := svc.Update(context.Background(), "absent", map[string]any{"qte_commande": 2})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCommandeTwice(t *testing.T) {
	svc, _, profiles := newCommandeFixture(t)
	caller := seedProfile(t, profiles, "user")

	id, err := svc.Create(context.Background(), caller, validCommande())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))
	err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound, "a second delete reports NotFound, not silent success")
}

func TestCreateCommandeStoreFailure(t *testing.T) {
	profiles := repository.NewMemoryCollection()
	svc := NewCommandeSvc(failingCollection{}, NewAccess(profiles))
	caller := seedProfile(t, profiles, "user")

	_, err := svc.Create(context.Background(), caller, validCommande())

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.ErrorContains(t, err, "panne simulée")
}

// failingCollection trips every call, for StoreUnavailable paths.
type failingCollection struct{}

var errDown = errors.New("panne simulée")

func (failingCollection) Get(context.Context, string) (repository.Fields, error) {
	return nil, errDown
}
func (failingCollection) Add(context.Context, repository.Fields) (string, error) {
	return "", errDown
}
func (failingCollection) Query(context.Context, string, bool) ([]repository.Record, error) {
	return nil, errDown
}
func (failingCollection) Find(context.Context, string, any) ([]repository.Record, error) {
	return nil, errDown
}
func (failingCollection) Update(context.Context, string, repository.Fields) error { return errDown }
func (failingCollection) Delete(context.Context, string) error                    { return errDown }
