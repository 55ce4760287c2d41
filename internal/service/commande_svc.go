package service

import (
	"context"
	"time"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

// CommandeInput carries the client-settable fields of an order. The owning
// person is always the authenticated caller, never part of the input.
type CommandeInput struct {
	IDRestaurant   string
	IDGestionnaire string
	QteCommande    int
	DateCommande   string // RFC3339 or YYYY-MM-DD; empty means "now"
}

type CommandeSvc struct {
	store  repository.Collection
	access *Access
	now    func() time.Time
}

func NewCommandeSvc(store repository.Collection, access *Access) *CommandeSvc {
	return &CommandeSvc{store: store, access: access, now: time.Now}
}

// Fields a client may overwrite through Update. id_personne and the
// timestamps are system-derived and stay out of reach.
var commandeMutable = map[string]struct{}{
	"id_restaurant":   {},
	"id_gestionnaire": {},
	"qte_commande":    {},
	"date_commande":   {},
}

func (s *CommandeSvc) Create(ctx context.Context, callerID string, in CommandeInput) (string, error) {
	idPersonne, err := s.access.RequireBookingRole(ctx, callerID)
	if err != nil {
		return "", err
	}

	var missing []string
	if in.IDRestaurant == "" {
		missing = append(missing, "id_restaurant")
	}
	if in.IDGestionnaire == "" {
		missing = append(missing, "id_gestionnaire")
	}
	if in.QteCommande == 0 {
		missing = append(missing, "qte_commande")
	}
	if len(missing) > 0 {
		return "", &MissingFieldsError{Fields: missing}
	}

	dateCommande := s.now().UTC()
	if in.DateCommande != "" {
		dateCommande, err = parseDate(in.DateCommande)
		if err != nil {
			return "", err
		}
	}

	id, err := s.store.Add(ctx, repository.Fields{
		"id_personne":     idPersonne,
		"id_restaurant":   in.IDRestaurant,
		"id_gestionnaire": in.IDGestionnaire,
		"qte_commande":    in.QteCommande,
		"date_commande":   dateCommande,
	})
	if err != nil {
		return "", &StoreError{Op: "création de la commande", Err: err}
	}
	return id, nil
}

func (s *CommandeSvc) List(ctx context.Context) ([]repository.Fields, error) {
	records, err := s.store.Query(ctx, "date_commande", true)
	if err != nil {
		return nil, &StoreError{Op: "lecture des commandes", Err: err}
	}
	out := make([]repository.Fields, 0, len(records))
	for _, r := range records {
		out = append(out, withID("id_commande", r))
	}
	return out, nil
}

func (s *CommandeSvc) Get(ctx context.Context, id string) (repository.Fields, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeErr("lecture de la commande", err)
	}
	return withID("id_commande", repository.Record{ID: id, Fields: doc}), nil
}

func (s *CommandeSvc) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return storeErr("lecture de la commande", err)
	}
	update, err := filterMutable(fields, commandeMutable, "date_commande")
	if err != nil {
		return err
	}
	if err := s.store.Update(ctx, id, update); err != nil {
		return storeErr("mise à jour de la commande", err)
	}
	return nil
}

func (s *CommandeSvc) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return storeErr("lecture de la commande", err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return storeErr("suppression de la commande", err)
	}
	return nil
}
