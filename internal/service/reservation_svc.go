package service

import (
	"context"

	"github.com/fantiss0511/MaliDiscover/internal/domain"
	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

// ReservationInput carries the client-settable fields of a reservation. The
// four target references are each optional; a reservation against none or
// several of them is accepted (see DESIGN.md). Status is never part of the
// input: new reservations always start "en attente".
type ReservationInput struct {
	IDRestaurant    string
	IDHotel         string
	IDEvenement     string
	IDActivite      string
	DateReservation string
	NbrePersonne    int
}

type ReservationSvc struct {
	store  repository.Collection
	access *Access
}

func NewReservationSvc(store repository.Collection, access *Access) *ReservationSvc {
	return &ReservationSvc{store: store, access: access}
}

var reservationMutable = map[string]struct{}{
	"id_restaurant":    {},
	"id_hotel":         {},
	"id_evenement":     {},
	"id_activite":      {},
	"date_reservation": {},
	"nbre_personne":    {},
	"statut":           {},
}

func (s *ReservationSvc) Create(ctx context.Context, callerID string, in ReservationInput) (string, error) {
	idPersonne, err := s.access.RequireBookingRole(ctx, callerID)
	if err != nil {
		return "", err
	}

	var missing []string
	if in.DateReservation == "" {
		missing = append(missing, "date_reservation")
	}
	if in.NbrePersonne == 0 {
		missing = append(missing, "nbre_personne")
	}
	if len(missing) > 0 {
		return "", &MissingFieldsError{Fields: missing}
	}

	dateReservation, err := parseDate(in.DateReservation)
	if err != nil {
		return "", err
	}

	id, err := s.store.Add(ctx, repository.Fields{
		"id_personne":      idPersonne,
		"id_restaurant":    nullable(in.IDRestaurant),
		"id_hotel":         nullable(in.IDHotel),
		"id_evenement":     nullable(in.IDEvenement),
		"id_activite":      nullable(in.IDActivite),
		"date_reservation": dateReservation,
		"nbre_personne":    in.NbrePersonne,
		"statut":           domain.StatutEnAttente,
	})
	if err != nil {
		return "", &StoreError{Op: "création de la réservation", Err: err}
	}
	return id, nil
}

func (s *ReservationSvc) List(ctx context.Context) ([]repository.Fields, error) {
	records, err := s.store.Query(ctx, "date_reservation", true)
	if err != nil {
		return nil, &StoreError{Op: "lecture des réservations", Err: err}
	}
	out := make([]repository.Fields, 0, len(records))
	for _, r := range records {
		out = append(out, withID("id_reservation", r))
	}
	return out, nil
}

func (s *ReservationSvc) Get(ctx context.Context, id string) (repository.Fields, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeErr("lecture de la réservation", err)
	}
	return withID("id_reservation", repository.Record{ID: id, Fields: doc}), nil
}

func (s *ReservationSvc) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return storeErr("lecture de la réservation", err)
	}
	update, err := filterMutable(fields, reservationMutable, "date_reservation")
	if err != nil {
		return err
	}
	if err := s.store.Update(ctx, id, update); err != nil {
		return storeErr("mise à jour de la réservation", err)
	}
	return nil
}

func (s *ReservationSvc) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return storeErr("lecture de la réservation", err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return storeErr("suppression de la réservation", err)
	}
	return nil
}
