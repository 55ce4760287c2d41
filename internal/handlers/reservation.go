package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fantiss0511/MaliDiscover/internal/service"
)

const reservationNotFound = "Réservation non trouvée."

type ReservationHandler struct {
	svc *service.ReservationSvc
}

func NewReservationHandler(svc *service.ReservationSvc) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// POST /v1/reservations
// statut is deliberately absent from the payload: new reservations always
// start "en attente".
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		IDRestaurant    string `json:"id_restaurant"`
		IDHotel         string `json:"id_hotel"`
		IDEvenement     string `json:"id_evenement"`
		IDActivite      string `json:"id_activite"`
		DateReservation string `json:"date_reservation" binding:"required"`
		NbrePersonne    int    `json:"nbre_personne" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingError(c, err)
		return
	}
	id, err := h.svc.Create(c.Request.Context(), callerID(c), service.ReservationInput{
		IDRestaurant:    in.IDRestaurant,
		IDHotel:         in.IDHotel,
		IDEvenement:     in.IDEvenement,
		IDActivite:      in.IDActivite,
		DateReservation: in.DateReservation,
		NbrePersonne:    in.NbrePersonne,
	})
	if err != nil {
		serviceError(c, err, reservationNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Réservation créée avec succès",
		"id":      id,
	})
}

// GET /v1/reservations
func (h *ReservationHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err, reservationNotFound)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /v1/reservations/:id
func (h *ReservationHandler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, reservationNotFound)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// PUT /v1/reservations/:id
func (h *ReservationHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		serviceError(c, err, reservationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Réservation mise à jour avec succès."})
}

// DELETE /v1/reservations/:id
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err, reservationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Réservation supprimée avec succès."})
}
