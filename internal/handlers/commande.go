package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fantiss0511/MaliDiscover/internal/service"
)

const commandeNotFound = "Commande non trouvée."

type CommandeHandler struct {
	svc *service.CommandeSvc
}

func NewCommandeHandler(svc *service.CommandeSvc) *CommandeHandler {
	return &CommandeHandler{svc: svc}
}

// POST /v1/commandes
func (h *CommandeHandler) Create(c *gin.Context) {
	var in struct {
		IDRestaurant   string `json:"id_restaurant" binding:"required"`
		IDGestionnaire string `json:"id_gestionnaire" binding:"required"`
		QteCommande    int    `json:"qte_commande" binding:"required,gt=0"`
		DateCommande   string `json:"date_commande"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingError(c, err)
		return
	}
	id, err := h.svc.Create(c.Request.Context(), callerID(c), service.CommandeInput{
		IDRestaurant:   in.IDRestaurant,
		IDGestionnaire: in.IDGestionnaire,
		QteCommande:    in.QteCommande,
		DateCommande:   in.DateCommande,
	})
	if err != nil {
		serviceError(c, err, commandeNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Commande créée avec succès",
		"id_commande": id,
	})
}

// GET /v1/commandes
func (h *CommandeHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err, commandeNotFound)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /v1/commandes/:id
func (h *CommandeHandler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, commandeNotFound)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// PUT /v1/commandes/:id
func (h *CommandeHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		serviceError(c, err, commandeNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commande mise à jour avec succès."})
}

// DELETE /v1/commandes/:id
func (h *CommandeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err, commandeNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commande supprimée avec succès."})
}
