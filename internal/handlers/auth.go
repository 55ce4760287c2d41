package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fantiss0511/MaliDiscover/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(svc *service.AuthSvc) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingError(c, err)
		return
	}
	access, refresh, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// GET /v1/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	doc, err := h.svc.Me(c.Request.Context(), callerID(c))
	if err != nil {
		serviceError(c, err, "Compte utilisateur introuvable.")
		return
	}
	c.JSON(http.StatusOK, doc)
}
