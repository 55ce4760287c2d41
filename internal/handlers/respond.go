package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
	"github.com/fantiss0511/MaliDiscover/internal/service"
)

// callerID returns the identity set by the IdentifyUser middleware, or ""
// for anonymous requests.
func callerID(c *gin.Context) string {
	sub, _ := c.Get("sub")
	id, _ := sub.(string)
	return id
}

// bindingError reports a rejected payload: one entry per offending field
// when the validator refused it, a plain message otherwise.
func bindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		out := make([]gin.H, 0, len(vErrs))
		for _, fe := range vErrs {
			out = append(out, gin.H{"champ": fe.Field(), "regle": fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"erreurs": out})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// serviceError maps the workflow error taxonomy onto HTTP statuses.
// notFoundMsg overrides the generic message so each record kind keeps its
// historical wording.
func serviceError(c *gin.Context, err error, notFoundMsg string) {
	var missing *service.MissingFieldsError
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrRoleNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &missing),
		errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		msg := notFoundMsg
		if msg == "" {
			msg = err.Error()
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
