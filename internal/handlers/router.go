package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fantiss0511/MaliDiscover/internal/middlewares"
	"github.com/fantiss0511/MaliDiscover/internal/service"
	"github.com/fantiss0511/MaliDiscover/pkg/auth"
)

type Deps struct {
	Tokens       *auth.Manager
	Auth         *service.AuthSvc
	Commandes    *service.CommandeSvc
	Reservations *service.ReservationSvc
}

// Routes mounts the v1 API on r. Booking routes run behind IdentifyUser,
// which resolves the caller when a token is present but never rejects:
// whether authentication is required is the workflows' decision.
func Routes(r *gin.Engine, d Deps) {
	ah := NewAuthHandler(d.Auth)
	ch := NewCommandeHandler(d.Commandes)
	rh := NewReservationHandler(d.Reservations)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", ah.Login)

		me := v1.Group("/users/me")
		me.Use(middlewares.JWTAuth(d.Tokens))
		me.GET("", ah.Me)

		cg := v1.Group("/commandes")
		cg.Use(middlewares.IdentifyUser(d.Tokens))
		{
			cg.POST("", ch.Create)
			cg.GET("", ch.List)
			cg.GET("/:id", ch.Get)
			cg.PUT("/:id", ch.Update)
			cg.DELETE("/:id", ch.Delete)
		}

		rg := v1.Group("/reservations")
		rg.Use(middlewares.IdentifyUser(d.Tokens))
		{
			rg.POST("", rh.Create)
			rg.GET("", rh.List)
			rg.GET("/:id", rh.Get)
			rg.PUT("/:id", rh.Update)
			rg.DELETE("/:id", rh.Delete)
		}
	}
}
