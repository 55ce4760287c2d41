package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fantiss0511/MaliDiscover/internal/handlers"
	"github.com/fantiss0511/MaliDiscover/internal/repository"
	"github.com/fantiss0511/MaliDiscover/internal/service"
	"github.com/fantiss0511/MaliDiscover/pkg/auth"
	"github.com/fantiss0511/MaliDiscover/pkg/config"
	"github.com/fantiss0511/MaliDiscover/pkg/obs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, "malidiscover-api")
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	} else {
		defer shutdownTracer(context.Background())
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("mongo connect", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	personnes := repository.NewMongoCollection(db.Collection("Personne"))
	commandes := repository.NewMongoCollection(db.Collection("commandes"))
	reservations := repository.NewMongoCollection(db.Collection("reservations"))

	tokens := auth.NewManager(cfg.JWTSecret)
	access := service.NewAccess(personnes)

	r := gin.Default()
	handlers.Routes(r, handlers.Deps{
		Tokens: tokens,
		Auth: service.NewAuthSvc(personnes, tokens,
			time.Duration(cfg.JWTExpireMin)*time.Minute,
			time.Duration(cfg.RefreshExpireHr)*time.Hour),
		Commandes:    service.NewCommandeSvc(commandes, access),
		Reservations: service.NewReservationSvc(reservations, access),
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		logger.Info("api listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info("api stopped")
}
