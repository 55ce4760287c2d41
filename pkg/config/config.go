package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	MongoDB  string `envconfig:"MONGO_DB" default:"malidiscover"`
	// JWT
	JWTSecret       string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin    int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	RefreshExpireHr int    `envconfig:"REFRESH_EXPIRE_HR" default:"720"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
