package config

import (
	// Environment variables
	_ "github.com/joho/godotenv/autoload"

	"github.com/kelseyhightower/envconfig"
)

// App holds the runtime configuration, populated from the environment.
type App struct {
	Port   string `envconfig:"PORT" default:"8080"`
	DBPath string `envconfig:"DB_PATH" default:"tours.db"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
