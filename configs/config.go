package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DBSource         string
	Port             string
	JWTSecret        string
	JWTTTL           time.Duration
	TransitionPolicy string // "permissive" (default) or "strict"
	PrintTimeout     time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment")
	}

	return &Config{
		DBSource:         getEnv("DB_SOURCE", "pos.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           24 * time.Hour,
		TransitionPolicy: getEnv("TRANSITION_POLICY", "permissive"),
		PrintTimeout:     5 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
