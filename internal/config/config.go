package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string

	// DefaultPointsPerPeso is used whenever the points_per_peso setting
	// cannot be read from the store.
	DefaultPointsPerPeso float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:               os.Getenv("DB_HOST"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBPort:               os.Getenv("DB_PORT"),
		AppPort:              os.Getenv("APP_PORT"),
		AppEnv:               os.Getenv("APP_ENV"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		DefaultPointsPerPeso: 100,
	}

	if v := os.Getenv("POINTS_PER_PESO_DEFAULT"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			log.Fatalf("Invalid POINTS_PER_PESO_DEFAULT: %q", v)
		}
		cfg.DefaultPointsPerPeso = rate
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
