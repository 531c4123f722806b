package config

import (
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	Port          string
	ExportsDir    string
	WatchInterval time.Duration
}

var AppConfig *Config

// Load reads .env (when present) and environment variables into AppConfig.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:          getEnv("PORT", "8080"),
		ExportsDir:    getEnv("EXPORTS_DIR", ""),
		WatchInterval: getDurationEnv("WATCH_INTERVAL_SECONDS", 60) * time.Second,
	}
	return AppConfig
}

// InitDB opens the Postgres pool used by the follow-up log and user store.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	psqlInfo := getEnv("DATABASE_URL",
		"host=localhost port=5432 user=postgres dbname=timetable sslmode=disable")

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Database connection failed:", err)
	}
	log.Println("Database connected successfully")

	AppConfig.DB = db
}

func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
