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
	DB          *sql.DB
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
}

var AppConfig *Config

// Load reads configuration from the environment (optionally seeded from a
// .env file) and opens the database pool. The JWT secret is read once here
// and never mutated for the process lifetime.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:        getenv("PORT", "5000"),
		DatabaseURL: getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=school_records sslmode=disable"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    getenvDuration("TOKEN_TTL", 8*time.Hour),
		BcryptCost:  getenvInt("BCRYPT_COST", 12),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	AppConfig = cfg
}

// InitDB opens and verifies the PostgreSQL connection pool.
func InitDB() {
	db, err := sql.Open("postgres", AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
