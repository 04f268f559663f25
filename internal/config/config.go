package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"eduquiz/internal/kvstore"
)

// Config holds application configuration
type Config struct {
	Store         string
	DBPath        string
	DBURL         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MongoURI      string
	MongoDatabase string
	KeyPrefix     string
	BankPath      string
	StoreTimeout  time.Duration
	Verbose       bool
}

// Load reads a .env file when present, then the environment, with defaults
// for everything.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: could not read .env: %v", err)
	}

	return &Config{
		Store:         strings.ToLower(getEnv("EDUQUIZ_STORE", "sqlite")),
		DBPath:        getEnv("EDUQUIZ_DB_PATH", "eduquiz.db"),
		DBURL:         getEnv("EDUQUIZ_DB_URL", ""),
		RedisAddr:     getEnv("EDUQUIZ_REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("EDUQUIZ_REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("EDUQUIZ_REDIS_DB", 0),
		MongoURI:      getEnv("EDUQUIZ_MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("EDUQUIZ_MONGO_DATABASE", "eduquiz"),
		KeyPrefix:     getEnv("EDUQUIZ_KEY_PREFIX", "eduquiz:"),
		BankPath:      getEnv("EDUQUIZ_BANK_PATH", ""),
		StoreTimeout:  getEnvDuration("EDUQUIZ_STORE_TIMEOUT", 5*time.Second),
		Verbose:       getEnvBool("EDUQUIZ_VERBOSE", false),
	}
}

// StoreOptions maps the configuration onto kvstore.Open options.
func (c *Config) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Type: c.Store,
		Path: c.DBPath,
		URL:  c.DBURL,
		Redis: kvstore.RedisConfig{
			Address:  c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
		Mongo: kvstore.MongoConfig{
			URI:      c.MongoURI,
			Database: c.MongoDatabase,
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("config: ignoring %s=%q", key, raw)
		return defaultValue
	}
	return value
}
