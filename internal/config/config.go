package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
}

type Config struct {
	ServerPort       int
	DB               DB
	MinIO            MinIO
	SessionSecret    string
	SessionDuration  time.Duration
	RememberDuration time.Duration
	PageSize         int
	MaxUploadSize    int64
}

const DefaultPageSize = 5

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "miniblog"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:       getEnvAsInt("SERVER_PORT", 8080),
		DB:               LoadDB(),
		MinIO:            LoadMinIO(),
		SessionSecret:    loadSessionSecret(),
		SessionDuration:  parseDuration(getEnv("SESSION_DURATION", "24h"), 24*time.Hour),
		RememberDuration: parseDuration(getEnv("REMEMBER_DURATION", "720h"), 720*time.Hour),
		PageSize:         loadPageSize(),
		MaxUploadSize:    parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}
}

// loadSessionSecret reads SESSION_SECRET so that sessions survive restarts.
// Without it a random per-process secret is generated, which logs everyone
// out on every restart.
func loadSessionSecret() string {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return secret
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Не удалось сгенерировать session secret: %v", err)
	}

	log.Println("Warning: SESSION_SECRET не установлен, сессии будут сброшены при перезапуске")
	return hex.EncodeToString(buf)
}

// loadPageSize ignores non-positive PAGE_SIZE values: page math needs
// at least one post per page.
func loadPageSize() int {
	size := getEnvAsInt("PAGE_SIZE", DefaultPageSize)
	if size < 1 {
		return DefaultPageSize
	}
	return size
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}
