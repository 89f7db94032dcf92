package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const minSessionSecretLength = 32

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Config struct {
	ServerPort         int
	Env                string
	LogLevel           string
	DB                 DB
	Redis              Redis
	MinIO              MinIO
	SessionSecret      string
	MaxUploadSize      int64
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// IsProduction reports whether cookies must carry the Secure flag.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate fails when the process cannot run safely with this configuration.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET не установлен")
	}
	if len(c.SessionSecret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET должен быть не короче %d байт", minSessionSecretLength)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("неверный SERVER_PORT: %d", c.ServerPort)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("неверный MAX_UPLOAD_SIZE: %d", c.MaxUploadSize)
	}
	return nil
}

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

func getEnvList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "blog"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadRedis() Redis {
	return Redis{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "blog-images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  strings.TrimSuffix(getEnv("MINIO_PUBLIC_URL", ""), "/"),
	}
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env файл не найден, используются переменные окружения")
	}

	return &Config{
		ServerPort:         getEnvAsInt("SERVER_PORT", 8080),
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DB:                 LoadDB(),
		Redis:              LoadRedis(),
		MinIO:              LoadMinIO(),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		MaxUploadSize:      parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		ShutdownTimeout:    parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}
