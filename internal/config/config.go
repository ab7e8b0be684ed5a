package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string

	// Optional. Empty RedisAddr disables the sign-out denylist.
	RedisAddr string

	// Optional. Empty S3Bucket disables product image uploads.
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	// Optional. Empty disables plan checkout.
	MercadoPagoToken string
}

func Load() *Config {
	return &Config{
		DBUrl:      mustEnv("DATABASE_URL"),
		JWTSecret:  mustEnv("JWT_SECRET"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),

		MercadoPagoToken: os.Getenv("MP_ACCESS_TOKEN"),
	}
}

// mustEnv: the two connection parameters are a fatal startup condition
// when absent.
func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
