package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Empty DBUrl starts the process without persistence; only the
	// health endpoint is served.
	DBUrl string

	// RedisAddr empty falls back to the in-process kv store (lost on
	// restart; single instance only).
	RedisAddr string

	SessionSecret string
	ServerPort    string

	// S3 config for profile-image uploads; uploads return 503 when
	// the bucket is not set.
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		DBUrl:         os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3PublicURL:   os.Getenv("S3_PUBLIC_URL"),
	}
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
