package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// insecureDevSecret is only ever used when ENV=dev.
const insecureDevSecret = "dev_jwt_secret_change_me"

type Config struct {
	Env         string
	ServerPort  int
	JWTSecret   string
	CORSOrigins []string
	Database    DatabaseConfig
	Events      EventsConfig
	Archive     ArchiveConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// EventsConfig selects and configures the registration-event broker.
// Backend is one of "rabbitmq", "pubsub", or "none".
type EventsConfig struct {
	Backend  string
	Channel  string
	RabbitMQ RabbitMQConfig
	PubSub   PubSubConfig
}

type RabbitMQConfig struct {
	URL             string
	QueueDurable    bool
	QueueAutoDelete bool
}

type PubSubConfig struct {
	ProjectID       string
	CredentialsFile string
}

// ArchiveConfig selects and configures the moderation audit archive.
// Backend is one of "minio", "gcs", or "none".
type ArchiveConfig struct {
	Backend string
	Minio   MinioConfig
	GCS     GCSConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	Bucket          string
	ProjectID       string
	CredentialsFile string
}

func LoadConfig() (Config, error) {
	env := getEnv("ENV", "dev")
	if env == "dev" {
		godotenv.Load()
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		if env != "dev" {
			return Config{}, fmt.Errorf("JWT_SECRET is required when ENV=%s", env)
		}
		secret = insecureDevSecret
	}

	cfg := Config{
		Env:         env,
		ServerPort:  getEnvInt("SERVER_PORT", 3000),
		JWTSecret:   secret,
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "arena"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "arena_db"),
			UseSSL:   getEnvBool("DB_USE_SSL", false),
		},
		Events: EventsConfig{
			Backend: getEnv("EVENTS_BACKEND", "none"),
			Channel: getEnv("EVENTS_CHANNEL", "registration-events"),
			RabbitMQ: RabbitMQConfig{
				URL:             getEnv("RABBITMQ_URL", ""),
				QueueDurable:    getEnvBool("RABBITMQ_QUEUE_DURABLE", true),
				QueueAutoDelete: getEnvBool("RABBITMQ_QUEUE_AUTO_DELETE", false),
			},
			PubSub: PubSubConfig{
				ProjectID:       getEnv("PUBSUB_PROJECT_ID", ""),
				CredentialsFile: getEnv("PUBSUB_CREDENTIALS_FILE", ""),
			},
		},
		Archive: ArchiveConfig{
			Backend: getEnv("ARCHIVE_BACKEND", "none"),
			Minio: MinioConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", "arena-archive"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			GCS: GCSConfig{
				Bucket:          getEnv("GCS_BUCKET", ""),
				ProjectID:       getEnv("GCS_PROJECT_ID", ""),
				CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
			},
		},
	}

	return cfg, nil
}

// UsingInsecureSecret reports whether the dev fallback signing secret is in
// effect so the server can warn loudly at startup.
func (c Config) UsingInsecureSecret() bool {
	return c.JWTSecret == insecureDevSecret
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return strings.EqualFold(strings.TrimSpace(valueStr), "true")
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
