package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"

	pkgconfig "github.com/Skotchmaster/boutiquechat/pkg/config"
	pkgdb "github.com/Skotchmaster/boutiquechat/pkg/db"
)

type Config struct {
	ServiceName string
	Port        string
	LogLevel    string

	DBDriver    string
	DatabaseURL string

	JWTSecret     []byte
	AccessTTL     time.Duration
	CookieSecure  bool
	AdminUsername string
	AdminPassword string

	KafkaBrokers []string
	KafkaTopic   string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	CloudinaryURL    string
	CloudinaryFolder string
	// ImgBBEndpoint overrides the public ImgBB API, mostly for tests.
	ImgBBEndpoint    string
	MaxUploadBytes   int
}

// LoadEnvFile loads variables from a .env file. Variables already set in the environment win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	return godotenv.Load(path)
}

func Load() (*Config, error) {
	cfg := &Config{
		ServiceName: pkgconfig.EnvDefault("SERVICE_NAME", "boutiquechat"),
		Port:        pkgconfig.EnvDefault("SERVER_PORT", "8080"),
		LogLevel:    pkgconfig.EnvDefault("LOG_LEVEL", "info"),

		DBDriver:    pkgconfig.EnvDefault("DB_DRIVER", pkgdb.DriverPostgres),
		DatabaseURL: pkgconfig.EnvDefault("DATABASE_URL", ""),

		JWTSecret:     []byte(pkgconfig.EnvDefault("JWT_SECRET", "")),
		AccessTTL:     pkgconfig.EnvDurationDefault("ACCESS_TTL", 12*time.Hour),
		CookieSecure:  pkgconfig.EnvBoolDefault("COOKIE_SECURE", true),
		AdminUsername: pkgconfig.EnvDefault("ADMIN_USERNAME", ""),
		AdminPassword: pkgconfig.EnvDefault("ADMIN_PASSWORD", ""),

		KafkaBrokers: pkgconfig.CSV(pkgconfig.EnvDefault("KAFKA_BROKERS", "")),
		KafkaTopic:   pkgconfig.EnvDefault("KAFKA_TOPIC", "catalog_events"),

		ESURL:      pkgconfig.EnvDefault("ES_URL", ""),
		ESUser:     pkgconfig.EnvDefault("ES_USER", ""),
		ESPassword: pkgconfig.EnvDefault("ES_PASSWORD", ""),
		ESIndex:    pkgconfig.EnvDefault("ES_INDEX", "products"),

		CloudinaryURL:    pkgconfig.EnvDefault("CLOUDINARY_URL", ""),
		CloudinaryFolder: pkgconfig.EnvDefault("CLOUDINARY_FOLDER", "boutiquechat"),
		ImgBBEndpoint:    pkgconfig.EnvDefault("IMGBB_ENDPOINT", ""),
		MaxUploadBytes:   pkgconfig.EnvIntDefault("MAX_UPLOAD_BYTES", 32<<20),
	}

	err := errors.Join(
		pkgconfig.RequireNonEmpty(cfg.DatabaseURL, "DATABASE_URL"),
		pkgconfig.RequireNonEmpty(string(cfg.JWTSecret), "JWT_SECRET"),
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
