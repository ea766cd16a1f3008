package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultDatabaseName = "hospital_finder"

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Import   ImportConfig
}

type DatabaseConfig struct {
	URI            string
	Name           string
	ConnectTimeout time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
	// MaxUploadMB caps the request body of a spreadsheet upload
	MaxUploadMB int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Env   string
	Level string
}

// ImportConfig holds spreadsheet import settings.
// The two emergency number defaults intentionally differ: the CLI driver has
// always written "0" while the upload endpoint wrote "". Which one is right is
// still an open product question, so both stay configurable.
type ImportConfig struct {
	UploadEmergencyNumberDefault string
	CLIEmergencyNumberDefault    string
	DefaultFile                  string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	uri := getEnv("MONGODB_URI", "mongodb://localhost:27017/"+defaultDatabaseName)

	config := &Config{
		Database: DatabaseConfig{
			URI:            uri,
			Name:           getEnv("MONGODB_DATABASE", databaseFromURI(uri)),
			ConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Server: ServerConfig{
			Port:        getEnv("PORT", "3000"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			MaxUploadMB: getEnvInt64("MAX_UPLOAD_MB", 50),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Env:   getEnv("APP_ENV", "development"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Import: ImportConfig{
			UploadEmergencyNumberDefault: os.Getenv("UPLOAD_EMERGENCY_NUM_DEFAULT"),
			CLIEmergencyNumberDefault:    getEnv("IMPORT_EMERGENCY_NUM_DEFAULT", "0"),
			DefaultFile:                  getEnv("IMPORT_FILE", "data/hospitals.xlsx"),
		},
	}

	return config
}

// IsLocalDatabase reports whether the connection string points at this machine.
func (c *Config) IsLocalDatabase() bool {
	return strings.Contains(c.Database.URI, "localhost") || strings.Contains(c.Database.URI, "127.0.0.1")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

// databaseFromURI returns the database named in the URI path, if any.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultDatabaseName
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultDatabaseName
	}
	return name
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
