package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the task service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - HTTP: Settings of the public API server.
// - MonitoringPort: The port for the health and metrics server.
// - TemplatesDir: Directory holding the index.html entry page.
// - StaticDir: Directory with static assets served under /static.
// - CORSOrigins: Origins allowed to call the API from a browser.
// - Geocoder: Location search provider settings.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env            string         // Env is the current environment: local, development, production.
	HTTP           HTTPConfig     // HTTP holds the API server settings.
	MonitoringPort int            // MonitoringPort serves /healthz and /metrics.
	TemplatesDir   string         // TemplatesDir is where index.html is looked up.
	StaticDir      string         // StaticDir is served under /static when present.
	CORSOrigins    []string       // CORSOrigins lists allowed browser origins.
	Geocoder       GeocoderConfig // Geocoder configures location search.
	Database       PostgresConfig // Database holds the postgres database configuration.
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Port            int           // Port the API listens on.
	ShutdownTimeout time.Duration // ShutdownTimeout bounds graceful shutdown.
}

// GeocoderConfig selects and configures the location search provider.
type GeocoderConfig struct {
	Provider  string // Provider is one of nominatim, google, visicom or disabled.
	APIKey    string // APIKey is required by google and visicom.
	RateLimit int    // RateLimit is the number of provider requests per second.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
	SSLMode  string // SSLMode is passed through to the connection string.
}

// GeocoderDisabled turns location search off.
const GeocoderDisabled = "disabled"

// MustLoad reads the configuration from the environment (and an optional .env file)
// and returns a Config struct. It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := newViper()

	httpPort, err := strconv.Atoi(v.GetString("http.port"))
	if err != nil {
		panic("failed to parse http port from configuration")
	}

	monitoringPort, err := strconv.Atoi(v.GetString("monitoring.port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("http.shutdown_timeout"))
	if err != nil {
		panic("failed to parse shutdown timeout from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("geocoder_rate"))
	if err != nil || rateLimit < 0 {
		panic("failed to parse geocoder rate limit from configuration, must be a non-negative integer")
	}

	return &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Port:            httpPort,
			ShutdownTimeout: shutdownTimeout,
		},
		MonitoringPort: monitoringPort,
		TemplatesDir:   v.GetString("templates_dir"),
		StaticDir:      v.GetString("static_dir"),
		CORSOrigins:    splitList(v.GetString("cors_origins")),
		Geocoder: GeocoderConfig{
			Provider:  strings.ToLower(v.GetString("geocoder_provider")),
			APIKey:    v.GetString("geocoder_key"),
			RateLimit: rateLimit,
		},
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.name"),
			SSLMode:  v.GetString("postgres.sslmode"),
		},
	}
}

// newViper returns a viper instance bound to the GEOTASKS_* and DB_* variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GEOTASKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("monitoring.port", "9090")
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("static_dir", "static")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("geocoder_provider", "nominatim")
	v.SetDefault("geocoder_key", "")
	v.SetDefault("geocoder_rate", "1")

	_ = v.BindEnv("http.shutdown_timeout", "GEOTASKS_SHUTDOWN_TIMEOUT")
	// Flat keys: a nested geocoder.* key would be shadowed by GEOTASKS_GEOCODER.
	_ = v.BindEnv("geocoder_provider", "GEOTASKS_GEOCODER")
	_ = v.BindEnv("geocoder_key", "GEOTASKS_GEOCODER_KEY")
	_ = v.BindEnv("geocoder_rate", "GEOTASKS_GEOCODER_RATE")
	// Database variables carry no prefix.
	_ = v.BindEnv("postgres.host", "DB_HOST")
	_ = v.BindEnv("postgres.port", "DB_PORT")
	_ = v.BindEnv("postgres.user", "DB_USERNAME")
	_ = v.BindEnv("postgres.password", "DB_PASSWORD")
	_ = v.BindEnv("postgres.name", "DB_NAME")
	_ = v.BindEnv("postgres.sslmode", "DB_SSLMODE")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")

	return v
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
