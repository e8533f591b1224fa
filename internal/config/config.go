package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// Deployment environments. They decide the cross-site attributes of the
// identity cookie.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Supported task store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	Environment            string   `mapstructure:"environment"              validate:"required,oneof=development production"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"          validate:"dive,url"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// IsProduction reports whether the server runs in the production environment.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// DatabaseConfig contains the task store settings.
type DatabaseConfig struct {
	Driver         string `mapstructure:"driver"          validate:"required,oneof=mongo postgres"`
	URL            string `mapstructure:"url"             validate:"required,url"`
	Name           string `mapstructure:"name"            validate:"required"`
	Collection     string `mapstructure:"collection"      validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
