package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	TimeZone    string            `mapstructure:"timeZone"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Security    SecurityConfig    `mapstructure:"security"`
	Seed        SeedConfig        `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	Mode              string        `mapstructure:"mode"`              // gin mode: debug, release, test
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, mysql or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // database name, or file path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	LockTimeout     time.Duration `mapstructure:"lockTimeout"`     // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogQueries      bool          `mapstructure:"logQueries"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or console
	Output     string `mapstructure:"output"` // stdout, stderr or a file path
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// TransactionConfig contains transaction processing settings
type TransactionConfig struct {
	QueueSize    int           `mapstructure:"queueSize"`
	MaxRetries   int           `mapstructure:"maxRetries"`
	RetryBackoff time.Duration `mapstructure:"retryBackoff"` // milliseconds
}

// SecurityConfig contains credential hashing settings
type SecurityConfig struct {
	PinHashCost int `mapstructure:"pinHashCost"`
}

// SeedConfig lists accounts created at startup when absent
type SeedConfig struct {
	Users []SeedUserConfig `mapstructure:"users"`
}

// SeedUserConfig is one seeded account
type SeedUserConfig struct {
	Email string `mapstructure:"email"`
	Pin   string `mapstructure:"pin"`
}
