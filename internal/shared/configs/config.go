package configs

// Config holds all configuration for the analyzer.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Warehouse WarehouseConfig `mapstructure:"warehouse" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Engine    EngineConfig    `mapstructure:"engine" validate:"required"`
	Extract   ExtractConfig   `mapstructure:"extract" validate:"required"`
}

// ServerConfig holds the operational HTTP server configuration. The server
// exposes health, metrics and the synchronous task run trigger. WriteTimeout
// bounds the longest run a triggered task may take.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// WarehouseConfig holds the input warehouse configuration.
type WarehouseConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// DatabaseConfig holds the result-store connection configuration.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn" validate:"required"`
}

// EngineConfig holds the parallel engine configuration.
type EngineConfig struct {
	Parallelism int `mapstructure:"parallelism" validate:"required,min=1"`
}

// ExtractConfig holds the stratified sampling configuration.
type ExtractConfig struct {
	SessionSampleCount int `mapstructure:"session_sample_count" validate:"required,min=1"`
}
