package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Training TrainingConfig `mapstructure:"training" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Storage drivers
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects where the document snapshot lives.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=file sqlite postgres"`
	// Path is the snapshot file for the file driver and the database file for sqlite.
	Path        string `mapstructure:"path" validate:"required_unless=Driver postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Driver postgres"`
}

// TrainingConfig tunes card selection and scheduling.
type TrainingConfig struct {
	PickWindow       int `mapstructure:"pick_window" validate:"gte=1"`
	RecentWrongLimit int `mapstructure:"recent_wrong_limit" validate:"gte=0"`
	// RandomSeed makes card picks reproducible; zero seeds from the clock.
	RandomSeed uint64 `mapstructure:"random_seed"`

	// Scheduling parameters. Zero keeps the engine default.
	InitialEase     float64 `mapstructure:"initial_ease" validate:"gte=0"`
	MinEase         float64 `mapstructure:"min_ease" validate:"gte=0"`
	MaxEase         float64 `mapstructure:"max_ease" validate:"gte=0,gtefield=MinEase"`
	MaxIntervalDays float64 `mapstructure:"max_interval_days" validate:"gte=0"`
}
