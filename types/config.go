package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log"`
}

// DataConfig holds durable storage configuration
type DataConfig struct {
	// Dir is the data directory; the file backend stores keys here and the
	// sqlite backend keeps its database file here.
	Dir     string `mapstructure:"dir" validate:"required"`
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
	// File is the sqlite database filename inside Dir.
	File string `mapstructure:"file" validate:"required"`
}

// LogConfig controls the diagnostic log output
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}
