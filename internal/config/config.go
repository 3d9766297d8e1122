package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App AppConfig `mapstructure:"app" validate:"required"`
}

// AppConfig contains the settings of the interactive session.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}
