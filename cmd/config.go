package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"waymark/store"
	"waymark/tracker"
	"waymark/types"
)

const (
	configName = ".waymark"
	envPrefix  = "WAYMARK"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present; it's okay if it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., WAYMARK_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.SetDefault("data.dir", filepath.Join(home, ".waymark"))
	viper.SetDefault("data.backend", "file")
	viper.SetDefault("data.file", "waymark.sqlite")
	viper.SetDefault("log.level", "warn")

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.AddConfigPath(".")  // ./.waymark.yaml
		viper.AddConfigPath(home) // $HOME/.waymark.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %v\n", err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		HandleFatalError("Failed to parse configuration", err)
	}
	if err := validate.Struct(&GlobalAppConfig); err != nil {
		HandleFatalError("Invalid configuration", err)
	}
}

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// NewLogger builds the diagnostic logger from the configured level.
func NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(GetConfig().Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// GetStore initializes the mission store over the configured backend.
func GetStore() (*store.MissionStore, error) {
	cfg := GetConfig()

	var kv store.KeyValue
	var err error
	switch cfg.Data.Backend {
	case "sqlite":
		if mkErr := os.MkdirAll(cfg.Data.Dir, 0o755); mkErr != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Data.Dir, mkErr)
		}
		kv, err = store.NewSQLiteKeyValue(filepath.Join(cfg.Data.Dir, cfg.Data.File))
	default:
		kv, err = store.NewFileKeyValue(cfg.Data.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", cfg.Data.Backend, err)
	}
	return store.NewMissionStore(kv, NewLogger()), nil
}

// GetTracker initializes a tracker over the configured store and loads the
// current collection. The returned closer releases the store.
func GetTracker() (*tracker.Tracker, func(), error) {
	st, err := GetStore()
	if err != nil {
		return nil, nil, err
	}
	closer := func() { _ = st.Close() }

	trk := tracker.New(st, NewLogger())
	if err := trk.Refresh(); err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to load missions: %w", err)
	}
	return trk, closer, nil
}
