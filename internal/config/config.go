package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the application reads from the environment.
// The clinic runs this on a single machine, so the defaults are meant to
// work with no configuration at all: the database file next to the binary,
// images in a local folder.
type Config struct {
	DBPath             string `mapstructure:"CLINIC_DB_PATH"`
	QueueRetentionDays int    `mapstructure:"CLINIC_QUEUE_RETENTION_DAYS"`
	LabImageDir        string `mapstructure:"CLINIC_LAB_IMAGE_DIR"`

	// CascadeLabImages decides whether deleting a patient also deletes
	// their lab image records. The clinic historically kept them, so
	// this defaults to off.
	CascadeLabImages bool `mapstructure:"CLINIC_CASCADE_LAB_IMAGES"`
}

// Load reads configuration from the environment with an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("CLINIC_DB_PATH", "Login.db")
	v.SetDefault("CLINIC_QUEUE_RETENTION_DAYS", 7)
	v.SetDefault("CLINIC_LAB_IMAGE_DIR", "patient_images")
	v.SetDefault("CLINIC_CASCADE_LAB_IMAGES", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("CLINIC_DB_PATH")
	v.BindEnv("CLINIC_QUEUE_RETENTION_DAYS")
	v.BindEnv("CLINIC_LAB_IMAGE_DIR")
	v.BindEnv("CLINIC_CASCADE_LAB_IMAGES")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.QueueRetentionDays <= 0 {
		return nil, fmt.Errorf("CLINIC_QUEUE_RETENTION_DAYS must be positive, got %d", cfg.QueueRetentionDays)
	}

	return cfg, nil
}
