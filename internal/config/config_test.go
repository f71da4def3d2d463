package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Login.db", cfg.DBPath)
	assert.Equal(t, 7, cfg.QueueRetentionDays)
	assert.Equal(t, "patient_images", cfg.LabImageDir)
	assert.False(t, cfg.CascadeLabImages)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CLINIC_DB_PATH", "/data/clinic.db")
	t.Setenv("CLINIC_QUEUE_RETENTION_DAYS", "14")
	t.Setenv("CLINIC_CASCADE_LAB_IMAGES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/clinic.db", cfg.DBPath)
	assert.Equal(t, 14, cfg.QueueRetentionDays)
	assert.True(t, cfg.CascadeLabImages)
}

func TestLoadRejectsNonPositiveRetention(t *testing.T) {
	t.Setenv("CLINIC_QUEUE_RETENTION_DAYS", "0")

	_, err := Load()
	require.Error(t, err)
}
