package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"MONGO_URL", "MONGO_DB", "BATCH_WORKERS", "BATCH_PROCESS_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "campus_records", cfg.Database.Database)
	assert.Equal(t, "pdftotext", cfg.PDF.Pdftotext)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 256, cfg.Batch.QueueSize)
	assert.Equal(t, 2*time.Minute, cfg.Batch.ProcessTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "records_test")
	t.Setenv("BATCH_WORKERS", "8")
	t.Setenv("BATCH_PROCESS_TIMEOUT", "30s")

	cfg := LoadConfig()
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, "records_test", cfg.Database.Database)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, 30*time.Second, cfg.Batch.ProcessTimeout)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "many")
	t.Setenv("BATCH_PROCESS_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 2*time.Minute, cfg.Batch.ProcessTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{URI: "mongodb://x", Database: "db"}}
	require.NoError(t, cfg.Validate())

	cfg.Database.URI = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.URI = "mongodb://x"
	cfg.Database.Database = ""
	assert.Error(t, cfg.Validate())
}
