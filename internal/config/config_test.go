package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"MONGODB_URI", "MONGODB_DATABASE", "MONGODB_CONNECT_TIMEOUT", "PORT", "ALLOWED_ORIGINS", "MAX_UPLOAD_MB",
		"UPLOAD_EMERGENCY_NUM_DEFAULT", "IMPORT_EMERGENCY_NUM_DEFAULT", "IMPORT_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "mongodb://localhost:27017/hospital_finder", cfg.Database.URI)
	assert.Equal(t, "hospital_finder", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, int64(50), cfg.Server.MaxUploadMB)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "", cfg.Import.UploadEmergencyNumberDefault)
	assert.Equal(t, "0", cfg.Import.CLIEmergencyNumberDefault)
	assert.Equal(t, "data/hospitals.xlsx", cfg.Import.DefaultFile)
	assert.True(t, cfg.IsLocalDatabase())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb+srv://user:pw@cluster0.example.net/directory?retryWrites=true")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "250ms")
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")
	t.Setenv("UPLOAD_EMERGENCY_NUM_DEFAULT", "108")

	cfg := LoadConfig()

	assert.Equal(t, "directory", cfg.Database.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.ConnectTimeout)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(50), cfg.Server.MaxUploadMB)
	assert.Equal(t, "108", cfg.Import.UploadEmergencyNumberDefault)
	assert.False(t, cfg.IsLocalDatabase())
}

func TestDatabaseFromURI(t *testing.T) {
	assert.Equal(t, "hospital_finder", databaseFromURI("mongodb://localhost:27017"))
	assert.Equal(t, "hospital_finder", databaseFromURI("mongodb://localhost:27017/"))
	assert.Equal(t, "beds", databaseFromURI("mongodb://db:27017/beds"))
}
