package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	var cfg Config
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins())

	cfg.CORS.VercelURL = "me.vercel.app"
	cfg.CORS.Origins = " https://example.com, ,https://blog.example.com "
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"https://me.vercel.app",
		"https://www.me.vercel.app",
		"https://example.com",
		"https://blog.example.com",
	}, cfg.AllowedOrigins())
}

func TestStoreKey_FirstPresentWins(t *testing.T) {
	var cfg Config
	cfg.Store.URL = "postgres://db.example.com:5432/postgres"
	assert.False(t, cfg.HasStoreCredentials())

	cfg.Store.AnonKey = "anon"
	assert.Equal(t, "anon", cfg.StoreKey())
	assert.True(t, cfg.HasStoreCredentials())

	cfg.Store.Key = "service"
	assert.Equal(t, "service", cfg.StoreKey())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SUPABASE_DB_URL", "postgres://localhost/portfolio")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.HasStoreCredentials())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "portfolio.content.events", cfg.Kafka.Topic)
}
