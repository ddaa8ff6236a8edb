package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "wager_arena", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "wager-arena", cfg.JWT.Issuer)

	assert.Equal(t, 0.94, cfg.Games.HouseEdge)
	assert.Equal(t, 1.5, cfg.Games.RiskMargin)
	assert.Equal(t, int64(50000), cfg.Games.MaxSinglePayout)
	assert.Equal(t, int64(150), cfg.Games.ExtraSpinPrice)
	assert.Equal(t, MaintenanceComplete, cfg.Games.MaintenancePolicy)
	assert.Equal(t, int64(100000), cfg.Bankroll.SeedLiquidity)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
database:
  host: "db.example.com"
  port: 5433
  user: "appuser"
  password: "secret123"
  dbname: "arena_test"
  sslmode: "require"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
jwt:
  secret: "my-jwt-secret"
  expiry: "12h"
  issuer: "test-arena"
games:
  house_edge: 0.9
  risk_margin: 2.0
  max_single_payout: 100000
  extra_spin_price: 200
  maintenance_policy: "force_settle"
bankroll:
  seed_liquidity: 250000
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 0.9, cfg.Games.HouseEdge)
	assert.Equal(t, 2.0, cfg.Games.RiskMargin)
	assert.Equal(t, int64(100000), cfg.Games.MaxSinglePayout)
	assert.Equal(t, MaintenanceForceSettle, cfg.Games.MaintenancePolicy)
	assert.Equal(t, int64(250000), cfg.Bankroll.SeedLiquidity)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WGA_GAMES_HOUSE_EDGE", "0.97")
	t.Setenv("WGA_DATABASE_HOST", "env-db-host")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.97, cfg.Games.HouseEdge)
	assert.Equal(t, "env-db-host", cfg.Database.Host)
}

func TestLoad_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "h", Port: 5432, User: "u", Password: "p",
		DBName: "arena", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@h:5432/arena?sslmode=disable", d.DSN())
}

func TestLoad_RedisAddr(t *testing.T) {
	r := RedisConfig{Host: "redis-host", Port: 6390}
	assert.Equal(t, "redis-host:6390", r.Addr())
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		return &Config{
			Games: GamesConfig{
				HouseEdge:         0.94,
				RiskMargin:        1.5,
				MaxSinglePayout:   50000,
				ExtraSpinPrice:    150,
				MaintenancePolicy: MaintenanceComplete,
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"house edge zero", func(c *Config) { c.Games.HouseEdge = 0 }},
		{"house edge one", func(c *Config) { c.Games.HouseEdge = 1 }},
		{"risk margin below one", func(c *Config) { c.Games.RiskMargin = 0.5 }},
		{"non-positive payout cap", func(c *Config) { c.Games.MaxSinglePayout = 0 }},
		{"unknown maintenance policy", func(c *Config) { c.Games.MaintenancePolicy = "pause" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, base().Validate())
}
