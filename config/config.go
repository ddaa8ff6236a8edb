package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Maintenance policies for rounds that are in flight when the payout
// kill switch is flipped off.
const (
	// MaintenanceComplete lets a committed round reveal and cash out
	// normally; only new rounds are blocked.
	MaintenanceComplete = "complete"
	// MaintenanceForceSettle force-cashes an in-flight round at its
	// current accrued value on the next interaction.
	MaintenanceForceSettle = "force_settle"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Games    GamesConfig    `mapstructure:"games"`
	Bankroll BankrollConfig `mapstructure:"bankroll"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AdminConfig struct {
	// OperatorKeyHash is the Argon2id hash of the operator key guarding
	// admin routes. Empty disables the admin surface entirely.
	OperatorKeyHash string `mapstructure:"operator_key_hash"`
}

// GamesConfig is the wagering configuration surface. It is read at
// round-start time; an external administrative collaborator may edit it
// between rounds but never mid-round.
type GamesConfig struct {
	// HouseEdge scales fair odds so the operator keeps a long-run
	// advantage. Must be in (0, 1).
	HouseEdge float64 `mapstructure:"house_edge"`
	// RiskMargin is the pre-bet liquidity margin: a round is accepted
	// only while availableLiquidity >= stake * RiskMargin.
	RiskMargin float64 `mapstructure:"risk_margin"`
	// MaxSinglePayout caps any single settlement, in centavos.
	MaxSinglePayout int64 `mapstructure:"max_single_payout"`
	// ExtraSpinPrice is the cost of a paid wheel spin, in centavos.
	ExtraSpinPrice int64 `mapstructure:"extra_spin_price"`
	// MaintenancePolicy decides what happens to in-flight rounds when
	// payouts are disabled: "complete" or "force_settle".
	MaintenancePolicy string `mapstructure:"maintenance_policy"`
}

type BankrollConfig struct {
	// SeedLiquidity is the operator-configured starting liquidity, in
	// centavos, applied only when the bankroll row does not exist yet.
	SeedLiquidity int64 `mapstructure:"seed_liquidity"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate rejects configurations that would break the wagering math.
func (c *Config) Validate() error {
	if c.Games.HouseEdge <= 0 || c.Games.HouseEdge >= 1 {
		return fmt.Errorf("games.house_edge must be in (0, 1), got %v", c.Games.HouseEdge)
	}
	if c.Games.RiskMargin < 1 {
		return fmt.Errorf("games.risk_margin must be >= 1, got %v", c.Games.RiskMargin)
	}
	if c.Games.MaxSinglePayout <= 0 {
		return fmt.Errorf("games.max_single_payout must be positive, got %d", c.Games.MaxSinglePayout)
	}
	switch c.Games.MaintenancePolicy {
	case MaintenanceComplete, MaintenanceForceSettle:
	default:
		return fmt.Errorf("games.maintenance_policy must be %q or %q, got %q",
			MaintenanceComplete, MaintenanceForceSettle, c.Games.MaintenancePolicy)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WGA_ (Wager Arena).
// Nested keys use underscore: WGA_DATABASE_HOST, WGA_GAMES_HOUSE_EDGE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wager_arena")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "wager-arena")
	v.SetDefault("admin.operator_key_hash", "")
	v.SetDefault("games.house_edge", 0.94)
	v.SetDefault("games.risk_margin", 1.5)
	v.SetDefault("games.max_single_payout", 50000)
	v.SetDefault("games.extra_spin_price", 150)
	v.SetDefault("games.maintenance_policy", MaintenanceComplete)
	v.SetDefault("bankroll.seed_liquidity", 100000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WGA_GAMES_HOUSE_EDGE -> games.house_edge
	v.SetEnvPrefix("WGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
