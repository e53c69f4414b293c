package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, RPC endpoint, secrets)
// - default: Values common across all environments (intervals, timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Ledger LedgerConfig
	Sync   SyncConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type LedgerConfig struct {
	RPCURL          string `envconfig:"LEDGER_RPC_URL" required:"true"`
	ContractAddress string `envconfig:"LEDGER_CONTRACT_ADDRESS" default:"0x4f96c16c3aa1e0ab476cf8cacbf5d639cb6aa4d3"`
	// 0 asks the node for its chain id at startup
	ChainID        int64         `envconfig:"LEDGER_CHAIN_ID" default:"0"`
	PrivateKey     string        `envconfig:"LEDGER_PRIVATE_KEY"`
	DialTimeout    time.Duration `envconfig:"LEDGER_DIAL_TIMEOUT" default:"10s"`
	ConfirmTimeout time.Duration `envconfig:"LEDGER_CONFIRM_TIMEOUT" default:"2m"`
}

func (c LedgerConfig) ReadOnly() bool {
	return c.PrivateKey == ""
}

type SyncConfig struct {
	Interval        time.Duration `envconfig:"SYNC_INTERVAL" default:"6s"`
	MaxBackoff      time.Duration `envconfig:"SYNC_MAX_BACKOFF" default:"1m"`
	ResyncTimeout   time.Duration `envconfig:"SYNC_RESYNC_TIMEOUT" default:"30s"`
	ReadConcurrency int           `envconfig:"SYNC_READ_CONCURRENCY" default:"4"`
	MaxHistory      uint64        `envconfig:"SYNC_MAX_HISTORY" default:"10000"`
}

type DBConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type AuthConfig struct {
	// bcrypt hash of the operator API key exchanged for access tokens
	APIKeyHash string `envconfig:"AUTH_API_KEY_HASH" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Sync.Interval <= 0 {
		return Config{}, fmt.Errorf("SYNC_INTERVAL must be positive, got %s", cfg.Sync.Interval)
	}
	if cfg.Sync.ReadConcurrency <= 0 {
		cfg.Sync.ReadConcurrency = 1
	}
	return cfg, nil
}

// LoadReadConfig loads only what a one-shot ledger read needs, so that the server-only
// required settings (port, secrets) may be absent.
func LoadReadConfig() (Config, error) {
	var cfg Config
	for _, part := range []any{&cfg.Ledger, &cfg.Sync, &cfg.Log} {
		if err := envconfig.Process("", part); err != nil {
			return Config{}, fmt.Errorf("failed to process env config: %w", err)
		}
	}
	if cfg.Sync.ReadConcurrency <= 0 {
		cfg.Sync.ReadConcurrency = 1
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Ledger: LedgerConfig{
			RPCURL:          "http://localhost:8545",
			ContractAddress: "0x4f96c16c3aa1e0ab476cf8cacbf5d639cb6aa4d3",
			ChainID:         1337,
			DialTimeout:     time.Second,
			ConfirmTimeout:  5 * time.Second,
		},
		Sync: SyncConfig{
			Interval:        50 * time.Millisecond,
			MaxBackoff:      200 * time.Millisecond,
			ResyncTimeout:   time.Second,
			ReadConcurrency: 2,
			MaxHistory:      100,
		},
		DB: DBConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
	}
}
