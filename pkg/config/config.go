package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Delivery     DeliveryConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SPICEBITE_APP_ENV" required:"true"`
	Port         string `envconfig:"SPICEBITE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SPICEBITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SPICEBITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SPICEBITE_DB_DSN"`
	Driver string `envconfig:"SPICEBITE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SPICEBITE_DB_HOST"`
	LegacyPort     int    `envconfig:"SPICEBITE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SPICEBITE_DB_USER"`
	LegacyPassword string `envconfig:"SPICEBITE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SPICEBITE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SPICEBITE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SPICEBITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SPICEBITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SPICEBITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SPICEBITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SPICEBITE_REDIS_URL"`
	Address      string        `envconfig:"SPICEBITE_REDIS_ADDR"`
	Password     string        `envconfig:"SPICEBITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SPICEBITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SPICEBITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SPICEBITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SPICEBITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SPICEBITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SPICEBITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"SPICEBITE_JWT_SECRET"`
	Issuer string `envconfig:"SPICEBITE_JWT_ISSUER" default:"spicebite"`
}

type DeliveryConfig struct {
	FreeDeliveryThreshold string `envconfig:"SPICEBITE_FREE_DELIVERY_THRESHOLD" default:"25"`
}

// FreeDeliveryMinimum parses the configured threshold; the boundary is
// inclusive (an order of exactly RM25.00 ships free).
func (d DeliveryConfig) FreeDeliveryMinimum() decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(d.FreeDeliveryThreshold))
	if err != nil {
		return decimal.NewFromInt(25)
	}
	return value
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SPICEBITE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SPICEBITE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
