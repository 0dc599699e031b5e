package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Streak StreakConfig
	Frame  FrameConfig
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
	Env          string `envconfig:"HABITFRAME_APP_ENV" required:"true"`
	Port         string `envconfig:"HABITFRAME_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HABITFRAME_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HABITFRAME_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"HABITFRAME_DB_DSN"`

	Host     string `envconfig:"HABITFRAME_DB_HOST"`
	Port     int    `envconfig:"HABITFRAME_DB_PORT" default:"5432"`
	User     string `envconfig:"HABITFRAME_DB_USER"`
	Password string `envconfig:"HABITFRAME_DB_PASSWORD"`
	Name     string `envconfig:"HABITFRAME_DB_NAME"`
	SSLMode  string `envconfig:"HABITFRAME_DB_SSLMODE" default:"disable"`

	AutoMigrate bool `envconfig:"HABITFRAME_DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"HABITFRAME_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HABITFRAME_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HABITFRAME_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HABITFRAME_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HABITFRAME_REDIS_URL"`
	Address      string        `envconfig:"HABITFRAME_REDIS_ADDR"`
	Password     string        `envconfig:"HABITFRAME_REDIS_PASSWORD"`
	DB           int           `envconfig:"HABITFRAME_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HABITFRAME_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HABITFRAME_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HABITFRAME_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HABITFRAME_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HABITFRAME_REDIS_WRITE_TIMEOUT" default:"5s"`
	CatalogTTL   time.Duration `envconfig:"HABITFRAME_REDIS_CATALOG_TTL" default:"10m"`
}

// StreakConfig controls how adherent logs extend a streak.
//
// The default rule increments the current streak on any adherent log, no
// matter how far the log date is from the previous one. Strict mode resets
// to 1 when the log date is not exactly one day after the last logged date.
type StreakConfig struct {
	Strict bool `envconfig:"HABITFRAME_STREAK_STRICT" default:"false"`
}

type FrameConfig struct {
	BaseURL string `envconfig:"HABITFRAME_FRAME_BASE_URL" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
