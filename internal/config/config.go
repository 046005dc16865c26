package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Analysis     AnalysisConfig
	LearningPath LearningPathConfig
	Timeouts     TimeoutConfig
	Fetch        FetchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
	SQLitePath    string
}

// Enabled reports whether a Postgres host was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return c.Host + ":" + port
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type AnalysisConfig struct {
	MatchPolicy    string
	WordBoundaries bool
	Persist        bool
	HistoryLimit   int
}

type LearningPathConfig struct {
	Workers          int
	ResourceRPS      int
	ResourceBaseURL  string
	ResourceCacheTTL time.Duration
}

type TimeoutConfig struct {
	Fetch    time.Duration
	Profile  time.Duration
	Resource time.Duration
	Store    time.Duration
}

type FetchConfig struct {
	Headless  bool
	UserAgent string
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the server configuration. APP_NAME, APP_ENV and HTTP_PORT are
// required.
func Load() (Config, error) {
	return load(true)
}

// LoadCLI reads the same keys as Load without requiring the server ones.
func LoadCLI() (Config, error) {
	return load(false)
}

func load(server bool) (Config, error) {
	_ = godotenv.Load()

	r := reader{}
	cfg := Config{}

	if server {
		cfg.App = AppConfig{
			AppName:     r.req("APP_NAME"),
			Environment: r.req("APP_ENV"),
			HTTPPort:    r.req("HTTP_PORT"),
		}
	} else {
		cfg.App = AppConfig{
			AppName:     r.str("APP_NAME", "skillgap"),
			Environment: r.str("APP_ENV", "local"),
			HTTPPort:    r.opt("HTTP_PORT"),
		}
	}

	cfg.Database = DatabaseConfig{
		DBHost:                r.opt("DB_HOST"),
		DBPort:                r.str("DB_PORT", "5432"),
		DBName:                r.opt("DB_NAME"),
		DBUser:                r.opt("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBSSLMode:             r.str("DB_SSL_MODE", "disable"),
		ConnectTimeout:        r.duration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(r.integer("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(r.integer("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   r.duration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   r.duration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: r.duration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
		MigrationsDir:         r.opt("DB_MIGRATIONS_DIR"),
		SQLitePath:            r.str("SQLITE_PATH", "skillgap.db"),
	}

	cfg.Redis = RedisConfig{
		Host:     r.opt("REDIS_HOST"),
		Port:     r.str("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       r.integer("REDIS_DB", 0),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    r.opt("JWT_ACCESS_SECRET"),
		AccessExpiresIn: r.duration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	cfg.Analysis = AnalysisConfig{
		MatchPolicy:    r.str("MATCH_POLICY", "substring"),
		WordBoundaries: r.boolean("EXTRACT_WORD_BOUNDARIES", false),
		Persist:        r.boolean("PERSIST_ANALYSES", false),
		HistoryLimit:   r.integer("HISTORY_LIMIT", 50),
	}

	cfg.LearningPath = LearningPathConfig{
		Workers:          r.integer("LEARNING_PATH_WORKERS", 4),
		ResourceRPS:      r.integer("RESOURCE_RPS", 0),
		ResourceBaseURL:  r.opt("RESOURCE_BASE_URL"),
		ResourceCacheTTL: r.duration("RESOURCE_CACHE_TTL", 10*time.Minute),
	}

	cfg.Timeouts = TimeoutConfig{
		Fetch:    r.duration("FETCH_TIMEOUT", 15*time.Second),
		Profile:  r.duration("PROFILE_TIMEOUT", 5*time.Second),
		Resource: r.duration("RESOURCE_TIMEOUT", 10*time.Second),
		Store:    r.duration("STORE_TIMEOUT", 5*time.Second),
	}

	cfg.Fetch = FetchConfig{
		Headless:  r.boolean("FETCH_HEADLESS", false),
		UserAgent: r.str("FETCH_USER_AGENT", "skillgap/1.0"),
	}

	if len(r.missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(r.missing, ", "))
	}
	if len(r.invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(r.invalid, ", "))
	}
	return cfg, nil
}

type reader struct {
	missing []string
	invalid []string
}

func (r *reader) opt(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (r *reader) req(key string) string {
	v := r.opt(key)
	if v == "" {
		r.missing = append(r.missing, key)
	}
	return v
}

func (r *reader) str(key, def string) string {
	if v := r.opt(key); v != "" {
		return v
	}
	return def
}

func (r *reader) integer(key string, def int) int {
	raw := r.opt(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		r.invalid = append(r.invalid, key)
		return def
	}
	return v
}

func (r *reader) boolean(key string, def bool) bool {
	raw := r.opt(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.invalid = append(r.invalid, key)
		return def
	}
	return v
}

// duration accepts Go durations ("90s") or a bare number of seconds.
func (r *reader) duration(key string, def time.Duration) time.Duration {
	raw := r.opt(key)
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		r.invalid = append(r.invalid, key)
		return def
	}
	return d
}
