package config

import (
    "fmt"
    "net"
    "net/url"
    "os"
    "strconv"
    "time"

    "github.com/joho/godotenv"
)

type Config struct {
    Env             string
    ListenAddr      string
    DatabaseURL     string
    DBMaxConns      int32
    LogLevel        string
    StatsWorkers    int
    MigrateOnStart  bool
    MaxHTTPConns    int
    RegionsFile     string
    ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// LoadEnvFiles reads .env.local and .env into the environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnvFiles() error {
    for _, f := range []string{".env.local", ".env"} {
        if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
            return fmt.Errorf("load %s: %w", f, err)
        }
    }
    return nil
}

// Load reads the configuration from the environment. Every field has a
// default; the error reports values that could not be parsed, in which case
// the defaults are kept for them.
func Load() (Config, error) {
    var errs []error
    cfg := Config{
        Env:             getenv("APP_ENV", "development"),
        ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
        DatabaseURL:     getenv("DATABASE_URL", dsnFromDisfactoryEnv()),
        DBMaxConns:      int32(getenvInt("DB_MAX_CONNS", 10, &errs)),
        LogLevel:        getenv("LOG_LEVEL", "info"),
        StatsWorkers:    getenvInt("STATS_WORKERS", 4, &errs),
        MigrateOnStart:  getenvBool("MIGRATE_ON_START", false, &errs),
        MaxHTTPConns:    getenvInt("MAX_HTTP_CONNS", 0, &errs),
        RegionsFile:     os.Getenv("REGIONS_FILE"),
        ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs),
    }
    if cfg.StatsWorkers < 1 {
        errs = append(errs, fmt.Errorf("STATS_WORKERS must be positive, got %d", cfg.StatsWorkers))
        cfg.StatsWorkers = 1
    }
    if len(errs) > 0 {
        return cfg, fmt.Errorf("config: %v", errs)
    }
    return cfg, nil
}

func (c Config) Development() bool { return c.Env == "development" }

// dsnFromDisfactoryEnv builds a DSN from the DISFACTORY_BACKEND_DEFAULT_DB_*
// variables used by the rest of the platform.
func dsnFromDisfactoryEnv() string {
    u := url.URL{
        Scheme:   "postgres",
        User:     url.UserPassword(getenv("DISFACTORY_BACKEND_DEFAULT_DB_USER", "postgres"), getenv("DISFACTORY_BACKEND_DEFAULT_DB_PASSWORD", "postgres")),
        Host:     net.JoinHostPort(getenv("DISFACTORY_BACKEND_DEFAULT_DB_HOST", "db"), getenv("DISFACTORY_BACKEND_DEFAULT_DB_PORT", "5432")),
        Path:     "/" + getenv("DISFACTORY_BACKEND_DEFAULT_DB_NAME", "postgres"),
        RawQuery: "sslmode=" + getenv("DISFACTORY_BACKEND_DEFAULT_DB_SSLMODE", "disable"),
    }
    return u.String()
}

func getenvInt(key string, def int, errs *[]error) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        *errs = append(*errs, fmt.Errorf("%s: %w", key, err))
        return def
    }
    return n
}

func getenvBool(key string, def bool, errs *[]error) bool {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    b, err := strconv.ParseBool(v)
    if err != nil {
        *errs = append(*errs, fmt.Errorf("%s: %w", key, err))
        return def
    }
    return b
}

func getenvDuration(key string, def time.Duration, errs *[]error) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    d, err := time.ParseDuration(v)
    if err != nil {
        *errs = append(*errs, fmt.Errorf("%s: %w", key, err))
        return def
    }
    return d
}
