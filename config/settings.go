package config

import (
	"fmt"
	"time"
)

// Connection tunables fixed by the deployment rather than resolved from the
// environment.
const (
	DBConnectTimeout = 10 * time.Second
	DBConnMaxAge     = 60 * time.Second

	CacheDialTimeout = 5 * time.Second
	CacheReadTimeout = 5 * time.Second
	CacheDB          = 1
)

// Not for production use.
const defaultSecretKey = "demo-secret-key-not-for-production"

// DatabaseSettings holds the resolved Postgres connection parameters.
type DatabaseSettings struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     string
}

// CacheSettings holds the resolved Redis connection parameters.
type CacheSettings struct {
	Host string
	Port string
}

// Settings is the process configuration, resolved once at startup. Missing
// environment variables fall back to literal defaults; resolution never fails.
type Settings struct {
	Debug         bool
	AllowedHosts  []string
	Database      DatabaseSettings
	Cache         CacheSettings
	SecretKey     string
	InstalledApps []string
}

// Load resolves settings from the current process environment.
func Load() Settings {
	return LoadFrom(New())
}

// LoadFrom resolves settings from the given environment snapshot.
func LoadFrom(env map[string]string) Settings {
	return Settings{
		Debug:        GetBool(env, "DEBUG", true),
		AllowedHosts: []string{"*"},
		Database: DatabaseSettings{
			Name:     GetString(env, "POSTGRES_DB", "demodb"),
			User:     GetString(env, "POSTGRES_USER", "demo_user"),
			Password: GetString(env, "POSTGRES_PASSWORD", "demo_password"),
			Host:     GetString(env, "POSTGRES_HOST", "localhost"),
			Port:     GetString(env, "POSTGRES_PORT", "5432"),
		},
		Cache: CacheSettings{
			Host: GetString(env, "REDIS_HOST", "localhost"),
			Port: GetString(env, "REDIS_PORT", "6379"),
		},
		SecretKey: defaultSecretKey,
		// Ordered set of components the deployment activates; consumed by the
		// migration entry point and the router setup.
		InstalledApps: []string{"contenttypes", "auth", "blog", "shop"},
	}
}

// DSN returns the Postgres connection string, connect timeout included.
func (d DatabaseSettings) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable connect_timeout=%d",
		d.Host, d.User, d.Password, d.Name, d.Port, int(DBConnectTimeout.Seconds()))
}

// Addr returns the host:port address for the cache client.
func (c CacheSettings) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
