package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

const (
	DriverPostgres string = "postgres"
	DriverSQLite   string = "sqlite"
)

type PostgresConfig struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadPostgresConfiguration(ctx context.Context) PostgresConfig {
	return PostgresConfig{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", "localhost"),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", "chinook"),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", "chinook"),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "chinook"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c PostgresConfig) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.user), url.QueryEscape(c.password), c.host, c.port, c.dbname, c.sslmode)
}

// Open connects to the source selected by CHINOOK_DB_DRIVER
func Open(ctx context.Context) (Source, error) {
	driver := strings.ToLower(env.GetVariableOrDefault(ctx, "CHINOOK_DB_DRIVER", DriverSQLite))

	switch driver {
	case DriverPostgres:
		return NewPostgresSource(ctx, LoadPostgresConfiguration(ctx))
	case DriverSQLite:
		return NewSQLiteSource(ctx, env.GetVariableOrDefault(ctx, "SQLITE_PATH", "chinook.db"))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
