package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"join-checker/internal/logging"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Schema string `mapstructure:"schema"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// ResolveSchema returns the schema the catalog should query. MySQL has no
// default schema, so an unset one is taken from the database selected in
// the DSN.
func ResolveSchema(ctx context.Context, db *sql.DB, driver, schemaName string) (string, error) {
	if driver != "mysql" || schemaName != "" {
		return schemaName, nil
	}

	var name sql.NullString
	if err := db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&name); err != nil {
		return "", fmt.Errorf("failed to get current database: %w", err)
	}
	if name.String == "" {
		return "", fmt.Errorf("no database selected in DSN")
	}
	return name.String, nil
}

// ResolveDBConfig uses the active entry under databases when that list is
// configured, and otherwise the single database.dsn / database.driver keys
// (flags or env).
func ResolveDBConfig() (*DBConfig, error) {
	if viper.IsSet("databases") {
		cfg, err := GetActiveDBConfig()
		if err != nil {
			return nil, err
		}
		if cfg.Schema == "" {
			cfg.Schema = viper.GetString("database.schema")
		}
		return cfg, nil
	}

	connStr := viper.GetString("database.dsn")
	if connStr == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag, env or config)")
	}

	driver := viper.GetString("database.driver")
	if driver == "" {
		driver = DetectDriver(connStr)
	}

	return &DBConfig{
		Name:   "CLI Wrapper",
		Driver: driver,
		DSN:    connStr,
		Schema: viper.GetString("database.schema"),
		Active: true,
	}, nil
}

// DetectDriver guesses the database/sql driver name from a DSN.
func DetectDriver(connStr string) string {
	switch {
	case strings.HasPrefix(connStr, "postgres://"), strings.HasPrefix(connStr, "postgresql://"),
		strings.Contains(connStr, "sslmode"):
		return "postgres"
	case strings.HasPrefix(connStr, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(connStr, "oracle://"):
		return "oracle"
	default:
		return "mysql"
	}
}

// GetLoggingConfig reads the logging section.
func GetLoggingConfig() (logging.Config, error) {
	var cfg logging.Config
	if err := viper.UnmarshalKey("logging", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse logging config: %w", err)
	}
	return cfg, nil
}
