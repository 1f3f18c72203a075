package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"join-checker/internal/dialect"
	"join-checker/internal/logging"
	"join-checker/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dsn        string
	driverFlag string
	schemaFlag string
	cfgFile    string

	DB         *sql.DB
	DriverName string
	Catalog    *schema.Catalog
	Logger     *slog.Logger

	closeLogger = func() {}
)

var RootCmd = &cobra.Command{
	Use:   "join-checker",
	Short: "Check whether a layer column and a DataTable column can be joined",
	Long: `
Join Checker - compares the declared types of a layer column and an
uploaded DataTable column before they are SQL-joined, and prints the
join predicate when they are compatible.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg, err := GetLoggingConfig()
		if err != nil {
			return err
		}
		Logger, closeLogger = logging.SetupLogger(logCfg, os.Stderr)

		config, err := ResolveDBConfig()
		if err != nil {
			return err
		}
		DriverName = config.Driver

		DB, err = sql.Open(config.Driver, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		if err := DB.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		schemaName, err := ResolveSchema(cmd.Context(), DB, DriverName, config.Schema)
		if err != nil {
			return err
		}

		d := dialect.GetDialect(DriverName)
		Catalog = schema.NewCatalog(DB, d, schemaName)
		Logger.Debug("connected",
			slog.String("name", config.Name),
			slog.String("driver", DriverName),
			slog.String("schema", Catalog.Schema()))

		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and releases the database and log sinks
// whether or not the command failed. cobra skips PersistentPostRun after a
// RunE error.
func run(ctx context.Context) error {
	defer cleanup()
	return RootCmd.ExecuteContext(ctx)
}

func cleanup() {
	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
	closeLogger()
	closeLogger = func() {}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./join-checker.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "database/sql driver: postgres, pgx, mysql, sqlserver, oracle")
	RootCmd.PersistentFlags().StringVar(&schemaFlag, "schema", "", "schema holding layer and DataTable tables (default depends on driver)")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("database.schema", RootCmd.PersistentFlags().Lookup("schema"))

	viper.SetDefault("logging.level", "info")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("join-checker")
		viper.SetConfigType("yaml")
	}

	// JOINCHECK_DATABASE_DSN, JOINCHECK_LOGGING_LEVEL, ...
	viper.SetEnvPrefix("joincheck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
